package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/showfinder/showfinder/internal/config"
)

const (
	sessionName  = "showfinder-session"
	sessionIDKey = "id"
)

// NewSessionStore creates the cookie store holding session IDs. Page state
// itself lives server-side in the view store; the cookie only carries the ID.
// An empty secret gets a random key, so sessions do not survive a restart.
func NewSessionStore(secret string, maxAge int, secure bool) *sessions.CookieStore {
	key := []byte(secret)
	if secret == "" {
		logger := config.GetLogger()
		logger.Warn().Msg("session.secret is not set, using a random key")
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// sessionID returns the caller's session ID, issuing a new one when the
// request carries none or carries a cookie that no longer decodes.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	// Get returns a fresh session alongside a decode error, which is what we want.
	session, _ := s.sessions.Get(r, sessionName)

	if id, ok := session.Values[sessionIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[sessionIDKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}
