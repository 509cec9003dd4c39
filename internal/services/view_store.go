package services

import (
	"encoding/json"
	"fmt"

	"github.com/showfinder/showfinder/internal/config"
	"github.com/showfinder/showfinder/internal/models"
	"github.com/showfinder/showfinder/internal/store"
)

const viewKeyPrefix = "view:"

// storeViewStore keeps views JSON-encoded in a store.Store.
type storeViewStore struct {
	store store.Store
}

// NewViewStore creates a ViewStore backed by s.
func NewViewStore(s store.Store) ViewStore {
	return &storeViewStore{store: s}
}

func (v *storeViewStore) Load(sessionID string) (models.View, bool) {
	data, ok := v.store.Get(viewKeyPrefix + sessionID)
	if !ok {
		return models.View{}, false
	}

	var view models.View
	if err := json.Unmarshal(data, &view); err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("session", sessionID).Msg("Discarding undecodable view")
		v.store.Delete(viewKeyPrefix + sessionID)
		return models.View{}, false
	}
	return view, true
}

func (v *storeViewStore) Save(sessionID string, view models.View) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	v.store.Set(viewKeyPrefix+sessionID, data)
	return nil
}

func (v *storeViewStore) Delete(sessionID string) {
	v.store.Delete(viewKeyPrefix + sessionID)
}
