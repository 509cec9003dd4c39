package models

// View is the visible state of one browsing session: the show list and the
// episodes area below it.
type View struct {
	Term            string    `json:"term"`
	Shows           []Show    `json:"shows"`
	ShowID          int       `json:"showId,omitempty"`
	Episodes        []Episode `json:"episodes"`
	EpisodesVisible bool      `json:"episodesVisible"`
}

// SelectedShow returns the show whose episodes are displayed, if it is part
// of the current show list.
func (v View) SelectedShow() (Show, bool) {
	if !v.EpisodesVisible {
		return Show{}, false
	}
	for _, s := range v.Shows {
		if s.ID == v.ShowID {
			return s, true
		}
	}
	return Show{}, false
}
