package models

// Show represents a TV show as returned by a search.
// Image is never empty: it holds the medium-resolution poster URL or the
// configured default image.
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Image   string `json:"image"`
}
