package models

import "fmt"

// Episode represents one episode of a show.
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// Label formats the episode the way it is listed to users,
// e.g. "Pilot (season 1, number 1)".
func (e Episode) Label() string {
	return fmt.Sprintf("%s (season %d, number %d)", e.Name, e.Season, e.Number)
}
