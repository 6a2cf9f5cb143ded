package models

// Player is a tournament participant. Identity is the ID; the name is
// display-only and may repeat between players.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
