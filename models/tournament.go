package models

import "time"

// TournamentStatus matches the lifecycle driven by the recording flow:
// slots and edges are edited during setup, results come in while active,
// and a tournament is completed once every match is finished.
type TournamentStatus string

const (
	StatusSetup     TournamentStatus = "setup"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
)

// Tournament is the aggregate root and the unit of persistence: the
// store always loads and saves whole snapshots, last write wins.
type Tournament struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Players      []Player         `json:"players"`
	Matches      []Match          `json:"matches"`
	TotalMatches int              `json:"total_matches"`
	Status       TournamentStatus `json:"status"`
	SheetKey     *string          `json:"sheet_key,omitempty"`
	SheetURL     *string          `json:"sheet_url,omitempty"`
	LastUpdated  time.Time        `json:"last_updated"`
}

// MatchByID returns a pointer into the Matches slice, or nil.
func (t *Tournament) MatchByID(id int) *Match {
	for i := range t.Matches {
		if t.Matches[i].ID == id {
			return &t.Matches[i]
		}
	}
	return nil
}

// PlayerByID returns the roster entry for the id, or nil.
func (t *Tournament) PlayerByID(id string) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// AllMatchesFinished reports whether every match carries a result.
func (t *Tournament) AllMatchesFinished() bool {
	for i := range t.Matches {
		if t.Matches[i].Result == nil {
			return false
		}
	}
	return len(t.Matches) > 0
}
