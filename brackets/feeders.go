package brackets

import (
	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

type FeederKind string

const (
	FeederWinner FeederKind = "winner"
	FeederLoser  FeederKind = "loser"
)

// Feeder is an upstream match whose outcome may be routed into a slot of
// the match under inspection.
type Feeder struct {
	Source *models.Match
	Kind   FeederKind
}

func edgeFeedsSlot(e *models.Edge, matchID int, slot models.SlotColor) bool {
	if e == nil || e.ToMatchID != matchID {
		return false
	}
	// An auto edge is ambiguous until placement time, so it counts as a
	// potential feeder of both slots.
	return e.ToSlot == slot || e.ToSlot == models.SlotAuto
}

// FeedersOf returns every match whose winner or loser edge may feed the
// given slot of the given match.
func FeedersOf(matches []models.Match, matchID int, slot models.SlotColor) []Feeder {
	var feeders []Feeder
	for i := range matches {
		m := &matches[i]
		if edgeFeedsSlot(m.WinnerEdge, matchID, slot) {
			feeders = append(feeders, Feeder{Source: m, Kind: FeederWinner})
		}
		if edgeFeedsSlot(m.LoserEdge, matchID, slot) {
			feeders = append(feeders, Feeder{Source: m, Kind: FeederLoser})
		}
	}
	return feeders
}

// IncomingCounts counts the edges targeting each slot of a match. An auto
// edge increments both counters. A vacant slot with a zero count will
// never fill by routing, which is what makes its match walkover-eligible.
func IncomingCounts(matches []models.Match, matchID int) (red, white int) {
	count := func(e *models.Edge) {
		if e == nil || e.ToMatchID != matchID {
			return
		}
		switch e.ToSlot {
		case models.SlotRed:
			red++
		case models.SlotWhite:
			white++
		case models.SlotAuto:
			red++
			white++
		}
	}
	for i := range matches {
		count(matches[i].WinnerEdge)
		count(matches[i].LoserEdge)
	}
	return red, white
}
