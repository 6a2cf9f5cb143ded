package brackets

import (
	"fmt"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

// StateOf classifies a match by its slots, result and feeder topology.
// A vacant slot with at least one incoming edge is expected to fill
// later (waiting); a vacant slot with none makes the match a bye once
// the other side is present, or dead when both sides are like that.
func StateOf(matches []models.Match, matchID int) (models.MatchState, error) {
	var match *models.Match
	for i := range matches {
		if matches[i].ID == matchID {
			match = &matches[i]
			break
		}
	}
	if match == nil {
		return "", fmt.Errorf("%w: %d", ErrUnknownMatch, matchID)
	}

	if match.IsFinished() {
		return models.MatchFinished, nil
	}
	if match.RedPlayerID != "" && match.WhitePlayerID != "" {
		return models.MatchReady, nil
	}

	redFeeders, whiteFeeders := IncomingCounts(matches, matchID)

	if match.RedPlayerID == "" && match.WhitePlayerID == "" {
		if redFeeders == 0 && whiteFeeders == 0 {
			return models.MatchDead, nil
		}
		return models.MatchWaiting, nil
	}

	// Exactly one occupant. The match is a bye only if the vacant slot
	// is terminal, otherwise the opponent is still on the way.
	vacantFeeders := whiteFeeders
	if match.RedPlayerID == "" {
		vacantFeeders = redFeeders
	}
	if vacantFeeders == 0 {
		return models.MatchBye, nil
	}
	return models.MatchWaiting, nil
}
