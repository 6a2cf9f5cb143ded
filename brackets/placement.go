package brackets

import (
	"slices"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

// Place routes a player into a slot of the target match and returns the
// updated match collection. Only the target match changes; the input
// slice is not modified. The call is idempotent.
//
// An explicit red/white target slot always overwrites, even over an
// existing occupant: explicit edges model certainty. An auto slot is
// resolved at placement time:
//
//  1. correction priority: a slot currently holding one of the source
//     match's participants is overwritten first, so re-submitting a
//     corrected result replaces the stale advancement instead of
//     clobbering the other slot,
//  2. otherwise the first vacant slot (red before white) is filled,
//  3. otherwise the match is left unchanged and a warning is reported;
//     this cannot happen in a well-formed graph.
func Place(matches []models.Match, targetMatchID int, playerID string, targetSlot models.SlotColor, sourceParticipants []string) ([]models.Match, []Warning) {
	updated := slices.Clone(matches)

	var target *models.Match
	for i := range updated {
		if updated[i].ID == targetMatchID {
			target = &updated[i]
			break
		}
	}
	if target == nil {
		return updated, []Warning{malformedGraph("edge targets unknown match %d", targetMatchID)}
	}

	if targetSlot == models.SlotRed || targetSlot == models.SlotWhite {
		target.SetSlot(targetSlot, playerID)
		return updated, nil
	}

	fromSource := func(occupant string) bool {
		return occupant != "" && slices.Contains(sourceParticipants, occupant)
	}

	switch {
	case fromSource(target.RedPlayerID):
		target.RedPlayerID = playerID
	case fromSource(target.WhitePlayerID):
		target.WhitePlayerID = playerID
	case target.RedPlayerID == "":
		target.RedPlayerID = playerID
	case target.WhitePlayerID == "":
		target.WhitePlayerID = playerID
	default:
		return updated, []Warning{malformedGraph(
			"match %d has no slot for player %s: both slots occupied by unrelated players", targetMatchID, playerID)}
	}

	return updated, nil
}
