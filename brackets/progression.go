package brackets

import (
	"fmt"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

const walkoverDetails = "walkover"

// SubmitScore records a result on a match and routes the winner and loser
// into their downstream slots. Equal scores are rejected: kendo shiai do
// not end in a draw at this level.
//
// Re-submission of an already finished match is allowed; the result is
// re-derived and placement's correction priority overwrites the stale
// advancement downstream.
//
// Routing replaces t.Matches with an updated copy. Match pointers
// obtained before the call read the old backing array; look matches up
// again afterwards.
func SubmitScore(t *models.Tournament, matchID int, redScore, whiteScore uint, details string) ([]Warning, error) {
	match := t.MatchByID(matchID)
	if match == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatch, matchID)
	}
	if match.RedPlayerID == "" || match.WhitePlayerID == "" {
		return nil, fmt.Errorf("%w: match %d", ErrMatchNotReady, matchID)
	}
	if redScore == whiteScore {
		return nil, fmt.Errorf("%w: %d:%d", ErrTiedScore, redScore, whiteScore)
	}

	winnerID, loserID := match.RedPlayerID, match.WhitePlayerID
	if whiteScore > redScore {
		winnerID, loserID = loserID, winnerID
	}

	match.Result = &models.MatchResult{
		WinnerID:   winnerID,
		RedScore:   redScore,
		WhiteScore: whiteScore,
		Details:    details,
	}

	participants := []string{match.RedPlayerID, match.WhitePlayerID}
	var warnings []Warning

	if e := match.WinnerEdge; e != nil {
		var w []Warning
		t.Matches, w = Place(t.Matches, e.ToMatchID, winnerID, e.ToSlot, participants)
		warnings = append(warnings, w...)
	}
	if e := match.LoserEdge; e != nil {
		var w []Warning
		t.Matches, w = Place(t.Matches, e.ToMatchID, loserID, e.ToSlot, participants)
		warnings = append(warnings, w...)
	}
	return warnings, nil
}

// Walkover advances the sole present player of a bye match. The opposing
// slot stays vacant forever, so there is no loser: a configured loser
// edge is deliberately not followed and downstream consolation slots fed
// only by walkovers stay waiting.
func Walkover(t *models.Tournament, matchID int) ([]Warning, error) {
	match := t.MatchByID(matchID)
	if match == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatch, matchID)
	}
	if match.IsFinished() {
		return nil, fmt.Errorf("%w: match %d", ErrMatchFinished, matchID)
	}

	present := match.Participants()
	switch len(present) {
	case 0:
		return nil, fmt.Errorf("%w: match %d", ErrNoEligiblePlayer, matchID)
	case 2:
		return nil, fmt.Errorf("%w: match %d", ErrMatchContested, matchID)
	}
	winnerID := present[0]

	// A walkover is only legal on a true bye: the vacant slot must be
	// terminal. While an edge still feeds it the opponent may yet arrive.
	redFeeders, whiteFeeders := IncomingCounts(t.Matches, matchID)
	vacantFeeders := whiteFeeders
	if match.RedPlayerID == "" {
		vacantFeeders = redFeeders
	}
	if vacantFeeders > 0 {
		return nil, fmt.Errorf("%w: match %d", ErrOpponentPending, matchID)
	}

	match.Result = &models.MatchResult{
		WinnerID: winnerID,
		Details:  walkoverDetails,
	}

	if e := match.WinnerEdge; e != nil {
		var warnings []Warning
		t.Matches, warnings = Place(t.Matches, e.ToMatchID, winnerID, e.ToSlot, []string{winnerID})
		return warnings, nil
	}
	return nil, nil
}
