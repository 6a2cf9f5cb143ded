package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func TestSubmitScoreRoutesWinner(t *testing.T) {
	tournament := fourPlayerTournament()

	warnings, err := SubmitScore(tournament, 1, 3, 1, "men, kote")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	m1 := tournament.MatchByID(1)
	require.NotNil(t, m1.Result)
	assert.Equal(t, pid("A"), m1.Result.WinnerID)
	assert.Equal(t, "men, kote", m1.Result.Details)

	final := tournament.MatchByID(3)
	assert.Equal(t, pid("A"), final.RedPlayerID)
	assert.Empty(t, final.WhitePlayerID)
}

func TestSubmitScoreRoutesWinnerAndLoser(t *testing.T) {
	tournament := fourPlayerTournament()
	consolation := models.Match{ID: 4}
	tournament.Matches = append(tournament.Matches, consolation)
	tournament.MatchByID(1).LoserEdge = edge(4, models.SlotRed)
	tournament.MatchByID(2).LoserEdge = edge(4, models.SlotWhite)

	mustSubmit(tournament, 1, 3, 1)
	mustSubmit(tournament, 2, 0, 2)

	assert.Equal(t, pid("B"), tournament.MatchByID(4).RedPlayerID)
	assert.Equal(t, pid("C"), tournament.MatchByID(4).WhitePlayerID)
	assert.Equal(t, pid("A"), tournament.MatchByID(3).RedPlayerID)
	assert.Equal(t, pid("D"), tournament.MatchByID(3).WhitePlayerID)
}

func TestSubmitScoreRejectsTies(t *testing.T) {
	tournament := fourPlayerTournament()
	before := append([]models.Match(nil), tournament.Matches...)

	for _, score := range []uint{0, 1, 2} {
		_, err := SubmitScore(tournament, 1, score, score, "")
		require.ErrorIs(t, err, ErrTiedScore)
	}
	assert.Equal(t, before, tournament.Matches, "a rejected submission must not mutate anything")
}

func TestSubmitScoreUnknownMatch(t *testing.T) {
	tournament := fourPlayerTournament()
	_, err := SubmitScore(tournament, 42, 1, 0, "")
	assert.ErrorIs(t, err, ErrUnknownMatch)
}

func TestSubmitScoreRequiresBothSlots(t *testing.T) {
	tournament := fourPlayerTournament()
	_, err := SubmitScore(tournament, 3, 1, 0, "")
	assert.ErrorIs(t, err, ErrMatchNotReady)
}

func TestSubmitScoreCorrectionOverwritesStaleAdvancement(t *testing.T) {
	tournament := fourPlayerTournament()
	tournament.MatchByID(1).WinnerEdge = edge(3, models.SlotAuto)
	tournament.MatchByID(2).WinnerEdge = edge(3, models.SlotAuto)

	mustSubmit(tournament, 1, 2, 1) // A advances
	mustSubmit(tournament, 2, 1, 2) // D advances

	final := tournament.MatchByID(3)
	require.Equal(t, pid("A"), final.RedPlayerID)
	require.Equal(t, pid("D"), final.WhitePlayerID)

	// Scorer made a mistake: B actually won match 1. The corrected
	// advancement must replace A, not D. Routing replaces the Matches
	// slice, so the final is looked up again afterwards.
	mustSubmit(tournament, 1, 1, 2)
	final = tournament.MatchByID(3)
	assert.Equal(t, pid("B"), final.RedPlayerID)
	assert.Equal(t, pid("D"), final.WhitePlayerID)
}

func TestWalkoverAdvancesSolePlayer(t *testing.T) {
	tournament := fourPlayerTournament()
	m1 := tournament.MatchByID(1)
	m1.WhitePlayerID = ""

	warnings, err := Walkover(tournament, 1)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, m1.Result)
	assert.Equal(t, pid("A"), m1.Result.WinnerID)
	assert.Equal(t, uint(0), m1.Result.RedScore)
	assert.Equal(t, uint(0), m1.Result.WhiteScore)
	assert.Equal(t, "walkover", m1.Result.Details)
	assert.Equal(t, pid("A"), tournament.MatchByID(3).RedPlayerID)
}

func TestWalkoverSkipsLoserRouting(t *testing.T) {
	tournament := fourPlayerTournament()
	m1 := tournament.MatchByID(1)
	m1.WhitePlayerID = ""
	m1.LoserEdge = edge(2, models.SlotAuto)
	consolationBefore := *tournament.MatchByID(2)

	_, err := Walkover(tournament, 1)
	require.NoError(t, err)
	assert.Equal(t, consolationBefore, *tournament.MatchByID(2), "there is no loser to route")
}

func TestWalkoverRequiresTerminalVacantSlot(t *testing.T) {
	tournament := fourPlayerTournament()
	mustSubmit(tournament, 1, 2, 1) // A advances into the final's red slot

	// The final's white slot is vacant but match 2 still feeds it; the
	// opponent is merely late, not absent.
	_, err := Walkover(tournament, 3)
	assert.ErrorIs(t, err, ErrOpponentPending)
	assert.Nil(t, tournament.MatchByID(3).Result)

	// Once the feeder is decided the slot fills and the match is
	// contested, never a bye.
	mustSubmit(tournament, 2, 0, 2)
	_, err = Walkover(tournament, 3)
	assert.ErrorIs(t, err, ErrMatchContested)
}

func TestWalkoverErrors(t *testing.T) {
	tournament := fourPlayerTournament()

	_, err := Walkover(tournament, 42)
	assert.ErrorIs(t, err, ErrUnknownMatch)

	_, err = Walkover(tournament, 3) // both slots vacant
	assert.ErrorIs(t, err, ErrNoEligiblePlayer)

	_, err = Walkover(tournament, 1) // both slots occupied
	assert.ErrorIs(t, err, ErrMatchContested)

	mustSubmit(tournament, 1, 1, 0)
	tournament.MatchByID(1).WhitePlayerID = ""
	_, err = Walkover(tournament, 1)
	assert.ErrorIs(t, err, ErrMatchFinished)
}
