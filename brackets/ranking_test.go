package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func playerIDs(rankings []Ranking) []string {
	ids := make([]string, len(rankings))
	for i, r := range rankings {
		ids[i] = r.PlayerID
	}
	return ids
}

func TestRankingsFourPlayerBracket(t *testing.T) {
	tournament := fourPlayerTournament()
	mustSubmit(tournament, 1, 3, 1) // A beats B
	mustSubmit(tournament, 2, 0, 2) // D beats C
	mustSubmit(tournament, 3, 2, 1) // A beats D

	rankings := Rankings(tournament, 4)
	require.Len(t, rankings, 4)

	assert.Equal(t, Ranking{PlayerID: pid("A"), Title: "Champion", Order: 1}, rankings[0])
	assert.Equal(t, Ranking{PlayerID: pid("D"), Title: "Runner-up", Order: 2}, rankings[1])
	// Both semifinal losers share third place.
	assert.Equal(t, "Joint 3rd", rankings[2].Title)
	assert.Equal(t, "Joint 3rd", rankings[3].Title)
	assert.ElementsMatch(t, []string{pid("B"), pid("C")}, playerIDs(rankings[2:]))
}

func TestRankingsConsolationRoot(t *testing.T) {
	tournament := fourPlayerTournament()
	tournament.Matches = append(tournament.Matches, models.Match{ID: 4})
	tournament.MatchByID(1).LoserEdge = edge(4, models.SlotRed)
	tournament.MatchByID(2).LoserEdge = edge(4, models.SlotWhite)

	mustSubmit(tournament, 1, 3, 1) // A beats B
	mustSubmit(tournament, 2, 0, 2) // D beats C
	mustSubmit(tournament, 3, 2, 1) // final: A beats D
	mustSubmit(tournament, 4, 1, 2) // consolation: C beats B

	rankings := Rankings(tournament, 4)
	require.Len(t, rankings, 4)
	assert.Equal(t, []string{pid("A"), pid("D"), pid("C"), pid("B")}, playerIDs(rankings))
	assert.Equal(t, "3rd Place", rankings[2].Title)
	assert.Equal(t, "4th Place", rankings[3].Title)
}

func TestRankingsDedupKeepsFirstTitle(t *testing.T) {
	// Malformed authoring can route the runner-up into the consolation
	// match as well; the earlier (better) title must stick.
	tournament := fourPlayerTournament()
	tournament.Matches = append(tournament.Matches,
		models.Match{ID: 4, RedPlayerID: pid("D"), WhitePlayerID: pid("C")})
	tournament.MatchByID(1).LoserEdge = edge(4, models.SlotAuto)

	mustSubmit(tournament, 1, 3, 1)
	mustSubmit(tournament, 2, 0, 2)
	mustSubmit(tournament, 3, 2, 1) // A champion, D runner-up
	mustSubmit(tournament, 4, 2, 0) // D also wins the consolation

	rankings := Rankings(tournament, 10)
	seen := make(map[string]int)
	for _, r := range rankings {
		seen[r.PlayerID]++
	}
	assert.Equal(t, 1, seen[pid("D")])
	assert.Equal(t, Ranking{PlayerID: pid("D"), Title: "Runner-up", Order: 2}, rankings[1])
}

func TestRankingsImplicitJointFifth(t *testing.T) {
	tournament := eightPlayerTournament()
	mustSubmit(tournament, 1, 1, 0) // A
	mustSubmit(tournament, 2, 1, 0) // C
	mustSubmit(tournament, 3, 0, 1) // F
	mustSubmit(tournament, 4, 0, 1) // H
	mustSubmit(tournament, 5, 1, 0) // A beats C
	mustSubmit(tournament, 6, 0, 1) // H beats F
	mustSubmit(tournament, 7, 2, 1) // A beats H

	rankings := Rankings(tournament, 8)
	require.Len(t, rankings, 8)

	assert.Equal(t, pid("A"), rankings[0].PlayerID)
	assert.Equal(t, pid("H"), rankings[1].PlayerID)
	assert.ElementsMatch(t, []string{pid("C"), pid("F")}, playerIDs(rankings[2:4]))
	assert.ElementsMatch(t, []string{pid("B"), pid("D"), pid("E"), pid("G")}, playerIDs(rankings[4:8]))
	for _, r := range rankings[4:8] {
		assert.Equal(t, "Joint 5th", r.Title)
		assert.Equal(t, 5, r.Order)
	}

	// Quarterfinal losers are only listed when the limit asks for them.
	assert.Len(t, Rankings(tournament, 4), 4)
}

func TestRankingsUnfinishedBracket(t *testing.T) {
	tournament := fourPlayerTournament()
	mustSubmit(tournament, 1, 2, 0)

	// No root result yet: nothing can be ranked above joint third, and
	// the only decided semifinal contributes its loser.
	rankings := Rankings(tournament, 4)
	require.Len(t, rankings, 1)
	assert.Equal(t, Ranking{PlayerID: pid("B"), Title: "Joint 3rd", Order: 3}, rankings[0])
}

func TestRankingsLimitTruncates(t *testing.T) {
	tournament := fourPlayerTournament()
	mustSubmit(tournament, 1, 3, 1)
	mustSubmit(tournament, 2, 0, 2)
	mustSubmit(tournament, 3, 2, 1)

	rankings := Rankings(tournament, 2)
	require.Len(t, rankings, 2)
	assert.Equal(t, pid("A"), rankings[0].PlayerID)
	assert.Equal(t, pid("D"), rankings[1].PlayerID)
}
