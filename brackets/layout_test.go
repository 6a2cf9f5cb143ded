package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func matchIDs(round []models.Match) []int {
	ids := make([]int, len(round))
	for i, m := range round {
		ids[i] = m.ID
	}
	return ids
}

func TestLayoutGroupsRounds(t *testing.T) {
	tournament := eightPlayerTournament()

	rounds, warnings := Layout(tournament.Matches, 7)
	require.Empty(t, warnings)
	require.Len(t, rounds, 3)

	assert.Equal(t, []int{1, 2, 3, 4}, matchIDs(rounds[0]))
	assert.Equal(t, []int{5, 6}, matchIDs(rounds[1]))
	assert.Equal(t, []int{7}, matchIDs(rounds[2]))
}

func TestLayoutDepthMonotonicity(t *testing.T) {
	tournament := eightPlayerTournament()
	tournament.MatchByID(1).LoserEdge = edge(6, models.SlotAuto)

	rounds, _ := Layout(tournament.Matches, 7)

	depth := make(map[int]int)
	for i, round := range rounds {
		for _, m := range round {
			depth[m.ID] = len(rounds) - 1 - i
		}
	}
	for _, m := range tournament.Matches {
		for _, e := range []*models.Edge{m.WinnerEdge, m.LoserEdge} {
			if e == nil {
				continue
			}
			assert.Greater(t, depth[m.ID], depth[e.ToMatchID],
				"match %d must be laid out deeper than match %d", m.ID, e.ToMatchID)
		}
	}
}

func TestLayoutMaxDepthAlongAnyPath(t *testing.T) {
	// Match 1 feeds the final both directly (loser edge) and through a
	// semifinal; the longer path decides its round.
	matches := []models.Match{
		{ID: 1, WinnerEdge: edge(2, models.SlotAuto), LoserEdge: edge(3, models.SlotAuto)},
		{ID: 2, WinnerEdge: edge(3, models.SlotAuto)},
		{ID: 3},
	}

	rounds, warnings := Layout(matches, 3)
	require.Empty(t, warnings)
	require.Len(t, rounds, 3)
	assert.Equal(t, []int{1}, matchIDs(rounds[0]))
	assert.Equal(t, []int{2}, matchIDs(rounds[1]))
	assert.Equal(t, []int{3}, matchIDs(rounds[2]))
}

func TestLayoutNonRootFallsBack(t *testing.T) {
	tournament := fourPlayerTournament()

	// Match 1 is not a root; layout should complain and pick match 3.
	rounds, warnings := Layout(tournament.Matches, 1)
	require.NotEmpty(t, warnings)
	require.Len(t, rounds, 2)
	assert.Equal(t, []int{3}, matchIDs(rounds[1]))
}

func TestLayoutDisconnectedMatch(t *testing.T) {
	tournament := fourPlayerTournament()
	tournament.Matches = append(tournament.Matches, models.Match{ID: 9})

	rounds, warnings := Layout(tournament.Matches, 3)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnMalformedGraph, warnings[0].Kind)

	// The stray match has no edges at all and lands in the root round.
	assert.Contains(t, matchIDs(rounds[len(rounds)-1]), 9)
}

func TestLayoutCappedOnCycles(t *testing.T) {
	matches := []models.Match{
		{ID: 1, WinnerEdge: edge(2, models.SlotAuto)},
		{ID: 2, WinnerEdge: edge(1, models.SlotAuto)},
		{ID: 3},
		{ID: 4, WinnerEdge: edge(3, models.SlotAuto)},
	}

	// Must terminate despite the 1<->2 cycle.
	rounds, warnings := Layout(matches, 3)
	assert.NotEmpty(t, warnings)
	assert.NotEmpty(t, rounds)
}

func TestLayoutEmpty(t *testing.T) {
	rounds, warnings := Layout(nil, 1)
	assert.Nil(t, rounds)
	assert.Empty(t, warnings)
}
