package brackets

import (
	"fmt"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func edge(to int, slot models.SlotColor) *models.Edge {
	return &models.Edge{ToMatchID: to, ToSlot: slot}
}

func roster(names ...string) []models.Player {
	players := make([]models.Player, len(names))
	for i, n := range names {
		players[i] = models.Player{ID: fmt.Sprintf("p-%s", n), Name: n}
	}
	return players
}

func pid(name string) string {
	return "p-" + name
}

// Four players, two semifinals feeding an explicit final slot each.
func fourPlayerTournament() *models.Tournament {
	return &models.Tournament{
		ID:      "t-4",
		Title:   "City Taikai",
		Players: roster("A", "B", "C", "D"),
		Matches: []models.Match{
			{ID: 1, RedPlayerID: pid("A"), WhitePlayerID: pid("B"), WinnerEdge: edge(3, models.SlotRed)},
			{ID: 2, RedPlayerID: pid("C"), WhitePlayerID: pid("D"), WinnerEdge: edge(3, models.SlotWhite)},
			{ID: 3},
		},
		TotalMatches: 3,
		Status:       models.StatusActive,
	}
}

// Eight players, quarterfinals into auto-slotted semifinals into a final.
func eightPlayerTournament() *models.Tournament {
	return &models.Tournament{
		ID:      "t-8",
		Title:   "Prefecture Taikai",
		Players: roster("A", "B", "C", "D", "E", "F", "G", "H"),
		Matches: []models.Match{
			{ID: 1, RedPlayerID: pid("A"), WhitePlayerID: pid("B"), WinnerEdge: edge(5, models.SlotAuto)},
			{ID: 2, RedPlayerID: pid("C"), WhitePlayerID: pid("D"), WinnerEdge: edge(5, models.SlotAuto)},
			{ID: 3, RedPlayerID: pid("E"), WhitePlayerID: pid("F"), WinnerEdge: edge(6, models.SlotAuto)},
			{ID: 4, RedPlayerID: pid("G"), WhitePlayerID: pid("H"), WinnerEdge: edge(6, models.SlotAuto)},
			{ID: 5, WinnerEdge: edge(7, models.SlotRed)},
			{ID: 6, WinnerEdge: edge(7, models.SlotWhite)},
			{ID: 7},
		},
		TotalMatches: 7,
		Status:       models.StatusActive,
	}
}

func mustSubmit(t *models.Tournament, matchID int, red, white uint) {
	if _, err := SubmitScore(t, matchID, red, white, ""); err != nil {
		panic(err)
	}
}
