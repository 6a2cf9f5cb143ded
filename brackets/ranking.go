package brackets

import (
	"sort"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

// Ranking is one line of the derived placement list.
type Ranking struct {
	PlayerID string `json:"player_id"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

// Rankings derives the placement list from the bracket topology and the
// recorded results. Nothing is stored; the list is recomputed on demand.
//
// Roots (matches with no winner edge) are split into main roots and
// consolation roots (the latter being fed by at least one loser edge)
// and each group is walked in descending match id order. The id order is
// a heuristic carried over from how recorders number their sheets: the
// final conventionally gets the last id.
func Rankings(t *models.Tournament, limit int) []Ranking {
	matches := t.Matches

	loserFed := make(map[int]bool)
	for i := range matches {
		if e := matches[i].LoserEdge; e != nil {
			loserFed[e.ToMatchID] = true
		}
	}

	var mainRoots, consolationRoots []*models.Match
	for i := range matches {
		m := &matches[i]
		if m.WinnerEdge != nil {
			continue
		}
		if loserFed[m.ID] {
			consolationRoots = append(consolationRoots, m)
		} else {
			mainRoots = append(mainRoots, m)
		}
	}
	byIDDesc := func(ms []*models.Match) {
		sort.Slice(ms, func(i, j int) bool { return ms[i].ID > ms[j].ID })
	}
	byIDDesc(mainRoots)
	byIDDesc(consolationRoots)

	ranked := make(map[string]bool)
	var out []Ranking
	add := func(playerID, title string, order int) {
		if playerID == "" || ranked[playerID] {
			return
		}
		ranked[playerID] = true
		out = append(out, Ranking{PlayerID: playerID, Title: title, Order: order})
	}

	for _, root := range mainRoots {
		if root.Result == nil {
			continue
		}
		add(root.Result.WinnerID, "Champion", 1)
		add(root.LoserID(), "Runner-up", 2)
	}
	for _, root := range consolationRoots {
		if root.Result == nil {
			continue
		}
		add(root.Result.WinnerID, "3rd Place", 3)
		add(root.LoserID(), "4th Place", 4)
	}

	// Implicit joint places for depths the bracket does not decide with
	// an explicit consolation match.
	isMainRoot := make(map[int]bool, len(mainRoots))
	for _, m := range mainRoots {
		isMainRoot[m.ID] = true
	}

	feedersInto := func(targets map[int]bool) map[int]bool {
		set := make(map[int]bool)
		for i := range matches {
			if e := matches[i].WinnerEdge; e != nil && targets[e.ToMatchID] {
				set[matches[i].ID] = true
			}
		}
		return set
	}
	losersOf := func(set map[int]bool, title string, order int) {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ids)))
		for _, id := range ids {
			m := t.MatchByID(id)
			if m.Result == nil {
				continue
			}
			add(m.LoserID(), title, order)
		}
	}

	semifinals := feedersInto(isMainRoot)
	if len(consolationRoots) == 0 {
		losersOf(semifinals, "Joint 3rd", 3)
	}
	quarterfinals := feedersInto(semifinals)
	if limit > 4 {
		losersOf(quarterfinals, "Joint 5th", 5)
	}
	if limit > 8 {
		losersOf(feedersInto(quarterfinals), "Joint 9th", 9)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
