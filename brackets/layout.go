package brackets

import (
	"sort"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

// Traversal past this depth is cut off so that a malformed cyclic edge
// set cannot hang the layout. Deeper matches are simply dropped.
const maxTraversalDepth = 64

// Layout groups matches into display rounds by their distance from the
// root match: the root is depth 0, every feeder sits one deeper than the
// furthest match it feeds. Groups come out deepest round first (the
// leftmost column of a bracket sheet), matches within a group in id
// order.
//
// rootMatchID is a caller choice; recorders conventionally give the
// final the highest id, but the engine does not infer that. If the given
// id is not an actual root the highest-id root is used instead and a
// warning is reported.
func Layout(matches []models.Match, rootMatchID int) ([][]models.Match, []Warning) {
	if len(matches) == 0 {
		return nil, nil
	}

	var warnings []Warning

	root := findMatch(matches, rootMatchID)
	if root == nil || root.WinnerEdge != nil {
		fallback := fallbackRoot(matches)
		if fallback == nil {
			warnings = append(warnings, malformedGraph("no root match in graph, using match %d for layout", rootMatchID))
		} else if root == nil {
			warnings = append(warnings, malformedGraph("root match %d not found, using match %d", rootMatchID, fallback.ID))
			root = fallback
		} else {
			warnings = append(warnings, malformedGraph("match %d is not a root, using match %d", rootMatchID, fallback.ID))
			root = fallback
		}
	}

	depths := make(map[int]int, len(matches))
	if root != nil {
		depths[root.ID] = 0
		descend(matches, root.ID, 0, depths)
	}

	// Matches the reverse traversal never reached get a heuristic depth
	// one past their downstream target, or 0 when they have no edges.
	warnings = append(warnings, placeDisconnected(matches, depths)...)

	maxDepth := 0
	for _, d := range depths {
		if d > maxDepth {
			maxDepth = d
		}
	}

	rounds := make([][]models.Match, maxDepth+1)
	for i := range matches {
		d, ok := depths[matches[i].ID]
		if !ok {
			continue
		}
		// index 0 = deepest round, last index = the root round
		rounds[maxDepth-d] = append(rounds[maxDepth-d], matches[i])
	}
	for _, round := range rounds {
		sort.Slice(round, func(i, j int) bool { return round[i].ID < round[j].ID })
	}
	return rounds, warnings
}

func findMatch(matches []models.Match, id int) *models.Match {
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i]
		}
	}
	return nil
}

func fallbackRoot(matches []models.Match) *models.Match {
	var best *models.Match
	for i := range matches {
		if matches[i].WinnerEdge != nil {
			continue
		}
		if best == nil || matches[i].ID > best.ID {
			best = &matches[i]
		}
	}
	return best
}

// descend walks the feeder edges backwards from a match, assigning every
// feeder the maximum depth any path reaches it at.
func descend(matches []models.Match, matchID, depth int, depths map[int]int) {
	if depth >= maxTraversalDepth {
		return
	}
	for i := range matches {
		m := &matches[i]
		feeds := (m.WinnerEdge != nil && m.WinnerEdge.ToMatchID == matchID) ||
			(m.LoserEdge != nil && m.LoserEdge.ToMatchID == matchID)
		if !feeds {
			continue
		}
		if current, ok := depths[m.ID]; ok && current >= depth+1 {
			continue
		}
		depths[m.ID] = depth + 1
		descend(matches, m.ID, depth+1, depths)
	}
}

func placeDisconnected(matches []models.Match, depths map[int]int) []Warning {
	var warnings []Warning
	// Targets of disconnected matches may themselves be disconnected, so
	// keep resolving until a pass settles nothing.
	for pass := 0; pass < len(matches); pass++ {
		progress := false
		for i := range matches {
			m := &matches[i]
			if _, ok := depths[m.ID]; ok {
				continue
			}
			d, ok := downstreamDepth(m, depths)
			if ok {
				depths[m.ID] = d + 1
				warnings = append(warnings, malformedGraph("match %d is unreachable from the layout root, placed by its downstream target", m.ID))
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	for i := range matches {
		m := &matches[i]
		if _, ok := depths[m.ID]; ok {
			continue
		}
		depths[m.ID] = 0
		warnings = append(warnings, malformedGraph("match %d is not connected to the layout root", m.ID))
	}
	return warnings
}

func downstreamDepth(m *models.Match, depths map[int]int) (int, bool) {
	best, found := 0, false
	for _, e := range []*models.Edge{m.WinnerEdge, m.LoserEdge} {
		if e == nil {
			continue
		}
		if d, ok := depths[e.ToMatchID]; ok && (!found || d > best) {
			best, found = d, true
		}
	}
	return best, found
}
