// Graph checks are built on the graph module the same way the match
// dependency DAG of a bracket is usually modelled: matches are vertices,
// winner/loser edges are directed edges towards the fed match.
package brackets

import (
	"errors"

	"github.com/dominikbraun/graph"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

// Validate inspects the authored edge set for the conditions the engine
// only degrades gracefully on: edges pointing at ids that do not exist,
// edges that close a cycle, and the absence of any root match. All
// findings are warnings; an authored graph is never rejected outright.
func Validate(matches []models.Match) []Warning {
	var warnings []Warning

	g := graph.New(func(m models.Match) int { return m.ID }, graph.Directed(), graph.PreventCycles())
	for i := range matches {
		_ = g.AddVertex(matches[i])
	}

	ids := make(map[int]bool, len(matches))
	for i := range matches {
		ids[matches[i].ID] = true
	}

	addEdge := func(m *models.Match, e *models.Edge, kind FeederKind) {
		if e == nil {
			return
		}
		if !ids[e.ToMatchID] {
			warnings = append(warnings, malformedGraph("match %d %s edge targets unknown match %d", m.ID, kind, e.ToMatchID))
			return
		}
		if e.ToMatchID == m.ID {
			warnings = append(warnings, malformedGraph("match %d %s edge targets itself", m.ID, kind))
			return
		}
		err := g.AddEdge(m.ID, e.ToMatchID)
		switch {
		case errors.Is(err, graph.ErrEdgeCreatesCycle):
			warnings = append(warnings, malformedGraph("match %d %s edge to match %d creates a cycle", m.ID, kind, e.ToMatchID))
		case errors.Is(err, graph.ErrEdgeAlreadyExists):
			// Winner and loser edge of one match may share a target.
		}
	}

	hasRoot := false
	for i := range matches {
		m := &matches[i]
		addEdge(m, m.WinnerEdge, FeederWinner)
		addEdge(m, m.LoserEdge, FeederLoser)
		if m.WinnerEdge == nil {
			hasRoot = true
		}
	}
	if !hasRoot && len(matches) > 0 {
		warnings = append(warnings, malformedGraph("graph has no root match, every match has a winner edge"))
	}

	return warnings
}
