package services

import (
	"log/slog"

	"github.com/brian91-1031/Kendo-Play-Recorder/brackets"
	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

func isValidStatusTransition(current, next models.TournamentStatus) bool {
	if current == next {
		return true
	}
	allowedTransitions := map[models.TournamentStatus][]models.TournamentStatus{
		models.StatusSetup:     {models.StatusActive},
		models.StatusActive:    {models.StatusCompleted},
		models.StatusCompleted: {},
	}
	for _, allowed := range allowedTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

func isKnownStatus(status models.TournamentStatus) bool {
	switch status {
	case models.StatusSetup, models.StatusActive, models.StatusCompleted:
		return true
	}
	return false
}

// logWarnings surfaces the engine's malformed-graph findings without
// failing the operation.
func logWarnings(logger *slog.Logger, tournamentID string, warnings []brackets.Warning) {
	for _, w := range warnings {
		logger.Warn("bracket graph degraded",
			slog.String("tournament_id", tournamentID),
			slog.String("kind", w.Kind),
			slog.String("detail", w.Message),
		)
	}
}

func roomID(tournamentID string) string {
	return "tournament_" + tournamentID
}
