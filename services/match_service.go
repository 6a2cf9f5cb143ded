package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brian91-1031/Kendo-Play-Recorder/brackets"
	"github.com/brian91-1031/Kendo-Play-Recorder/models"
	"github.com/brian91-1031/Kendo-Play-Recorder/repositories"
)

// DefaultRankingLimit covers the deepest implicit joint place the
// ranking derivation produces on its own.
const DefaultRankingLimit = 16

type MatchService interface {
	SubmitScore(ctx context.Context, tournamentID string, matchID int, redScore, whiteScore uint, details string) (*models.Tournament, error)
	Walkover(ctx context.Context, tournamentID string, matchID int) (*models.Tournament, error)
	Rankings(ctx context.Context, tournamentID string, limit int) ([]brackets.Ranking, error)
	Rounds(ctx context.Context, tournamentID string, rootMatchID int) ([][]models.Match, error)
	MatchStates(ctx context.Context, tournamentID string) (map[int]models.MatchState, error)
}

type matchService struct {
	tournamentRepo repositories.TournamentRepository
	hub            *brackets.Hub
	logger         *slog.Logger
}

func NewMatchService(
	tournamentRepo repositories.TournamentRepository,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		tournamentRepo: tournamentRepo,
		hub:            hub,
		logger:         logger,
	}
}

// SubmitScore applies a result, routes winner and loser downstream, and
// persists the whole snapshot. The entire update is one load-mutate-save
// of the aggregate; the store's last write wins.
func (s *matchService) SubmitScore(ctx context.Context, tournamentID string, matchID int, redScore, whiteScore uint, details string) (*models.Tournament, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	warnings, err := brackets.SubmitScore(tournament, matchID, redScore, whiteScore, details)
	if err != nil {
		return nil, err
	}
	logWarnings(s.logger, tournamentID, warnings)

	return s.finishUpdate(ctx, tournament, matchID)
}

// Walkover advances the sole present player of a bye match.
func (s *matchService) Walkover(ctx context.Context, tournamentID string, matchID int) (*models.Tournament, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	warnings, err := brackets.Walkover(tournament, matchID)
	if err != nil {
		return nil, err
	}
	logWarnings(s.logger, tournamentID, warnings)

	return s.finishUpdate(ctx, tournament, matchID)
}

func (s *matchService) finishUpdate(ctx context.Context, tournament *models.Tournament, matchID int) (*models.Tournament, error) {
	if tournament.Status == models.StatusActive && tournament.AllMatchesFinished() {
		tournament.Status = models.StatusCompleted
		s.logger.Info("tournament completed", slog.String("tournament_id", tournament.ID))
	}

	if err := s.tournamentRepo.Save(ctx, tournament); err != nil {
		return nil, err
	}

	room := roomID(tournament.ID)
	s.hub.BroadcastToRoom(room, brackets.EventMatchResult, tournament.MatchByID(matchID))
	s.hub.BroadcastToRoom(room, brackets.EventRankingsUpdated, brackets.Rankings(tournament, DefaultRankingLimit))
	return tournament, nil
}

func (s *matchService) Rankings(ctx context.Context, tournamentID string, limit int) ([]brackets.Ranking, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	rankings := brackets.Rankings(tournament, limit)
	if rankings == nil {
		rankings = []brackets.Ranking{}
	}
	return rankings, nil
}

func (s *matchService) Rounds(ctx context.Context, tournamentID string, rootMatchID int) ([][]models.Match, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if rootMatchID == 0 {
		// Recorders conventionally give the final the last id.
		rootMatchID = tournament.TotalMatches
	}
	rounds, warnings := brackets.Layout(tournament.Matches, rootMatchID)
	logWarnings(s.logger, tournamentID, warnings)
	return rounds, nil
}

func (s *matchService) MatchStates(ctx context.Context, tournamentID string) (map[int]models.MatchState, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	states := make(map[int]models.MatchState, len(tournament.Matches))
	for i := range tournament.Matches {
		id := tournament.Matches[i].ID
		state, err := brackets.StateOf(tournament.Matches, id)
		if err != nil {
			return nil, err
		}
		states[id] = state
	}
	return states, nil
}

func (s *matchService) loadTournament(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
		}
		return nil, err
	}
	return tournament, nil
}
