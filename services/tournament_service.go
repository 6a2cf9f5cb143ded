package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brian91-1031/Kendo-Play-Recorder/brackets"
	"github.com/brian91-1031/Kendo-Play-Recorder/extraction"
	"github.com/brian91-1031/Kendo-Play-Recorder/models"
	"github.com/brian91-1031/Kendo-Play-Recorder/repositories"
	"github.com/brian91-1031/Kendo-Play-Recorder/storage"
)

// CommandOp tags one setup mutation. Slot edits are legal while the
// tournament is in setup and, for slots no edge feeds, during active
// play; edge edits are setup-only.
type CommandOp string

const (
	OpSetTitle       CommandOp = "set_title"
	OpSetRedPlayer   CommandOp = "set_red_player"
	OpSetWhitePlayer CommandOp = "set_white_player"
	OpClearSlot      CommandOp = "clear_slot"
	OpSetWinnerEdge  CommandOp = "set_winner_edge"
	OpSetLoserEdge   CommandOp = "set_loser_edge"
	OpClearEdges     CommandOp = "clear_edges"
)

// Command is one tagged mutation against a tournament under setup.
type Command struct {
	Op       CommandOp        `json:"op"`
	MatchID  int              `json:"match_id,omitempty"`
	PlayerID string           `json:"player_id,omitempty"`
	Slot     models.SlotColor `json:"slot,omitempty"`
	Edge     *models.Edge     `json:"edge,omitempty"`
	Title    string           `json:"title,omitempty"`
}

type TournamentService interface {
	CreateFromSheet(ctx context.Context, contentType string, sheet io.Reader) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	Get(ctx context.Context, id string) (*models.Tournament, error)
	Delete(ctx context.Context, id string) error
	ApplyCommands(ctx context.Context, id string, commands []Command) (*models.Tournament, error)
	UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) (*models.Tournament, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	extractor      extraction.Extractor
	uploader       storage.FileUploader
	hub            *brackets.Hub
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	extractor extraction.Extractor,
	uploader storage.FileUploader,
	hub *brackets.Hub,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		extractor:      extractor,
		uploader:       uploader,
		hub:            hub,
		logger:         logger,
	}
}

// CreateFromSheet uploads the photographed sheet and runs it through the
// extraction service at the same time, then builds the empty match set
// 1..totalMatches for the recorder to wire up during setup.
func (s *tournamentService) CreateFromSheet(ctx context.Context, contentType string, sheet io.Reader) (*models.Tournament, error) {
	if sheet == nil {
		return nil, ErrSheetRequired
	}
	image, err := io.ReadAll(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet image: %w", err)
	}
	if len(image) == 0 {
		return nil, ErrSheetRequired
	}

	tournamentID := uuid.NewString()
	sheetKey := fmt.Sprintf("tournaments/%s/sheet", tournamentID)

	var (
		data     *extraction.SheetData
		uploaded *storage.UploadResult
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.extractor.Extract(gCtx, contentType, bytes.NewReader(image))
		return err
	})
	g.Go(func() error {
		var err error
		uploaded, err = s.uploader.Upload(gCtx, sheetKey, contentType, bytes.NewReader(image))
		if err != nil {
			return fmt.Errorf("failed to store sheet image: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(data.Players))
	for _, name := range data.Players {
		players = append(players, models.Player{ID: uuid.NewString(), Name: name})
	}
	matches := make([]models.Match, data.TotalMatches)
	for i := range matches {
		matches[i].ID = i + 1
	}

	title := data.Title
	if title == "" {
		title = "Untitled tournament"
	}
	sheetURL := uploaded.Location
	tournament := &models.Tournament{
		ID:           tournamentID,
		Title:        title,
		Players:      players,
		Matches:      matches,
		TotalMatches: data.TotalMatches,
		Status:       models.StatusSetup,
		SheetKey:     &uploaded.Key,
		SheetURL:     &sheetURL,
	}

	if err := s.tournamentRepo.Save(ctx, tournament); err != nil {
		return nil, err
	}
	s.logger.Info("tournament created from sheet",
		slog.String("tournament_id", tournamentID),
		slog.Int("total_matches", data.TotalMatches),
		slog.Int("players", len(players)),
	)
	s.hub.BroadcastToRoom(roomID(tournamentID), brackets.EventTournamentCreated, tournament)
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if tournaments == nil {
		tournaments = []models.Tournament{}
	}
	return tournaments, nil
}

func (s *tournamentService) Get(ctx context.Context, id string) (*models.Tournament, error) {
	return s.loadTournament(ctx, id)
}

func (s *tournamentService) Delete(ctx context.Context, id string) error {
	tournament, err := s.loadTournament(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if tournament.SheetKey != nil {
		if err := s.uploader.Delete(ctx, *tournament.SheetKey); err != nil {
			// The snapshot is gone; a stray object is only worth a log line.
			s.logger.Warn("failed to delete sheet image",
				slog.String("tournament_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// ApplyCommands dispatches setup mutations through one entry point so
// every path shares the same feed/status checks, then revalidates the
// graph and saves the whole snapshot.
func (s *tournamentService) ApplyCommands(ctx context.Context, id string, commands []Command) (*models.Tournament, error) {
	tournament, err := s.loadTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, cmd := range commands {
		if err := s.applyCommand(tournament, cmd); err != nil {
			return nil, err
		}
	}

	logWarnings(s.logger, id, brackets.Validate(tournament.Matches))

	if err := s.tournamentRepo.Save(ctx, tournament); err != nil {
		return nil, err
	}
	s.hub.BroadcastToRoom(roomID(id), brackets.EventTournamentUpdated, tournament)
	return tournament, nil
}

func (s *tournamentService) applyCommand(t *models.Tournament, cmd Command) error {
	switch cmd.Op {
	case OpSetTitle:
		if cmd.Title == "" {
			return ErrTitleRequired
		}
		t.Title = cmd.Title
		return nil

	case OpSetRedPlayer, OpSetWhitePlayer, OpClearSlot:
		slot := models.SlotRed
		if cmd.Op == OpSetWhitePlayer || (cmd.Op == OpClearSlot && cmd.Slot == models.SlotWhite) {
			slot = models.SlotWhite
		}
		return s.editSlot(t, cmd, slot)

	case OpSetWinnerEdge, OpSetLoserEdge, OpClearEdges:
		if t.Status != models.StatusSetup {
			return ErrEdgeEditOutsideSetup
		}
		match := t.MatchByID(cmd.MatchID)
		if match == nil {
			return fmt.Errorf("%w: %d", ErrMatchNotFound, cmd.MatchID)
		}
		switch cmd.Op {
		case OpSetWinnerEdge:
			match.WinnerEdge = cmd.Edge
		case OpSetLoserEdge:
			match.LoserEdge = cmd.Edge
		case OpClearEdges:
			match.WinnerEdge, match.LoserEdge = nil, nil
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}
}

func (s *tournamentService) editSlot(t *models.Tournament, cmd Command, slot models.SlotColor) error {
	match := t.MatchByID(cmd.MatchID)
	if match == nil {
		return fmt.Errorf("%w: %d", ErrMatchNotFound, cmd.MatchID)
	}
	// An externally fed slot belongs to the routing engine once the
	// bracket is live.
	if t.Status != models.StatusSetup && len(brackets.FeedersOf(t.Matches, cmd.MatchID, slot)) > 0 {
		return fmt.Errorf("%w: match %d %s", ErrSlotFed, cmd.MatchID, slot)
	}

	if cmd.Op == OpClearSlot {
		match.SetSlot(slot, "")
		return nil
	}
	if t.PlayerByID(cmd.PlayerID) == nil {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, cmd.PlayerID)
	}
	match.SetSlot(slot, cmd.PlayerID)
	return nil
}

func (s *tournamentService) UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) (*models.Tournament, error) {
	if !isKnownStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	tournament, err := s.loadTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidStatusTransition(tournament.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, tournament.Status, status)
	}
	if tournament.Status == status {
		return tournament, nil
	}

	tournament.Status = status
	if err := s.tournamentRepo.Save(ctx, tournament); err != nil {
		return nil, err
	}
	s.logger.Info("tournament status changed",
		slog.String("tournament_id", id), slog.String("status", string(status)))
	s.hub.BroadcastToRoom(roomID(id), brackets.EventTournamentUpdated, tournament)
	return tournament, nil
}

func (s *tournamentService) loadTournament(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
		}
		return nil, err
	}
	return tournament, nil
}
