package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brian91-1031/Kendo-Play-Recorder/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentRepository is a keyed snapshot store. A tournament is always
// written and read as one serialized blob; the engine never issues
// partial updates, the last write of a snapshot wins.
//
// Backing table:
//
//	CREATE TABLE tournaments (
//	    id           TEXT PRIMARY KEY,
//	    payload      JSONB NOT NULL,
//	    last_updated TIMESTAMPTZ NOT NULL
//	);
type TournamentRepository interface {
	LoadAll(ctx context.Context) ([]models.Tournament, error)
	Get(ctx context.Context, id string) (*models.Tournament, error)
	Save(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id string) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const upsertQuery = `
	INSERT INTO tournaments (id, payload, last_updated)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, last_updated = EXCLUDED.last_updated`

func (r *postgresTournamentRepository) LoadAll(ctx context.Context) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload, last_updated FROM tournaments ORDER BY last_updated DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []models.Tournament
	for rows.Next() {
		var payload []byte
		var lastUpdated time.Time
		if err := rows.Scan(&payload, &lastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", err)
		}
		var t models.Tournament
		if err := json.Unmarshal(payload, &t); err != nil {
			return nil, fmt.Errorf("failed to decode tournament payload: %w", err)
		}
		t.LastUpdated = lastUpdated
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tournament rows: %w", err)
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Get(ctx context.Context, id string) (*models.Tournament, error) {
	var payload []byte
	var lastUpdated time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, last_updated FROM tournaments WHERE id = $1`, id,
	).Scan(&payload, &lastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", id, err)
	}

	t := &models.Tournament{}
	if err := json.Unmarshal(payload, t); err != nil {
		return nil, fmt.Errorf("failed to decode tournament payload: %w", err)
	}
	t.LastUpdated = lastUpdated
	return t, nil
}

func (r *postgresTournamentRepository) Save(ctx context.Context, tournament *models.Tournament) error {
	tournament.LastUpdated = time.Now().UTC()
	payload, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to encode tournament %s: %w", tournament.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, upsertQuery, tournament.ID, payload, tournament.LastUpdated); err != nil {
		return fmt.Errorf("failed to save tournament %s: %w", tournament.ID, err)
	}
	return nil
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
