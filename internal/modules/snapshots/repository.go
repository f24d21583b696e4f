// Package snapshots persists the results of evaluation runs so past
// verdicts can be listed and inspected. It stores engine output only;
// user holdings are never written here.
package snapshots

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/moreshwar/stocky/internal/modules/evaluation"
	"github.com/moreshwar/stocky/internal/modules/portfolio"
)

// Snapshot is one stored evaluation run.
type Snapshot struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Reports   []evaluation.AssetReport `json:"reports,omitempty"`
	Analytics *portfolio.Analytics     `json:"analytics,omitempty"`
}

// payload is the msgpack-encoded body of a snapshot row.
type payload struct {
	Reports   []evaluation.AssetReport `msgpack:"reports"`
	Analytics *portfolio.Analytics     `msgpack:"analytics"`
}

// Repository handles snapshot database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository and ensures the schema
func NewRepository(db *sql.DB, log zerolog.Logger) (*Repository, error) {
	r := &Repository{
		db:  db,
		log: log.With().Str("repo", "snapshots").Logger(),
	}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			asset_count INTEGER NOT NULL,
			health_score INTEGER,
			body BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Save stores one evaluation run and returns its generated ID.
func (r *Repository) Save(reports []evaluation.AssetReport, analytics *portfolio.Analytics) (string, error) {
	body, err := msgpack.Marshal(payload{Reports: reports, Analytics: analytics})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	id := uuid.NewString()
	healthScore := 0
	if analytics != nil {
		healthScore = analytics.HealthScore
	}

	_, err = r.db.Exec(
		`INSERT INTO snapshots (id, created_at, asset_count, health_score, body) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().Unix(), len(reports), healthScore, body,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	r.log.Info().Str("id", id).Int("assets", len(reports)).Msg("Saved evaluation snapshot")
	return id, nil
}

// Get returns one snapshot with its full body, or nil when not found.
func (r *Repository) Get(id string) (*Snapshot, error) {
	var (
		createdAt int64
		body      []byte
	)
	err := r.db.QueryRow(`SELECT created_at, body FROM snapshots WHERE id = ?`, id).
		Scan(&createdAt, &body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var p payload
	if err := msgpack.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}

	return &Snapshot{
		ID:        id,
		CreatedAt: time.Unix(createdAt, 0),
		Reports:   p.Reports,
		Analytics: p.Analytics,
	}, nil
}

// SnapshotSummary is one row of the listing: metadata without the body.
type SnapshotSummary struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	AssetCount  int       `json:"asset_count"`
	HealthScore int       `json:"health_score"`
}

// List returns the most recent snapshots, newest first.
func (r *Repository) List(limit int) ([]SnapshotSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(
		`SELECT id, created_at, asset_count, health_score FROM snapshots ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var summaries []SnapshotSummary
	for rows.Next() {
		var s SnapshotSummary
		var createdAt int64
		if err := rows.Scan(&s.ID, &createdAt, &s.AssetCount, &s.HealthScore); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		s.CreatedAt = time.Unix(createdAt, 0)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Latest returns the most recent snapshot with its full body, or nil when
// the store is empty.
func (r *Repository) Latest() (*Snapshot, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM snapshots ORDER BY created_at DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}
	return r.Get(id)
}
