package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velarium/scriptorium/internal/domain"
)

// schemaSQL initializes the snapshot table. The id check pins the table to
// a single row; the engine tracks one player.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS player_snapshot (
    id SMALLINT PRIMARY KEY CHECK (id = 1),
    state JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore persists the snapshot as a single JSONB row
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore and ensures the schema exists
func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load reads the snapshot row
func (s *PostgresStore) Load(ctx context.Context) (*domain.PlayerState, error) {
	query := `SELECT state FROM player_snapshot WHERE id = 1`

	var data []byte
	err := s.db.QueryRow(ctx, query).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state domain.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

// Save upserts the snapshot row
func (s *PostgresStore) Save(ctx context.Context, state *domain.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO player_snapshot (id, state, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() {
	s.db.Close()
}
