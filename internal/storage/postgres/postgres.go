// Package postgres implements storage.Store on PostgreSQL.
//
// Each aggregate lives in its own table as a single JSONB document per
// group, and every write is a whole-document upsert. This keeps the
// last-writer-wins record semantics explicit instead of hiding them behind
// row-level updates.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
	"github.com/cx-tal-miterani/group-checkin/internal/storage"
)

var _ storage.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS groups (
    id         TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_rosters (
    group_id   TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_seat_maps (
    group_id   TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_selections (
    group_id   TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_boarding_passes (
    group_id   TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Store is a PostgreSQL-backed storage.Store.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewWithPool wraps an existing pool without running migrations.
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) ListGroups(ctx context.Context) ([]models.Group, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT doc FROM groups ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		var g models.Group
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("failed to decode group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *Store) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	var g models.Group
	if err := s.getDoc(ctx, `SELECT doc FROM groups WHERE id = $1`, id, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) PutGroup(ctx context.Context, group *models.Group) error {
	raw, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to encode group: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO groups (id, doc, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, group.ID, raw, group.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to put group: %w", err)
	}
	return nil
}

// DeleteGroup removes the group row and all of its per-group records in one
// transaction.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	for _, table := range []string{"group_rosters", "group_seat_maps", "group_selections", "group_boarding_passes"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE group_id = $1`, table), id); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) GetRoster(ctx context.Context, groupID string) (*models.Roster, error) {
	var r models.Roster
	if err := s.getDoc(ctx, `SELECT doc FROM group_rosters WHERE group_id = $1`, groupID, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) PutRoster(ctx context.Context, roster *models.Roster) error {
	return s.putDoc(ctx, "group_rosters", roster.GroupID, roster)
}

func (s *Store) GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error) {
	var m models.SeatMap
	if err := s.getDoc(ctx, `SELECT doc FROM group_seat_maps WHERE group_id = $1`, groupID, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) PutSeatMap(ctx context.Context, seatMap *models.SeatMap) error {
	return s.putDoc(ctx, "group_seat_maps", seatMap.GroupID, seatMap)
}

func (s *Store) GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error) {
	var sel models.ServiceSelections
	if err := s.getDoc(ctx, `SELECT doc FROM group_selections WHERE group_id = $1`, groupID, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (s *Store) PutSelections(ctx context.Context, selections *models.ServiceSelections) error {
	return s.putDoc(ctx, "group_selections", selections.GroupID, selections)
}

func (s *Store) GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	var p models.BoardingPassSet
	if err := s.getDoc(ctx, `SELECT doc FROM group_boarding_passes WHERE group_id = $1`, groupID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) PutBoardingPasses(ctx context.Context, passes *models.BoardingPassSet) error {
	return s.putDoc(ctx, "group_boarding_passes", passes.GroupID, passes)
}

func (s *Store) getDoc(ctx context.Context, query, key string, out any) error {
	var raw []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to get record: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

func (s *Store) putDoc(ctx context.Context, table, groupID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	_, err = s.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (group_id, doc)
		VALUES ($1, $2)
		ON CONFLICT (group_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, table), groupID, raw)
	if err != nil {
		return fmt.Errorf("failed to put record: %w", err)
	}
	return nil
}
