package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id     TEXT PRIMARY KEY,
	idx    INTEGER NOT NULL,
	seed   INTEGER NOT NULL,
	type   TEXT NOT NULL,
	source TEXT NOT NULL,
	steps  INTEGER NOT NULL,
	record TEXT NOT NULL
)`

// SQLiteStore keeps records in a SQLite database, one row per distinct
// term. Writing a term that is already stored is counted as a duplicate
// and otherwise ignored.
type SQLiteStore struct {
	db         *sql.DB
	duplicates int
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema in %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Write(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("record %d: %w", rec.Index, err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO records (id, idx, seed, type, source, steps, record) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Index, rec.Seed, rec.Type.String(), rec.Source, rec.Steps, string(data))
	if err != nil {
		return fmt.Errorf("record %d: %w", rec.Index, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		s.duplicates++
	}
	return nil
}

// Duplicates is the number of writes ignored because the term was
// already stored.
func (s *SQLiteStore) Duplicates() int {
	return s.duplicates
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Get returns the record with the given ID.
func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM records WHERE id = ?`, id.String()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return Record{}, fmt.Errorf("%s: %w", id, err)
	}
	return rec, nil
}

// CountByType returns the number of stored records per printed type.
func (s *SQLiteStore) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM records GROUP BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var ty string
		var n int
		if err := rows.Scan(&ty, &n); err != nil {
			return nil, err
		}
		counts[ty] = n
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
