// Package storage persists room state and finished-game history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ladders/internal/game"
)

const timeLayout = "2006-01-02 15:04:05"

// Store keeps one JSON document per room plus a results table.
type Store struct {
	db *sql.DB
}

// ResultEntry is one row of the results history.
type ResultEntry struct {
	ID int64
	game.Result
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SQLite serializes anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rooms (
			room_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rooms_status ON rooms(status);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_id TEXT NOT NULL UNIQUE,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			winner INTEGER NOT NULL,
			winner_seat TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored state of a room, or nil if the room does not exist.
func (s *Store) Load(ctx context.Context, roomID string) (*game.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT state FROM rooms WHERE room_id = ?",
		roomID,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load room %s: %w", roomID, err)
	}

	var st game.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("storage: corrupt state for room %s: %w", roomID, err)
	}
	return &st, nil
}

// Save replaces the whole stored state of a room. Last write wins.
func (s *Store) Save(ctx context.Context, st *game.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode room %s: %w", st.RoomID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO rooms (room_id, status, state, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		st.RoomID, string(st.Status), string(raw),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save room %s: %w", st.RoomID, err)
	}
	return nil
}

// List returns stored rooms, most recently updated first.
// An empty status returns rooms in any status.
func (s *Store) List(ctx context.Context, status game.Status) ([]*game.State, error) {
	query := "SELECT state FROM rooms ORDER BY updated_at DESC, room_id"
	args := []any{}
	if status != "" {
		query = "SELECT state FROM rooms WHERE status = ? ORDER BY updated_at DESC, room_id"
		args = append(args, string(status))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rooms: %w", err)
	}
	defer rows.Close()

	var states []*game.State
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		var st game.State
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return nil, fmt.Errorf("storage: corrupt room state: %w", err)
		}
		states = append(states, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return states, nil
}

// SaveResult records the outcome of a finished room.
// A room is recorded once; repeated saves are ignored.
func (s *Store) SaveResult(ctx context.Context, r game.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results
		 (room_id, player1, player2, winner, winner_seat, moves)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RoomID, r.Player1, r.Player2, r.Winner, r.WinnerSeat, r.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save result: %w", err)
	}
	return nil
}

// RecentResults retrieves the most recent finished games.
func (s *Store) RecentResults(ctx context.Context, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, room_id, player1, player2, winner, winner_seat, moves, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RoomID,
			&e.Player1,
			&e.Player2,
			&e.Winner,
			&e.WinnerSeat,
			&e.Moves,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
