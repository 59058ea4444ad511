// Package store persists named unit designs in a local SQLite
// library so a configuration can be picked up again later.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"plank/core"
)

// ErrNotFound is returned when no design matches the requested name.
var ErrNotFound = errors.New("design not found")

// Design is one saved configuration, without its parameters.
type Design struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store wraps the SQLite database holding the design library.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the design library at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY under interactive use.
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS designs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		params TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Save stores the unit under the given name, overwriting any design
// saved with the same name before.
func (s *Store) Save(name string, u *core.Unit) error {
	if name == "" {
		return fmt.Errorf("design name must not be empty")
	}
	if err := u.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid unit: %w", err)
	}

	params, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal unit: %w", err)
	}

	now := time.Now()
	_, err = s.conn.Exec(
		`INSERT INTO designs (id, name, params, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET params = excluded.params, updated_at = excluded.updated_at`,
		uuid.NewString(), name, string(params), now, now,
	)
	if err != nil {
		return fmt.Errorf("save design %q: %w", name, err)
	}
	return nil
}

// Load retrieves the design saved under the given name.
func (s *Store) Load(name string) (*core.Unit, error) {
	var params string
	err := s.conn.QueryRow(`SELECT params FROM designs WHERE name = ?`, name).Scan(&params)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load design %q: %w", name, err)
	}

	var u core.Unit
	if err := json.Unmarshal([]byte(params), &u); err != nil {
		return nil, fmt.Errorf("parse design %q: %w", name, err)
	}
	return &u, nil
}

// List returns all saved designs, most recently updated first.
func (s *Store) List() ([]Design, error) {
	rows, err := s.conn.Query(`SELECT id, name, created_at, updated_at FROM designs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

// Delete removes the design saved under the given name.
func (s *Store) Delete(name string) error {
	res, err := s.conn.Exec(`DELETE FROM designs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete design %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
