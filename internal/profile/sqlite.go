package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/pathwise/internal/domain"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore persists profiles in a single table, one JSON document
// per user id. The upsert makes a save atomic from a reader's
// perspective.
type SQLiteStore struct {
	db *sql.DB
}

const profileSchema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// OpenSQLiteStore opens (creating if needed) the database at path,
// applies the pragmas recommended for a single-user app, and ensures
// the schema exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Op: "save", Key: path, Err: fmt.Errorf("create data dir: %w", err)}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "load", Key: path, Err: fmt.Errorf("open database: %w", err)}
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, &StorageError{Op: "load", Key: path, Err: fmt.Errorf("%s: %w", p, err)}
		}
	}

	if _, err := db.Exec(profileSchema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "load", Key: path, Err: fmt.Errorf("create schema: %w", err)}
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM profiles WHERE user_id = ?", safeKey(userID),
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewUserProfile(userID)
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Key: userID, Err: err}
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, &StorageError{Op: "load", Key: userID, Err: fmt.Errorf("corrupt record: %w", err)}
	}
	if p.Skills == nil {
		p.Skills = make(map[string]*domain.SkillProgress)
	}
	return &p, nil
}

func (s *SQLiteStore) Save(ctx context.Context, p *domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		safeKey(p.UserID), string(data), time.Now().UTC(),
	)
	if err != nil {
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}
	return nil
}
