package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/pathwise/internal/domain"
)

// FileStore keeps one JSON document per user under a directory. Writes
// go through a temp file and rename, so a concurrent reader sees either
// the old or the new document, never a partial one.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "save", Key: dir, Err: fmt.Errorf("create profiles dir: %w", err)}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, safeKey(userID)+".json")
}

func (s *FileStore) Load(_ context.Context, userID string) (*domain.UserProfile, error) {
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return domain.NewUserProfile(userID)
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Key: userID, Err: err}
	}

	var p domain.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &StorageError{Op: "load", Key: userID, Err: fmt.Errorf("corrupt record: %w", err)}
	}
	if p.Skills == nil {
		p.Skills = make(map[string]*domain.SkillProgress)
	}
	return &p, nil
}

func (s *FileStore) Save(_ context.Context, p *domain.UserProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}

	target := s.path(p.UserID)
	tmp, err := os.CreateTemp(s.dir, safeKey(p.UserID)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}
	return nil
}
