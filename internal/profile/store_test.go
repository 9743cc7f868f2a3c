package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/domain"
)

// storeUnderTest builds each backend against a temp location.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "profiles"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "pathwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStore_LoadMissingReturnsEmptyProfile(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			p, err := store.Load(context.Background(), "never-seen")
			require.NoError(t, err)

			assert.Equal(t, "never-seen", p.UserID)
			assert.Empty(t, p.Skills)
			assert.Zero(t, p.TotalModulesCompleted)
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			p, err := domain.NewUserProfile("alice")
			require.NoError(t, err)
			require.NoError(t, p.RecordCompletion("Python", "Foundations of Python", 85))
			require.NoError(t, p.RecordCompletion("Python", "Core Concepts in Python", 95))
			require.NoError(t, p.RecordCompletion("Go", "Foundations of Go", 70))

			require.NoError(t, store.Save(ctx, p))

			got, err := store.Load(ctx, "alice")
			require.NoError(t, err)

			assert.Equal(t, p.UserID, got.UserID)
			assert.Equal(t, p.TotalModulesCompleted, got.TotalModulesCompleted)
			assert.InDelta(t, p.OverallAvgScore, got.OverallAvgScore, 1e-9)
			require.Contains(t, got.Skills, "Python")
			assert.InDelta(t, 90, got.Skills["Python"].AvgScore, 1e-9)
			assert.Len(t, got.Skills["Python"].Modules, 2)
			assert.Equal(t, "Foundations of Python", got.Skills["Python"].Modules[0].Title)
			// Timestamps survive modulo serialization precision.
			assert.WithinDuration(t, p.LastUpdated, got.LastUpdated, time.Second)
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			p, _ := domain.NewUserProfile("bob")
			require.NoError(t, p.RecordCompletion("Go", "Foundations of Go", 60))
			require.NoError(t, store.Save(ctx, p))

			require.NoError(t, p.RecordCompletion("Go", "Core Concepts in Go", 80))
			require.NoError(t, store.Save(ctx, p))

			got, err := store.Load(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, 2, got.TotalModulesCompleted)
			assert.Len(t, got.Skills["Go"].Modules, 2)
		})
	}
}

func TestFileStore_CorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mallory.json"), []byte("{nope"), 0o644))

	_, err = store.Load(context.Background(), "mallory")
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "load", serr.Op)
}

func TestFileStore_UnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	p, _ := domain.NewUserProfile("carol")
	err = store.Save(context.Background(), p)

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "save", serr.Op)
}

func TestSafeKey(t *testing.T) {
	tests := []struct {
		name   string
		userID string
	}{
		{"plain", "alice"},
		{"mixed case", "Alice"},
		{"path traversal", "../../etc/passwd"},
		{"separators", "a/b\\c"},
		{"spaces and unicode", "päl sömmer"},
		{"empty after strip", "!!!"},
	}

	seen := make(map[string]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := safeKey(tt.userID)

			assert.NotEmpty(t, key)
			assert.NotContains(t, key, "/")
			assert.NotContains(t, key, "\\")
			assert.NotContains(t, key, "..")

			if prior, dup := seen[key]; dup {
				t.Errorf("key collision between %q and %q", prior, tt.userID)
			}
			seen[key] = tt.userID

			// Stable across calls.
			assert.Equal(t, key, safeKey(tt.userID))
		})
	}

	// Distinct unsafe ids that strip to the same base must not collide.
	assert.NotEqual(t, safeKey("a/b"), safeKey("a\\b"))

	// Case folding is lossy, so case-distinct ids get distinct keys.
	assert.NotEqual(t, safeKey("alice"), safeKey("Alice"))
}

func TestFileStore_CaseDistinctUsers(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	p, err := domain.NewUserProfile("Alice")
	require.NoError(t, err)
	require.NoError(t, p.RecordCompletion("Python", "Foundations of Python", 90))
	require.NoError(t, store.Save(ctx, p))

	// The lowercase user is someone else and must stay empty.
	lower, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, lower.Skills)

	upper, err := store.Load(ctx, "Alice")
	require.NoError(t, err)
	assert.Contains(t, upper.Skills, "Python")
}
