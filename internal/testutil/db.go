// Package testutil provides test utilities for database setup.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/history"
	"github.com/edesto/edesto/internal/infrastructure/sqlite"
)

// NewTestDB creates a history database in a temp directory.
// The database is closed automatically when the test ends.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewTestRepo creates a generation repository backed by a temp database.
func NewTestRepo(t *testing.T) history.Repository {
	t.Helper()
	return sqlite.NewGenerationRepository(NewTestDB(t))
}
