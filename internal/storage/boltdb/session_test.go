package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "session.db")
	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func TestSessionStorage_Defaults(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// A never-written slot reads as logged out, nothing remembered
	state, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, state.LoggedIn())
	assert.Empty(t, state.ActiveUsername)
	assert.Empty(t, state.RememberedUsername)
}

func TestSessionStorage_SetActive(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SetActive(ctx, "alice"))

	state, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, state.LoggedIn())
	assert.Equal(t, "alice", state.ActiveUsername)
	assert.Equal(t, "alice", state.RememberedUsername)
}

func TestSessionStorage_ClearActive_KeepsRemembered(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SetActive(ctx, "alice"))
	require.NoError(t, s.ClearActive(ctx))

	state, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, state.LoggedIn())
	assert.Empty(t, state.ActiveUsername)
	assert.Equal(t, "alice", state.RememberedUsername)
}

func TestSessionStorage_ClearActive_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Clearing a never-written slot is a no-op success
	require.NoError(t, s.ClearActive(ctx))
	require.NoError(t, s.ClearActive(ctx))

	state, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, state.LoggedIn())
}

func TestSessionStorage_SwitchOverwrites(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SetActive(ctx, "alice"))
	require.NoError(t, s.SetActive(ctx, "bob"))

	state, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", state.ActiveUsername)
	assert.Equal(t, "bob", state.RememberedUsername)
}

func TestSessionStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SetActive(ctx, "alice"))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	state, err := reopened.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", state.ActiveUsername)
}
