package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/accountbox/internal/models"
	"github.com/iudanet/accountbox/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func testAccount(username string) *models.Account {
	return &models.Account{
		ID:        uuid.New().String(),
		Username:  username,
		Nickname:  username,
		Password:  "secret",
		CreatedAt: time.Now(),
	}
}

func TestAccountStorage_CreateAccount(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	account := &models.Account{
		ID:        uuid.New().String(),
		Username:  "alice",
		Nickname:  "Alice",
		Password:  "pw1",
		AvatarRef: "resource://avatars/3",
		CreatedAt: time.Now(),
	}

	err := s.CreateAccount(ctx, account)
	require.NoError(t, err)

	retrieved, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.ID, retrieved.ID)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, "Alice", retrieved.Nickname)
	assert.Equal(t, "pw1", retrieved.Password)
	assert.Equal(t, "resource://avatars/3", retrieved.AvatarRef)
	assert.Nil(t, retrieved.LastLoginAt)
}

func TestAccountStorage_CreateAccount_Duplicate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := &models.Account{
		ID:        uuid.New().String(),
		Username:  "duplicate",
		Nickname:  "First",
		Password:  "pw1",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateAccount(ctx, first))

	second := &models.Account{
		ID:        uuid.New().String(),
		Username:  "duplicate", // same username
		Nickname:  "Second",
		Password:  "pw2",
		CreatedAt: time.Now(),
	}
	err := s.CreateAccount(ctx, second)
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	// The first record must be unmodified
	retrieved, err := s.GetAccount(ctx, "duplicate")
	require.NoError(t, err)
	assert.Equal(t, first.ID, retrieved.ID)
	assert.Equal(t, "First", retrieved.Nickname)
	assert.Equal(t, "pw1", retrieved.Password)
}

func TestAccountStorage_GetAccount_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetAccount(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestAccountStorage_ListAccounts_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	usernames := []string{"charlie", "alice", "bob"}
	for _, username := range usernames {
		require.NoError(t, s.CreateAccount(ctx, testAccount(username)))
	}

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	// Storage order, not lexicographic
	for i, username := range usernames {
		assert.Equal(t, username, accounts[i].Username)
	}
}

func TestAccountStorage_ListAccounts_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountStorage_UpdateFields(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))

	tests := []struct {
		name   string
		update func() error
		check  func(t *testing.T, account *models.Account)
	}{
		{
			name:   "nickname",
			update: func() error { return s.UpdateNickname(ctx, "alice", "Alice in Wonderland") },
			check: func(t *testing.T, account *models.Account) {
				assert.Equal(t, "Alice in Wonderland", account.Nickname)
			},
		},
		{
			name:   "password",
			update: func() error { return s.UpdatePassword(ctx, "alice", "newsecret") },
			check: func(t *testing.T, account *models.Account) {
				assert.Equal(t, "newsecret", account.Password)
			},
		},
		{
			name:   "avatar ref",
			update: func() error { return s.UpdateAvatarRef(ctx, "alice", "https://example.com/a.png") },
			check: func(t *testing.T, account *models.Account) {
				assert.Equal(t, "https://example.com/a.png", account.AvatarRef)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.update())

			account, err := s.GetAccount(ctx, "alice")
			require.NoError(t, err)
			tt.check(t, account)

			// Username never changes
			assert.Equal(t, "alice", account.Username)
		})
	}
}

func TestAccountStorage_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.ErrorIs(t, s.UpdateNickname(ctx, "ghost", "Ghost"), storage.ErrAccountNotFound)
	assert.ErrorIs(t, s.UpdatePassword(ctx, "ghost", "pw"), storage.ErrAccountNotFound)
	assert.ErrorIs(t, s.UpdateAvatarRef(ctx, "ghost", "ref"), storage.ErrAccountNotFound)
	assert.ErrorIs(t, s.TouchLastLogin(ctx, "ghost", time.Now()), storage.ErrAccountNotFound)
}

func TestAccountStorage_TouchLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateAccount(ctx, testAccount("alice")))

	at := time.Now().Truncate(time.Second)
	require.NoError(t, s.TouchLastLogin(ctx, "alice", at))

	account, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, account.LastLoginAt)
	assert.WithinDuration(t, at, *account.LastLoginAt, time.Second)
}
