// Package session owns the active-session pointer. The Manager is the
// only writer of the session slot; every operation that touches both the
// account table and the slot goes through it so callers observe the two
// stores as one consistent unit.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/accountbox/internal/models"
	"github.com/iudanet/accountbox/internal/storage"
	"github.com/iudanet/accountbox/internal/validation"
)

// ErrInvalidCredentials indicates a failed password check. It is
// returned for unknown usernames too, so callers cannot distinguish
// the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ActiveAccount is the read view of the currently active account
// handed to presentation callers.
type ActiveAccount struct {
	Username    string
	Nickname    string
	AvatarRef   string
	LastLoginAt time.Time
}

// EditResult reports which profile fields an EditProfile call applied.
// ReauthRequired is set when the password changed; acting on it
// (forcing a logout) is the caller's policy, not the manager's.
type EditResult struct {
	NicknameUpdated bool
	PasswordUpdated bool
	ReauthRequired  bool
}

// Manager coordinates the account store and the session slot.
type Manager struct {
	mu       sync.Mutex
	accounts storage.AccountStorage
	sessions storage.SessionStorage
}

// NewManager creates a session manager over the two stores.
func NewManager(accounts storage.AccountStorage, sessions storage.SessionStorage) *Manager {
	return &Manager{
		accounts: accounts,
		sessions: sessions,
	}
}

// Register creates a new account record. It does not activate a
// session; the caller logs in separately. An empty nickname defaults
// to the username.
func (m *Manager) Register(ctx context.Context, username, password, nickname string) (*models.Account, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if nickname == "" {
		nickname = username
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account := &models.Account{
		ID:        uuid.New().String(),
		Username:  username,
		Nickname:  nickname,
		Password:  password,
		CreatedAt: time.Now(),
	}

	if err := m.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate performs a password-verified login. On success it
// behaves exactly like Login for the same username.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*ActiveAccount, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, err := m.accounts.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	// Plaintext comparison preserves the stored-credential contract;
	// the password field is opaque to this layer.
	if account.Password != password {
		return nil, ErrInvalidCredentials
	}

	return m.activate(ctx, account)
}

// Login activates the session for a known username without a password
// check. Fails with storage.ErrAccountNotFound for unknown usernames.
func (m *Manager) Login(ctx context.Context, username string) (*ActiveAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, err := m.accounts.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	return m.activate(ctx, account)
}

// SwitchTo switches the active session to another stored account.
// It is Login under a name that matches the caller's intent; the two
// are deliberately one code path.
func (m *Manager) SwitchTo(ctx context.Context, username string) (*ActiveAccount, error) {
	return m.Login(ctx, username)
}

// activate touches the last-login timestamp, then flips the session
// pointer. The timestamp goes first: a crash between the two writes
// leaves the previous session intact and the slot consistent.
// Callers must hold m.mu.
func (m *Manager) activate(ctx context.Context, account *models.Account) (*ActiveAccount, error) {
	now := time.Now()

	if err := m.accounts.TouchLastLogin(ctx, account.Username, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	if err := m.sessions.SetActive(ctx, account.Username); err != nil {
		return nil, fmt.Errorf("failed to activate session: %w", err)
	}

	return &ActiveAccount{
		Username:    account.Username,
		Nickname:    account.Nickname,
		AvatarRef:   account.AvatarRef,
		LastLoginAt: now,
	}, nil
}

// Logout clears the active session. Logging out while already logged
// out is a no-op success. The account table is untouched.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.sessions.ClearActive(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Current returns the active account view, or nil when logged out.
// A non-empty override takes the place of the persisted pointer for
// this one lookup (the "requested initial username" hint).
//
// A session pointing at a username with no record is healed on read:
// the slot is cleared and the call reports logged out rather than
// surfacing the dangling reference.
func (m *Manager) Current(ctx context.Context, override string) (*ActiveAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username := override
	persisted := false

	if username == "" {
		state, err := m.sessions.GetSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read session: %w", err)
		}
		if !state.LoggedIn() {
			return nil, nil
		}
		username = state.ActiveUsername
		persisted = true
	}

	account, err := m.accounts.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			if persisted {
				slog.Warn("clearing dangling session", "username", username)
				if err := m.sessions.ClearActive(ctx); err != nil {
					return nil, fmt.Errorf("failed to clear dangling session: %w", err)
				}
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	view := &ActiveAccount{
		Username:  account.Username,
		Nickname:  account.Nickname,
		AvatarRef: account.AvatarRef,
	}
	if account.LastLoginAt != nil {
		view.LastLoginAt = *account.LastLoginAt
	}

	return view, nil
}

// Remembered returns the last successfully active username, which
// survives logout and is used to pre-fill login prompts.
func (m *Manager) Remembered(ctx context.Context) (string, error) {
	state, err := m.sessions.GetSession(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return state.RememberedUsername, nil
}

// EditProfile applies the provided profile changes. A blank field is
// skipped, and applying only one of the two is normal, not an error.
func (m *Manager) EditProfile(ctx context.Context, username, newNickname, newPassword string) (EditResult, error) {
	var result EditResult

	m.mu.Lock()
	defer m.mu.Unlock()

	if newNickname != "" {
		if err := m.accounts.UpdateNickname(ctx, username, newNickname); err != nil {
			return result, fmt.Errorf("failed to update nickname: %w", err)
		}
		result.NicknameUpdated = true
	}

	if newPassword != "" {
		if err := m.accounts.UpdatePassword(ctx, username, newPassword); err != nil {
			return result, fmt.Errorf("failed to update password: %w", err)
		}
		result.PasswordUpdated = true
		result.ReauthRequired = true
	}

	return result, nil
}

// UpdateAvatar replaces the avatar reference for username.
func (m *Manager) UpdateAvatar(ctx context.Context, username, ref string) error {
	if err := validation.ValidateAvatarRef(ref); err != nil {
		return fmt.Errorf("invalid avatar reference: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.accounts.UpdateAvatarRef(ctx, username, ref); err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	return nil
}
