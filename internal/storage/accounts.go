package storage

import (
	"context"
	"time"

	"github.com/iudanet/accountbox/internal/models"
)

// AccountStorage defines the persistence contract for account records.
// Every mutation is durable before the call returns and atomic per record:
// a concurrent reader never observes a partially written row.
type AccountStorage interface {
	// CreateAccount creates a new account record.
	// Returns ErrAccountExists if the username is already taken;
	// the existing record is left unmodified.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccount retrieves an account by username.
	// Returns ErrAccountNotFound if no record exists.
	GetAccount(ctx context.Context, username string) (*models.Account, error)

	// ListAccounts returns all account records in storage (insertion) order.
	// The order is stable within a session; callers must not assume more.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateNickname replaces the display name.
	// Returns ErrAccountNotFound if no record exists.
	UpdateNickname(ctx context.Context, username, nickname string) error

	// UpdatePassword replaces the stored credential.
	// Returns ErrAccountNotFound if no record exists.
	UpdatePassword(ctx context.Context, username, password string) error

	// UpdateAvatarRef replaces the avatar reference.
	// Returns ErrAccountNotFound if no record exists.
	UpdateAvatarRef(ctx context.Context, username, ref string) error

	// TouchLastLogin sets the last-login timestamp.
	// Returns ErrAccountNotFound if no record exists.
	TouchLastLogin(ctx context.Context, username string, at time.Time) error
}
