package storage

import (
	"context"

	"github.com/iudanet/accountbox/internal/models"
)

// SessionStorage is the durable single-slot session pointer.
// It holds no validation logic of its own; keeping the slot consistent
// with the account table is the session manager's job.
type SessionStorage interface {
	// GetSession returns the persisted slot, or the zero value
	// (logged out, nothing remembered) if it was never written.
	GetSession(ctx context.Context) (models.SessionState, error)

	// SetActive points the slot at username and remembers it.
	SetActive(ctx context.Context, username string) error

	// ClearActive logs the slot out. The remembered username is kept.
	ClearActive(ctx context.Context) error
}

// SettingsStorage holds per-install settings that are independent of any
// account, kept separate from the session slot on purpose.
type SettingsStorage interface {
	// GetSignature returns the install signature, or the default
	// text if none has been written yet.
	GetSignature(ctx context.Context) (string, error)

	// SetSignature replaces the install signature.
	SetSignature(ctx context.Context, signature string) error
}
