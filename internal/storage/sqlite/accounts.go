package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/accountbox/internal/models"
	"github.com/iudanet/accountbox/internal/storage"
)

// Compile-time check that Storage implements AccountStorage
var _ storage.AccountStorage = (*Storage)(nil)

// CreateAccount creates a new account record
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, nickname, password, avatar_ref, created_at, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Username,
		account.Nickname,
		account.Password,
		account.AvatarRef,
		account.CreatedAt,
		account.LastLoginAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.username") {
			return storage.ErrAccountExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by username
func (s *Storage) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, nickname, password, avatar_ref, created_at, last_login_at
		FROM accounts
		WHERE username = ?
	`

	account := &models.Account{}
	var lastLogin sql.NullTime

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Nickname,
		&account.Password,
		&account.AvatarRef,
		&account.CreatedAt,
		&lastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if lastLogin.Valid {
		account.LastLoginAt = &lastLogin.Time
	}

	return account, nil
}

// ListAccounts returns all accounts in storage order.
// rowid preserves insertion order, which is all callers may rely on.
func (s *Storage) ListAccounts(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, username, nickname, password, avatar_ref, created_at, last_login_at
		FROM accounts
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		var lastLogin sql.NullTime

		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Nickname,
			&account.Password,
			&account.AvatarRef,
			&account.CreatedAt,
			&lastLogin,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		if lastLogin.Valid {
			account.LastLoginAt = &lastLogin.Time
		}

		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// UpdateNickname replaces the display name
func (s *Storage) UpdateNickname(ctx context.Context, username, nickname string) error {
	return s.updateField(ctx, `UPDATE accounts SET nickname = ? WHERE username = ?`, nickname, username)
}

// UpdatePassword replaces the stored credential
func (s *Storage) UpdatePassword(ctx context.Context, username, password string) error {
	return s.updateField(ctx, `UPDATE accounts SET password = ? WHERE username = ?`, password, username)
}

// UpdateAvatarRef replaces the avatar reference
func (s *Storage) UpdateAvatarRef(ctx context.Context, username, ref string) error {
	return s.updateField(ctx, `UPDATE accounts SET avatar_ref = ? WHERE username = ?`, ref, username)
}

// TouchLastLogin sets the last-login timestamp
func (s *Storage) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	return s.updateField(ctx, `UPDATE accounts SET last_login_at = ? WHERE username = ?`, at, username)
}

// updateField runs a single-column UPDATE keyed by username and maps
// "no rows" to ErrAccountNotFound.
func (s *Storage) updateField(ctx context.Context, query string, value any, username string) error {
	result, err := s.db.ExecContext(ctx, query, value, username)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrAccountNotFound
	}

	return nil
}
