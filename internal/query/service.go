// Package query is the read-only facade used by presentation
// collaborators to fetch display data without going through the
// session manager.
package query

import (
	"context"

	"github.com/iudanet/accountbox/internal/storage"
)

// AccountSummary is the display shape of one stored account.
type AccountSummary struct {
	Username  string
	Nickname  string
	AvatarRef string
}

// ProfileSummary carries the fields a profile screen renders.
type ProfileSummary struct {
	Nickname  string
	AvatarRef string
}

// Service answers read queries over the account store.
type Service struct {
	accounts storage.AccountStorage
}

// NewService creates a query service over the account store.
func NewService(accounts storage.AccountStorage) *Service {
	return &Service{accounts: accounts}
}

// ListOtherAccounts returns every stored account except the excluded
// username, preserving repository order. The excluded username does
// not have to exist.
func (s *Service) ListOtherAccounts(ctx context.Context, excludeUsername string) ([]AccountSummary, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		if account.Username == excludeUsername {
			continue
		}
		summaries = append(summaries, AccountSummary{
			Username:  account.Username,
			Nickname:  account.Nickname,
			AvatarRef: account.AvatarRef,
		})
	}

	return summaries, nil
}

// ProfileSummary returns display fields for one account.
// Returns storage.ErrAccountNotFound for unknown usernames; tolerating
// absence (rendering a placeholder instead) is the caller's choice.
func (s *Service) ProfileSummary(ctx context.Context, username string) (ProfileSummary, error) {
	account, err := s.accounts.GetAccount(ctx, username)
	if err != nil {
		return ProfileSummary{}, err
	}

	return ProfileSummary{
		Nickname:  account.Nickname,
		AvatarRef: account.AvatarRef,
	}, nil
}
