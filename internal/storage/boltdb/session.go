package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/accountbox/internal/models"
	"github.com/iudanet/accountbox/internal/storage"
)

var sessionKey = []byte("current")

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// GetSession returns the persisted session slot.
// A never-written slot reads as the zero value: logged out, nothing
// remembered.
func (s *Storage) GetSession(ctx context.Context) (models.SessionState, error) {
	var state models.SessionState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &state); err != nil {
			return fmt.Errorf("failed to unmarshal session state: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.SessionState{}, err
	}

	return state, nil
}

// SetActive points the slot at username and remembers it.
// Both fields change in one write so the slot can never hold an active
// username that was not also remembered.
func (s *Storage) SetActive(ctx context.Context, username string) error {
	return s.updateSession(func(state *models.SessionState) {
		state.ActiveUsername = username
		state.RememberedUsername = username
	})
}

// ClearActive logs the slot out, keeping the remembered username.
// Clearing an already-cleared slot is a no-op.
func (s *Storage) ClearActive(ctx context.Context) error {
	return s.updateSession(func(state *models.SessionState) {
		state.ActiveUsername = ""
	})
}

// updateSession applies fn to the stored state inside a single write
// transaction (read, modify, persist).
func (s *Storage) updateSession(fn func(*models.SessionState)) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		var state models.SessionState
		if data := bucket.Get(sessionKey); data != nil {
			if err := json.Unmarshal(data, &state); err != nil {
				return fmt.Errorf("failed to unmarshal session state: %w", err)
			}
		}

		fn(&state)

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal session state: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session state: %w", err)
		}

		return nil
	})
}
