package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/accountbox/internal/storage"
)

const keySignature = "signature"

// DefaultSignature is shown until the user writes their own.
const DefaultSignature = "This is my signature. Welcome to my profile!"

// Compile-time check that Storage implements SettingsStorage
var _ storage.SettingsStorage = (*Storage)(nil)

// GetSignature returns the install signature, or DefaultSignature if
// none has been written yet.
func (s *Storage) GetSignature(ctx context.Context) (string, error) {
	signature := DefaultSignature

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if data := bucket.Get([]byte(keySignature)); data != nil {
			signature = string(data)
		}

		return nil
	})

	if err != nil {
		return "", err
	}

	return signature, nil
}

// SetSignature replaces the install signature.
func (s *Storage) SetSignature(ctx context.Context, signature string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Put([]byte(keySignature), []byte(signature)); err != nil {
			return fmt.Errorf("failed to save signature: %w", err)
		}

		return nil
	})
}
