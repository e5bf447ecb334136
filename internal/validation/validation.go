package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern defines the accepted username format:
// latin letters (a-z, A-Z), digits (0-9) and underscore, 3-32 characters.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen is the minimum username length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length
	MaxUsernameLen = 32
)

// ValidateUsername checks that username matches the accepted format.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword checks the stored-credential contract.
// The password is opaque to the core: the only rule is non-empty on write.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateNickname checks a display name before an update.
func ValidateNickname(nickname string) error {
	if nickname == "" {
		return fmt.Errorf("nickname cannot be empty")
	}
	return nil
}

// ValidateAvatarRef checks an avatar reference before an update.
// The reference itself is opaque; only emptiness is rejected.
func ValidateAvatarRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("avatar reference cannot be empty")
	}
	return nil
}
