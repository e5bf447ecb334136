package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid lowercase", username: "alice", wantErr: false},
		{name: "valid uppercase", username: "ALICE", wantErr: false},
		{name: "valid mixed case", username: "AliceSmith", wantErr: false},
		{name: "valid with underscore", username: "alice_smith", wantErr: false},
		{name: "valid with numbers", username: "alice123", wantErr: false},
		{name: "valid all numbers", username: "123456", wantErr: false},
		{name: "valid min length", username: "abc", wantErr: false},
		{name: "valid max length", username: strings.Repeat("a", 32), wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true},
		{name: "space", username: "alice smith", wantErr: true},
		{name: "dash", username: "alice-smith", wantErr: true},
		{name: "unicode", username: "алиса", wantErr: true},
		{name: "dot", username: "alice.smith", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	// The credential is opaque: only emptiness is rejected
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("x"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
}

func TestValidateNickname(t *testing.T) {
	assert.Error(t, ValidateNickname(""))
	assert.NoError(t, ValidateNickname("Alice in Wonderland"))
}

func TestValidateAvatarRef(t *testing.T) {
	assert.Error(t, ValidateAvatarRef(""))
	assert.NoError(t, ValidateAvatarRef("resource://avatars/3"))
	assert.NoError(t, ValidateAvatarRef("https://example.com/me.png"))
}
