package models

import "time"

// Account represents one stored user profile.
// Username is the unique business key and never changes after creation;
// ID is a surrogate identifier assigned at creation time.
type Account struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Nickname    string     `json:"nickname"`
	Password    string     `json:"password"`
	AvatarRef   string     `json:"avatar_ref"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// SessionState is the single durable session slot for the install.
// ActiveUsername empty means logged out. RememberedUsername keeps the
// last successfully active username across logouts for login pre-fill.
type SessionState struct {
	ActiveUsername     string `json:"active_username"`
	RememberedUsername string `json:"remembered_username"`
}

// LoggedIn reports whether the slot points at an active account.
func (s SessionState) LoggedIn() bool {
	return s.ActiveUsername != ""
}
