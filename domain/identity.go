package domain

// AuthenticatedUser is the caller identity extracted from a validated
// bearer token. It is produced by the token validator only and is
// never persisted.
type AuthenticatedUser struct {
	UserID   string
	Username string
}
