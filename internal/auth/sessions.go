package auth

import "context"

// SessionStore tracks which session tokens belong to which admin. The
// concrete mechanism (process memory, redis) is swappable; callers only see
// opaque tokens.
type SessionStore interface {
	// Create opens a session for the admin and returns its token.
	Create(ctx context.Context, adminID int) (string, error)
	// Resolve returns the admin id a live token belongs to, or
	// ErrSessionNotFound for absent or expired tokens.
	Resolve(ctx context.Context, token string) (int, error)
	// Invalidate ends the session. Unknown tokens are not an error.
	Invalidate(ctx context.Context, token string) error
}
