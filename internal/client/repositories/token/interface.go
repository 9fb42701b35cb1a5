// Package token persists the session bearer token across process restarts.
// It is the only shared mutable resource of the client: read before every
// outgoing request, written only by session-mutating operations.
package token

import "context"

// Store holds at most one bearer token. An empty string means anonymous.
//
// Implementations must be safe for concurrent use: the API client reads the
// token from arbitrary goroutines while the session manager writes it.
type Store interface {
	// Token returns the stored token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Set replaces the stored token.
	Set(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
