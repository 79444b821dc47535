package ports

import "context"

// TokenAuthenticator resolves an opaque API token to a user id
type TokenAuthenticator interface {
	// Authenticate returns domain.ErrTokenNotFound for unknown tokens.
	Authenticate(ctx context.Context, token string) (string, error)
}

// TokenIssuer provisions API tokens for a user
type TokenIssuer interface {
	IssueToken(ctx context.Context, userID, label string) (string, error)
}
