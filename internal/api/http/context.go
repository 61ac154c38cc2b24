package http

import (
	"context"
	"errors"

	"assetdesk-backend/internal/security"
)

type contextKey string

const (
	identityKey  contextKey = "identity"
	requestIDKey contextKey = "request_id"
)

var errNoIdentity = errors.New("no identity attached to request context")

// IdentityFromContext returns the verified caller identity the auth
// middleware attached.
func IdentityFromContext(ctx context.Context) (*security.IdentityClaims, error) {
	claims, ok := ctx.Value(identityKey).(*security.IdentityClaims)
	if !ok || claims == nil {
		return nil, errNoIdentity
	}
	return claims, nil
}

// RequestIDFromContext returns the correlation ID assigned by the
// request-ID middleware, or empty when absent.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
