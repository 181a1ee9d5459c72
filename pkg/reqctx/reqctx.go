// Package reqctx carries request-scoped data through context.Context:
// request metadata set by HTTP middleware and auth claims set after token
// verification. Keys are unexported; access goes through the typed
// functions here.
package reqctx

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ctxKey int

const (
	keyRequestMeta ctxKey = iota
	keyClaims
)

// RequestMeta is attached by middleware to every request.
type RequestMeta struct {
	RequestID   string // UUID v4
	ClientIP    string // X-Forwarded-For aware
	UserAgent   string
	RequestedAt time.Time
}

func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns the request ID or "" when middleware has
// not run, as in tests and background workers.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return ""
	}
	return meta.RequestID
}

// AuthClaims abstracts over the token implementation so packages below
// the HTTP layer do not import the PASETO types.
type AuthClaims interface {
	GetUserID() uuid.UUID
	GetSessionID() *uuid.UUID
	GetTokenType() string
	IsExpired() bool
}

// WithClaims stores verified claims. Only set for authenticated requests.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext returns nil for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	claims, ok := ctx.Value(keyClaims).(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

func IsAuthenticated(ctx context.Context) bool {
	claims := ClaimsFromContext(ctx)
	return claims != nil && !claims.IsExpired()
}

// UserIDFromContext extracts the caller's user ID from claims.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}
