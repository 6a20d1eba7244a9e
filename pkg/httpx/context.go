package httpx

import (
	"context"

	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
)

type ctxKey string

const CtxKeyIdentity ctxKey = "identity"

// ContextWithIdentity attaches the identity carried by verified claims to ctx.
func ContextWithIdentity(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, c.Identity())
}

// IdentityFromContext returns the identity attached by AuthnMiddleware.
func IdentityFromContext(ctx context.Context) (jwtx.Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(jwtx.Identity)
	if !ok || id.SubjectID == "" {
		return jwtx.Identity{}, false
	}
	return id, true
}
