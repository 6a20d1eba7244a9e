package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// AuthnMiddleware is the access gate for protected routes. A missing bearer
// credential is answered with 401, a credential that fails verification
// (malformed, bad signature, expired) with 403. No store lookup happens here.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, http.StatusUnauthorized, "missing_token", "access denied, token not provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("access token verify failed", "err", err)
				writeBearerError(w, http.StatusForbidden, "invalid_token", "access denied, token is not valid")
				return
			}

			ctx = ContextWithIdentity(ctx, claims)
			ctx = slogx.With(ctx, "sub", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: <scheme> <token>"
// header. Only the second whitespace-delimited segment is used; the scheme
// word is not validated.
func BearerToken(r *http.Request) (string, bool) {
	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// RFC 6750 style error response for bearer auth.
func writeBearerError(w http.ResponseWriter, code int, errCode, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+errCode+`", error_description="`+desc+`"`)
	WriteJSON(w, code, map[string]string{
		"error":             errCode,
		"error_description": desc,
	})
}
