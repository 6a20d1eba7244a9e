package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) (http.Handler, *jwtx.Codec) {
	t.Helper()

	codec := jwtx.NewCodec(jwtx.UseAccess, []byte("gate-test-access-secret"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IdentityFromContext(r.Context())
		require.True(t, ok)
		httpx.WriteJSON(w, http.StatusOK, id)
	})

	return httpx.AuthnMiddleware(codec)(next), codec
}

func TestAuthnMiddleware(t *testing.T) {
	gate, codec := newGate(t)

	valid, err := codec.Sign("user-42", time.Hour)
	require.NoError(t, err)

	expired, err := (&jwtx.Codec{
		Use:    jwtx.UseAccess,
		Secret: codec.Secret,
		Now:    func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}).Sign("user-42", time.Hour)
	require.NoError(t, err)

	renewal, err := jwtx.NewCodec(jwtx.UseRenewal, []byte("gate-test-renewal-secret")).Sign("user-42", 0)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "missing_token"},
		{"scheme only", "Bearer", http.StatusUnauthorized, "missing_token"},
		{"valid bearer", "Bearer " + valid, http.StatusOK, ""},
		{"scheme not validated", "Token " + valid, http.StatusOK, ""},
		{"expired", "Bearer " + expired, http.StatusForbidden, "invalid_token"},
		{"renewal credential", "Bearer " + renewal, http.StatusForbidden, "invalid_token"},
		{"garbage", "Bearer not.a.token", http.StatusForbidden, "invalid_token"},
		{"undefined from client", "Bearer undefined", http.StatusForbidden, "invalid_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test_auth_middleware", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			gate.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			if tt.wantError != "" {
				require.Equal(t, tt.wantError, body["error"])
				require.Contains(t, rec.Header().Get("WWW-Authenticate"), tt.wantError)
				return
			}
			require.Equal(t, "user-42", body["userID"])
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer   abc   trailing")

	tok, ok := httpx.BearerToken(req)
	require.True(t, ok)
	require.Equal(t, "abc", tok)
}
