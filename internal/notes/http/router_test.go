package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	notehttp "github.com/aussiebroadwan/notekeeper/internal/notes/http"
	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notekeeper/pkg/authsdk"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "notes-http-test")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	store  store.Store
	tokens *service.TokenService
	client *authsdk.SDKClient

	// skew moves the access codec's clock forward.
	skew atomic.Int64
}

func (s *testServer) advance(d time.Duration) {
	s.skew.Add(int64(d))
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "notes.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ts := &testServer{store: st}

	access := jwtx.NewCodec(jwtx.UseAccess, []byte("http-test-access-secret"))
	access.Now = func() time.Time { return time.Now().Add(time.Duration(ts.skew.Load())) }

	ts.tokens = &service.TokenService{
		Store:     st,
		Access:    access,
		Renewal:   jwtx.NewCodec(jwtx.UseRenewal, []byte("http-test-renewal-secret")),
		AccessTTL: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := notehttp.NewRouter("test", "http://localhost:3000", st, logger)
	router.TokenService = ts.tokens
	router.AccountService = &service.AccountService{Store: st, Tokens: ts.tokens}
	router.NoteService = &service.NoteService{Store: st}
	router.ApplyRoutes()

	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Close)

	ts.client = authsdk.NewSDKClient(ts.URL)
	return ts
}

// call sends a JSON body and decodes the JSON response into a generic value.
func (s *testServer) call(t *testing.T, method, path string, body any, bearer string) (int, any) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, s.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func errorCode(t *testing.T, body any) string {
	t.Helper()
	m, ok := body.(map[string]any)
	require.True(t, ok, "body is not an object: %v", body)
	code, _ := m["error"].(string)
	return code
}

func register(t *testing.T, s *testServer, email string) *authsdk.TokenResponse {
	t.Helper()
	pair, err := s.client.Register(context.Background(), email, "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	register(t, s, "ana@example.com")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.client.Register(ctx, "ana@example.com", "another password")
		require.ErrorIs(t, err, authsdk.ErrUserExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		status, body := s.call(t, http.MethodPost, "/register", map[string]string{"email": "x@example.com"}, "")
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, authsdk.ErrorCodeInvalidRequest, errorCode(t, body))
	})

	t.Run("login ok", func(t *testing.T) {
		pair, err := s.client.Login(ctx, "ana@example.com", "correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("login unknown email", func(t *testing.T) {
		_, err := s.client.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, authsdk.ErrUserNotFound)
	})

	t.Run("login wrong password", func(t *testing.T) {
		_, err := s.client.Login(ctx, "ana@example.com", "wrong")
		require.ErrorIs(t, err, authsdk.ErrInvalidCredentials)
	})
}

func TestFormEncodedBody(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"email": {"form@example.com"}, "password": {"pw-123456"}}
	resp, err := http.Post(s.URL+"/register", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pair authsdk.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))
	require.NotEmpty(t, pair.RefreshToken)
}

// Scenario A: register, then call a protected route with the access token.
func TestScenarioRegisterThenProtectedRoute(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "a@example.com")

	status, body := s.call(t, http.MethodGet, "/test_auth_middleware", nil, "Bearer "+pair.AccessToken)
	require.Equal(t, http.StatusOK, status)
	userID := body.(map[string]any)["userID"].(string)
	require.NotEmpty(t, userID)

	status, body = s.call(t, http.MethodGet, "/verify_access_token", nil, "Bearer "+pair.AccessToken)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body)
}

// Scenario B: login, refresh, and the new access token works on a protected route.
func TestScenarioRefreshIssuesWorkingAccessToken(t *testing.T) {
	s := newTestServer(t)
	register(t, s, "b@example.com")

	pair, err := s.client.Login(context.Background(), "b@example.com", "correct horse battery staple")
	require.NoError(t, err)

	status, body := s.call(t, http.MethodPost, "/refresh_access_token",
		map[string]string{"refreshToken": pair.RefreshToken}, "")
	require.Equal(t, http.StatusOK, status)

	m := body.(map[string]any)
	access, _ := m["accessToken"].(string)
	require.NotEmpty(t, access)
	require.NotContains(t, m, "refreshToken")

	status, _ = s.call(t, http.MethodGet, "/test_auth_middleware", nil, "Bearer "+access)
	require.Equal(t, http.StatusOK, status)
}

// Scenario C: logout revokes the refresh token.
func TestScenarioLogoutRevokesRefreshToken(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "c@example.com")

	status, _ := s.call(t, http.MethodDelete, "/logout", map[string]string{"refreshToken": pair.RefreshToken}, "")
	require.Equal(t, http.StatusNoContent, status)

	status, body := s.call(t, http.MethodPost, "/refresh_access_token",
		map[string]string{"refreshToken": pair.RefreshToken}, "")
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, authsdk.ErrorCodeUnknownToken, errorCode(t, body))

	// Logout is idempotent.
	status, _ = s.call(t, http.MethodDelete, "/logout", map[string]string{"refreshToken": pair.RefreshToken}, "")
	require.Equal(t, http.StatusNoContent, status)
}

// Scenario D: an expired access token is 403, a missing header is 401.
func TestScenarioExpiredAccessToken(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "d@example.com")

	s.advance(time.Hour + time.Minute)

	status, body := s.call(t, http.MethodGet, "/test_auth_middleware", nil, "Bearer "+pair.AccessToken)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, authsdk.ErrorCodeInvalidToken, errorCode(t, body))

	status, body = s.call(t, http.MethodGet, "/test_auth_middleware", nil, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, authsdk.ErrorCodeMissingToken, errorCode(t, body))

	// The refresh token is still good and yields a working access token.
	status, body = s.call(t, http.MethodPost, "/refresh_access_token",
		map[string]string{"refreshToken": pair.RefreshToken}, "")
	require.Equal(t, http.StatusOK, status)
	access := body.(map[string]any)["accessToken"].(string)

	status, _ = s.call(t, http.MethodGet, "/test_auth_middleware", nil, "Bearer "+access)
	require.Equal(t, http.StatusOK, status)
}

func TestRefreshErrors(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "refresh@example.com")

	unstored, err := s.tokens.Renewal.Sign("someone", 0)
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"empty body", map[string]string{}, http.StatusUnauthorized, authsdk.ErrorCodeMissingToken},
		{"empty string", map[string]string{"refreshToken": ""}, http.StatusUnauthorized, authsdk.ErrorCodeMissingToken},
		{"json null", map[string]any{"refreshToken": nil}, http.StatusUnauthorized, authsdk.ErrorCodeMissingToken},
		{"undefined", map[string]string{"refreshToken": "undefined"}, http.StatusUnauthorized, authsdk.ErrorCodeMissingToken},
		{"unstored but well signed", map[string]string{"refreshToken": unstored}, http.StatusForbidden, authsdk.ErrorCodeUnknownToken},
		{"tampered", map[string]string{"refreshToken": pair.RefreshToken + "x"}, http.StatusForbidden, authsdk.ErrorCodeUnknownToken},
		{"access token instead", map[string]string{"refreshToken": pair.AccessToken}, http.StatusForbidden, authsdk.ErrorCodeUnknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.call(t, http.MethodPost, "/refresh_access_token", tt.body, "")
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantCode, errorCode(t, body))
		})
	}
}

func TestRefreshStoredButInvalid(t *testing.T) {
	s := newTestServer(t)

	// A stored string that does not verify under the renewal secret.
	forged := "not.a.jwt"
	_, err := s.store.RenewalTokens().PersistRenewalToken(context.Background(), forged)
	require.NoError(t, err)

	status, body := s.call(t, http.MethodPost, "/refresh_access_token",
		map[string]string{"refreshToken": forged}, "")
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, authsdk.ErrorCodeServerError, errorCode(t, body))
}

func TestLogoutMissingToken(t *testing.T) {
	s := newTestServer(t)

	status, body := s.call(t, http.MethodDelete, "/logout", map[string]string{}, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, authsdk.ErrorCodeMissingToken, errorCode(t, body))
}

func TestGateHeaderShapes(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "gate@example.com")

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"other scheme word", "Token " + pair.AccessToken, http.StatusOK},
		{"refresh token as access", "Bearer " + pair.RefreshToken, http.StatusForbidden},
		{"garbage", "Bearer abc.def.ghi", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := s.call(t, http.MethodGet, "/verify_access_token", nil, tt.header)
			require.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestNotesAreScopedToOwner(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	alice, err := s.client.RegisterSession(ctx, "alice@example.com", "alice-password")
	require.NoError(t, err)
	bob, err := s.client.RegisterSession(ctx, "bob@example.com", "bob-password")
	require.NoError(t, err)

	id, err := alice.CreateNote(ctx, "alice's secret")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	note, err := alice.GetNote(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice's secret", note.Message)

	_, err = bob.GetNote(ctx, id)
	require.ErrorIs(t, err, authsdk.ErrNotFound)

	bobNotes, err := bob.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, bobNotes)

	// Bob deleting Alice's note is a no-op.
	require.NoError(t, bob.DeleteNote(ctx, id))
	aliceNotes, err := alice.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, aliceNotes, 1)

	require.NoError(t, alice.DeleteNote(ctx, id))
	aliceNotes, err = alice.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, aliceNotes)
}

func TestCreateNoteWithoutMessage(t *testing.T) {
	s := newTestServer(t)
	pair := register(t, s, "empty@example.com")

	status, body := s.call(t, http.MethodPost, "/secret_message", map[string]string{}, "Bearer "+pair.AccessToken)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, authsdk.ErrorCodeInvalidRequest, errorCode(t, body))
}

func TestNotesRequireAccessToken(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.call(t, http.MethodGet, "/secret_message", nil, "")
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.call(t, http.MethodGet, "/secret_message", nil, "Bearer nope")
	require.Equal(t, http.StatusForbidden, status)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks["store"])

	require.NoError(t, s.store.Close())
	status, body := s.call(t, http.MethodGet, "/readyz", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "degraded", body.(map[string]any)["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, s.URL+"/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
