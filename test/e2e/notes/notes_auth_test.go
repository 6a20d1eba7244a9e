package notes_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/notekeeper/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndDuplicates(t *testing.T) {
	baseURL := setupNotesContainer(t, nil)
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()
	email := uniqueEmail(t)

	_, err := client.Register(ctx, email, testPassword)
	require.NoError(t, err)

	_, err = client.Register(ctx, email, testPassword)
	requireAPIError(t, err, http.StatusConflict, authsdk.ErrorCodeUserExists)

	_, err = client.Login(ctx, "missing-"+email, testPassword)
	requireAPIError(t, err, http.StatusNotFound, authsdk.ErrorCodeUserNotFound)

	_, err = client.Login(ctx, email, "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeInvalidCredentials)

	pair, err := client.Login(ctx, email, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
}

// Register then reach a protected route with the issued access token.
func TestScenarioA(t *testing.T) {
	baseURL := setupNotesContainer(t, nil)
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	session, err := client.RegisterSession(ctx, uniqueEmail(t), testPassword)
	require.NoError(t, err)

	who, err := session.Whoami(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, who.UserID)

	ok, err := session.VerifyAccessToken(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

// Login, refresh, and the renewed access token passes the gate.
func TestScenarioB(t *testing.T) {
	baseURL := setupNotesContainer(t, nil)
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()
	email := uniqueEmail(t)

	_, err := client.Register(ctx, email, testPassword)
	require.NoError(t, err)

	session, err := client.LoginSession(ctx, email, testPassword)
	require.NoError(t, err)

	renewed, err := client.RefreshAccessToken(ctx, session.RefreshToken())
	require.NoError(t, err)
	require.NotEmpty(t, renewed.AccessToken)
	require.Empty(t, renewed.RefreshToken)

	fresh := client.NewSessionFromTokens(renewed.AccessToken, session.RefreshToken())
	_, err = fresh.Whoami(ctx)
	require.NoError(t, err)
}

// Logout, then the same refresh token is rejected as unknown.
func TestScenarioC(t *testing.T) {
	baseURL := setupNotesContainer(t, nil)
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	pair, err := client.Register(ctx, uniqueEmail(t), testPassword)
	require.NoError(t, err)

	require.NoError(t, client.Logout(ctx, pair.RefreshToken))

	_, err = client.RefreshAccessToken(ctx, pair.RefreshToken)
	requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeUnknownToken)

	err = client.Logout(ctx, "")
	requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeMissingToken)
}

// An expired access token is 403 on a protected route, distinct from the 401
// for a missing header.
func TestScenarioD(t *testing.T) {
	baseURL := setupNotesContainer(t, map[string]string{"ACCESS_TOKEN_TTL": "2s"})
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	pair, err := client.Register(ctx, uniqueEmail(t), testPassword)
	require.NoError(t, err)

	time.Sleep(3 * time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/test_auth_middleware", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/test_auth_middleware", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The refresh token outlives the access token.
	renewed, err := client.RefreshAccessToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, renewed.AccessToken)
}

func TestRefreshTokensSurviveRestartOfSession(t *testing.T) {
	baseURL := setupNotesContainer(t, nil)
	client := authsdk.NewSDKClient(baseURL)
	ctx := context.Background()
	email := uniqueEmail(t)

	first, err := client.Register(ctx, email, testPassword)
	require.NoError(t, err)
	second, err := client.Login(ctx, email, testPassword)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Revoking one session leaves the other usable.
	require.NoError(t, client.Logout(ctx, first.RefreshToken))
	_, err = client.RefreshAccessToken(ctx, second.RefreshToken)
	require.NoError(t, err)
}
