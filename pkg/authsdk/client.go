package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the notekeeper API.
// It provides access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// RefreshBuffer is how long before access credential expiry a Session
	// renews it. Default: 30s
	RefreshBuffer time.Duration
}

// NewSDKClient creates a new API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		RefreshBuffer: 30 * time.Second,
	}
}

// RegisterSession registers a new account and returns a Session for it.
func (c *SDKClient) RegisterSession(ctx context.Context, email, password string) (*Session, error) {
	tokenResp, err := c.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, tokenResp), nil
}

// LoginSession logs in and returns a Session.
func (c *SDKClient) LoginSession(ctx context.Context, email, password string) (*Session, error) {
	tokenResp, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, tokenResp), nil
}

// NewSessionFromTokens creates a session from credentials obtained elsewhere.
// The session still renews the access credential when it expires.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return newSession(c, &TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}
