package authsdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its first credential pair.
func (c *SDKClient) Register(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.credentials(ctx, "/register", email, password)
}

// Login authenticates an existing account and returns a fresh credential pair.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.credentials(ctx, "/login", email, password)
}

func (c *SDKClient) credentials(ctx context.Context, path, email, password string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, CredentialsRequest{
		Email:    email,
		Password: password,
	}, "")
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// RefreshAccessToken exchanges a renewal credential for a new access credential.
// The returned response carries no renewal credential.
func (c *SDKClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/refresh_access_token", RefreshTokenRequest{
		RefreshToken: refreshToken,
	}, "")
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// Logout revokes a renewal credential. Revoking an unknown credential succeeds.
func (c *SDKClient) Logout(ctx context.Context, refreshToken string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/logout", RefreshTokenRequest{
		RefreshToken: refreshToken,
	}, "")
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}
