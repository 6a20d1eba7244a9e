package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/pkg/authsdk"
	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// TokenHandler serves the renewal credential endpoints.
type TokenHandler struct {
	TokenService *service.TokenService
}

// HandleRefresh godoc
//
//	@Summary		Refresh Access Token
//	@Description	Exchanges a stored refresh token for a new access token. The refresh token itself is not reissued.
//	@Tags			Auth
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		authsdk.RefreshTokenRequest	true	"refreshToken"
//	@Success		200		{object}	authsdk.TokenResponse		"accessToken"
//	@Failure		401		{object}	authsdk.ErrorResponse		"refresh token not provided"
//	@Failure		403		{object}	authsdk.ErrorResponse		"refresh token unknown or revoked"
//	@Failure		500		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/refresh_access_token [post].
func (h *TokenHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, err := httpx.DecodeForm(r)
	if err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	access, err := h.TokenService.Renew(ctx, form["refreshToken"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredential):
			authsdk.ErrMissingToken.WriteError(w)
		case errors.Is(err, service.ErrUnknownCredential):
			authsdk.ErrUnknownToken.WriteError(w)
		default:
			// Signature and store failures share the generic message.
			log.Error("refresh failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{AccessToken: access.AccessToken})
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Deletes every stored record of the refresh token. Unknown tokens are not an error.
//	@Tags			Auth
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Param			request	body	authsdk.RefreshTokenRequest	true	"refreshToken"
//	@Success		204		"Refresh token revoked"
//	@Failure		401		{object}	authsdk.ErrorResponse	"refresh token not provided"
//	@Failure		500		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/logout [delete].
func (h *TokenHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, err := httpx.DecodeForm(r)
	if err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if _, err := h.TokenService.Revoke(ctx, form["refreshToken"]); err != nil {
		if errors.Is(err, service.ErrMissingCredential) {
			authsdk.ErrMissingToken.WriteError(w)
			return
		}
		log.Error("logout failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleWhoami godoc
//
//	@Summary		Echo Identity
//	@Description	Returns the identity carried by the access token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.WhoamiResponse	"userID"
//	@Failure		401	{object}	authsdk.ErrorResponse	"access token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"access token invalid or expired"
//	@Router			/test_auth_middleware [get].
func HandleWhoami(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.WhoamiResponse{UserID: id.SubjectID})
}

// HandleVerifyAccessToken godoc
//
//	@Summary		Verify Access Token
//	@Description	Returns true when the access token passes the gate.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{boolean}	bool
//	@Failure		401	{object}	authsdk.ErrorResponse	"access token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"access token invalid or expired"
//	@Router			/verify_access_token [get].
func HandleVerifyAccessToken(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, true)
}
