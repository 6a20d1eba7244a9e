package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/pkg/authsdk"
	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// AccountHandler serves registration and login. Both accept JSON or
// form-encoded bodies carrying email and password.
type AccountHandler struct {
	AccountService *service.AccountService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates an account and returns its first access and refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		authsdk.CredentialsRequest	true	"email and password"
//	@Success		200		{object}	authsdk.TokenResponse		"accessToken, refreshToken"
//	@Failure		400		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/register [post].
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, err := httpx.DecodeForm(r)
	if err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AccountService.Register(ctx, form["email"], form["password"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			authsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrDuplicateRegistration):
			authsdk.ErrUserExists.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Checks the password and returns a fresh access and refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		authsdk.CredentialsRequest	true	"email and password"
//	@Success		200		{object}	authsdk.TokenResponse		"accessToken, refreshToken"
//	@Failure		400		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	authsdk.ErrorResponse		"wrong password"
//	@Failure		404		{object}	authsdk.ErrorResponse		"unknown email"
//	@Failure		500		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	form, err := httpx.DecodeForm(r)
	if err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AccountService.Login(ctx, form["email"], form["password"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			authsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrUnknownAccount):
			authsdk.ErrUserNotFound.WriteError(w)
		case errors.Is(err, service.ErrAuthenticationFailed):
			authsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
