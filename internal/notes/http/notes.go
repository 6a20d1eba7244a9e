package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/pkg/authsdk"
	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// NotesHandler serves the caller's notes. Every route sits behind the access
// gate, so the identity is always present in the context.
type NotesHandler struct {
	NoteService *service.NoteService
}

func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return "", false
	}
	return id.SubjectID, true
}

// HandleCreate godoc
//
//	@Summary		Create Note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		authsdk.CreateNoteRequest	true	"message"
//	@Success		200		{object}	authsdk.CreateNoteResponse	"id"
//	@Failure		400		{object}	authsdk.ErrorResponse		"message missing"
//	@Failure		401		{object}	authsdk.ErrorResponse		"access token not provided"
//	@Failure		403		{object}	authsdk.ErrorResponse		"access token invalid or expired"
//	@Failure		500		{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/secret_message [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := subject(w, r)
	if !ok {
		return
	}

	form, err := httpx.DecodeForm(r)
	if err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	note, err := h.NoteService.Create(ctx, userID, form["message"])
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			authsdk.NewAPIError(http.StatusBadRequest, authsdk.ErrorCodeInvalidRequest, "message is required").WriteError(w)
			return
		}
		log.Error("create note failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.CreateNoteResponse{ID: note.ID})
}

// HandleList godoc
//
//	@Summary		List Notes
//	@Description	Returns every note owned by the caller, oldest first.
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		authsdk.Note
//	@Failure		401	{object}	authsdk.ErrorResponse	"access token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"access token invalid or expired"
//	@Failure		500	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/secret_message [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := subject(w, r)
	if !ok {
		return
	}

	notes, err := h.NoteService.List(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("list notes failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notes)
}

// HandleGet godoc
//
//	@Summary		Get Note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	authsdk.Note
//	@Failure		401	{object}	authsdk.ErrorResponse	"access token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"access token invalid or expired"
//	@Failure		404	{object}	authsdk.ErrorResponse	"note not found"
//	@Failure		500	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/secret_message/get_single_secret/{id} [get].
func (h *NotesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := subject(w, r)
	if !ok {
		return
	}

	note, err := h.NoteService.Get(ctx, userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			authsdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("get note failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, note)
}

// HandleDelete godoc
//
//	@Summary		Delete Note
//	@Description	Deletes the note if the caller owns it. Missing notes are not an error.
//	@Tags			Notes
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Note ID"
//	@Success		200	"Note deleted"
//	@Failure		401	{object}	authsdk.ErrorResponse	"access token not provided"
//	@Failure		403	{object}	authsdk.ErrorResponse	"access token invalid or expired"
//	@Failure		500	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/secret_message/{id} [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.NoteService.Delete(ctx, userID, r.PathValue("id")); err != nil {
		slogx.FromContext(ctx).Error("delete note failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": r.PathValue("id")})
}
