package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Whoami returns the identity carried by the session's access credential.
func (s *Session) Whoami(ctx context.Context) (*WhoamiResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/test_auth_middleware", nil)
	if err != nil {
		return nil, err
	}

	var who WhoamiResponse
	if err := decodeJSON(resp, &who, http.StatusOK); err != nil {
		return nil, err
	}

	return &who, nil
}

// VerifyAccessToken asks the server whether the current access credential passes the gate.
func (s *Session) VerifyAccessToken(ctx context.Context) (bool, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/verify_access_token", nil)
	if err != nil {
		return false, err
	}

	var ok bool
	if err := decodeJSON(resp, &ok, http.StatusOK); err != nil {
		return false, err
	}

	return ok, nil
}

// CreateNote stores a note and returns its id.
func (s *Session) CreateNote(ctx context.Context, message string) (string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/secret_message", CreateNoteRequest{Message: message})
	if err != nil {
		return "", err
	}

	var created CreateNoteResponse
	if err := decodeJSON(resp, &created, http.StatusOK); err != nil {
		return "", err
	}

	return created.ID, nil
}

// ListNotes returns every note owned by the session's user.
func (s *Session) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/secret_message", nil)
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := decodeJSON(resp, &notes, http.StatusOK); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote returns one note by id.
func (s *Session) GetNote(ctx context.Context, id string) (*Note, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/secret_message/get_single_secret/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var note Note
	if err := decodeJSON(resp, &note, http.StatusOK); err != nil {
		return nil, err
	}

	return &note, nil
}

// DeleteNote deletes one note by id. Deleting a missing note succeeds.
func (s *Session) DeleteNote(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/secret_message/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusOK)
}
