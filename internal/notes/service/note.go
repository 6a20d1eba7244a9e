package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/idx"
)

// NoteService manages notes. Every call is scoped to the owning user.
type NoteService struct {
	Store store.Store
}

func (s *NoteService) Create(ctx context.Context, userID, message string) (domain.Note, error) {
	if strings.TrimSpace(message) == "" {
		return domain.Note{}, ErrInvalidRequest
	}

	n := domain.Note{
		ID:        idx.New().String(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Notes().CreateNote(ctx, n); err != nil {
		return domain.Note{}, storeErr("create note", err)
	}
	return n, nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]domain.Note, error) {
	notes, err := s.Store.Notes().ListNotesByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list notes", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id string) (domain.Note, error) {
	n, err := s.Store.Notes().GetNote(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Note{}, ErrNotFound
		}
		return domain.Note{}, storeErr("get note", err)
	}
	return n, nil
}

// Delete removes the note if userID owns it. Missing notes are not an error.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Store.Notes().DeleteNote(ctx, userID, id); err != nil {
		return storeErr("delete note", err)
	}
	return nil
}
