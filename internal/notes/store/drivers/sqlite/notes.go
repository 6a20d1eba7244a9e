package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
)

type notesRepo struct {
	q *queries
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	return mapConstraint(r.q.CreateNote(ctx, n))
}

func (r *notesRepo) ListNotesByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	return r.q.ListNotesByUser(ctx, userID)
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	n, err := r.q.GetNote(ctx, userID, id)
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) (int64, error) {
	return r.q.DeleteNote(ctx, userID, id)
}
