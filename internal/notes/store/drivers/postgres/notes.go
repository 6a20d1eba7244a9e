package postgres

import (
	"context"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/jackc/pgx/v5"
)

type notesRepo struct {
	q querier
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO notes (id, user_id, message, created_at)
		VALUES ($1, $2, $3, $4)
	`, n.ID, n.UserID, n.Message, n.CreatedAt)
	return mapConstraint(err)
}

func (r *notesRepo) ListNotesByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, message, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanNote)
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, message, created_at
		FROM notes
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return domain.Note{}, err
	}

	n, err := pgx.CollectExactlyOneRow(rows, scanNote)
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM notes WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanNote(row pgx.CollectableRow) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt)
	return n, err
}
