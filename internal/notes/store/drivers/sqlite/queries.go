package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repos work inside and
// outside transactions.
type dbtx interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db dbtx
}

const createUser = `
INSERT INTO users (id, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`

func (q *queries) CreateUser(ctx context.Context, u domain.User, now time.Time) error {
	_, err := q.db.ExecContext(ctx, createUser, u.ID, u.Email, u.PasswordHash, now, now)
	return err
}

const getUserByID = `
SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = ?`

func (q *queries) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByEmail = `
SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = ?`

func (q *queries) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createRenewalToken = `
INSERT INTO renewal_tokens (id, token, token_hash, created_at) VALUES (?, ?, ?, ?)`

func (q *queries) CreateRenewalToken(ctx context.Context, id, token, hash string, now time.Time) error {
	_, err := q.db.ExecContext(ctx, createRenewalToken, id, token, hash, now)
	return err
}

// token_hash narrows the scan via the index; token settles exact equality.
const countRenewalTokens = `
SELECT COUNT(*) FROM renewal_tokens WHERE token_hash = ? AND token = ?`

func (q *queries) CountRenewalTokens(ctx context.Context, token, hash string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRenewalTokens, hash, token).Scan(&n)
	return n, err
}

const deleteRenewalTokens = `
DELETE FROM renewal_tokens WHERE token_hash = ? AND token = ?`

func (q *queries) DeleteRenewalTokens(ctx context.Context, token, hash string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteRenewalTokens, hash, token)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listRenewalTokens = `
SELECT id, token, created_at FROM renewal_tokens WHERE id > ? ORDER BY id LIMIT ?`

func (q *queries) ListRenewalTokens(ctx context.Context, after string, limit int) ([]domain.RenewalToken, error) {
	rows, err := q.db.QueryContext(ctx, listRenewalTokens, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RenewalToken
	for rows.Next() {
		var t domain.RenewalToken
		if err := rows.Scan(&t.ID, &t.Token, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const createNote = `
INSERT INTO notes (id, user_id, message, created_at) VALUES (?, ?, ?, ?)`

func (q *queries) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := q.db.ExecContext(ctx, createNote, n.ID, n.UserID, n.Message, n.CreatedAt)
	return err
}

const listNotesByUser = `
SELECT id, user_id, message, created_at FROM notes WHERE user_id = ? ORDER BY id`

func (q *queries) ListNotesByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := q.db.QueryContext(ctx, listNotesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

const getNote = `
SELECT id, user_id, message, created_at FROM notes WHERE user_id = ? AND id = ?`

func (q *queries) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	var n domain.Note
	err := q.db.QueryRowContext(ctx, getNote, userID, id).Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt)
	return n, err
}

const deleteNote = `
DELETE FROM notes WHERE user_id = ? AND id = ?`

func (q *queries) DeleteNote(ctx context.Context, userID, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteNote, userID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
