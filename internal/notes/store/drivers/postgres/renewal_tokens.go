package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/idx"
	"github.com/jackc/pgx/v5"
)

type renewalTokensRepo struct {
	q querier
}

func (r *renewalTokensRepo) PersistRenewalToken(ctx context.Context, token string) (string, error) {
	id := idx.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO renewal_tokens (id, token, token_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, token, cryptox.FingerprintToken(token), time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *renewalTokensRepo) RenewalTokenExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM renewal_tokens WHERE token_hash = $1 AND token = $2
		)
	`, cryptox.FingerprintToken(token), token).Scan(&exists)
	return exists, err
}

func (r *renewalTokensRepo) RevokeRenewalToken(ctx context.Context, token string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM renewal_tokens WHERE token_hash = $1 AND token = $2
	`, cryptox.FingerprintToken(token), token)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *renewalTokensRepo) ListRenewalTokens(
	ctx context.Context,
	cursor string,
	limit int,
) ([]domain.RenewalToken, string, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, token, created_at
		FROM renewal_tokens
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	page, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RenewalToken, error) {
		var t domain.RenewalToken
		err := row.Scan(&t.ID, &t.Token, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(page) == limit {
		next = page[len(page)-1].ID
	}
	return page, next, nil
}
