package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/idx"
)

type renewalTokensRepo struct {
	q *queries
}

func (r *renewalTokensRepo) PersistRenewalToken(ctx context.Context, token string) (string, error) {
	id := idx.New().String()
	if err := r.q.CreateRenewalToken(ctx, id, token, cryptox.FingerprintToken(token), time.Now().UTC()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *renewalTokensRepo) RenewalTokenExists(ctx context.Context, token string) (bool, error) {
	n, err := r.q.CountRenewalTokens(ctx, token, cryptox.FingerprintToken(token))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *renewalTokensRepo) RevokeRenewalToken(ctx context.Context, token string) (int64, error) {
	return r.q.DeleteRenewalTokens(ctx, token, cryptox.FingerprintToken(token))
}

func (r *renewalTokensRepo) ListRenewalTokens(
	ctx context.Context,
	cursor string,
	limit int,
) ([]domain.RenewalToken, string, error) {
	if limit <= 0 {
		limit = 100
	}

	page, err := r.q.ListRenewalTokens(ctx, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(page) == limit {
		next = page[len(page)-1].ID
	}
	return page, next, nil
}
