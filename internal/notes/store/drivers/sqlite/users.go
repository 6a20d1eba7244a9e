package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := u.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return mapConstraint(r.q.CreateUser(ctx, u, now))
}
