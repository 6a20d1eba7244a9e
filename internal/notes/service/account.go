package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/idx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// AccountService registers users and checks their passwords. Credentials
// come from the TokenService.
type AccountService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a user and issues its first credential pair. The user row
// and the renewal record are written in one transaction.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidRequest
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateRegistration
	case !errors.Is(err, store.ErrNotFound):
		return nil, storeErr("lookup user", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	var (
		pair  *domain.TokenPair
		fnErr error
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				fnErr = ErrDuplicateRegistration
			} else {
				fnErr = storeErr("create user", err)
			}
			return fnErr
		}

		pair, fnErr = s.Tokens.Issue(ctx, tx, user.ID)
		return fnErr
	})
	if err != nil {
		if fnErr != nil {
			return nil, fnErr
		}
		return nil, storeErr("register", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return pair, nil
}

// Login checks the password and issues a new credential pair. Nothing is
// persisted when authentication fails.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidRequest
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownAccount
		}
		return nil, storeErr("lookup user", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login password mismatch", slog.String("user_id", user.ID))
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	return s.Tokens.Issue(ctx, s.Store, user.ID)
}
