package service_test

import (
	"testing"

	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e := newEnv(t, newSQLiteStore(t))
	ctx := t.Context()

	pair, err := e.accounts.Register(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	id, err := e.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)

	user, err := e.store.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, id.SubjectID)
	require.NotEqual(t, "hunter22", user.PasswordHash)

	ok, err := e.store.RenewalTokens().RenewalTokenExists(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = e.accounts.Register(ctx, "alice@example.com", "other")
	require.ErrorIs(t, err, service.ErrDuplicateRegistration)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t, newSQLiteStore(t))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"no email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"no password", "a@b.c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.accounts.Register(t.Context(), tt.email, tt.password)
			require.ErrorIs(t, err, service.ErrInvalidRequest)
		})
	}
}

func TestRegisterIsAtomic(t *testing.T) {
	base := newSQLiteStore(t)
	e := newEnv(t, store.WithRenewalTokens(base, failingRenewalTokens{}))
	ctx := t.Context()

	pair, err := e.accounts.Register(ctx, "bob@example.com", "pw")
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
	require.Nil(t, pair)

	// The user row was rolled back with the failed issuance.
	_, err = base.Users().GetUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogin(t *testing.T) {
	base := newSQLiteStore(t)
	e := newEnv(t, base)
	ctx := t.Context()

	registered, err := e.accounts.Register(ctx, "carol@example.com", "correct horse")
	require.NoError(t, err)

	t.Run("success issues a fresh pair", func(t *testing.T) {
		pair, err := e.accounts.Login(ctx, "carol@example.com", "correct horse")
		require.NoError(t, err)
		require.NotEqual(t, registered.RefreshToken, pair.RefreshToken)

		ok, err := e.store.RenewalTokens().RenewalTokenExists(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := e.accounts.Login(ctx, "nobody@example.com", "pw")
		require.ErrorIs(t, err, service.ErrUnknownAccount)
	})

	t.Run("wrong password persists nothing", func(t *testing.T) {
		before := countRenewalRecords(t, base)

		_, err := e.accounts.Login(ctx, "carol@example.com", "wrong")
		require.ErrorIs(t, err, service.ErrAuthenticationFailed)

		require.Equal(t, before, countRenewalRecords(t, base))
	})

	t.Run("store down", func(t *testing.T) {
		down := newEnv(t, store.WithRenewalTokens(base, failingRenewalTokens{}))
		pair, err := down.accounts.Login(ctx, "carol@example.com", "correct horse")
		require.ErrorIs(t, err, service.ErrStoreUnavailable)
		require.Nil(t, pair)
	})
}

func countRenewalRecords(t *testing.T, s store.Store) int {
	t.Helper()

	total := 0
	cursor := ""
	for {
		page, next, err := s.RenewalTokens().ListRenewalTokens(t.Context(), cursor, 100)
		require.NoError(t, err)
		total += len(page)
		if next == "" {
			return total
		}
		cursor = next
	}
}
