// Package storetest holds behaviour checks shared by every store driver.
package storetest

import (
	"testing"

	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/idx"
	"github.com/stretchr/testify/require"
)

// RunRenewalTokens exercises a RenewalTokens implementation. Token values are
// unique per run so a shared backend can be reused between runs.
func RunRenewalTokens(t *testing.T, rt store.RenewalTokens) {
	t.Helper()
	ctx := t.Context()
	prefix := idx.New().String() + "-"

	t.Run("unknown token does not exist", func(t *testing.T) {
		ok, err := rt.RenewalTokenExists(ctx, prefix+"never-stored")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("persist then exists", func(t *testing.T) {
		id, err := rt.PersistRenewalToken(ctx, prefix+"a")
		require.NoError(t, err)
		require.NotEmpty(t, id)

		ok, err := rt.RenewalTokenExists(ctx, prefix+"a")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("exact match only", func(t *testing.T) {
		ok, err := rt.RenewalTokenExists(ctx, prefix+"a ")
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = rt.RenewalTokenExists(ctx, prefix+"A")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("persist never deduplicates and revoke removes all", func(t *testing.T) {
		first, err := rt.PersistRenewalToken(ctx, prefix+"b")
		require.NoError(t, err)
		second, err := rt.PersistRenewalToken(ctx, prefix+"b")
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		n, err := rt.RevokeRenewalToken(ctx, prefix+"b")
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		ok, err := rt.RenewalTokenExists(ctx, prefix+"b")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		n, err := rt.RevokeRenewalToken(ctx, prefix+"b")
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("revoke leaves other tokens", func(t *testing.T) {
		ok, err := rt.RenewalTokenExists(ctx, prefix+"a")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("list pages cover every record", func(t *testing.T) {
		want := map[string]bool{}
		for _, s := range []string{"l1", "l2", "l3", "l4", "l5"} {
			_, err := rt.PersistRenewalToken(ctx, prefix+s)
			require.NoError(t, err)
			want[prefix+s] = true
		}

		seen := map[string]bool{}
		cursor := ""
		for range 10_000 {
			page, next, err := rt.ListRenewalTokens(ctx, cursor, 2)
			require.NoError(t, err)
			for _, r := range page {
				require.NotEmpty(t, r.ID)
				seen[r.Token] = true
			}
			if next == "" {
				break
			}
			cursor = next
		}

		for tok := range want {
			require.True(t, seen[tok], "token %q missing from listing", tok)
		}
	})
}
