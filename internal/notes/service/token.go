package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// TokenService owns the credential lifecycle: issue, renew, revoke and
// verify. Renewal credentials are live only while the store holds them.
type TokenService struct {
	Store     store.Store
	Access    *jwtx.Codec
	Renewal   *jwtx.Codec
	AccessTTL time.Duration
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Issue signs an access and a renewal credential for subjectID and persists
// the renewal credential through st, which may be a transaction. Nothing is
// returned unless persistence succeeded.
func (s *TokenService) Issue(ctx context.Context, st store.Store, subjectID string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	access, err := s.Access.Sign(subjectID, s.accessTTL())
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	renewal, err := s.Renewal.Sign(subjectID, 0)
	if err != nil {
		return nil, fmt.Errorf("sign renewal token: %w", err)
	}

	recordID, err := st.RenewalTokens().PersistRenewalToken(ctx, renewal)
	if err != nil {
		return nil, storeErr("persist renewal token", err)
	}

	l.Info("credentials issued",
		slog.String("sub", subjectID),
		slog.String("renewal_record", recordID),
		slog.String("renewal_fp", cryptox.FingerprintToken(renewal)),
	)

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: renewal,
	}, nil
}

// Renew exchanges a stored renewal credential for a fresh access credential.
// The store is consulted before the signature so revoked credentials are
// reported as unknown even when they would still verify. The renewal
// credential itself is never reissued.
func (s *TokenService) Renew(ctx context.Context, renewal string) (*domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	if credentialAbsent(renewal) {
		return nil, ErrMissingCredential
	}

	ok, err := s.Store.RenewalTokens().RenewalTokenExists(ctx, renewal)
	if err != nil {
		return nil, storeErr("lookup renewal token", err)
	}
	if !ok {
		l.Info("renewal token not in store", slog.String("renewal_fp", cryptox.FingerprintToken(renewal)))
		return nil, ErrUnknownCredential
	}

	claims, err := s.Renewal.Verify(renewal)
	if err != nil {
		l.Warn("stored renewal token failed verification",
			slog.String("renewal_fp", cryptox.FingerprintToken(renewal)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	access, err := s.Access.Sign(claims.Subject, s.accessTTL())
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &domain.AccessToken{AccessToken: access}, nil
}

// Revoke deletes every stored record of renewal. The signature is not
// checked, so malformed or foreign strings are simply a no-op.
func (s *TokenService) Revoke(ctx context.Context, renewal string) (int64, error) {
	if credentialAbsent(renewal) {
		return 0, ErrMissingCredential
	}

	n, err := s.Store.RenewalTokens().RevokeRenewalToken(ctx, renewal)
	if err != nil {
		return 0, storeErr("revoke renewal token", err)
	}

	slogx.FromContext(ctx).Info("renewal token revoked",
		slog.String("renewal_fp", cryptox.FingerprintToken(renewal)),
		slog.Int64("records", n),
	)
	return n, nil
}

// Verify checks an access credential. It satisfies jwtx.Verifier so the
// access gate can use the service directly.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	claims, err := s.Access.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return claims, nil
}

// VerifyAccess returns the identity carried by a valid access credential.
func (s *TokenService) VerifyAccess(token string) (domain.Identity, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity(), nil
}
