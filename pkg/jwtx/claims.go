package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token uses. A credential signed for one use never verifies as the other.
const (
	UseAccess  = "access"
	UseRenewal = "renewal"
)

// DefaultAccessTokenTTL is the validity window for access credentials.
const DefaultAccessTokenTTL = time.Hour

// Claims are the claims embedded in every credential. The subject is the
// only identity carried; it never contains secrets.
type Claims struct {
	jwt.RegisteredClaims

	// Use distinguishes access credentials from renewal credentials.
	Use string `json:"use"`
}

// Identity is the minimal payload carried by a credential.
type Identity struct {
	SubjectID string `json:"userID"`
}

// Identity returns the identity claim embedded in c.
func (c Claims) Identity() Identity {
	return Identity{SubjectID: c.Subject}
}

// NewClaims builds claims for subject. A ttl <= 0 produces claims without an
// exp, whose validity then depends entirely on the renewal store.
func NewClaims(subject, use string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       NewJTI(),
		},
		Use: use,
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. It keeps
// two credentials minted for the same subject in the same second distinct.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateExpiryWithLeeway checks exp and nbf against now, allowing leeway
// for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	now = now.UTC()

	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
