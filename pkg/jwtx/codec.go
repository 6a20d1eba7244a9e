package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrNoSecret    = errors.New("jwtx: empty signing secret")
)

// Verifier validates a credential and gives back its claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Codec signs and verifies HS256 credentials for a single use. Access and
// renewal credentials each get their own Codec and their own secret.
type Codec struct {
	Use    string
	Secret []byte

	// Now is the clock used for iat/exp. Defaults to time.Now.
	Now func() time.Time

	// Leeway tolerates clock skew when checking exp and nbf.
	Leeway time.Duration
}

// NewCodec returns a Codec for use keyed by secret.
func NewCodec(use string, secret []byte) *Codec {
	return &Codec{Use: use, Secret: secret}
}

func (c *Codec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Sign mints a credential for subject. With ttl <= 0 the token carries no exp.
func (c *Codec) Sign(subject string, ttl time.Duration) (string, error) {
	if len(c.Secret) == 0 {
		return "", ErrNoSecret
	}

	claims := NewClaims(subject, c.Use, ttl, c.now())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.Secret)
}

// Verify checks the signature first, then the use, then expiry, and returns
// the decoded claims. The HMAC comparison inside golang-jwt is constant time.
func (c *Codec) Verify(tokenStr string) (Claims, error) {
	if len(c.Secret) == 0 {
		return Claims{}, ErrNoSecret
	}
	if tokenStr == "" {
		return Claims{}, ErrMalformed
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}

	if claims.Use != c.Use {
		return Claims{}, fmt.Errorf("%w: token use %q", ErrInvalidSig, claims.Use)
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrMalformed)
	}

	if err := claims.ValidateExpiryWithLeeway(c.now(), c.Leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
