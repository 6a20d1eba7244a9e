package domain

import "time"

// TokenPair is what register and login return. The renewal credential has
// already been persisted by the time a TokenPair exists.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessToken is what a successful renewal returns.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// RenewalToken models a stored renewal credential record. The record only
// proves the credential is live; the subject is inside the signed token.
type RenewalToken struct {
	ID        string
	Token     string
	CreatedAt time.Time
}
