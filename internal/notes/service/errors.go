package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCredential     = errors.New("missing_credential")
	ErrUnknownCredential     = errors.New("unknown_credential")
	ErrInvalidCredential     = errors.New("invalid_credential")
	ErrStoreUnavailable      = errors.New("store_unavailable")
	ErrDuplicateRegistration = errors.New("duplicate_registration")
	ErrUnknownAccount        = errors.New("unknown_account")
	ErrAuthenticationFailed  = errors.New("authentication_failed")
	ErrInvalidRequest        = errors.New("invalid_request")
	ErrNotFound              = errors.New("not_found")
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// credentialAbsent reports whether a submitted credential should be treated
// as not provided. Browser clients send "null" and "undefined" when their
// local storage is empty.
func credentialAbsent(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "null", "undefined":
		return true
	}
	return false
}
