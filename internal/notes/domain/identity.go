package domain

import "github.com/aussiebroadwan/notekeeper/pkg/jwtx"

// Identity is what a verified credential proves about the caller.
type Identity = jwtx.Identity
