package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a tx-scoped Store cannot open a nested transaction.
type Store interface {
	Users() Users
	RenewalTokens() RenewalTokens
	Notes() Notes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and to reject duplicate registrations.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

// RenewalTokens is the set of live renewal credentials. Membership is the
// only thing it answers; it never inspects the token contents.
type RenewalTokens interface {
	// PersistRenewalToken inserts a record for token and returns the record id.
	// It never deduplicates.
	PersistRenewalToken(ctx context.Context, token string) (string, error)

	// RenewalTokenExists reports whether at least one record matches token exactly.
	RenewalTokenExists(ctx context.Context, token string) (bool, error)

	// RevokeRenewalToken deletes every record matching token and returns how
	// many were removed. Zero is not an error.
	RevokeRenewalToken(ctx context.Context, token string) (int64, error)

	// ListRenewalTokens pages through stored records in id order. Pass the
	// returned cursor to get the next page; an empty cursor means done.
	ListRenewalTokens(ctx context.Context, cursor string, limit int) ([]domain.RenewalToken, string, error)
}

type Notes interface {
	// CreateNote inserts a note (id is provided by app via ULID).
	CreateNote(ctx context.Context, n domain.Note) error

	// ListNotesByUser returns the user's notes, oldest first.
	ListNotesByUser(ctx context.Context, userID string) ([]domain.Note, error)

	// GetNote returns a note only if userID owns it.
	GetNote(ctx context.Context, userID, id string) (domain.Note, error)

	// DeleteNote removes a note only if userID owns it.
	DeleteNote(ctx context.Context, userID, id string) (int64, error)
}
