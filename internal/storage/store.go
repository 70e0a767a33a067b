// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/scribe/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when creating a user whose email already exists.
var ErrEmailTaken = errors.New("email already registered")

// UserStore persists identity-provider accounts.
type UserStore interface {
	// CreateUser inserts a new user. Returns ErrEmailTaken on a duplicate email.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail looks a user up by normalized email.
	// Returns ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID looks a user up by ID. Returns ErrNotFound if missing.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser overwrites the mutable fields of an existing user.
	UpdateUser(ctx context.Context, user *models.User) error
}

// TranscriptStore persists the per-user transcript subtree.
type TranscriptStore interface {
	// AddTranscript appends a transcript under transcript.UserID.
	// The store assigns ID and CreatedAt; CreatedAt is strictly greater
	// than every earlier transcript of the same user.
	AddTranscript(ctx context.Context, transcript *models.Transcript) error

	// ListTranscripts returns a user's transcripts, newest first.
	// limit <= 0 means no limit.
	ListTranscripts(ctx context.Context, userID string, limit int) ([]*models.Transcript, error)
}

// Store combines every persistence concern of the backend.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	TranscriptStore

	// Close releases any resources held by the store.
	Close() error
}
