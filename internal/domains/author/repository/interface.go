package repository

import (
	"context"

	"bookrelay-backend/internal/domains/author/model"
)

// Repository defines data access for the Author collection.
// No validation happens here: the repository trusts the caller for
// shape and only enforces identifier-based lookup/removal semantics.
type Repository interface {
	// Create appends the author to the collection and persists it.
	// The stored author always starts with an empty BookIDs slice,
	// whatever the input carries.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetAll returns the whole collection.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Author, error)

	// GetByBookID filters authors whose BookIDs contains the book.
	GetByBookID(ctx context.Context, bookID string) ([]model.Author, error)

	// Update replaces the stored record matching a.ID and persists.
	// Returns ErrAuthorNotFound when the id is unknown.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes the record with that id and persists.
	// A no-op, not an error, when the id does not exist.
	Delete(ctx context.Context, id string) error
}
