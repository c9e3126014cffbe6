package repository

import (
	"context"

	"bookrelay-backend/internal/domains/book/model"
)

// Repository defines data access for the Book collection. Shape
// validation and relation invariants live in the service layer.
type Repository interface {
	// Create appends the book to the collection and persists it.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetAll returns the whole collection.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByID returns ErrBookNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Book, error)

	// GetByAuthorID filters books whose AuthorIDs contains the author.
	GetByAuthorID(ctx context.Context, authorID string) ([]model.Book, error)

	// Update replaces the stored record matching b.ID and persists.
	// Returns ErrBookNotFound when the id is unknown.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes the record with that id and persists.
	// A no-op, not an error, when the id does not exist.
	Delete(ctx context.Context, id string) error
}
