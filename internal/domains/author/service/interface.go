package service

import (
	"context"

	"bookrelay-backend/internal/domains/author/model"
	bookmodel "bookrelay-backend/internal/domains/book/model"
)

// Service defines business logic for the Author domain, including the
// author side of the author↔book relationship maintenance.
type Service interface {
	// Create persists a new author with a freshly generated id and an
	// empty book list.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetByID returns ErrAuthorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Author, error)

	// GetAll returns every author.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetBooksByAuthorID returns all books referencing the author.
	// Returns ErrAuthorNotFound when the author is unknown.
	GetBooksByAuthorID(ctx context.Context, authorID string) ([]bookmodel.Book, error)

	// UpdateByID applies a partial name/biography patch. The book
	// back-references are preserved from the existing record; they are
	// never settable through this path.
	UpdateByID(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error)

	// DeleteByID removes the author after repairing every referencing
	// book. When force is false the whole delete fails with
	// ErrAuthorHasSoleBooks if any book would be left author-less;
	// when force is true such books are deleted outright.
	//
	// Book-side repairs happen strictly before the author record is
	// removed; the cascade is not transactional, a mid-way failure
	// leaves earlier repairs in place and is logged for manual repair.
	DeleteByID(ctx context.Context, id string, force bool) error
}
