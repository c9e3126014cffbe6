package service

import (
	"context"

	authormodel "bookrelay-backend/internal/domains/author/model"
	"bookrelay-backend/internal/domains/book/model"
)

// Service defines business logic for the Book domain: straightforward
// reads plus the book side of the author↔book relationship maintenance.
type Service interface {
	// Create persists a new book and appends its id to every
	// referenced author. Every author id must resolve; the error names
	// the first missing one.
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)

	// GetByID returns ErrBookNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Book, error)

	// GetAll returns every book.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByAuthorID returns the author's books, ErrAuthorNotFound when
	// the author is unknown.
	GetByAuthorID(ctx context.Context, authorID string) ([]model.Book, error)

	// GetAuthorsByBookID resolves the book's author list. Ids that no
	// longer resolve are silently dropped; under the integrity
	// invariant that should not happen.
	GetAuthorsByBookID(ctx context.Context, bookID string) ([]authormodel.Author, error)

	// AddAuthor links an author to a book symmetrically. Idempotent:
	// linking an already-linked pair is a no-op returning the book
	// unchanged.
	AddAuthor(ctx context.Context, bookID, authorID string) (*model.Book, error)

	// RemoveAuthor unlinks an author from a book symmetrically.
	// Fails with ErrNoAuthors when the author is the book's sole one.
	RemoveAuthor(ctx context.Context, bookID, authorID string) (*model.Book, error)

	// UpdateByID applies a partial patch. A provided AuthorIDs list
	// replaces the relation: back-references of authors entering and
	// leaving the set are repaired, the book record is persisted
	// before the author-side deltas. An empty resulting author set is
	// rejected with ErrNoAuthors.
	UpdateByID(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error)

	// DeleteByID removes the book after stripping its id from every
	// referenced author. An unresolvable author aborts the cascade
	// before the book record itself is removed; the partial state is
	// logged for manual repair.
	DeleteByID(ctx context.Context, id string) error
}
