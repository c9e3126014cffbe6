package model

import (
	"errors"

	authormodel "bookrelay-backend/internal/domains/author/model"
	"bookrelay-backend/internal/infrastructure/storage"
)

var (
	// ErrBookNotFound - referenced book id does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrNoAuthors - the operation would leave the book with zero
	// authors, which no supported operation may do.
	ErrNoAuthors = errors.New("book must have at least one author")
)

// ToErrorCode converts an error to the API error code. Book operations
// also surface author lookups, so the author taxonomy is folded in.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, authormodel.ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrNoAuthors):
		return "INVALID_OPERATION"
	case errors.Is(err, storage.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, authormodel.ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrNoAuthors):
		return 400
	case errors.Is(err, storage.ErrStorageUnavailable):
		return 503
	default:
		return 500
	}
}
