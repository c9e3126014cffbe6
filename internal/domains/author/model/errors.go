package model

import (
	"errors"

	"bookrelay-backend/internal/infrastructure/storage"
)

var (
	// ErrAuthorNotFound - referenced author id does not exist.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAuthorHasSoleBooks - deletion blocked because some book would
	// be left without any author. Only a force delete may proceed.
	ErrAuthorHasSoleBooks = errors.New("author is the only author of existing books")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasSoleBooks):
		return "AUTHOR_HAS_SOLE_BOOKS"
	case errors.Is(err, storage.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasSoleBooks):
		return 409
	case errors.Is(err, storage.ErrStorageUnavailable):
		return 503
	default:
		return 500
	}
}
