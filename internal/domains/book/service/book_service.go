package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "bookrelay-backend/internal/domains/author/model"
	authorrepo "bookrelay-backend/internal/domains/author/repository"
	"bookrelay-backend/internal/domains/book/model"
	"bookrelay-backend/internal/domains/book/repository"
)

type bookService struct {
	books   repository.Repository
	authors authorrepo.Repository
}

func NewBookService(books repository.Repository, authors authorrepo.Repository) Service {
	return &bookService{
		books:   books,
		authors: authors,
	}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	// Validate every referenced author before persisting anything.
	for _, authorID := range req.AuthorIDs {
		if _, err := s.authors.GetByID(ctx, authorID); err != nil {
			return nil, err
		}
	}

	b := &model.Book{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AuthorIDs:   dedupe(req.AuthorIDs),
	}

	created, err := s.books.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	// Re-fetch each author fresh before mutating: the records loaded
	// during validation may be stale once the book save rewrote state.
	for _, authorID := range created.AuthorIDs {
		if err := s.linkAuthor(ctx, authorID, created.ID); err != nil {
			s.logRepairFailure(created.ID, authorID, "append book to author", err)
			return nil, err
		}
	}

	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.books.GetAll(ctx)
}

func (s *bookService) GetByAuthorID(ctx context.Context, authorID string) ([]model.Book, error) {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	return s.books.GetByAuthorID(ctx, authorID)
}

func (s *bookService) GetAuthorsByBookID(ctx context.Context, bookID string) ([]authormodel.Author, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	resolved := make([]authormodel.Author, 0, len(b.AuthorIDs))
	for _, authorID := range b.AuthorIDs {
		a, err := s.authors.GetByID(ctx, authorID)
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			// Dangling reference; drop it rather than fail the read.
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *a)
	}

	return resolved, nil
}

func (s *bookService) AddAuthor(ctx context.Context, bookID, authorID string) (*model.Book, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	a, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if b.HasAuthor(authorID) {
		return b, nil
	}

	b.AuthorIDs = append(b.AuthorIDs, authorID)
	if _, err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}

	a.AddBook(bookID)
	if _, err := s.authors.Update(ctx, a); err != nil {
		s.logRepairFailure(bookID, authorID, "append book to author", err)
		return nil, err
	}

	return b, nil
}

func (s *bookService) RemoveAuthor(ctx context.Context, bookID, authorID string) (*model.Book, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	a, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if len(b.AuthorIDs) == 1 && b.HasAuthor(authorID) {
		return nil, fmt.Errorf("%w: author %s is the sole author of book %s", model.ErrNoAuthors, authorID, bookID)
	}

	b.RemoveAuthor(authorID)
	if _, err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}

	a.RemoveBook(bookID)
	if _, err := s.authors.Update(ctx, a); err != nil {
		s.logRepairFailure(bookID, authorID, "remove book from author", err)
		return nil, err
	}

	return b, nil
}

func (s *bookService) UpdateByID(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error) {
	existing, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)

	var toAdd, toRemove []string
	if req.AuthorIDs != nil {
		newIDs := dedupe(req.AuthorIDs)
		if len(newIDs) == 0 {
			return nil, fmt.Errorf("%w: book %s", model.ErrNoAuthors, id)
		}

		for _, authorID := range newIDs {
			if _, err := s.authors.GetByID(ctx, authorID); err != nil {
				return nil, err
			}
		}

		toAdd = difference(newIDs, existing.AuthorIDs)
		toRemove = difference(existing.AuthorIDs, newIDs)
		updated.AuthorIDs = newIDs
	}

	persisted, err := s.books.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	// Author-side deltas run after the book persists. Not
	// transactional: a failure here leaves the state partially applied
	// and aborts the remaining repairs.
	for _, authorID := range toAdd {
		if err := s.linkAuthor(ctx, authorID, id); err != nil {
			s.logRepairFailure(id, authorID, "append book to author", err)
			return nil, err
		}
	}
	for _, authorID := range toRemove {
		if err := s.unlinkAuthor(ctx, authorID, id); err != nil {
			s.logRepairFailure(id, authorID, "remove book from author", err)
			return nil, err
		}
	}

	return persisted, nil
}

func (s *bookService) DeleteByID(ctx context.Context, id string) error {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Repair every author back-reference before the book record goes.
	// An unresolvable author aborts here, leaving earlier repairs in
	// place and the book record intact.
	for _, authorID := range b.AuthorIDs {
		if err := s.unlinkAuthor(ctx, authorID, id); err != nil {
			s.logRepairFailure(id, authorID, "remove book from author", err)
			return err
		}
	}

	return s.books.Delete(ctx, id)
}

// linkAuthor re-fetches the author and appends the book id to its
// back-references.
func (s *bookService) linkAuthor(ctx context.Context, authorID, bookID string) error {
	a, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return err
	}

	a.AddBook(bookID)
	_, err = s.authors.Update(ctx, a)
	return err
}

// unlinkAuthor re-fetches the author and drops the book id from its
// back-references.
func (s *bookService) unlinkAuthor(ctx context.Context, authorID, bookID string) error {
	a, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return err
	}

	a.RemoveBook(bookID)
	_, err = s.authors.Update(ctx, a)
	return err
}

// logRepairFailure records which back-reference repair failed and for
// which ids; the cascades are not transactional, so this is what a
// manual reconciliation works from.
func (s *bookService) logRepairFailure(bookID, authorID, step string, err error) {
	log.Error().
		Err(err).
		Str("book_id", bookID).
		Str("author_id", authorID).
		Str("step", step).
		Msg("book relation repair aborted mid-way")
}

// dedupe keeps the first occurrence of each id, preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// difference returns the ids present in a but not in b.
func difference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}

	var out []string
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
