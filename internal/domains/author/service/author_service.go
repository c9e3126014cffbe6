package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookrelay-backend/internal/domains/author/model"
	"bookrelay-backend/internal/domains/author/repository"
	bookmodel "bookrelay-backend/internal/domains/book/model"
	bookrepo "bookrelay-backend/internal/domains/book/repository"
)

// authorService implements Service. It coordinates the author side of
// the relationship: author deletion must repair or cascade into the
// referencing books before the author record goes away.
type authorService struct {
	authors repository.Repository
	books   bookrepo.Repository
}

func NewAuthorService(authors repository.Repository, books bookrepo.Repository) Service {
	return &authorService{
		authors: authors,
		books:   books,
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	a := &model.Author{
		// Random id, not time-based: same-instant creations must not collide.
		ID:        uuid.NewString(),
		Name:      req.Name,
		Biography: req.Biography,
		BookIDs:   []string{},
	}

	created, err := s.authors.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id string) (*model.Author, error) {
	return s.authors.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.authors.GetAll(ctx)
}

func (s *authorService) GetBooksByAuthorID(ctx context.Context, authorID string) ([]bookmodel.Book, error) {
	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	return s.books.GetByAuthorID(ctx, authorID)
}

func (s *authorService) UpdateByID(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error) {
	existing, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)

	return s.authors.Update(ctx, &updated)
}

func (s *authorService) DeleteByID(ctx context.Context, id string, force bool) error {
	if _, err := s.authors.GetByID(ctx, id); err != nil {
		return err
	}

	books, err := s.books.GetByAuthorID(ctx, id)
	if err != nil {
		return err
	}

	if force {
		if err := s.forceDetach(ctx, id, books); err != nil {
			return err
		}
	} else {
		// The whole delete aborts before any side effect if some book
		// would be orphaned.
		for _, b := range books {
			if len(b.AuthorIDs) == 1 {
				return fmt.Errorf("%w: author %s is the sole author of book %s", model.ErrAuthorHasSoleBooks, id, b.ID)
			}
		}

		for _, b := range books {
			b.RemoveAuthor(id)
			if _, err := s.books.Update(ctx, &b); err != nil {
				s.logCascadeFailure(id, b.ID, "remove author from book", err)
				return err
			}
		}
	}

	return s.authors.Delete(ctx, id)
}

// forceDetach deletes every book solely authored by the author and
// strips the reference from books that have co-authors.
func (s *authorService) forceDetach(ctx context.Context, authorID string, books []bookmodel.Book) error {
	for _, b := range books {
		if len(b.AuthorIDs) == 1 {
			if err := s.books.Delete(ctx, b.ID); err != nil {
				s.logCascadeFailure(authorID, b.ID, "delete sole-authored book", err)
				return err
			}
			continue
		}

		b.RemoveAuthor(authorID)
		if _, err := s.books.Update(ctx, &b); err != nil {
			s.logCascadeFailure(authorID, b.ID, "remove author from book", err)
			return err
		}
	}

	return nil
}

// logCascadeFailure records which sub-step of the non-transactional
// delete cascade failed and for which ids, so a partially-applied
// state can be repaired manually.
func (s *authorService) logCascadeFailure(authorID, bookID, step string, err error) {
	log.Error().
		Err(err).
		Str("author_id", authorID).
		Str("book_id", bookID).
		Str("step", step).
		Msg("author delete cascade aborted mid-way")
}
