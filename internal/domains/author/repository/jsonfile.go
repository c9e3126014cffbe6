package repository

import (
	"context"
	"fmt"

	"bookrelay-backend/internal/domains/author/model"
	"bookrelay-backend/internal/infrastructure/storage"
)

// jsonFileRepository persists authors through a JSON snapshot
// collection. Every mutation is one read-modify-write cycle under the
// collection's single-writer gate.
type jsonFileRepository struct {
	col *storage.Collection[model.Author]
}

func NewJSONFileRepository(col *storage.Collection[model.Author]) Repository {
	return &jsonFileRepository{col: col}
}

func (r *jsonFileRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	stored := *a
	// Back-references start empty regardless of input; only book
	// operations may grow them.
	stored.BookIDs = []string{}

	err := r.col.Mutate(ctx, func(authors []model.Author) ([]model.Author, error) {
		return append(authors, stored), nil
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	return r.col.LoadAll(ctx)
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id string) (*model.Author, error) {
	authors, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], nil
		}
	}

	return nil, fmt.Errorf("%w: id %s", model.ErrAuthorNotFound, id)
}

func (r *jsonFileRepository) GetByBookID(ctx context.Context, bookID string) ([]model.Author, error) {
	authors, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Author, 0)
	for _, a := range authors {
		if a.HasBook(bookID) {
			matched = append(matched, a)
		}
	}

	return matched, nil
}

func (r *jsonFileRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	updated := *a

	err := r.col.Mutate(ctx, func(authors []model.Author) ([]model.Author, error) {
		for i := range authors {
			if authors[i].ID == updated.ID {
				authors[i] = updated
				return authors, nil
			}
		}
		return nil, fmt.Errorf("%w: id %s", model.ErrAuthorNotFound, updated.ID)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *jsonFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(authors []model.Author) ([]model.Author, error) {
		kept := authors[:0]
		for _, a := range authors {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		return kept, nil
	})
}
