package repository

import (
	"context"
	"fmt"

	"bookrelay-backend/internal/domains/book/model"
	"bookrelay-backend/internal/infrastructure/storage"
)

type jsonFileRepository struct {
	col *storage.Collection[model.Book]
}

func NewJSONFileRepository(col *storage.Collection[model.Book]) Repository {
	return &jsonFileRepository{col: col}
}

func (r *jsonFileRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	stored := *b

	err := r.col.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		return append(books, stored), nil
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *jsonFileRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	return r.col.LoadAll(ctx)
}

func (r *jsonFileRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	books, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}

	return nil, fmt.Errorf("%w: id %s", model.ErrBookNotFound, id)
}

func (r *jsonFileRepository) GetByAuthorID(ctx context.Context, authorID string) ([]model.Book, error) {
	books, err := r.col.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Book, 0)
	for _, b := range books {
		if b.HasAuthor(authorID) {
			matched = append(matched, b)
		}
	}

	return matched, nil
}

func (r *jsonFileRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	updated := *b

	err := r.col.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		for i := range books {
			if books[i].ID == updated.ID {
				books[i] = updated
				return books, nil
			}
		}
		return nil, fmt.Errorf("%w: id %s", model.ErrBookNotFound, updated.ID)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *jsonFileRepository) Delete(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		kept := books[:0]
		for _, b := range books {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		return kept, nil
	})
}
