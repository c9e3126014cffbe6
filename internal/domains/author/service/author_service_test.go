package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrelay-backend/internal/domains/author/model"
	authorrepo "bookrelay-backend/internal/domains/author/repository"
	bookmodel "bookrelay-backend/internal/domains/book/model"
	bookrepo "bookrelay-backend/internal/domains/book/repository"
	bookservice "bookrelay-backend/internal/domains/book/service"
	"bookrelay-backend/internal/infrastructure/storage"
)

type fixture struct {
	authors    Service
	books      bookservice.Service
	authorRepo authorrepo.Repository
	bookRepo   bookrepo.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	authorCol := storage.NewCollection[model.Author](filepath.Join(dir, "authors.json"))
	bookCol := storage.NewCollection[bookmodel.Book](filepath.Join(dir, "books.json"))

	ar := authorrepo.NewJSONFileRepository(authorCol)
	br := bookrepo.NewJSONFileRepository(bookCol)

	return &fixture{
		authors:    NewAuthorService(ar, br),
		books:      bookservice.NewBookService(br, ar),
		authorRepo: ar,
		bookRepo:   br,
	}
}

func (f *fixture) createAuthor(t *testing.T, name string) *model.Author {
	t.Helper()
	a, err := f.authors.Create(context.Background(), &model.CreateAuthorRequest{
		Name:      name,
		Biography: name + " biography",
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) createBook(t *testing.T, title string, authorIDs ...string) *bookmodel.Book {
	t.Helper()
	b, err := f.books.Create(context.Background(), &bookmodel.CreateBookRequest{
		Title:       title,
		Description: title + " description",
		AuthorIDs:   authorIDs,
	})
	require.NoError(t, err)
	return b
}

func TestCreateAuthor(t *testing.T) {
	f := newFixture(t)

	a := f.createAuthor(t, "Ursula K. Le Guin")
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Ursula K. Le Guin", a.Name)
	assert.Empty(t, a.BookIDs)

	b := f.createAuthor(t, "Terry Pratchett")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetBooksByAuthorID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createAuthor(t, "One")
	other := f.createAuthor(t, "Two")
	b1 := f.createBook(t, "First", a.ID)
	f.createBook(t, "Second", other.ID)

	books, err := f.authors.GetBooksByAuthorID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, b1.ID, books[0].ID)

	_, err = f.authors.GetBooksByAuthorID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestUpdateAuthorPartialPatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createAuthor(t, "One")
	f.createBook(t, "First", a.ID)

	name := "Renamed"
	updated, err := f.authors.UpdateByID(ctx, a.ID, &model.UpdateAuthorRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	// Absent field keeps the existing value.
	assert.Equal(t, "One biography", updated.Biography)
	// Back-references are preserved, never settable through updates.
	require.Len(t, updated.BookIDs, 1)

	_, err = f.authors.UpdateByID(ctx, "missing", &model.UpdateAuthorRequest{Name: &name})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestDeleteAuthorNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.authors.DeleteByID(context.Background(), "missing", false)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestDeleteAuthorBlockedBySoleAuthoredBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createAuthor(t, "Sole")
	b := f.createBook(t, "Only Book", a.ID)

	err := f.authors.DeleteByID(ctx, a.ID, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAuthorHasSoleBooks)

	// The whole delete aborted: author and book unchanged.
	gotAuthor, err := f.authorRepo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, gotAuthor.BookIDs)

	gotBook, err := f.bookRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, gotBook.AuthorIDs)
}

func TestDeleteAuthorDetachesCoAuthoredBooks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createAuthor(t, "Leaving")
	co := f.createAuthor(t, "Staying")
	b := f.createBook(t, "Shared", a.ID, co.ID)

	require.NoError(t, f.authors.DeleteByID(ctx, a.ID, false))

	_, err := f.authorRepo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	gotBook, err := f.bookRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{co.ID}, gotBook.AuthorIDs)
}

func TestForceDeleteAuthorCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createAuthor(t, "Leaving")
	co := f.createAuthor(t, "Staying")
	sole := f.createBook(t, "Sole Authored", a.ID)
	shared := f.createBook(t, "Shared", a.ID, co.ID)

	require.NoError(t, f.authors.DeleteByID(ctx, a.ID, true))

	// The sole-authored book is gone with its author.
	_, err := f.bookRepo.GetByID(ctx, sole.ID)
	assert.ErrorIs(t, err, bookmodel.ErrBookNotFound)

	// The shared book only loses the reference.
	gotShared, err := f.bookRepo.GetByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{co.ID}, gotShared.AuthorIDs)

	_, err = f.authorRepo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
