package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateBookRequest{
			Title:       "The Dispossessed",
			Description: "An ambiguous utopia.",
			AuthorIDs:   []string{"a1"},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := CreateBookRequest{Description: "desc", AuthorIDs: []string{"a1"}}
		assert.Error(t, req.Validate())
	})

	t.Run("empty author list", func(t *testing.T) {
		req := CreateBookRequest{Title: "T", Description: "D", AuthorIDs: []string{}}
		assert.Error(t, req.Validate())
	})

	t.Run("empty author id element", func(t *testing.T) {
		req := CreateBookRequest{Title: "T", Description: "D", AuthorIDs: []string{"a1", ""}}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateBookRequestValidate(t *testing.T) {
	title := "T"
	empty := ""

	t.Run("all fields absent", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("present scalars must be non-empty", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{Title: &title}.Validate())
		assert.Error(t, UpdateBookRequest{Title: &empty}.Validate())
		assert.Error(t, UpdateBookRequest{Description: &empty}.Validate())
	})

	t.Run("provided author list must be non-empty", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{AuthorIDs: []string{"a1"}}.Validate())
		assert.Error(t, UpdateBookRequest{AuthorIDs: []string{}}.Validate())
		assert.Error(t, UpdateBookRequest{AuthorIDs: []string{""}}.Validate())
	})
}

func TestBookHelpers(t *testing.T) {
	b := Book{ID: "b1", AuthorIDs: []string{"a1", "a2"}}

	assert.True(t, b.HasAuthor("a1"))
	assert.False(t, b.HasAuthor("a3"))

	b.RemoveAuthor("a1")
	assert.Equal(t, []string{"a2"}, b.AuthorIDs)

	// Removing an absent author is a no-op.
	b.RemoveAuthor("a3")
	assert.Equal(t, []string{"a2"}, b.AuthorIDs)
}
