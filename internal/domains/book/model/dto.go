package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AuthorIDs   []string `json:"authorIds"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("authorIds must be a non-empty list"),
			validation.Each(validation.Required.Error("author ids must not be empty")),
		),
	)
}

// UpdateBookRequest - PATCH /v1/books/:id
// Partial patch: nil means keep the existing value. A provided
// AuthorIDs list replaces the relation wholesale and must be non-empty.
type UpdateBookRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	AuthorIDs   []string `json:"authorIds,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description must not be empty"),
		),
		validation.Field(&r.AuthorIDs,
			validation.NilOrNotEmpty.Error("authorIds must not be empty when provided"),
			validation.Each(validation.Required.Error("author ids must not be empty")),
		),
	)
}

// ApplyTo merges the scalar patch fields over an existing book.
// The AuthorIDs delta is handled by the service, not here: swapping
// the relation implies repairing author back-references.
func (r *UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
}
