package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Biography,
			validation.Required.Error("biography is required"),
		),
	)
}

// UpdateAuthorRequest - PATCH /v1/authors/:id
// All fields optional for partial updates: a nil field keeps the
// existing value, a present field must be non-empty.
type UpdateAuthorRequest struct {
	Name      *string `json:"name,omitempty"`
	Biography *string `json:"biography,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
		),
		validation.Field(&r.Biography,
			validation.NilOrNotEmpty.Error("biography must not be empty"),
		),
	)
}

// ApplyTo merges the patch over an existing author. BookIDs is
// deliberately untouched: back-references are not settable here.
func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Biography != nil {
		a.Biography = *r.Biography
	}
}
