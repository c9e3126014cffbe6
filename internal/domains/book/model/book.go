package model

// Book is the core Book entity.
//
// AuthorIDs is the source-of-truth side of the author relation and is
// never empty after a successful creation: every supported operation
// that would orphan a book fails instead.
type Book struct {
	// Opaque unique identifier, assigned at creation, immutable.
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	AuthorIDs []string `json:"authorIds"`
}

// HasAuthor reports whether the book already references the author.
func (b *Book) HasAuthor(authorID string) bool {
	for _, id := range b.AuthorIDs {
		if id == authorID {
			return true
		}
	}
	return false
}

// RemoveAuthor drops an author id from the relation list.
func (b *Book) RemoveAuthor(authorID string) {
	kept := b.AuthorIDs[:0]
	for _, id := range b.AuthorIDs {
		if id != authorID {
			kept = append(kept, id)
		}
	}
	b.AuthorIDs = kept
}
