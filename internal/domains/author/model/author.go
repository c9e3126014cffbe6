package model

// Author is the core Author entity, independent of transport and
// storage concerns.
type Author struct {
	// Opaque unique identifier, assigned at creation, immutable.
	ID string `json:"id"`

	Name      string `json:"name"`
	Biography string `json:"biography"`

	// BookIDs is the derived back-reference mirroring Book.AuthorIDs.
	// It is never settable from the outside; the book-side services
	// maintain it so the bidirectional relation stays consistent.
	BookIDs []string `json:"bookIds"`
}

// HasBook reports whether the back-reference list contains the book.
func (a *Author) HasBook(bookID string) bool {
	for _, id := range a.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// AddBook appends a book id to the back-reference list if absent.
func (a *Author) AddBook(bookID string) {
	if !a.HasBook(bookID) {
		a.BookIDs = append(a.BookIDs, bookID)
	}
}

// RemoveBook drops a book id from the back-reference list.
func (a *Author) RemoveBook(bookID string) {
	kept := a.BookIDs[:0]
	for _, id := range a.BookIDs {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	a.BookIDs = kept
}
