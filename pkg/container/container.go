package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"bookrelay-backend/internal/config"
	"bookrelay-backend/internal/infrastructure/storage"

	authorhandler "bookrelay-backend/internal/domains/author/handler"
	authormodel "bookrelay-backend/internal/domains/author/model"
	authorrepo "bookrelay-backend/internal/domains/author/repository"
	authorservice "bookrelay-backend/internal/domains/author/service"
	bookhandler "bookrelay-backend/internal/domains/book/handler"
	bookmodel "bookrelay-backend/internal/domains/book/model"
	bookrepo "bookrelay-backend/internal/domains/book/repository"
	bookservice "bookrelay-backend/internal/domains/book/service"
)

// Container holds the full dependency graph of the application.
// Everything is a singleton built once at startup, in dependency
// order: config → collections → repositories → services → handlers.
type Container struct {
	Config *config.Config

	// Record store: one JSON snapshot collection per entity kind.
	AuthorCollection *storage.Collection[authormodel.Author]
	BookCollection   *storage.Collection[bookmodel.Book]

	AuthorRepo authorrepo.Repository
	BookRepo   bookrepo.Repository

	AuthorService authorservice.Service
	BookService   bookservice.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

// NewContainer builds and wires the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	c.AuthorCollection = storage.NewCollection[authormodel.Author](cfg.Storage.AuthorsPath())
	c.BookCollection = storage.NewCollection[bookmodel.Book](cfg.Storage.BooksPath())

	c.AuthorRepo = authorrepo.NewJSONFileRepository(c.AuthorCollection)
	c.BookRepo = bookrepo.NewJSONFileRepository(c.BookCollection)

	// The two services cross over: author deletion cascades into
	// books, book mutations repair author back-references.
	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookservice.NewBookService(c.BookRepo, c.AuthorRepo)

	c.AuthorHandler = authorhandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookhandler.NewBookHandler(c.BookService)

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("container initialized")

	return c, nil
}
