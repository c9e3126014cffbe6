package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrelay-backend/internal/shared/middleware"
	"bookrelay-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/books", c.AuthorHandler.GetBooks)
		authors.PATCH("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		// Static linking routes take priority over the :id wildcard.
		books.POST("/add-author", c.BookHandler.AddAuthor)
		books.DELETE("/remove-author", c.BookHandler.RemoveAuthor)
		books.GET("", c.BookHandler.GetAll)
		books.GET("/:id", c.BookHandler.GetByID)
		books.GET("/:id/authors", c.BookHandler.GetAuthors)
		books.PATCH("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
