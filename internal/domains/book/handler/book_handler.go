package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrelay-backend/internal/domains/book/model"
	"bookrelay-backend/internal/domains/book/service"
	"bookrelay-backend/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetAll - GET /v1/books?authorId=
// With the authorId filter the request fails when the author is
// unknown, matching the author-scoped listing.
func (h *BookHandler) GetAll(c *gin.Context) {
	if authorID := c.Query("authorId"); authorID != "" {
		books, err := h.service.GetByAuthorID(c.Request.Context(), authorID)
		if err != nil {
			response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
			return
		}
		response.Success(c, http.StatusOK, books)
		return
	}

	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, books)
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b)
}

// GetAuthors - GET /v1/books/:id/authors
func (h *BookHandler) GetAuthors(c *gin.Context) {
	id := c.Param("id")

	authors, err := h.service.GetAuthorsByBookID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// AddAuthor - POST /v1/books/add-author?bookId=&authorId=
func (h *BookHandler) AddAuthor(c *gin.Context) {
	bookID := c.Query("bookId")
	authorID := c.Query("authorId")
	if bookID == "" || authorID == "" {
		response.BadRequest(c, "bookId and authorId query parameters are required")
		return
	}

	b, err := h.service.AddAuthor(c.Request.Context(), bookID, authorID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b)
}

// RemoveAuthor - DELETE /v1/books/remove-author?bookId=&authorId=
func (h *BookHandler) RemoveAuthor(c *gin.Context) {
	bookID := c.Query("bookId")
	authorID := c.Query("authorId")
	if bookID == "" || authorID == "" {
		response.BadRequest(c, "bookId and authorId query parameters are required")
		return
	}

	b, err := h.service.RemoveAuthor(c.Request.Context(), bookID, authorID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Update - PATCH /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book payload", err)
		return
	}

	updated, err := h.service.UpdateByID(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "book deleted"})
}
