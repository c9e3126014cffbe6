package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrelay-backend/internal/domains/author/model"
	"bookrelay-backend/internal/domains/author/service"
	"bookrelay-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author payload", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetAll - GET /v1/authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}

// GetBooks - GET /v1/authors/:id/books
func (h *AuthorHandler) GetBooks(c *gin.Context) {
	id := c.Param("id")

	books, err := h.service.GetBooksByAuthorID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Update - PATCH /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author payload", err)
		return
	}

	updated, err := h.service.UpdateByID(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /v1/authors/:id?force=true|false
func (h *AuthorHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	force := c.Query("force") == "true"

	if err := h.service.DeleteByID(c.Request.Context(), id, force); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "author deleted"})
}
