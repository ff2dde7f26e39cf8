package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
)

const commentNotFound = "Comment not found"

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.log, err, commentNotFound)
		return
	}
	respondOK(c, http.StatusCreated, comment, "Comment created successfully")
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, commentNotFound)
		return
	}

	deleted, err := h.services.Comment.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, commentNotFound)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, commentNotFound)
		return
	}
	respondOK(c, http.StatusOK, nil, "Comment deleted successfully")
}
