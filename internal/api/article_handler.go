package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
)

const articleNotFound = "Article not found"

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	respondOK(c, http.StatusOK, articles, "")
}

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, articleNotFound)
		return
	}

	article, err := h.services.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	respondOK(c, http.StatusOK, article, "")
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	respondOK(c, http.StatusCreated, article, "Article created successfully")
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, articleNotFound)
		return
	}

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	respondOK(c, http.StatusOK, article, "Article updated successfully")
}

// Delete handles DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, articleNotFound)
		return
	}

	deleted, err := h.services.Article.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, articleNotFound)
		return
	}
	respondOK(c, http.StatusOK, nil, "Article deleted successfully")
}

// ListComments handles GET /api/articles/:id/comments
func (h *ArticleHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		// No article can own these comments
		respondOK(c, http.StatusOK, []models.CommentThread{}, "")
		return
	}

	threads, err := h.services.Comment.ListForArticle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, articleNotFound)
		return
	}
	respondOK(c, http.StatusOK, threads, "")
}
