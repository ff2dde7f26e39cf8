package service

import (
	"context"
	"net/http"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
	"github.com/mini-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context) ([]*models.ArticleSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64) ([]models.CommentThread, error)
	Create(ctx context.Context, input *models.CommentInput) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error
	StreamComments(ctx context.Context, w http.ResponseWriter, format string) error
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Export  ExportService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	v := validation.NewValidator()

	return &Services{
		Article: newArticleService(repos.Article, v, log),
		Comment: newCommentService(repos.Comment, v, log),
		Export:  newExportService(repos, log),
	}
}
