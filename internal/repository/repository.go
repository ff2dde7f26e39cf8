package repository

import (
	"context"

	"github.com/mini-blog-api/internal/database"
	"github.com/mini-blog-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Lookups return (nil, nil) when the row does not exist.
type ArticleRepository interface {
	List(ctx context.Context) ([]*models.ArticleSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, input *models.ArticleInput) (int64, error)
	Update(ctx context.Context, id int64, input *models.ArticleInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Article) error) error
}

// CommentRepository defines the interface for comment data operations.
// Lookups return (nil, nil) when the row does not exist.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Create(ctx context.Context, input *models.CommentInput) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Comment) error) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
