package mocks

import (
	"context"
	"net/http"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/service"
)

// Verify interface compliance
var (
	_ service.ArticleService = (*MockArticleService)(nil)
	_ service.CommentService = (*MockCommentService)(nil)
	_ service.ExportService  = (*MockExportService)(nil)
)

// MockArticleService is a mock implementation of ArticleService.
// Unset funcs behave as an empty store.
type MockArticleService struct {
	ListFunc    func(ctx context.Context) ([]*models.ArticleSummary, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Article, error)
	CreateFunc  func(ctx context.Context, input *models.ArticleInput) (*models.Article, error)
	UpdateFunc  func(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error)
	DeleteFunc  func(ctx context.Context, id int64) (bool, error)
	CountFunc   func(ctx context.Context) (int, error)
}

func (m *MockArticleService) List(ctx context.Context) ([]*models.ArticleSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.ArticleSummary{}, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, service.ErrNotFound
}

func (m *MockArticleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &models.Article{ID: 1, Title: input.Title, Content: input.Content, Author: input.Author}, nil
}

func (m *MockArticleService) Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, service.ErrNotFound
}

func (m *MockArticleService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockArticleService) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListForArticleFunc func(ctx context.Context, articleID int64) ([]models.CommentThread, error)
	CreateFunc         func(ctx context.Context, input *models.CommentInput) (*models.Comment, error)
	DeleteFunc         func(ctx context.Context, id int64) (bool, error)
	CountFunc          func(ctx context.Context) (int, error)
}

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID int64) ([]models.CommentThread, error) {
	if m.ListForArticleFunc != nil {
		return m.ListForArticleFunc(ctx, articleID)
	}
	return []models.CommentThread{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, input *models.CommentInput) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &models.Comment{ID: 1, ArticleID: input.ArticleID, ParentID: input.ParentID, Author: input.Author, Content: input.Content}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCommentService) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	StreamArticlesFunc func(ctx context.Context, w http.ResponseWriter, format string) error
	StreamCommentsFunc func(ctx context.Context, w http.ResponseWriter, format string) error
}

func (m *MockExportService) StreamArticles(ctx context.Context, w http.ResponseWriter, format string) error {
	if m.StreamArticlesFunc != nil {
		return m.StreamArticlesFunc(ctx, w, format)
	}
	return nil
}

func (m *MockExportService) StreamComments(ctx context.Context, w http.ResponseWriter, format string) error {
	if m.StreamCommentsFunc != nil {
		return m.StreamCommentsFunc(ctx, w, format)
	}
	return nil
}
