package service

import (
	"context"
	"fmt"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
	"github.com/mini-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo      repository.ArticleRepository
	validator *validation.Validator
	log       zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repo repository.ArticleRepository, v *validation.Validator, log zerolog.Logger) *articleService {
	return &articleService{
		repo:      repo,
		validator: v,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// List returns all articles, newest first, in their summary form
func (s *articleService) List(ctx context.Context) ([]*models.ArticleSummary, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetByID returns the full article or ErrNotFound
func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Create validates and stores a new article, returning the stored row so
// that the ID and timestamps assigned by storage are included.
func (s *articleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	if errs := s.validator.ValidateArticle(input); len(errs) > 0 {
		return nil, invalid(errs)
	}

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.Info().Int64("article_id", id).Str("author", input.Author).Msg("Article created")

	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back article %d: %w", id, err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %d missing after insert", id)
	}
	return article, nil
}

// Update overwrites title, content and author of an existing article.
// Existence is checked before validation, so a missing article reports
// ErrNotFound even when the input is invalid.
func (s *articleService) Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if errs := s.validator.ValidateArticle(input); len(errs) > 0 {
		return nil, invalid(errs)
	}

	matched, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update article %d: %w", id, err)
	}
	if !matched {
		// Deleted between the lookup and the write
		return nil, ErrNotFound
	}

	s.log.Info().Int64("article_id", id).Msg("Article updated")

	return s.GetByID(ctx, id)
}

// Delete removes an article and, through storage cascades, its comments.
// It reports whether a row was removed.
func (s *articleService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete article %d: %w", id, err)
	}
	if deleted {
		s.log.Info().Int64("article_id", id).Msg("Article deleted")
	}
	return deleted, nil
}

// Count returns the number of stored articles
func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
