package service

import (
	"context"
	"fmt"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
	"github.com/mini-blog-api/internal/thread"
	"github.com/mini-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo      repository.CommentRepository
	validator *validation.Validator
	log       zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repo repository.CommentRepository, v *validation.Validator, log zerolog.Logger) *commentService {
	return &commentService{
		repo:      repo,
		validator: v,
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns the comments of an article as two-level threads
func (s *commentService) ListForArticle(ctx context.Context, articleID int64) ([]models.CommentThread, error) {
	comments, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}

	threads := thread.Build(comments)

	s.log.Debug().
		Int64("article_id", articleID).
		Int("comments", len(comments)).
		Int("threads", len(threads)).
		Msg("Comment threads built")

	return threads, nil
}

// Create validates and stores a comment or reply and returns the stored flat row.
// A parent, when given, must exist and belong to the same article.
func (s *commentService) Create(ctx context.Context, input *models.CommentInput) (*models.Comment, error) {
	if errs := s.validator.ValidateComment(input); len(errs) > 0 {
		return nil, invalid(errs)
	}

	if input.HasParent() {
		parent, err := s.repo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment %d: %w", *input.ParentID, err)
		}
		if parent == nil {
			return nil, invalid(validation.FieldErrors{"parent_id": "Parent comment does not exist"})
		}
		if parent.ArticleID != input.ArticleID {
			return nil, invalid(validation.FieldErrors{"parent_id": "Parent comment belongs to a different article"})
		}
	}

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	event := s.log.Info().Int64("comment_id", id).Int64("article_id", input.ArticleID)
	if input.HasParent() {
		event = event.Int64("parent_id", *input.ParentID)
	}
	event.Msg("Comment created")

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back comment %d: %w", id, err)
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d missing after insert", id)
	}
	return comment, nil
}

// Delete removes a comment and, through storage cascades, its replies.
// It reports whether a row was removed.
func (s *commentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete comment %d: %w", id, err)
	}
	if deleted {
		s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	}
	return deleted, nil
}

// Count returns the number of stored comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
