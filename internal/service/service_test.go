package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mini-blog-api/internal/mocks"
	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockServices() (*service.Services, *mocks.MockArticleRepository, *mocks.MockCommentRepository) {
	articles := mocks.NewMockArticleRepository()
	comments := mocks.NewMockCommentRepository()
	svc := service.NewServices(&repository.Repositories{Article: articles, Comment: comments}, zerolog.Nop())
	return svc, articles, comments
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	return verr.Fields
}

func TestArticleService_Create(t *testing.T) {
	svc, repo, _ := newMockServices()
	ctx := context.Background()

	article, err := svc.Article.Create(ctx, &models.ArticleInput{Title: "Hello", Content: "World", Author: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), article.ID)
	assert.Equal(t, "Hello", article.Title)
	assert.False(t, article.CreatedAt.IsZero())
	assert.Len(t, repo.Articles, 1)
}

func TestArticleService_CreateInvalid(t *testing.T) {
	svc, repo, _ := newMockServices()

	_, err := svc.Article.Create(context.Background(), &models.ArticleInput{Content: "x"})
	fields := fieldErrors(t, err)
	assert.Equal(t, "Title is required", fields["title"])
	assert.Equal(t, "Author is required", fields["author"])
	assert.Empty(t, repo.Articles, "nothing should be stored")
}

func TestArticleService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newMockServices()

	_, err := svc.Article.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestArticleService_Update(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	created, err := svc.Article.Create(ctx, &models.ArticleInput{Title: "A", Content: "B", Author: "C"})
	require.NoError(t, err)

	updated, err := svc.Article.Update(ctx, created.ID, &models.ArticleInput{Title: "A2", Content: "B2", Author: "C2"})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestArticleService_UpdateMissingBeforeValidation(t *testing.T) {
	svc, _, _ := newMockServices()

	// Invalid input against a missing article reports not found
	_, err := svc.Article.Update(context.Background(), 7, &models.ArticleInput{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestArticleService_UpdateInvalid(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	created, err := svc.Article.Create(ctx, &models.ArticleInput{Title: "A", Content: "B", Author: "C"})
	require.NoError(t, err)

	_, err = svc.Article.Update(ctx, created.ID, &models.ArticleInput{Title: strings.Repeat("t", 256), Content: "B", Author: "C"})
	fields := fieldErrors(t, err)
	assert.Equal(t, "Title must be less than 255 characters", fields["title"])

	got, err := svc.Article.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}

func TestArticleService_Delete(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	created, err := svc.Article.Create(ctx, &models.ArticleInput{Title: "A", Content: "B", Author: "C"})
	require.NoError(t, err)

	deleted, err := svc.Article.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Article.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestArticleService_StorageErrorIsWrapped(t *testing.T) {
	svc, repo, _ := newMockServices()
	boom := errors.New("connection refused")
	repo.Err = boom

	_, err := svc.Article.List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestCommentService_CreateTopLevel(t *testing.T) {
	svc, _, _ := newMockServices()

	comment, err := svc.Comment.Create(context.Background(), &models.CommentInput{ArticleID: 1, Author: "Bob", Content: "Nice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), comment.ArticleID)
	assert.Nil(t, comment.ParentID)
}

func TestCommentService_CreateReply(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	parent, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, Author: "Bob", Content: "Nice"})
	require.NoError(t, err)

	reply, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, ParentID: &parent.ID, Author: "Ann", Content: "Thanks"})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestCommentService_ZeroParentIsTopLevel(t *testing.T) {
	svc, _, _ := newMockServices()
	zero := int64(0)

	comment, err := svc.Comment.Create(context.Background(), &models.CommentInput{ArticleID: 1, ParentID: &zero, Author: "Bob", Content: "Nice"})
	require.NoError(t, err)
	assert.Nil(t, comment.ParentID)
}

func TestCommentService_CreateRejectsMissingParent(t *testing.T) {
	svc, _, repo := newMockServices()
	missing := int64(99)

	_, err := svc.Comment.Create(context.Background(), &models.CommentInput{ArticleID: 1, ParentID: &missing, Author: "Bob", Content: "Nice"})
	fields := fieldErrors(t, err)
	assert.Equal(t, "Parent comment does not exist", fields["parent_id"])
	assert.Empty(t, repo.Comments)
}

func TestCommentService_CreateRejectsParentOnOtherArticle(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	parent, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, Author: "Bob", Content: "Nice"})
	require.NoError(t, err)

	_, err = svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 2, ParentID: &parent.ID, Author: "Ann", Content: "Hi"})
	fields := fieldErrors(t, err)
	assert.Equal(t, "Parent comment belongs to a different article", fields["parent_id"])
}

func TestCommentService_ValidationBeforeParentLookup(t *testing.T) {
	svc, _, _ := newMockServices()
	missing := int64(99)

	_, err := svc.Comment.Create(context.Background(), &models.CommentInput{ArticleID: 1, ParentID: &missing})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "author")
	assert.Contains(t, fields, "content")
	assert.NotContains(t, fields, "parent_id")
}

func TestCommentService_ListForArticle(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	a, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, Author: "a", Content: "first"})
	require.NoError(t, err)
	b, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, Author: "b", Content: "second"})
	require.NoError(t, err)
	_, err = svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, ParentID: &a.ID, Author: "c", Content: "reply"})
	require.NoError(t, err)
	_, err = svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 2, Author: "d", Content: "elsewhere"})
	require.NoError(t, err)

	threads, err := svc.Comment.ListForArticle(ctx, 1)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, a.ID, threads[0].ID)
	assert.Len(t, threads[0].Replies, 1)
	assert.Equal(t, b.ID, threads[1].ID)
	assert.Empty(t, threads[1].Replies)
	assert.NotNil(t, threads[1].Replies)
}

func TestCommentService_ListForArticleEmpty(t *testing.T) {
	svc, _, _ := newMockServices()

	threads, err := svc.Comment.ListForArticle(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, threads)
	assert.Empty(t, threads)
}

func TestValidationError_Message(t *testing.T) {
	err := &service.ValidationError{Fields: map[string]string{"title": "Title is required", "author": "Author is required"}}
	assert.Equal(t, "validation failed: author: Author is required; title: Title is required", err.Error())
}
