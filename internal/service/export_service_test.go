package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
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

func seedExport(t *testing.T, svc *service.Services) {
	t.Helper()
	ctx := context.Background()
	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Article.Create(ctx, &models.ArticleInput{Title: title, Content: "body", Author: "x"})
		require.NoError(t, err)
	}
}

func TestExportService_ArticlesNDJSON(t *testing.T) {
	svc, _, _ := newMockServices()
	seedExport(t, svc)

	rec := httptest.NewRecorder()
	require.NoError(t, svc.Export.StreamArticles(context.Background(), rec, service.FormatNDJSON))

	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=articles.ndjson", rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)

	var first models.Article
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "one", first.Title)
}

func TestExportService_ArticlesJSON(t *testing.T) {
	svc, _, _ := newMockServices()
	seedExport(t, svc)

	rec := httptest.NewRecorder()
	require.NoError(t, svc.Export.StreamArticles(context.Background(), rec, service.FormatJSON))

	var articles []models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	require.Len(t, articles, 3)
	assert.Equal(t, "three", articles[2].Title)
}

func TestExportService_EmptyJSONIsArray(t *testing.T) {
	svc, _, _ := newMockServices()

	rec := httptest.NewRecorder()
	require.NoError(t, svc.Export.StreamComments(context.Background(), rec, service.FormatJSON))
	assert.Equal(t, "[]", rec.Body.String())
}

func TestExportService_CommentsKeepParent(t *testing.T) {
	svc, _, _ := newMockServices()
	ctx := context.Background()

	parent, err := svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, Author: "a", Content: "top"})
	require.NoError(t, err)
	_, err = svc.Comment.Create(ctx, &models.CommentInput{ArticleID: 1, ParentID: &parent.ID, Author: "b", Content: "reply"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, svc.Export.StreamComments(ctx, rec, service.FormatNDJSON))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"parent_id":null`)
	assert.Contains(t, lines[1], `"parent_id":1`)
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	svc, _, _ := newMockServices()

	rec := httptest.NewRecorder()
	err := svc.Export.StreamArticles(context.Background(), rec, "csv")
	assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
	assert.Empty(t, rec.Body.String())
}

// brokenCursor yields its first article and then fails
type brokenCursor struct {
	*mocks.MockArticleRepository
	err error
}

func (b *brokenCursor) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	if err := callback(&models.Article{ID: 1, Title: "first"}); err != nil {
		return err
	}
	return b.err
}

func TestExportService_JSONFailureBeforeFirstRowWritesNothing(t *testing.T) {
	svc, repo, _ := newMockServices()
	boom := errors.New("connection refused")
	repo.Err = boom

	for _, format := range []string{service.FormatJSON, service.FormatNDJSON} {
		rec := httptest.NewRecorder()
		err := svc.Export.StreamArticles(context.Background(), rec, format)
		assert.ErrorIs(t, err, boom, format)
		assert.Empty(t, rec.Body.String(), format)
	}
}

func TestExportService_JSONFailureMidStreamClosesArray(t *testing.T) {
	boom := errors.New("cursor reset")
	repos := &repository.Repositories{
		Article: &brokenCursor{MockArticleRepository: mocks.NewMockArticleRepository(), err: boom},
		Comment: mocks.NewMockCommentRepository(),
	}
	svc := service.NewServices(repos, zerolog.Nop())

	rec := httptest.NewRecorder()
	err := svc.Export.StreamArticles(context.Background(), rec, service.FormatJSON)
	assert.ErrorIs(t, err, boom)

	var rows []models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows), "body: %s", rec.Body.String())
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].Title)
}
