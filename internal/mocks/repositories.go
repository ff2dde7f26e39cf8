package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mini-blog-api/internal/models"
	"github.com/mini-blog-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
)

// MockArticleRepository is a map-backed implementation of ArticleRepository.
// Each insert advances the clock by one second so ordering is deterministic.
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[int64]*models.Article
	Err      error
	nextID   int64
	clock    time.Time
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]*models.Article),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockArticleRepository) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MockArticleRepository) sorted() []*models.Article {
	out := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.ArticleSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	all := m.sorted()
	out := make([]*models.ArticleSummary, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		a := all[i]
		desc := []rune(a.Content)
		if len(desc) > models.DescriptionLength {
			desc = desc[:models.DescriptionLength]
		}
		out = append(out, &models.ArticleSummary{
			ID:          a.ID,
			Title:       a.Title,
			Description: string(desc),
			Author:      a.Author,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}
	return out, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, input *models.ArticleInput) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	now := m.tick()
	m.Articles[m.nextID] = &models.Article{
		ID:        m.nextID,
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return m.nextID, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id int64, input *models.ArticleInput) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return false, nil
	}
	a.Title = input.Title
	a.Content = input.Content
	a.Author = input.Author
	a.UpdatedAt = m.tick()
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), m.Err
}

func (m *MockArticleRepository) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	m.mu.Lock()
	if m.Err != nil {
		m.mu.Unlock()
		return m.Err
	}
	all := m.sorted()
	m.mu.Unlock()

	for _, a := range all {
		if err := callback(a); err != nil {
			return err
		}
	}
	return nil
}

// MockCommentRepository is a map-backed implementation of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[int64]*models.Comment
	Err      error
	nextID   int64
	clock    time.Time
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockCommentRepository) sorted() []*models.Comment {
	out := make([]*models.Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Comment, 0)
	for _, c := range m.sorted() {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, input *models.CommentInput) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	m.clock = m.clock.Add(time.Second)

	c := &models.Comment{
		ID:        m.nextID,
		ArticleID: input.ArticleID,
		Author:    input.Author,
		Content:   input.Content,
		CreatedAt: m.clock,
	}
	if input.HasParent() {
		parent := *input.ParentID
		c.ParentID = &parent
	}
	m.Comments[c.ID] = c
	return c.ID, nil
}

// Delete removes the comment and its direct replies
func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	for cid, c := range m.Comments {
		if c.ParentID != nil && *c.ParentID == id {
			delete(m.Comments, cid)
		}
	}
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Comments), m.Err
}

func (m *MockCommentRepository) StreamAll(ctx context.Context, callback func(*models.Comment) error) error {
	m.mu.Lock()
	if m.Err != nil {
		m.mu.Unlock()
		return m.Err
	}
	all := m.sorted()
	m.mu.Unlock()

	for _, c := range all {
		if err := callback(c); err != nil {
			return err
		}
	}
	return nil
}
