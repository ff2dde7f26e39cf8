package repository

import (
	"context"
	"database/sql"

	"github.com/mini-blog-api/internal/database"
	"github.com/mini-blog-api/internal/models"
)

const articleColumns = `id, title, content, author, created_at, updated_at`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List returns all articles, newest first, with content cut down to a description
func (r *articleRepo) List(ctx context.Context) ([]*models.ArticleSummary, error) {
	query := `
		SELECT id, title, SUBSTR(content, 1, $1) AS description, author, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, models.DescriptionLength)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Author, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Content, &article.Author,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Create inserts a new article and returns its storage-assigned ID.
// Timestamps come from column defaults.
func (r *articleRepo) Create(ctx context.Context, input *models.ArticleInput) (int64, error) {
	query := `
		INSERT INTO articles (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, input.Title, input.Content, input.Author).Scan(&id)
	return id, err
}

// Update overwrites title, content and author and bumps updated_at.
// It reports whether a row matched.
func (r *articleRepo) Update(ctx context.Context, id int64, input *models.ArticleInput) (bool, error) {
	query := `
		UPDATE articles
		SET title = $1, content = $2, author = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, input.Title, input.Content, input.Author, id)
	if err != nil {
		return false, err
	}
	return rowsAffected(result)
}

// Delete removes an article; its comments go with it through the foreign key cascade
func (r *articleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return rowsAffected(result)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// StreamAll streams all articles for export
func (r *articleRepo) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID, &article.Title, &article.Content, &article.Author,
			&article.CreatedAt, &article.UpdatedAt,
		)
		if err != nil {
			return err
		}

		if err := callback(&article); err != nil {
			return err
		}
	}

	return rows.Err()
}

func rowsAffected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
