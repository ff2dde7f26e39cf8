package repository

import (
	"context"
	"database/sql"

	"github.com/mini-blog-api/internal/database"
	"github.com/mini-blog-api/internal/models"
)

const commentColumns = `id, article_id, parent_id, author, content, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner, comment *models.Comment) error {
	var parentID sql.NullInt64
	err := row.Scan(
		&comment.ID, &comment.ArticleID, &parentID, &comment.Author,
		&comment.Content, &comment.CreatedAt,
	)
	if err != nil {
		return err
	}
	if parentID.Valid {
		id := parentID.Int64
		comment.ParentID = &id
	}
	return nil
}

// ListByArticle returns every comment of an article in chronological order
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var comment models.Comment
	err := scanComment(r.db.QueryRowContext(ctx, query, id), &comment)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Create inserts a new comment or reply and returns its storage-assigned ID
func (r *commentRepo) Create(ctx context.Context, input *models.CommentInput) (int64, error) {
	query := `
		INSERT INTO comments (article_id, parent_id, author, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var parentID sql.NullInt64
	if input.HasParent() {
		parentID = sql.NullInt64{Int64: *input.ParentID, Valid: true}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, query, input.ArticleID, parentID, input.Author, input.Content).Scan(&id)
	return id, err
}

// Delete removes a comment; replies go with it through the foreign key cascade
func (r *commentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return rowsAffected(result)
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

// StreamAll streams all comments for export
func (r *commentRepo) StreamAll(ctx context.Context, callback func(*models.Comment) error) error {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var comment models.Comment
		if err := scanComment(rows, &comment); err != nil {
			return err
		}

		if err := callback(&comment); err != nil {
			return err
		}
	}

	return rows.Err()
}
