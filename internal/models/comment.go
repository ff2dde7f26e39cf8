package models

import (
	"time"
)

// Comment represents a comment on an article. ParentID is nil for top-level comments.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	ParentID  *int64    `json:"parent_id" db:"parent_id"`
	Author    string    `json:"author" db:"author"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsReply reports whether the comment answers another comment
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// CommentThread is a top-level comment together with its replies
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// CommentInput is the request body for creating a comment or reply
type CommentInput struct {
	ArticleID int64  `json:"article_id" validate:"required"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	Author    string `json:"author" validate:"required,max=100"`
	Content   string `json:"content" validate:"required"`
}

// HasParent reports whether a non-empty parent_id was supplied
func (in *CommentInput) HasParent() bool {
	return in.ParentID != nil && *in.ParentID != 0
}
