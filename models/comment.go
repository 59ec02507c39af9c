package models

import (
	"time"

	"github.com/samber/mo"
)

// Comment is a Linear comment snapshot
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	IssueID   string    `json:"issue_id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentCreateParams are the caller-supplied fields for comment creation
type CommentCreateParams struct {
	IssueID string `json:"issue_id"`
	Body    string `json:"body"`
}

// CommentUpdateParams follow the same tri-state convention as issue updates
type CommentUpdateParams struct {
	Body mo.Option[string]
}
