package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearcode/core"
	"linearcode/models"
)

// CreateComment posts a comment on an issue
func (s *TrackerService) CreateComment(
	ctx context.Context,
	params models.CommentCreateParams,
) (*models.Comment, error) {
	log.Printf("📋 Starting to create comment on issue %s", params.IssueID)

	if params.IssueID == "" {
		return nil, fmt.Errorf("comment issue ID cannot be empty")
	}
	if params.Body == "" {
		return nil, fmt.Errorf("comment body cannot be empty")
	}

	input := map[string]any{
		"issueId": params.IssueID,
		"body":    params.Body,
	}
	comment, err := s.linearClient.CreateComment(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	log.Printf("✅ Created comment %s on issue %s", comment.ID, params.IssueID)
	return comment, nil
}

// GetComment returns a comment by ID; a missing comment resolves to mo.None
func (s *TrackerService) GetComment(ctx context.Context, id string) (mo.Option[*models.Comment], error) {
	comment, err := s.linearClient.GetComment(ctx, id)
	if err != nil {
		return mo.None[*models.Comment](), fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return mo.None[*models.Comment](), nil
	}
	return mo.Some(comment), nil
}

// UpdateComment edits a comment body; ownership is gated on the comment's author
func (s *TrackerService) UpdateComment(
	ctx context.Context,
	id string,
	params models.CommentUpdateParams,
	force bool,
) (*models.Comment, error) {
	log.Printf("📋 Starting to update comment %s", id)

	existing, err := s.linearClient.GetComment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("comment %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "comment", id, existing.UserID, force); err != nil {
		return nil, err
	}

	input := map[string]any{}
	if body, ok := params.Body.Get(); ok {
		input["body"] = body
	}

	comment, err := s.linearClient.UpdateComment(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	log.Printf("✅ Updated comment %s", id)
	return comment, nil
}

// DeleteComment deletes a comment; ownership is gated on the comment's author
func (s *TrackerService) DeleteComment(ctx context.Context, id string, force bool) error {
	log.Printf("📋 Starting to delete comment %s", id)

	existing, err := s.linearClient.GetComment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch comment for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("comment %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "comment", id, existing.UserID, force); err != nil {
		return err
	}

	if err := s.linearClient.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	log.Printf("✅ Deleted comment %s", id)
	return nil
}

// ListComments returns up to limit comments on an issue
func (s *TrackerService) ListComments(
	ctx context.Context,
	issueID string,
	limit int,
) ([]models.Comment, error) {
	if issueID == "" {
		return nil, fmt.Errorf("issue ID cannot be empty")
	}
	comments, err := s.linearClient.ListComments(ctx, issueID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
