package linear

import (
	"context"
	"fmt"

	"linearcode/core"
	"linearcode/models"
)

const commentFields = `id body url issue { id } user { id } createdAt updatedAt`

// CreateComment creates a comment from a prebuilt CommentCreateInput map
func (c *LinearClient) CreateComment(ctx context.Context, input map[string]any) (*models.Comment, error) {
	var resp struct {
		CommentCreate struct {
			Success bool        `json:"success"`
			Comment commentNode `json:"comment"`
		} `json:"commentCreate"`
	}
	query := fmt.Sprintf(`mutation($input: CommentCreateInput!) {
		commentCreate(input: $input) { success comment { %s } }
	}`, commentFields)
	if err := c.run(ctx, query, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	if !resp.CommentCreate.Success {
		return nil, fmt.Errorf("comment creation was rejected by the API")
	}
	comment := resp.CommentCreate.Comment.toModel()
	return &comment, nil
}

// GetComment returns a comment by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	var resp struct {
		Comment commentNode `json:"comment"`
	}
	query := fmt.Sprintf(`query($id: String!) { comment(id: $id) { %s } }`, commentFields)
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comment %s: %w", id, err)
	}
	comment := resp.Comment.toModel()
	return &comment, nil
}

// UpdateComment applies a prebuilt CommentUpdateInput map to a comment
func (c *LinearClient) UpdateComment(ctx context.Context, id string, input map[string]any) (*models.Comment, error) {
	var resp struct {
		CommentUpdate struct {
			Success bool        `json:"success"`
			Comment commentNode `json:"comment"`
		} `json:"commentUpdate"`
	}
	query := fmt.Sprintf(`mutation($id: String!, $input: CommentUpdateInput!) {
		commentUpdate(id: $id, input: $input) { success comment { %s } }
	}`, commentFields)
	if err := c.run(ctx, query, map[string]any{"id": id, "input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", id, err)
	}
	if !resp.CommentUpdate.Success {
		return nil, fmt.Errorf("comment update was rejected by the API")
	}
	comment := resp.CommentUpdate.Comment.toModel()
	return &comment, nil
}

// DeleteComment deletes a comment
func (c *LinearClient) DeleteComment(ctx context.Context, id string) error {
	var resp struct {
		CommentDelete struct {
			Success bool `json:"success"`
		} `json:"commentDelete"`
	}
	query := `mutation($id: String!) { commentDelete(id: $id) { success } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	if !resp.CommentDelete.Success {
		return fmt.Errorf("comment deletion was rejected by the API")
	}
	return nil
}

// ListComments returns up to limit comments on an issue
func (c *LinearClient) ListComments(ctx context.Context, issueID string, limit int) ([]models.Comment, error) {
	var resp struct {
		Comments struct {
			Nodes []commentNode `json:"nodes"`
		} `json:"comments"`
	}
	query := fmt.Sprintf(`query($filter: CommentFilter, $first: Int) {
		comments(filter: $filter, first: $first) { nodes { %s } }
	}`, commentFields)
	vars := map[string]any{
		"first":  limit,
		"filter": map[string]any{"issue": map[string]any{"id": map[string]any{"eq": issueID}}},
	}
	if err := c.run(ctx, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("failed to list comments for issue %s: %w", issueID, err)
	}

	comments := make([]models.Comment, 0, len(resp.Comments.Nodes))
	for _, node := range resp.Comments.Nodes {
		comments = append(comments, node.toModel())
	}
	return comments, nil
}
