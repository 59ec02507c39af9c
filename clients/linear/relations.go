package linear

import (
	"context"
	"fmt"

	"linearcode/core"
	"linearcode/models"
)

const relationFields = `id type issue { id } relatedIssue { id } createdAt`

// CreateRelation creates an issue relation from a prebuilt input map
func (c *LinearClient) CreateRelation(ctx context.Context, input map[string]any) (*models.IssueRelation, error) {
	var resp struct {
		IssueRelationCreate struct {
			Success       bool         `json:"success"`
			IssueRelation relationNode `json:"issueRelation"`
		} `json:"issueRelationCreate"`
	}
	query := fmt.Sprintf(`mutation($input: IssueRelationCreateInput!) {
		issueRelationCreate(input: $input) { success issueRelation { %s } }
	}`, relationFields)
	if err := c.run(ctx, query, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create issue relation: %w", err)
	}
	if !resp.IssueRelationCreate.Success {
		return nil, fmt.Errorf("issue relation creation was rejected by the API")
	}
	relation := resp.IssueRelationCreate.IssueRelation.toModel()
	return &relation, nil
}

// GetRelation returns an issue relation by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetRelation(ctx context.Context, id string) (*models.IssueRelation, error) {
	var resp struct {
		IssueRelation relationNode `json:"issueRelation"`
	}
	query := fmt.Sprintf(`query($id: String!) { issueRelation(id: $id) { %s } }`, relationFields)
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch issue relation %s: %w", id, err)
	}
	relation := resp.IssueRelation.toModel()
	return &relation, nil
}

// DeleteRelation deletes an issue relation
func (c *LinearClient) DeleteRelation(ctx context.Context, id string) error {
	var resp struct {
		IssueRelationDelete struct {
			Success bool `json:"success"`
		} `json:"issueRelationDelete"`
	}
	query := `mutation($id: String!) { issueRelationDelete(id: $id) { success } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		return fmt.Errorf("failed to delete issue relation %s: %w", id, err)
	}
	if !resp.IssueRelationDelete.Success {
		return fmt.Errorf("issue relation deletion was rejected by the API")
	}
	return nil
}

// ListRelations returns up to limit relations of an issue
func (c *LinearClient) ListRelations(
	ctx context.Context,
	issueID string,
	limit int,
) ([]models.IssueRelation, error) {
	var resp struct {
		Issue struct {
			Relations struct {
				Nodes []relationNode `json:"nodes"`
			} `json:"relations"`
		} `json:"issue"`
	}
	query := fmt.Sprintf(`query($id: String!, $first: Int) {
		issue(id: $id) { relations(first: $first) { nodes { %s } } }
	}`, relationFields)
	if err := c.run(ctx, query, map[string]any{"id": issueID, "first": limit}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list relations for issue %s: %w", issueID, err)
	}

	relations := make([]models.IssueRelation, 0, len(resp.Issue.Relations.Nodes))
	for _, node := range resp.Issue.Relations.Nodes {
		relations = append(relations, node.toModel())
	}
	return relations, nil
}
