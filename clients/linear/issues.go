package linear

import (
	"context"
	"fmt"

	"linearcode/core"
	"linearcode/models"
)

const issueFields = `
	id identifier title description priority url
	creator { id } assignee { id } state { id name }
	team { id } project { id } parent { id }
	labels { nodes { id name color } }
	createdAt updatedAt
`

// CreateIssue creates an issue from a prebuilt IssueCreateInput map
func (c *LinearClient) CreateIssue(ctx context.Context, input map[string]any) (*models.Issue, error) {
	var resp struct {
		IssueCreate struct {
			Success bool      `json:"success"`
			Issue   issueNode `json:"issue"`
		} `json:"issueCreate"`
	}
	query := fmt.Sprintf(`mutation($input: IssueCreateInput!) {
		issueCreate(input: $input) { success issue { %s } }
	}`, issueFields)
	if err := c.run(ctx, query, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	if !resp.IssueCreate.Success {
		return nil, fmt.Errorf("issue creation was rejected by the API")
	}
	issue := resp.IssueCreate.Issue.toModel()
	return &issue, nil
}

// GetIssue returns an issue by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	var resp struct {
		Issue issueNode `json:"issue"`
	}
	query := fmt.Sprintf(`query($id: String!) { issue(id: $id) { %s } }`, issueFields)
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch issue %s: %w", id, err)
	}
	issue := resp.Issue.toModel()
	return &issue, nil
}

// UpdateIssue applies a prebuilt IssueUpdateInput map to an issue
func (c *LinearClient) UpdateIssue(ctx context.Context, id string, input map[string]any) (*models.Issue, error) {
	var resp struct {
		IssueUpdate struct {
			Success bool      `json:"success"`
			Issue   issueNode `json:"issue"`
		} `json:"issueUpdate"`
	}
	query := fmt.Sprintf(`mutation($id: String!, $input: IssueUpdateInput!) {
		issueUpdate(id: $id, input: $input) { success issue { %s } }
	}`, issueFields)
	if err := c.run(ctx, query, map[string]any{"id": id, "input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to update issue %s: %w", id, err)
	}
	if !resp.IssueUpdate.Success {
		return nil, fmt.Errorf("issue update was rejected by the API")
	}
	issue := resp.IssueUpdate.Issue.toModel()
	return &issue, nil
}

// DeleteIssue moves an issue to trash
func (c *LinearClient) DeleteIssue(ctx context.Context, id string) error {
	var resp struct {
		IssueDelete struct {
			Success bool `json:"success"`
		} `json:"issueDelete"`
	}
	query := `mutation($id: String!) { issueDelete(id: $id) { success } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		return fmt.Errorf("failed to delete issue %s: %w", id, err)
	}
	if !resp.IssueDelete.Success {
		return fmt.Errorf("issue deletion was rejected by the API")
	}
	return nil
}

// ListIssues returns up to limit issues matching the filter
func (c *LinearClient) ListIssues(
	ctx context.Context,
	filter models.IssueFilter,
	limit int,
) ([]models.Issue, error) {
	var resp struct {
		Issues struct {
			Nodes []issueNode `json:"nodes"`
		} `json:"issues"`
	}
	query := fmt.Sprintf(`query($filter: IssueFilter, $first: Int) {
		issues(filter: $filter, first: $first) { nodes { %s } }
	}`, issueFields)
	vars := map[string]any{"first": limit, "filter": buildIssueFilter(filter)}
	if err := c.run(ctx, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]models.Issue, 0, len(resp.Issues.Nodes))
	for _, node := range resp.Issues.Nodes {
		issues = append(issues, node.toModel())
	}
	return issues, nil
}

// buildIssueFilter converts an IssueFilter into Linear's IssueFilter input shape
func buildIssueFilter(filter models.IssueFilter) map[string]any {
	out := map[string]any{}
	if filter.TeamID != "" {
		out["team"] = map[string]any{"id": map[string]any{"eq": filter.TeamID}}
	}
	if filter.ProjectID != "" {
		out["project"] = map[string]any{"id": map[string]any{"eq": filter.ProjectID}}
	}
	if filter.StateID != "" {
		out["state"] = map[string]any{"id": map[string]any{"eq": filter.StateID}}
	}
	return out
}
