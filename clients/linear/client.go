// Package linear implements the clients.LinearClient interface against the
// Linear GraphQL API using machinebox/graphql.
package linear

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"

	"linearcode/clients"
	"linearcode/core"
	"linearcode/models"
)

const defaultEndpoint = "https://api.linear.app/graphql"

// LinearClient talks to the Linear GraphQL API. One instance per API key;
// safe for concurrent use.
type LinearClient struct {
	gql    *graphql.Client
	apiKey string
}

// NewLinearClient creates a new Linear client with the provided API key
func NewLinearClient(apiKey string) clients.LinearClient {
	return &LinearClient{
		gql:    graphql.NewClient(defaultEndpoint),
		apiKey: apiKey,
	}
}

// NewLinearClientWithEndpoint creates a client against a custom endpoint (used in tests)
func NewLinearClientWithEndpoint(apiKey, endpoint string) clients.LinearClient {
	return &LinearClient{
		gql:    graphql.NewClient(endpoint),
		apiKey: apiKey,
	}
}

// run executes a single GraphQL request with auth headers applied
func (c *LinearClient) run(ctx context.Context, query string, vars map[string]any, resp any) error {
	req := graphql.NewRequest(query)
	for key, value := range vars {
		req.Var(key, value)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return c.gql.Run(ctx, req, resp)
}

// Viewer returns the identity of the authenticated account
func (c *LinearClient) Viewer(ctx context.Context) (*models.User, error) {
	var resp struct {
		Viewer userNode `json:"viewer"`
	}
	query := `query { viewer { id name displayName email } }`
	if err := c.run(ctx, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch viewer: %w", err)
	}
	user := resp.Viewer.toModel()
	return &user, nil
}

// Teams returns the teams visible to the authenticated account
func (c *LinearClient) Teams(ctx context.Context) ([]models.Team, error) {
	var resp struct {
		Teams struct {
			Nodes []teamNode `json:"nodes"`
		} `json:"teams"`
	}
	query := `query { teams { nodes { id name key } } }`
	if err := c.run(ctx, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	teams := make([]models.Team, 0, len(resp.Teams.Nodes))
	for _, node := range resp.Teams.Nodes {
		teams = append(teams, node.toModel())
	}
	return teams, nil
}

// WorkflowStates returns the workflow states for a team
func (c *LinearClient) WorkflowStates(ctx context.Context, teamID string) ([]models.WorkflowState, error) {
	var resp struct {
		WorkflowStates struct {
			Nodes []stateNode `json:"nodes"`
		} `json:"workflowStates"`
	}
	query := `query($filter: WorkflowStateFilter) {
		workflowStates(filter: $filter) { nodes { id name type team { id } } }
	}`
	vars := map[string]any{
		"filter": map[string]any{"team": map[string]any{"id": map[string]any{"eq": teamID}}},
	}
	if err := c.run(ctx, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch workflow states: %w", err)
	}

	states := make([]models.WorkflowState, 0, len(resp.WorkflowStates.Nodes))
	for _, node := range resp.WorkflowStates.Nodes {
		states = append(states, node.toModel())
	}
	return states, nil
}

// GetUser returns a user by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var resp struct {
		User userNode `json:"user"`
	}
	query := `query($id: String!) { user(id: $id) { id name displayName email } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	user := resp.User.toModel()
	return &user, nil
}

// GetLabel returns a label by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	var resp struct {
		IssueLabel labelNode `json:"issueLabel"`
	}
	query := `query($id: String!) { issueLabel(id: $id) { id name color } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch label %s: %w", id, err)
	}
	label := resp.IssueLabel.toModel()
	return &label, nil
}
