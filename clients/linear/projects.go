package linear

import (
	"context"
	"fmt"

	"linearcode/core"
	"linearcode/models"
)

const projectFields = `
	id name description state url
	creator { id } lead { id } teams { nodes { id } }
	createdAt updatedAt
`

// CreateProject creates a project from a prebuilt ProjectCreateInput map
func (c *LinearClient) CreateProject(ctx context.Context, input map[string]any) (*models.Project, error) {
	var resp struct {
		ProjectCreate struct {
			Success bool        `json:"success"`
			Project projectNode `json:"project"`
		} `json:"projectCreate"`
	}
	query := fmt.Sprintf(`mutation($input: ProjectCreateInput!) {
		projectCreate(input: $input) { success project { %s } }
	}`, projectFields)
	if err := c.run(ctx, query, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if !resp.ProjectCreate.Success {
		return nil, fmt.Errorf("project creation was rejected by the API")
	}
	project := resp.ProjectCreate.Project.toModel()
	return &project, nil
}

// GetProject returns a project by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var resp struct {
		Project projectNode `json:"project"`
	}
	query := fmt.Sprintf(`query($id: String!) { project(id: $id) { %s } }`, projectFields)
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	project := resp.Project.toModel()
	return &project, nil
}

// UpdateProject applies a prebuilt ProjectUpdateInput map to a project
func (c *LinearClient) UpdateProject(ctx context.Context, id string, input map[string]any) (*models.Project, error) {
	var resp struct {
		ProjectUpdate struct {
			Success bool        `json:"success"`
			Project projectNode `json:"project"`
		} `json:"projectUpdate"`
	}
	query := fmt.Sprintf(`mutation($id: String!, $input: ProjectUpdateInput!) {
		projectUpdate(id: $id, input: $input) { success project { %s } }
	}`, projectFields)
	if err := c.run(ctx, query, map[string]any{"id": id, "input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", id, err)
	}
	if !resp.ProjectUpdate.Success {
		return nil, fmt.Errorf("project update was rejected by the API")
	}
	project := resp.ProjectUpdate.Project.toModel()
	return &project, nil
}

// DeleteProject moves a project to trash
func (c *LinearClient) DeleteProject(ctx context.Context, id string) error {
	var resp struct {
		ProjectDelete struct {
			Success bool `json:"success"`
		} `json:"projectDelete"`
	}
	query := `mutation($id: String!) { projectDelete(id: $id) { success } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if !resp.ProjectDelete.Success {
		return fmt.Errorf("project deletion was rejected by the API")
	}
	return nil
}

// ListProjects returns up to limit projects, optionally scoped to a team
func (c *LinearClient) ListProjects(ctx context.Context, teamID string, limit int) ([]models.Project, error) {
	if teamID != "" {
		return c.listTeamProjects(ctx, teamID, limit)
	}

	var resp struct {
		Projects struct {
			Nodes []projectNode `json:"nodes"`
		} `json:"projects"`
	}
	query := fmt.Sprintf(`query($first: Int) {
		projects(first: $first) { nodes { %s } }
	}`, projectFields)
	if err := c.run(ctx, query, map[string]any{"first": limit}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]models.Project, 0, len(resp.Projects.Nodes))
	for _, node := range resp.Projects.Nodes {
		projects = append(projects, node.toModel())
	}
	return projects, nil
}

func (c *LinearClient) listTeamProjects(ctx context.Context, teamID string, limit int) ([]models.Project, error) {
	var resp struct {
		Team struct {
			Projects struct {
				Nodes []projectNode `json:"nodes"`
			} `json:"projects"`
		} `json:"team"`
	}
	query := fmt.Sprintf(`query($id: String!, $first: Int) {
		team(id: $id) { projects(first: $first) { nodes { %s } } }
	}`, projectFields)
	if err := c.run(ctx, query, map[string]any{"id": teamID, "first": limit}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list projects for team %s: %w", teamID, err)
	}

	projects := make([]models.Project, 0, len(resp.Team.Projects.Nodes))
	for _, node := range resp.Team.Projects.Nodes {
		projects = append(projects, node.toModel())
	}
	return projects, nil
}
