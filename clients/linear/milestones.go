package linear

import (
	"context"
	"fmt"

	"linearcode/core"
	"linearcode/models"
)

const milestoneFields = `id name description targetDate project { id } createdAt updatedAt`

// CreateMilestone creates a project milestone from a prebuilt input map
func (c *LinearClient) CreateMilestone(ctx context.Context, input map[string]any) (*models.ProjectMilestone, error) {
	var resp struct {
		ProjectMilestoneCreate struct {
			Success          bool          `json:"success"`
			ProjectMilestone milestoneNode `json:"projectMilestone"`
		} `json:"projectMilestoneCreate"`
	}
	query := fmt.Sprintf(`mutation($input: ProjectMilestoneCreateInput!) {
		projectMilestoneCreate(input: $input) { success projectMilestone { %s } }
	}`, milestoneFields)
	if err := c.run(ctx, query, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	if !resp.ProjectMilestoneCreate.Success {
		return nil, fmt.Errorf("milestone creation was rejected by the API")
	}
	milestone := resp.ProjectMilestoneCreate.ProjectMilestone.toModel()
	return &milestone, nil
}

// GetMilestone returns a milestone by ID, or (nil, nil) if it does not exist
func (c *LinearClient) GetMilestone(ctx context.Context, id string) (*models.ProjectMilestone, error) {
	var resp struct {
		ProjectMilestone milestoneNode `json:"projectMilestone"`
	}
	query := fmt.Sprintf(`query($id: String!) { projectMilestone(id: $id) { %s } }`, milestoneFields)
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		if core.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch milestone %s: %w", id, err)
	}
	milestone := resp.ProjectMilestone.toModel()
	return &milestone, nil
}

// UpdateMilestone applies a prebuilt ProjectMilestoneUpdateInput map to a milestone
func (c *LinearClient) UpdateMilestone(
	ctx context.Context,
	id string,
	input map[string]any,
) (*models.ProjectMilestone, error) {
	var resp struct {
		ProjectMilestoneUpdate struct {
			Success          bool          `json:"success"`
			ProjectMilestone milestoneNode `json:"projectMilestone"`
		} `json:"projectMilestoneUpdate"`
	}
	query := fmt.Sprintf(`mutation($id: String!, $input: ProjectMilestoneUpdateInput!) {
		projectMilestoneUpdate(id: $id, input: $input) { success projectMilestone { %s } }
	}`, milestoneFields)
	if err := c.run(ctx, query, map[string]any{"id": id, "input": input}, &resp); err != nil {
		return nil, fmt.Errorf("failed to update milestone %s: %w", id, err)
	}
	if !resp.ProjectMilestoneUpdate.Success {
		return nil, fmt.Errorf("milestone update was rejected by the API")
	}
	milestone := resp.ProjectMilestoneUpdate.ProjectMilestone.toModel()
	return &milestone, nil
}

// DeleteMilestone deletes a project milestone
func (c *LinearClient) DeleteMilestone(ctx context.Context, id string) error {
	var resp struct {
		ProjectMilestoneDelete struct {
			Success bool `json:"success"`
		} `json:"projectMilestoneDelete"`
	}
	query := `mutation($id: String!) { projectMilestoneDelete(id: $id) { success } }`
	if err := c.run(ctx, query, map[string]any{"id": id}, &resp); err != nil {
		return fmt.Errorf("failed to delete milestone %s: %w", id, err)
	}
	if !resp.ProjectMilestoneDelete.Success {
		return fmt.Errorf("milestone deletion was rejected by the API")
	}
	return nil
}

// ListMilestones returns up to limit milestones of a project
func (c *LinearClient) ListMilestones(
	ctx context.Context,
	projectID string,
	limit int,
) ([]models.ProjectMilestone, error) {
	var resp struct {
		Project struct {
			ProjectMilestones struct {
				Nodes []milestoneNode `json:"nodes"`
			} `json:"projectMilestones"`
		} `json:"project"`
	}
	query := fmt.Sprintf(`query($id: String!, $first: Int) {
		project(id: $id) { projectMilestones(first: $first) { nodes { %s } } }
	}`, milestoneFields)
	if err := c.run(ctx, query, map[string]any{"id": projectID, "first": limit}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list milestones for project %s: %w", projectID, err)
	}

	milestones := make([]models.ProjectMilestone, 0, len(resp.Project.ProjectMilestones.Nodes))
	for _, node := range resp.Project.ProjectMilestones.Nodes {
		milestones = append(milestones, node.toModel())
	}
	return milestones, nil
}
