package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearcode/core"
	"linearcode/models"
)

// CreateProject creates a project, auto-selecting a team when none is given
func (s *TrackerService) CreateProject(
	ctx context.Context,
	params models.ProjectCreateParams,
) (*models.Project, error) {
	log.Printf("📋 Starting to create project: %s", params.Name)

	if params.Name == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}

	teamID := params.TeamID
	if teamID == "" {
		resolved, err := s.defaultTeamID(ctx)
		if err != nil {
			return nil, err
		}
		teamID = resolved
	}

	input := map[string]any{
		"name":    params.Name,
		"teamIds": []string{teamID},
	}
	if params.Description != "" {
		input["description"] = params.Description
	}
	if params.LeadID != nil {
		input["leadId"] = *params.LeadID
	}

	project, err := s.linearClient.CreateProject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("✅ Created project %s (%s)", project.Name, project.ID)
	return project, nil
}

// GetProject returns a project by ID; a missing project resolves to mo.None
func (s *TrackerService) GetProject(ctx context.Context, id string) (mo.Option[*models.Project], error) {
	project, err := s.linearClient.GetProject(ctx, id)
	if err != nil {
		return mo.None[*models.Project](), fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return mo.None[*models.Project](), nil
	}
	return mo.Some(project), nil
}

// UpdateProject applies a tri-state update to a project. Ownership is gated
// on the project's creator, falling back to its lead when the creator is unset.
func (s *TrackerService) UpdateProject(
	ctx context.Context,
	id string,
	params models.ProjectUpdateParams,
	force bool,
) (*models.Project, error) {
	log.Printf("📋 Starting to update project %s", id)

	existing, err := s.linearClient.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("project %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "project", id, projectOwner(existing), force); err != nil {
		return nil, err
	}

	input := map[string]any{}
	if name, ok := params.Name.Get(); ok {
		input["name"] = name
	}
	if description, ok := params.Description.Get(); ok {
		input["description"] = description
	}
	if state, ok := params.State.Get(); ok {
		input["state"] = state
	}
	applyRelationship(input, "leadId", params.LeadID)

	project, err := s.linearClient.UpdateProject(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	log.Printf("✅ Updated project %s", project.Name)
	return project, nil
}

// DeleteProject deletes a project; deleting a missing project fails explicitly
func (s *TrackerService) DeleteProject(ctx context.Context, id string, force bool) error {
	log.Printf("📋 Starting to delete project %s", id)

	existing, err := s.linearClient.GetProject(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch project for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("project %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "project", id, projectOwner(existing), force); err != nil {
		return err
	}

	if err := s.linearClient.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	log.Printf("✅ Deleted project %s", id)
	return nil
}

// ListProjects returns up to limit projects, optionally scoped to a team
func (s *TrackerService) ListProjects(
	ctx context.Context,
	teamID string,
	limit int,
) ([]models.Project, error) {
	projects, err := s.linearClient.ListProjects(ctx, teamID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func projectOwner(project *models.Project) string {
	if project.CreatorID != "" {
		return project.CreatorID
	}
	return project.LeadID
}
