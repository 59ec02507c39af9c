package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearcode/core"
	"linearcode/models"
)

// CreateMilestone creates a milestone inside a project
func (s *TrackerService) CreateMilestone(
	ctx context.Context,
	params models.MilestoneCreateParams,
) (*models.ProjectMilestone, error) {
	log.Printf("📋 Starting to create milestone %s in project %s", params.Name, params.ProjectID)

	if params.ProjectID == "" {
		return nil, fmt.Errorf("milestone project ID cannot be empty")
	}
	if params.Name == "" {
		return nil, fmt.Errorf("milestone name cannot be empty")
	}

	input := map[string]any{
		"projectId": params.ProjectID,
		"name":      params.Name,
	}
	if params.Description != "" {
		input["description"] = params.Description
	}
	if params.TargetDate != nil {
		input["targetDate"] = *params.TargetDate
	}

	milestone, err := s.linearClient.CreateMilestone(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	log.Printf("✅ Created milestone %s (%s)", milestone.Name, milestone.ID)
	return milestone, nil
}

// GetMilestone returns a milestone by ID; a missing milestone resolves to mo.None
func (s *TrackerService) GetMilestone(
	ctx context.Context,
	id string,
) (mo.Option[*models.ProjectMilestone], error) {
	milestone, err := s.linearClient.GetMilestone(ctx, id)
	if err != nil {
		return mo.None[*models.ProjectMilestone](), fmt.Errorf("failed to get milestone: %w", err)
	}
	if milestone == nil {
		return mo.None[*models.ProjectMilestone](), nil
	}
	return mo.Some(milestone), nil
}

// UpdateMilestone applies a tri-state update to a milestone. Milestones
// record no owner of their own, so ownership is gated on the parent project.
func (s *TrackerService) UpdateMilestone(
	ctx context.Context,
	id string,
	params models.MilestoneUpdateParams,
	force bool,
) (*models.ProjectMilestone, error) {
	log.Printf("📋 Starting to update milestone %s", id)

	existing, err := s.linearClient.GetMilestone(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch milestone for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("milestone %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkMilestoneOwnership(ctx, existing, force); err != nil {
		return nil, err
	}

	input := map[string]any{}
	if name, ok := params.Name.Get(); ok {
		input["name"] = name
	}
	if description, ok := params.Description.Get(); ok {
		input["description"] = description
	}
	applyRelationship(input, "targetDate", params.TargetDate)

	milestone, err := s.linearClient.UpdateMilestone(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}

	log.Printf("✅ Updated milestone %s", milestone.Name)
	return milestone, nil
}

// DeleteMilestone deletes a milestone; deleting a missing one fails explicitly
func (s *TrackerService) DeleteMilestone(ctx context.Context, id string, force bool) error {
	log.Printf("📋 Starting to delete milestone %s", id)

	existing, err := s.linearClient.GetMilestone(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch milestone for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("milestone %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkMilestoneOwnership(ctx, existing, force); err != nil {
		return err
	}

	if err := s.linearClient.DeleteMilestone(ctx, id); err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}

	log.Printf("✅ Deleted milestone %s", id)
	return nil
}

// ListMilestones returns up to limit milestones of a project
func (s *TrackerService) ListMilestones(
	ctx context.Context,
	projectID string,
	limit int,
) ([]models.ProjectMilestone, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project ID cannot be empty")
	}
	milestones, err := s.linearClient.ListMilestones(ctx, projectID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

func (s *TrackerService) checkMilestoneOwnership(
	ctx context.Context,
	milestone *models.ProjectMilestone,
	force bool,
) error {
	if !s.safetyChecks || force {
		return nil
	}
	if milestone.ProjectID == "" {
		return nil
	}

	project, err := s.linearClient.GetProject(ctx, milestone.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to fetch parent project for ownership check: %w", err)
	}
	if project == nil {
		return nil
	}
	return s.checkOwnership(ctx, "milestone", milestone.ID, projectOwner(project), force)
}
