package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearcode/core"
	"linearcode/models"
)

// CreateIssue creates an issue, auto-selecting a team when none is given
func (s *TrackerService) CreateIssue(
	ctx context.Context,
	params models.IssueCreateParams,
) (*models.Issue, error) {
	log.Printf("📋 Starting to create issue: %s", params.Title)

	if params.Title == "" {
		return nil, fmt.Errorf("issue title cannot be empty")
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
		"title":  params.Title,
		"teamId": teamID,
	}
	if params.Description != "" {
		input["description"] = params.Description
	}
	if params.Priority != nil {
		input["priority"] = *params.Priority
	}
	if params.AssigneeID != nil {
		input["assigneeId"] = *params.AssigneeID
	}
	if params.StateID != nil {
		input["stateId"] = *params.StateID
	}
	if params.ProjectID != nil {
		input["projectId"] = *params.ProjectID
	}
	if params.ParentID != nil {
		input["parentId"] = *params.ParentID
	}
	if len(params.LabelIDs) > 0 {
		input["labelIds"] = s.resolveLabelIDs(ctx, params.LabelIDs)
	}

	issue, err := s.linearClient.CreateIssue(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	log.Printf("✅ Created issue %s (%s)", issue.Identifier, issue.ID)
	return issue, nil
}

// GetIssue returns an issue by ID; a missing issue resolves to mo.None
func (s *TrackerService) GetIssue(ctx context.Context, id string) (mo.Option[*models.Issue], error) {
	issue, err := s.linearClient.GetIssue(ctx, id)
	if err != nil {
		return mo.None[*models.Issue](), fmt.Errorf("failed to get issue: %w", err)
	}
	if issue == nil {
		return mo.None[*models.Issue](), nil
	}
	return mo.Some(issue), nil
}

// UpdateIssue applies a tri-state update: None leaves the field unchanged,
// Some(nil) clears the relationship, Some(&v) assigns it. Mutating a missing
// issue fails explicitly; ownership is gated on the issue's creator.
func (s *TrackerService) UpdateIssue(
	ctx context.Context,
	id string,
	params models.IssueUpdateParams,
	force bool,
) (*models.Issue, error) {
	log.Printf("📋 Starting to update issue %s", id)

	existing, err := s.linearClient.GetIssue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("issue %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "issue", id, existing.CreatorID, force); err != nil {
		return nil, err
	}

	input := map[string]any{}
	if title, ok := params.Title.Get(); ok {
		input["title"] = title
	}
	if description, ok := params.Description.Get(); ok {
		input["description"] = description
	}
	if priority, ok := params.Priority.Get(); ok {
		input["priority"] = priority
	}
	applyRelationship(input, "assigneeId", params.AssigneeID)
	applyRelationship(input, "stateId", params.StateID)
	applyRelationship(input, "projectId", params.ProjectID)
	applyRelationship(input, "parentId", params.ParentID)
	if labelIDs, ok := params.LabelIDs.Get(); ok {
		input["labelIds"] = s.resolveLabelIDs(ctx, labelIDs)
	}

	issue, err := s.linearClient.UpdateIssue(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	log.Printf("✅ Updated issue %s", issue.Identifier)
	return issue, nil
}

// DeleteIssue deletes an issue; deleting a missing issue fails explicitly
func (s *TrackerService) DeleteIssue(ctx context.Context, id string, force bool) error {
	log.Printf("📋 Starting to delete issue %s", id)

	existing, err := s.linearClient.GetIssue(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch issue for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("issue %s: %w", id, core.ErrNotFound)
	}

	if err := s.checkOwnership(ctx, "issue", id, existing.CreatorID, force); err != nil {
		return err
	}

	if err := s.linearClient.DeleteIssue(ctx, id); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}

	log.Printf("✅ Deleted issue %s", id)
	return nil
}

// ListIssues returns up to limit issues matching the filter
func (s *TrackerService) ListIssues(
	ctx context.Context,
	filter models.IssueFilter,
	limit int,
) ([]models.Issue, error) {
	issues, err := s.linearClient.ListIssues(ctx, filter, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// applyRelationship writes a tri-state relationship field into a GraphQL
// input map: absent options are skipped, Some(nil) writes an explicit null
// (clearing the relationship), Some(&v) writes the value.
func applyRelationship(input map[string]any, key string, field mo.Option[*string]) {
	value, ok := field.Get()
	if !ok {
		return
	}
	if value == nil {
		input[key] = nil
		return
	}
	input[key] = *value
}
