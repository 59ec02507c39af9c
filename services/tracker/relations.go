package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearcode/core"
	"linearcode/models"
)

// CreateRelation links two issues
func (s *TrackerService) CreateRelation(
	ctx context.Context,
	params models.RelationCreateParams,
) (*models.IssueRelation, error) {
	log.Printf("📋 Starting to create %s relation: %s -> %s", params.Type, params.IssueID, params.RelatedIssueID)

	if params.IssueID == "" || params.RelatedIssueID == "" {
		return nil, fmt.Errorf("relation requires both issue IDs")
	}
	relationType := params.Type
	if relationType == "" {
		relationType = models.RelationTypeRelated
	}

	input := map[string]any{
		"issueId":        params.IssueID,
		"relatedIssueId": params.RelatedIssueID,
		"type":           string(relationType),
	}
	relation, err := s.linearClient.CreateRelation(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue relation: %w", err)
	}

	log.Printf("✅ Created relation %s", relation.ID)
	return relation, nil
}

// GetRelation returns a relation by ID; a missing relation resolves to mo.None
func (s *TrackerService) GetRelation(
	ctx context.Context,
	id string,
) (mo.Option[*models.IssueRelation], error) {
	relation, err := s.linearClient.GetRelation(ctx, id)
	if err != nil {
		return mo.None[*models.IssueRelation](), fmt.Errorf("failed to get issue relation: %w", err)
	}
	if relation == nil {
		return mo.None[*models.IssueRelation](), nil
	}
	return mo.Some(relation), nil
}

// DeleteRelation deletes a relation. Relations record no owner of their own,
// so ownership is gated on the creator of the relation's source issue.
func (s *TrackerService) DeleteRelation(ctx context.Context, id string, force bool) error {
	log.Printf("📋 Starting to delete relation %s", id)

	existing, err := s.linearClient.GetRelation(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch relation for deletion: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("issue relation %s: %w", id, core.ErrNotFound)
	}

	if s.safetyChecks && !force && existing.IssueID != "" {
		issue, err := s.linearClient.GetIssue(ctx, existing.IssueID)
		if err != nil {
			return fmt.Errorf("failed to fetch source issue for ownership check: %w", err)
		}
		if issue != nil {
			if err := s.checkOwnership(ctx, "relation", id, issue.CreatorID, force); err != nil {
				return err
			}
		}
	}

	if err := s.linearClient.DeleteRelation(ctx, id); err != nil {
		return fmt.Errorf("failed to delete issue relation: %w", err)
	}

	log.Printf("✅ Deleted relation %s", id)
	return nil
}

// ListRelations returns up to limit relations of an issue
func (s *TrackerService) ListRelations(
	ctx context.Context,
	issueID string,
	limit int,
) ([]models.IssueRelation, error) {
	if issueID == "" {
		return nil, fmt.Errorf("issue ID cannot be empty")
	}
	relations, err := s.linearClient.ListRelations(ctx, issueID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list issue relations: %w", err)
	}
	return relations, nil
}
