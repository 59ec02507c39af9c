package services

import (
	"context"

	"github.com/samber/mo"

	"linearcode/models"
)

// TrackerService defines ownership-gated CRUD operations over the issue
// tracker. Reads on missing entities resolve to mo.None; mutations on
// missing entities fail with a "not found" error. Mutations on entities not
// owned by the acting user fail with an ownership error unless force is set.
type TrackerService interface {
	AuthTest(ctx context.Context) (*models.User, error)

	CreateIssue(ctx context.Context, params models.IssueCreateParams) (*models.Issue, error)
	GetIssue(ctx context.Context, id string) (mo.Option[*models.Issue], error)
	UpdateIssue(ctx context.Context, id string, params models.IssueUpdateParams, force bool) (*models.Issue, error)
	DeleteIssue(ctx context.Context, id string, force bool) error
	ListIssues(ctx context.Context, filter models.IssueFilter, limit int) ([]models.Issue, error)

	CreateComment(ctx context.Context, params models.CommentCreateParams) (*models.Comment, error)
	GetComment(ctx context.Context, id string) (mo.Option[*models.Comment], error)
	UpdateComment(ctx context.Context, id string, params models.CommentUpdateParams, force bool) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string, force bool) error
	ListComments(ctx context.Context, issueID string, limit int) ([]models.Comment, error)

	CreateProject(ctx context.Context, params models.ProjectCreateParams) (*models.Project, error)
	GetProject(ctx context.Context, id string) (mo.Option[*models.Project], error)
	UpdateProject(ctx context.Context, id string, params models.ProjectUpdateParams, force bool) (*models.Project, error)
	DeleteProject(ctx context.Context, id string, force bool) error
	ListProjects(ctx context.Context, teamID string, limit int) ([]models.Project, error)

	CreateMilestone(ctx context.Context, params models.MilestoneCreateParams) (*models.ProjectMilestone, error)
	GetMilestone(ctx context.Context, id string) (mo.Option[*models.ProjectMilestone], error)
	UpdateMilestone(
		ctx context.Context,
		id string,
		params models.MilestoneUpdateParams,
		force bool,
	) (*models.ProjectMilestone, error)
	DeleteMilestone(ctx context.Context, id string, force bool) error
	ListMilestones(ctx context.Context, projectID string, limit int) ([]models.ProjectMilestone, error)

	CreateRelation(ctx context.Context, params models.RelationCreateParams) (*models.IssueRelation, error)
	GetRelation(ctx context.Context, id string) (mo.Option[*models.IssueRelation], error)
	DeleteRelation(ctx context.Context, id string, force bool) error
	ListRelations(ctx context.Context, issueID string, limit int) ([]models.IssueRelation, error)
}

// StreamService defines the event stream manager consumed by the webhook
// processor and the dashboard transport.
type StreamService interface {
	Start()
	Stop()
	IsActive() bool
	StreamEvent(
		eventType string,
		eventContext models.EventContext,
		command *models.StreamEventCommand,
	) (*models.StreamEvent, error)
	History(limit int) []models.StreamEvent
	SetFilters(filters []string)
	Filters() []string
	ClearFilters()
}

// DedupService tracks already-processed webhook delivery IDs so redeliveries
// can be acknowledged without reprocessing.
type DedupService interface {
	// CheckAndMark returns true if the delivery ID has not been seen before,
	// marking it as seen. Returns false for duplicates.
	CheckAndMark(deliveryID string) bool
}
