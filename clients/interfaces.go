package clients

import (
	"context"

	"linearcode/models"
)

// LinearClient is the raw, typed operation surface against the Linear
// GraphQL API. Methods perform no ownership checks and no field resolution
// policy; that belongs to the tracker service layer. Get* methods return
// (nil, nil) when the entity does not exist - upstream API errors are
// propagated as-is otherwise.
//
// Mutation inputs are GraphQL input maps built by the caller so that
// tri-state field semantics (absent / null / value) survive serialization.
type LinearClient interface {
	Viewer(ctx context.Context) (*models.User, error)
	Teams(ctx context.Context) ([]models.Team, error)
	WorkflowStates(ctx context.Context, teamID string) ([]models.WorkflowState, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetLabel(ctx context.Context, id string) (*models.Label, error)

	CreateIssue(ctx context.Context, input map[string]any) (*models.Issue, error)
	GetIssue(ctx context.Context, id string) (*models.Issue, error)
	UpdateIssue(ctx context.Context, id string, input map[string]any) (*models.Issue, error)
	DeleteIssue(ctx context.Context, id string) error
	ListIssues(ctx context.Context, filter models.IssueFilter, limit int) ([]models.Issue, error)

	CreateComment(ctx context.Context, input map[string]any) (*models.Comment, error)
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	UpdateComment(ctx context.Context, id string, input map[string]any) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	ListComments(ctx context.Context, issueID string, limit int) ([]models.Comment, error)

	CreateProject(ctx context.Context, input map[string]any) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, input map[string]any) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context, teamID string, limit int) ([]models.Project, error)

	CreateMilestone(ctx context.Context, input map[string]any) (*models.ProjectMilestone, error)
	GetMilestone(ctx context.Context, id string) (*models.ProjectMilestone, error)
	UpdateMilestone(ctx context.Context, id string, input map[string]any) (*models.ProjectMilestone, error)
	DeleteMilestone(ctx context.Context, id string) error
	ListMilestones(ctx context.Context, projectID string, limit int) ([]models.ProjectMilestone, error)

	CreateRelation(ctx context.Context, input map[string]any) (*models.IssueRelation, error)
	GetRelation(ctx context.Context, id string) (*models.IssueRelation, error)
	DeleteRelation(ctx context.Context, id string) error
	ListRelations(ctx context.Context, issueID string, limit int) ([]models.IssueRelation, error)
}

// OpenCodeClient executes extracted commands against an OpenCode server
type OpenCodeClient interface {
	ExecuteCommand(ctx context.Context, command models.Command) (*models.CommandResult, error)
	Health(ctx context.Context) error
}

// SocketIONotifier pushes stream events to connected dashboard clients
type SocketIONotifier interface {
	Emit(channel string, payload any)
}
