package tracker

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"linearcode/models"
)

// MockTrackerService is a mock implementation of the services.TrackerService interface
type MockTrackerService struct {
	mock.Mock
}

func (m *MockTrackerService) AuthTest(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockTrackerService) CreateIssue(
	ctx context.Context,
	params models.IssueCreateParams,
) (*models.Issue, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockTrackerService) GetIssue(ctx context.Context, id string) (mo.Option[*models.Issue], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Issue]), args.Error(1)
}

func (m *MockTrackerService) UpdateIssue(
	ctx context.Context,
	id string,
	params models.IssueUpdateParams,
	force bool,
) (*models.Issue, error) {
	args := m.Called(ctx, id, params, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockTrackerService) DeleteIssue(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrackerService) ListIssues(
	ctx context.Context,
	filter models.IssueFilter,
	limit int,
) ([]models.Issue, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockTrackerService) CreateComment(
	ctx context.Context,
	params models.CommentCreateParams,
) (*models.Comment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockTrackerService) GetComment(ctx context.Context, id string) (mo.Option[*models.Comment], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Comment]), args.Error(1)
}

func (m *MockTrackerService) UpdateComment(
	ctx context.Context,
	id string,
	params models.CommentUpdateParams,
	force bool,
) (*models.Comment, error) {
	args := m.Called(ctx, id, params, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockTrackerService) DeleteComment(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrackerService) ListComments(
	ctx context.Context,
	issueID string,
	limit int,
) ([]models.Comment, error) {
	args := m.Called(ctx, issueID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockTrackerService) CreateProject(
	ctx context.Context,
	params models.ProjectCreateParams,
) (*models.Project, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockTrackerService) GetProject(ctx context.Context, id string) (mo.Option[*models.Project], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Project]), args.Error(1)
}

func (m *MockTrackerService) UpdateProject(
	ctx context.Context,
	id string,
	params models.ProjectUpdateParams,
	force bool,
) (*models.Project, error) {
	args := m.Called(ctx, id, params, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockTrackerService) DeleteProject(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrackerService) ListProjects(
	ctx context.Context,
	teamID string,
	limit int,
) ([]models.Project, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockTrackerService) CreateMilestone(
	ctx context.Context,
	params models.MilestoneCreateParams,
) (*models.ProjectMilestone, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMilestone), args.Error(1)
}

func (m *MockTrackerService) GetMilestone(
	ctx context.Context,
	id string,
) (mo.Option[*models.ProjectMilestone], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.ProjectMilestone]), args.Error(1)
}

func (m *MockTrackerService) UpdateMilestone(
	ctx context.Context,
	id string,
	params models.MilestoneUpdateParams,
	force bool,
) (*models.ProjectMilestone, error) {
	args := m.Called(ctx, id, params, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMilestone), args.Error(1)
}

func (m *MockTrackerService) DeleteMilestone(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrackerService) ListMilestones(
	ctx context.Context,
	projectID string,
	limit int,
) ([]models.ProjectMilestone, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProjectMilestone), args.Error(1)
}

func (m *MockTrackerService) CreateRelation(
	ctx context.Context,
	params models.RelationCreateParams,
) (*models.IssueRelation, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueRelation), args.Error(1)
}

func (m *MockTrackerService) GetRelation(
	ctx context.Context,
	id string,
) (mo.Option[*models.IssueRelation], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.IssueRelation]), args.Error(1)
}

func (m *MockTrackerService) DeleteRelation(ctx context.Context, id string, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrackerService) ListRelations(
	ctx context.Context,
	issueID string,
	limit int,
) ([]models.IssueRelation, error) {
	args := m.Called(ctx, issueID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IssueRelation), args.Error(1)
}
