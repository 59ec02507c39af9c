package clients

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linearcode/models"
)

// MockLinearClient is a mock implementation of the LinearClient interface
type MockLinearClient struct {
	mock.Mock
}

func (m *MockLinearClient) Viewer(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockLinearClient) Teams(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockLinearClient) WorkflowStates(ctx context.Context, teamID string) ([]models.WorkflowState, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkflowState), args.Error(1)
}

func (m *MockLinearClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockLinearClient) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLinearClient) CreateIssue(ctx context.Context, input map[string]any) (*models.Issue, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockLinearClient) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockLinearClient) UpdateIssue(ctx context.Context, id string, input map[string]any) (*models.Issue, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockLinearClient) DeleteIssue(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinearClient) ListIssues(
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

func (m *MockLinearClient) CreateComment(ctx context.Context, input map[string]any) (*models.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockLinearClient) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockLinearClient) UpdateComment(ctx context.Context, id string, input map[string]any) (*models.Comment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockLinearClient) DeleteComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinearClient) ListComments(ctx context.Context, issueID string, limit int) ([]models.Comment, error) {
	args := m.Called(ctx, issueID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockLinearClient) CreateProject(ctx context.Context, input map[string]any) (*models.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockLinearClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockLinearClient) UpdateProject(ctx context.Context, id string, input map[string]any) (*models.Project, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockLinearClient) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinearClient) ListProjects(ctx context.Context, teamID string, limit int) ([]models.Project, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockLinearClient) CreateMilestone(
	ctx context.Context,
	input map[string]any,
) (*models.ProjectMilestone, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMilestone), args.Error(1)
}

func (m *MockLinearClient) GetMilestone(ctx context.Context, id string) (*models.ProjectMilestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMilestone), args.Error(1)
}

func (m *MockLinearClient) UpdateMilestone(
	ctx context.Context,
	id string,
	input map[string]any,
) (*models.ProjectMilestone, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectMilestone), args.Error(1)
}

func (m *MockLinearClient) DeleteMilestone(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinearClient) ListMilestones(
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

func (m *MockLinearClient) CreateRelation(ctx context.Context, input map[string]any) (*models.IssueRelation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueRelation), args.Error(1)
}

func (m *MockLinearClient) GetRelation(ctx context.Context, id string) (*models.IssueRelation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueRelation), args.Error(1)
}

func (m *MockLinearClient) DeleteRelation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinearClient) ListRelations(
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

// MockOpenCodeClient is a mock implementation of the OpenCodeClient interface
type MockOpenCodeClient struct {
	mock.Mock
}

func (m *MockOpenCodeClient) ExecuteCommand(
	ctx context.Context,
	command models.Command,
) (*models.CommandResult, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommandResult), args.Error(1)
}

func (m *MockOpenCodeClient) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSocketIONotifier is a mock implementation of the SocketIONotifier interface
type MockSocketIONotifier struct {
	mock.Mock
}

func (m *MockSocketIONotifier) Emit(channel string, payload any) {
	m.Called(channel, payload)
}
