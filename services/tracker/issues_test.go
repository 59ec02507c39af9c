package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linearcode/clients"
	"linearcode/core"
	"linearcode/models"
)

var (
	testViewer = &models.User{
		ID:   "user-self",
		Name: "Agent User",
	}

	testIssue = &models.Issue{
		ID:         "issue-1",
		Identifier: "ENG-1",
		Title:      "Broken pipeline",
		CreatorID:  "user-self",
		TeamID:     "team-1",
	}

	otherUsersIssue = &models.Issue{
		ID:         "issue-2",
		Identifier: "ENG-2",
		Title:      "Someone else's issue",
		CreatorID:  "user-other",
		TeamID:     "team-1",
	}
)

func TestCreateIssue(t *testing.T) {
	t.Run("success with explicit team", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("CreateIssue", mock.Anything, map[string]any{
			"title":  "Broken pipeline",
			"teamId": "team-1",
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		issue, err := service.CreateIssue(context.Background(), models.IssueCreateParams{
			Title:  "Broken pipeline",
			TeamID: "team-1",
		})

		require.NoError(t, err)
		assert.Equal(t, testIssue, issue)
		mockClient.AssertExpectations(t)
	})

	t.Run("empty team auto-selects first team", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("Teams", mock.Anything).Return([]models.Team{
			{ID: "team-first", Name: "Engineering"},
			{ID: "team-second", Name: "Design"},
		}, nil)
		mockClient.On("CreateIssue", mock.Anything, map[string]any{
			"title":  "Broken pipeline",
			"teamId": "team-first",
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.CreateIssue(context.Background(), models.IssueCreateParams{
			Title: "Broken pipeline",
		})

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("no teams available", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("Teams", mock.Anything).Return([]models.Team{}, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.CreateIssue(context.Background(), models.IssueCreateParams{
			Title: "Broken pipeline",
		})

		assert.ErrorContains(t, err, "no teams available")
	})

	t.Run("empty title rejected", func(t *testing.T) {
		service := NewTrackerService(&clients.MockLinearClient{}, true)
		_, err := service.CreateIssue(context.Background(), models.IssueCreateParams{})

		assert.ErrorContains(t, err, "title cannot be empty")
	})

	t.Run("unresolvable labels dropped silently", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetLabel", mock.Anything, "label-good").
			Return(&models.Label{ID: "label-good", Name: "bug"}, nil)
		mockClient.On("GetLabel", mock.Anything, "label-missing").
			Return(nil, nil)
		mockClient.On("CreateIssue", mock.Anything, map[string]any{
			"title":    "Broken pipeline",
			"teamId":   "team-1",
			"labelIds": []string{"label-good"},
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.CreateIssue(context.Background(), models.IssueCreateParams{
			Title:    "Broken pipeline",
			TeamID:   "team-1",
			LabelIDs: []string{"label-good", "label-missing"},
		})

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestGetIssue(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		maybeIssue, err := service.GetIssue(context.Background(), "issue-1")

		require.NoError(t, err)
		require.True(t, maybeIssue.IsPresent())
		assert.Equal(t, testIssue, maybeIssue.MustGet())
	})

	t.Run("missing resolves to none, not error", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-gone").Return(nil, nil)

		service := NewTrackerService(mockClient, true)
		maybeIssue, err := service.GetIssue(context.Background(), "issue-gone")

		require.NoError(t, err)
		assert.False(t, maybeIssue.IsPresent())
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").
			Return(nil, errors.New("connection refused"))

		service := NewTrackerService(mockClient, true)
		_, err := service.GetIssue(context.Background(), "issue-1")

		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestUpdateIssue(t *testing.T) {
	t.Run("own issue updates", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").Return(testIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)
		mockClient.On("UpdateIssue", mock.Anything, "issue-1", map[string]any{
			"title": "New title",
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-1", models.IssueUpdateParams{
			Title: mo.Some("New title"),
		}, false)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("missing issue is a not-found error", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-gone").Return(nil, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-gone", models.IssueUpdateParams{
			Title: mo.Some("New title"),
		}, false)

		assert.True(t, core.IsNotFoundError(err))
	})

	t.Run("other user's issue blocked by ownership gate", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-2").Return(otherUsersIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-2", models.IssueUpdateParams{
			Title: mo.Some("New title"),
		}, false)

		require.Error(t, err)
		assert.True(t, core.IsOwnershipError(err))
		assert.ErrorContains(t, err, "force=true")
		mockClient.AssertNotCalled(t, "UpdateIssue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("force overrides the ownership gate", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-2").Return(otherUsersIssue, nil)
		mockClient.On("UpdateIssue", mock.Anything, "issue-2", mock.Anything).
			Return(otherUsersIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-2", models.IssueUpdateParams{
			Title: mo.Some("New title"),
		}, true)

		require.NoError(t, err)
		// force short-circuits before the viewer is even fetched
		mockClient.AssertNotCalled(t, "Viewer", mock.Anything)
	})

	t.Run("safety checks disabled skips the gate", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-2").Return(otherUsersIssue, nil)
		mockClient.On("UpdateIssue", mock.Anything, "issue-2", mock.Anything).
			Return(otherUsersIssue, nil)

		service := NewTrackerService(mockClient, false)
		_, err := service.UpdateIssue(context.Background(), "issue-2", models.IssueUpdateParams{
			Title: mo.Some("New title"),
		}, false)

		require.NoError(t, err)
		mockClient.AssertNotCalled(t, "Viewer", mock.Anything)
	})

	t.Run("explicit null clears a relationship", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").Return(testIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)
		mockClient.On("UpdateIssue", mock.Anything, "issue-1", map[string]any{
			"assigneeId": nil,
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-1", models.IssueUpdateParams{
			AssigneeID: mo.Some[*string](nil),
		}, false)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("omitted fields stay out of the input", func(t *testing.T) {
		assignee := "user-new"
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").Return(testIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)
		mockClient.On("UpdateIssue", mock.Anything, "issue-1", map[string]any{
			"assigneeId": "user-new",
		}).Return(testIssue, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateIssue(context.Background(), "issue-1", models.IssueUpdateParams{
			AssigneeID: mo.Some(&assignee),
		}, false)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestDeleteIssue(t *testing.T) {
	t.Run("own issue deletes", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-1").Return(testIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)
		mockClient.On("DeleteIssue", mock.Anything, "issue-1").Return(nil)

		service := NewTrackerService(mockClient, true)
		err := service.DeleteIssue(context.Background(), "issue-1", false)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("missing issue is a not-found error", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-gone").Return(nil, nil)

		service := NewTrackerService(mockClient, true)
		err := service.DeleteIssue(context.Background(), "issue-gone", false)

		assert.True(t, core.IsNotFoundError(err))
	})

	t.Run("other user's issue blocked without force", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetIssue", mock.Anything, "issue-2").Return(otherUsersIssue, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)

		service := NewTrackerService(mockClient, true)
		err := service.DeleteIssue(context.Background(), "issue-2", false)

		assert.True(t, core.IsOwnershipError(err))
		mockClient.AssertNotCalled(t, "DeleteIssue", mock.Anything, mock.Anything)
	})
}

func TestListIssues(t *testing.T) {
	t.Run("limit defaults to 50", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("ListIssues", mock.Anything, models.IssueFilter{TeamID: "team-1"}, DefaultListLimit).
			Return([]models.Issue{*testIssue}, nil)

		service := NewTrackerService(mockClient, true)
		issues, err := service.ListIssues(context.Background(), models.IssueFilter{TeamID: "team-1"}, 0)

		require.NoError(t, err)
		assert.Len(t, issues, 1)
		mockClient.AssertExpectations(t)
	})
}

func TestCurrentUser_CachedAfterFirstFetch(t *testing.T) {
	mockClient := &clients.MockLinearClient{}
	mockClient.On("Viewer", mock.Anything).Return(testViewer, nil).Once()

	service := NewTrackerService(mockClient, true)

	first, err := service.AuthTest(context.Background())
	require.NoError(t, err)
	second, err := service.AuthTest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockClient.AssertExpectations(t)
}
