package tracker

import (
	"context"
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
	ownComment = &models.Comment{
		ID:      "comment-1",
		Body:    "looks good",
		IssueID: "issue-1",
		UserID:  "user-self",
	}

	otherUsersComment = &models.Comment{
		ID:      "comment-2",
		Body:    "someone else wrote this",
		IssueID: "issue-1",
		UserID:  "user-other",
	}
)

func TestCreateComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("CreateComment", mock.Anything, map[string]any{
			"issueId": "issue-1",
			"body":    "looks good",
		}).Return(ownComment, nil)

		service := NewTrackerService(mockClient, true)
		comment, err := service.CreateComment(context.Background(), models.CommentCreateParams{
			IssueID: "issue-1",
			Body:    "looks good",
		})

		require.NoError(t, err)
		assert.Equal(t, ownComment, comment)
		mockClient.AssertExpectations(t)
	})

	t.Run("missing issue ID rejected", func(t *testing.T) {
		service := NewTrackerService(&clients.MockLinearClient{}, true)
		_, err := service.CreateComment(context.Background(), models.CommentCreateParams{Body: "hi"})
		assert.ErrorContains(t, err, "issue ID cannot be empty")
	})

	t.Run("empty body rejected", func(t *testing.T) {
		service := NewTrackerService(&clients.MockLinearClient{}, true)
		_, err := service.CreateComment(context.Background(), models.CommentCreateParams{IssueID: "issue-1"})
		assert.ErrorContains(t, err, "body cannot be empty")
	})
}

func TestUpdateComment_OwnershipGatedOnAuthor(t *testing.T) {
	t.Run("own comment updates", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetComment", mock.Anything, "comment-1").Return(ownComment, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)
		mockClient.On("UpdateComment", mock.Anything, "comment-1", map[string]any{
			"body": "edited",
		}).Return(ownComment, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateComment(context.Background(), "comment-1", models.CommentUpdateParams{
			Body: mo.Some("edited"),
		}, false)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("other user's comment blocked without force", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetComment", mock.Anything, "comment-2").Return(otherUsersComment, nil)
		mockClient.On("Viewer", mock.Anything).Return(testViewer, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateComment(context.Background(), "comment-2", models.CommentUpdateParams{
			Body: mo.Some("edited"),
		}, false)

		assert.True(t, core.IsOwnershipError(err))
		mockClient.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing comment is a not-found error", func(t *testing.T) {
		mockClient := &clients.MockLinearClient{}
		mockClient.On("GetComment", mock.Anything, "comment-gone").Return(nil, nil)

		service := NewTrackerService(mockClient, true)
		_, err := service.UpdateComment(context.Background(), "comment-gone", models.CommentUpdateParams{
			Body: mo.Some("edited"),
		}, false)

		assert.True(t, core.IsNotFoundError(err))
	})
}

func TestDeleteComment_ForceOverride(t *testing.T) {
	mockClient := &clients.MockLinearClient{}
	mockClient.On("GetComment", mock.Anything, "comment-2").Return(otherUsersComment, nil)
	mockClient.On("DeleteComment", mock.Anything, "comment-2").Return(nil)

	service := NewTrackerService(mockClient, true)
	err := service.DeleteComment(context.Background(), "comment-2", true)

	require.NoError(t, err)
	mockClient.AssertNotCalled(t, "Viewer", mock.Anything)
}

func TestGetComment_MissingResolvesToNone(t *testing.T) {
	mockClient := &clients.MockLinearClient{}
	mockClient.On("GetComment", mock.Anything, "comment-gone").Return(nil, nil)

	service := NewTrackerService(mockClient, true)
	maybeComment, err := service.GetComment(context.Background(), "comment-gone")

	require.NoError(t, err)
	assert.False(t, maybeComment.IsPresent())
}
