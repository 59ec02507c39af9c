package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linearcode/models"
	"linearcode/services/tracker"
)

func callTool(
	t *testing.T,
	h *ToolsHandler,
	name string,
	args map[string]any,
) *mcp.CallToolResult {
	t.Helper()

	tools := h.MCPServer().ListTools()
	tool, ok := tools[name]
	require.True(t, ok, "tool %s not registered", name)

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "tool handlers must never return protocol errors")
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestToolRegistration(t *testing.T) {
	h := NewToolsHandler(&tracker.MockTrackerService{})

	tools := h.MCPServer().ListTools()
	assert.Len(t, tools, 25)

	expected := []string{
		"linear_auth_test",
		"linear_create_issue", "linear_get_issue", "linear_update_issue",
		"linear_delete_issue", "linear_list_issues",
		"linear_create_comment", "linear_get_comment", "linear_update_comment",
		"linear_delete_comment", "linear_list_comments",
		"linear_create_project", "linear_get_project", "linear_update_project",
		"linear_delete_project", "linear_list_projects",
		"linear_create_milestone", "linear_get_milestone", "linear_update_milestone",
		"linear_delete_milestone", "linear_list_milestones",
		"linear_create_relation", "linear_get_relation",
		"linear_delete_relation", "linear_list_relations",
	}
	for _, name := range expected {
		_, ok := tools[name]
		assert.True(t, ok, "expected tool %q to be registered", name)
	}
}

func TestAuthTestTool(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("AuthTest", mock.Anything).
		Return(&models.User{ID: "user-1", Name: "Alice"}, nil)
	h := NewToolsHandler(trackerService)

	result := callTool(t, h, "linear_auth_test", nil)
	require.False(t, result.IsError)

	var envelope struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Alice", envelope.Data.Name)
}

func TestGetIssueTool_NotFoundBecomesErrorResult(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("GetIssue", mock.Anything, "issue-missing").
		Return(mo.None[*models.Issue](), nil)
	h := NewToolsHandler(trackerService)

	result := callTool(t, h, "linear_get_issue", map[string]any{"id": "issue-missing"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not found")
}

func TestUpdateIssueTool_TriStateArguments(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("UpdateIssue", mock.Anything, "issue-1",
		mock.MatchedBy(func(params models.IssueUpdateParams) bool {
			// null assignee_id clears, absent state_id leaves unchanged
			assignee, present := params.AssigneeID.Get()
			return present && assignee == nil && params.StateID.IsAbsent()
		}), false).
		Return(&models.Issue{ID: "issue-1"}, nil)
	h := NewToolsHandler(trackerService)

	result := callTool(t, h, "linear_update_issue", map[string]any{
		"id":          "issue-1",
		"assignee_id": nil,
	})
	require.False(t, result.IsError)
	trackerService.AssertExpectations(t)
}

func TestDeleteIssueTool_ForceFlag(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("DeleteIssue", mock.Anything, "issue-1", true).Return(nil)
	h := NewToolsHandler(trackerService)

	result := callTool(t, h, "linear_delete_issue", map[string]any{
		"id":    "issue-1",
		"force": true,
	})
	require.False(t, result.IsError)
	trackerService.AssertExpectations(t)
}

func TestListIssuesTool_LimitIsNumeric(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("ListIssues", mock.Anything, models.IssueFilter{TeamID: "team-1"}, 5).
		Return([]models.Issue{{ID: "issue-1"}}, nil)
	h := NewToolsHandler(trackerService)

	// JSON numbers arrive as float64
	result := callTool(t, h, "linear_list_issues", map[string]any{
		"team_id": "team-1",
		"limit":   float64(5),
	})
	require.False(t, result.IsError)
	trackerService.AssertExpectations(t)
}

func TestCreateRelationTool_ServiceFailure(t *testing.T) {
	trackerService := &tracker.MockTrackerService{}
	trackerService.On("CreateRelation", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	h := NewToolsHandler(trackerService)

	result := callTool(t, h, "linear_create_relation", map[string]any{
		"issue_id":         "issue-1",
		"related_issue_id": "issue-2",
	})
	assert.True(t, result.IsError)
}
