package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/mo"

	"linearcode/models"
)

func (h *ToolsHandler) registerIssueTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_create_issue",
			mcp.WithDescription("Create a Linear issue. Omitting team_id selects the account's first team."),
			mcp.WithString("title", mcp.Required(), mcp.Description("Issue title")),
			mcp.WithString("description", mcp.Description("Issue description in markdown")),
			mcp.WithString("team_id", mcp.Description("Team to create the issue in")),
			mcp.WithNumber("priority", mcp.Description("Priority 0 (none) to 4 (low)")),
			mcp.WithString("assignee_id", mcp.Description("User to assign")),
			mcp.WithString("state_id", mcp.Description("Workflow state")),
			mcp.WithString("project_id", mcp.Description("Project to add the issue to")),
			mcp.WithString("parent_id", mcp.Description("Parent issue for sub-issues")),
			mcp.WithArray("label_ids", mcp.Description("Label IDs; unresolvable IDs are dropped")),
		),
		h.handleCreateIssue,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_get_issue",
			mcp.WithDescription("Fetch a Linear issue by ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Issue ID")),
		),
		h.handleGetIssue,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_update_issue",
			mcp.WithDescription("Update a Linear issue. Omitted fields stay unchanged; "+
				"passing null for a relationship field clears it. Fails on issues created "+
				"by another user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Issue ID")),
			mcp.WithString("title", mcp.Description("New title")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithNumber("priority", mcp.Description("New priority")),
			mcp.WithString("assignee_id", mcp.Description("New assignee; null clears")),
			mcp.WithString("state_id", mcp.Description("New workflow state; null clears")),
			mcp.WithString("project_id", mcp.Description("New project; null clears")),
			mcp.WithString("parent_id", mcp.Description("New parent; null clears")),
			mcp.WithArray("label_ids", mcp.Description("Replacement label set")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleUpdateIssue,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_delete_issue",
			mcp.WithDescription("Delete a Linear issue. Fails on issues created by another user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Issue ID")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleDeleteIssue,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_list_issues",
			mcp.WithDescription("List Linear issues, optionally filtered by team, project or workflow state"),
			mcp.WithString("team_id", mcp.Description("Filter by team")),
			mcp.WithString("project_id", mcp.Description("Filter by project")),
			mcp.WithString("state_id", mcp.Description("Filter by workflow state")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 50")),
		),
		h.handleListIssues,
	)
}

func (h *ToolsHandler) handleCreateIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := models.IssueCreateParams{
		Title:       stringArg(args, "title"),
		Description: stringArg(args, "description"),
		TeamID:      stringArg(args, "team_id"),
	}
	if priority, present := optInt(args, "priority").Get(); present {
		params.Priority = &priority
	}
	for key, field := range map[string]**string{
		"assignee_id": &params.AssigneeID,
		"state_id":    &params.StateID,
		"project_id":  &params.ProjectID,
		"parent_id":   &params.ParentID,
	} {
		if value := stringArg(args, key); value != "" {
			v := value
			*field = &v
		}
	}
	if labelIDs, present := stringSliceArg(args, "label_ids"); present {
		params.LabelIDs = labelIDs
	}

	issue, err := h.trackerService.CreateIssue(ctx, params)
	if err != nil {
		return toolError("failed to create issue", err), nil
	}
	return toolSuccess(issue), nil
}

func (h *ToolsHandler) handleGetIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	maybeIssue, err := h.trackerService.GetIssue(ctx, id)
	if err != nil {
		return toolError("failed to get issue", err), nil
	}
	issue, found := maybeIssue.Get()
	if !found {
		return toolError("issue not found: "+id, nil), nil
	}
	return toolSuccess(issue), nil
}

func (h *ToolsHandler) handleUpdateIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	params := models.IssueUpdateParams{
		Title:       optString(args, "title"),
		Description: optString(args, "description"),
		Priority:    optInt(args, "priority"),
		AssigneeID:  optStringPtr(args, "assignee_id"),
		StateID:     optStringPtr(args, "state_id"),
		ProjectID:   optStringPtr(args, "project_id"),
		ParentID:    optStringPtr(args, "parent_id"),
	}
	if labelIDs, present := stringSliceArg(args, "label_ids"); present {
		params.LabelIDs = mo.Some(labelIDs)
	}

	issue, err := h.trackerService.UpdateIssue(ctx, id, params, boolArg(args, "force"))
	if err != nil {
		return toolError("failed to update issue", err), nil
	}
	return toolSuccess(issue), nil
}

func (h *ToolsHandler) handleDeleteIssue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	if err := h.trackerService.DeleteIssue(ctx, id, boolArg(args, "force")); err != nil {
		return toolError("failed to delete issue", err), nil
	}
	return toolSuccess(map[string]string{"id": id}), nil
}

func (h *ToolsHandler) handleListIssues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	filter := models.IssueFilter{
		TeamID:    stringArg(args, "team_id"),
		ProjectID: stringArg(args, "project_id"),
		StateID:   stringArg(args, "state_id"),
	}
	issues, err := h.trackerService.ListIssues(ctx, filter, limitArg(args, "limit"))
	if err != nil {
		return toolError("failed to list issues", err), nil
	}
	return toolSuccess(issues), nil
}
