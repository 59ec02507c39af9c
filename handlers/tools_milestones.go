package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"linearcode/models"
)

func (h *ToolsHandler) registerMilestoneTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_create_milestone",
			mcp.WithDescription("Create a milestone on a Linear project"),
			mcp.WithString("project_id", mcp.Required(), mcp.Description("Project to add the milestone to")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Milestone name")),
			mcp.WithString("description", mcp.Description("Milestone description")),
			mcp.WithString("target_date", mcp.Description("Target date as YYYY-MM-DD")),
		),
		h.handleCreateMilestone,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_get_milestone",
			mcp.WithDescription("Fetch a Linear project milestone by ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Milestone ID")),
		),
		h.handleGetMilestone,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_update_milestone",
			mcp.WithDescription("Update a milestone. Omitted fields stay unchanged; passing "+
				"null for target_date clears it. Ownership follows the parent project."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Milestone ID")),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("target_date", mcp.Description("New target date; null clears")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleUpdateMilestone,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_delete_milestone",
			mcp.WithDescription("Delete a milestone. Ownership follows the parent project."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Milestone ID")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleDeleteMilestone,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_list_milestones",
			mcp.WithDescription("List milestones on a Linear project"),
			mcp.WithString("project_id", mcp.Required(), mcp.Description("Project ID")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 50")),
		),
		h.handleListMilestones,
	)
}

func (h *ToolsHandler) handleCreateMilestone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := models.MilestoneCreateParams{
		ProjectID:   stringArg(args, "project_id"),
		Name:        stringArg(args, "name"),
		Description: stringArg(args, "description"),
	}
	if targetDate := stringArg(args, "target_date"); targetDate != "" {
		params.TargetDate = &targetDate
	}
	milestone, err := h.trackerService.CreateMilestone(ctx, params)
	if err != nil {
		return toolError("failed to create milestone", err), nil
	}
	return toolSuccess(milestone), nil
}

func (h *ToolsHandler) handleGetMilestone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	maybeMilestone, err := h.trackerService.GetMilestone(ctx, id)
	if err != nil {
		return toolError("failed to get milestone", err), nil
	}
	milestone, found := maybeMilestone.Get()
	if !found {
		return toolError("milestone not found: "+id, nil), nil
	}
	return toolSuccess(milestone), nil
}

func (h *ToolsHandler) handleUpdateMilestone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	milestone, err := h.trackerService.UpdateMilestone(ctx, id, models.MilestoneUpdateParams{
		Name:        optString(args, "name"),
		Description: optString(args, "description"),
		TargetDate:  optStringPtr(args, "target_date"),
	}, boolArg(args, "force"))
	if err != nil {
		return toolError("failed to update milestone", err), nil
	}
	return toolSuccess(milestone), nil
}

func (h *ToolsHandler) handleDeleteMilestone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	if err := h.trackerService.DeleteMilestone(ctx, id, boolArg(args, "force")); err != nil {
		return toolError("failed to delete milestone", err), nil
	}
	return toolSuccess(map[string]string{"id": id}), nil
}

func (h *ToolsHandler) handleListMilestones(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	projectID := stringArg(args, "project_id")
	if projectID == "" {
		return toolError("project_id is required", nil), nil
	}
	milestones, err := h.trackerService.ListMilestones(ctx, projectID, limitArg(args, "limit"))
	if err != nil {
		return toolError("failed to list milestones", err), nil
	}
	return toolSuccess(milestones), nil
}
