package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"linearcode/models"
)

func (h *ToolsHandler) registerProjectTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_create_project",
			mcp.WithDescription("Create a Linear project. Omitting team_id selects the account's first team."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Project name")),
			mcp.WithString("description", mcp.Description("Project description")),
			mcp.WithString("team_id", mcp.Description("Team to attach the project to")),
			mcp.WithString("lead_id", mcp.Description("Project lead user ID")),
		),
		h.handleCreateProject,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_get_project",
			mcp.WithDescription("Fetch a Linear project by ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Project ID")),
		),
		h.handleGetProject,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_update_project",
			mcp.WithDescription("Update a Linear project. Omitted fields stay unchanged; "+
				"passing null for lead_id clears it. Fails on projects created by another "+
				"user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Project ID")),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("state", mcp.Description("New project state")),
			mcp.WithString("lead_id", mcp.Description("New lead; null clears")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleUpdateProject,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_delete_project",
			mcp.WithDescription("Delete a Linear project. Fails on projects created by another user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Project ID")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleDeleteProject,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_list_projects",
			mcp.WithDescription("List Linear projects, optionally scoped to a team"),
			mcp.WithString("team_id", mcp.Description("Filter by team")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 50")),
		),
		h.handleListProjects,
	)
}

func (h *ToolsHandler) handleCreateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := models.ProjectCreateParams{
		Name:        stringArg(args, "name"),
		Description: stringArg(args, "description"),
		TeamID:      stringArg(args, "team_id"),
	}
	if leadID := stringArg(args, "lead_id"); leadID != "" {
		params.LeadID = &leadID
	}
	project, err := h.trackerService.CreateProject(ctx, params)
	if err != nil {
		return toolError("failed to create project", err), nil
	}
	return toolSuccess(project), nil
}

func (h *ToolsHandler) handleGetProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	maybeProject, err := h.trackerService.GetProject(ctx, id)
	if err != nil {
		return toolError("failed to get project", err), nil
	}
	project, found := maybeProject.Get()
	if !found {
		return toolError("project not found: "+id, nil), nil
	}
	return toolSuccess(project), nil
}

func (h *ToolsHandler) handleUpdateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	project, err := h.trackerService.UpdateProject(ctx, id, models.ProjectUpdateParams{
		Name:        optString(args, "name"),
		Description: optString(args, "description"),
		State:       optString(args, "state"),
		LeadID:      optStringPtr(args, "lead_id"),
	}, boolArg(args, "force"))
	if err != nil {
		return toolError("failed to update project", err), nil
	}
	return toolSuccess(project), nil
}

func (h *ToolsHandler) handleDeleteProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	if err := h.trackerService.DeleteProject(ctx, id, boolArg(args, "force")); err != nil {
		return toolError("failed to delete project", err), nil
	}
	return toolSuccess(map[string]string{"id": id}), nil
}

func (h *ToolsHandler) handleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	projects, err := h.trackerService.ListProjects(ctx, stringArg(args, "team_id"), limitArg(args, "limit"))
	if err != nil {
		return toolError("failed to list projects", err), nil
	}
	return toolSuccess(projects), nil
}
