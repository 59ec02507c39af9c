package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"linearcode/models"
)

func (h *ToolsHandler) registerRelationTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_create_relation",
			mcp.WithDescription("Create a relation between two Linear issues"),
			mcp.WithString("issue_id", mcp.Required(), mcp.Description("Source issue")),
			mcp.WithString("related_issue_id", mcp.Required(), mcp.Description("Target issue")),
			mcp.WithString("type", mcp.Description("Relation type: blocks, duplicate or related (default)")),
		),
		h.handleCreateRelation,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_get_relation",
			mcp.WithDescription("Fetch an issue relation by ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Relation ID")),
		),
		h.handleGetRelation,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_delete_relation",
			mcp.WithDescription("Delete an issue relation. Ownership follows the source issue's creator."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Relation ID")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleDeleteRelation,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_list_relations",
			mcp.WithDescription("List relations of a Linear issue"),
			mcp.WithString("issue_id", mcp.Required(), mcp.Description("Issue ID")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 50")),
		),
		h.handleListRelations,
	)
}

func (h *ToolsHandler) handleCreateRelation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	relation, err := h.trackerService.CreateRelation(ctx, models.RelationCreateParams{
		IssueID:        stringArg(args, "issue_id"),
		RelatedIssueID: stringArg(args, "related_issue_id"),
		Type:           models.IssueRelationType(stringArg(args, "type")),
	})
	if err != nil {
		return toolError("failed to create relation", err), nil
	}
	return toolSuccess(relation), nil
}

func (h *ToolsHandler) handleGetRelation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	maybeRelation, err := h.trackerService.GetRelation(ctx, id)
	if err != nil {
		return toolError("failed to get relation", err), nil
	}
	relation, found := maybeRelation.Get()
	if !found {
		return toolError("relation not found: "+id, nil), nil
	}
	return toolSuccess(relation), nil
}

func (h *ToolsHandler) handleDeleteRelation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	if err := h.trackerService.DeleteRelation(ctx, id, boolArg(args, "force")); err != nil {
		return toolError("failed to delete relation", err), nil
	}
	return toolSuccess(map[string]string{"id": id}), nil
}

func (h *ToolsHandler) handleListRelations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	issueID := stringArg(args, "issue_id")
	if issueID == "" {
		return toolError("issue_id is required", nil), nil
	}
	relations, err := h.trackerService.ListRelations(ctx, issueID, limitArg(args, "limit"))
	if err != nil {
		return toolError("failed to list relations", err), nil
	}
	return toolSuccess(relations), nil
}
