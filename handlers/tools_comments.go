package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"linearcode/models"
)

func (h *ToolsHandler) registerCommentTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_create_comment",
			mcp.WithDescription("Create a comment on a Linear issue"),
			mcp.WithString("issue_id", mcp.Required(), mcp.Description("Issue to comment on")),
			mcp.WithString("body", mcp.Required(), mcp.Description("Comment body in markdown")),
		),
		h.handleCreateComment,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_get_comment",
			mcp.WithDescription("Fetch a Linear comment by ID"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Comment ID")),
		),
		h.handleGetComment,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_update_comment",
			mcp.WithDescription("Update a comment body. Fails on comments authored by another user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Comment ID")),
			mcp.WithString("body", mcp.Description("New body")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleUpdateComment,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_delete_comment",
			mcp.WithDescription("Delete a comment. Fails on comments authored by another user unless force is set."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Comment ID")),
			mcp.WithBoolean("force", mcp.Description("Override the ownership safety check")),
		),
		h.handleDeleteComment,
	)
	h.mcpServer.AddTool(
		mcp.NewTool("linear_list_comments",
			mcp.WithDescription("List comments on a Linear issue"),
			mcp.WithString("issue_id", mcp.Required(), mcp.Description("Issue ID")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 50")),
		),
		h.handleListComments,
	)
}

func (h *ToolsHandler) handleCreateComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	comment, err := h.trackerService.CreateComment(ctx, models.CommentCreateParams{
		IssueID: stringArg(args, "issue_id"),
		Body:    stringArg(args, "body"),
	})
	if err != nil {
		return toolError("failed to create comment", err), nil
	}
	return toolSuccess(comment), nil
}

func (h *ToolsHandler) handleGetComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	maybeComment, err := h.trackerService.GetComment(ctx, id)
	if err != nil {
		return toolError("failed to get comment", err), nil
	}
	comment, found := maybeComment.Get()
	if !found {
		return toolError("comment not found: "+id, nil), nil
	}
	return toolSuccess(comment), nil
}

func (h *ToolsHandler) handleUpdateComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	comment, err := h.trackerService.UpdateComment(ctx, id, models.CommentUpdateParams{
		Body: optString(args, "body"),
	}, boolArg(args, "force"))
	if err != nil {
		return toolError("failed to update comment", err), nil
	}
	return toolSuccess(comment), nil
}

func (h *ToolsHandler) handleDeleteComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return toolError("id is required", nil), nil
	}
	if err := h.trackerService.DeleteComment(ctx, id, boolArg(args, "force")); err != nil {
		return toolError("failed to delete comment", err), nil
	}
	return toolSuccess(map[string]string{"id": id}), nil
}

func (h *ToolsHandler) handleListComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	issueID := stringArg(args, "issue_id")
	if issueID == "" {
		return toolError("issue_id is required", nil), nil
	}
	comments, err := h.trackerService.ListComments(ctx, issueID, limitArg(args, "limit"))
	if err != nil {
		return toolError("failed to list comments", err), nil
	}
	return toolSuccess(comments), nil
}
