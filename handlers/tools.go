package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/mo"

	"linearcode/services"
)

// ToolsHandler exposes the tracker operation surface as MCP tools over
// streamable HTTP. Every tool converts all failures into error results;
// tool handlers never return a Go error to the protocol layer.
type ToolsHandler struct {
	mcpServer      *server.MCPServer
	trackerService services.TrackerService
}

func NewToolsHandler(trackerService services.TrackerService) *ToolsHandler {
	h := &ToolsHandler{
		mcpServer: server.NewMCPServer(
			"linearcode",
			"1.0.0",
			server.WithToolCapabilities(false),
		),
		trackerService: trackerService,
	}
	h.registerAuthTools()
	h.registerIssueTools()
	h.registerCommentTools()
	h.registerProjectTools()
	h.registerMilestoneTools()
	h.registerRelationTools()
	return h
}

// MCPServer exposes the underlying server for tests
func (h *ToolsHandler) MCPServer() *server.MCPServer {
	return h.mcpServer
}

func (h *ToolsHandler) RegisterWithRouter(router *mux.Router) {
	httpServer := server.NewStreamableHTTPServer(
		h.mcpServer,
		server.WithEndpointPath("/mcp"),
	)
	router.PathPrefix("/mcp").Handler(httpServer)
	log.Printf("🔗 MCP tool surface mounted at /mcp")
}

// toolSuccess wraps a payload in a {success:true, data} JSON text result
func toolSuccess(data any) *mcp.CallToolResult {
	encoded, err := json.Marshal(map[string]any{"success": true, "data": data})
	if err != nil {
		return mcp.NewToolResultError("failed to encode result: " + err.Error())
	}
	return mcp.NewToolResultText(string(encoded))
}

// toolError produces a {success:false} error result. Tool handlers report
// every failure this way instead of returning a protocol error.
func toolError(message string, err error) *mcp.CallToolResult {
	if err != nil {
		return mcp.NewToolResultError(message + ": " + err.Error())
	}
	return mcp.NewToolResultError(message)
}

func stringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

func boolArg(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}

// limitArg reads a numeric limit; JSON numbers decode as float64
func limitArg(args map[string]any, key string) int {
	value, ok := args[key].(float64)
	if !ok {
		return 0
	}
	return int(value)
}

// optString maps an argument to the two-state update convention: absent
// leaves the stored value unchanged, present sets it.
func optString(args map[string]any, key string) mo.Option[string] {
	raw, present := args[key]
	if !present {
		return mo.None[string]()
	}
	value, _ := raw.(string)
	return mo.Some(value)
}

// optStringPtr maps an argument to the tri-state relationship convention:
// absent leaves the stored value unchanged, an explicit null clears it, a
// string value assigns it.
func optStringPtr(args map[string]any, key string) mo.Option[*string] {
	raw, present := args[key]
	if !present {
		return mo.None[*string]()
	}
	if raw == nil {
		return mo.Some[*string](nil)
	}
	value, ok := raw.(string)
	if !ok {
		return mo.Some[*string](nil)
	}
	return mo.Some(&value)
}

func optInt(args map[string]any, key string) mo.Option[int] {
	raw, present := args[key]
	if !present {
		return mo.None[int]()
	}
	value, ok := raw.(float64)
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(int(value))
}

func stringSliceArg(args map[string]any, key string) ([]string, bool) {
	raw, present := args[key]
	if !present {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func (h *ToolsHandler) registerAuthTools() {
	h.mcpServer.AddTool(
		mcp.NewTool("linear_auth_test",
			mcp.WithDescription("Verify the Linear API credentials and return the authenticated user"),
		),
		func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			user, err := h.trackerService.AuthTest(ctx)
			if err != nil {
				return toolError("authentication failed", err), nil
			}
			return toolSuccess(user), nil
		},
	)
}
