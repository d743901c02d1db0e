package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/weftworks/weft/pkg/delegate"
)

var _ delegate.ToolRunner = (*ToolExecutor)(nil)

// ToolExecutor is one delegation's tool session. Tool names are namespaced
// as "server.tool" so a delegate with several servers stays unambiguous.
type ToolExecutor struct {
	client    *Client
	serverIDs []string
}

// NewToolExecutor wraps a connected client for the given servers.
func NewToolExecutor(client *Client, serverIDs []string) *ToolExecutor {
	return &ToolExecutor{client: client, serverIDs: serverIDs}
}

// Tools implements delegate.ToolRunner. Servers that fail to list are
// skipped; partial tools are better than none.
func (e *ToolExecutor) Tools(ctx context.Context) ([]delegate.ToolDefinition, error) {
	var all []delegate.ToolDefinition
	for _, serverID := range e.serverIDs {
		tools, err := e.client.ListTools(ctx, serverID)
		if err != nil {
			slog.Warn("Failed to list tools from MCP server",
				"server", serverID, "error", err)
			continue
		}
		for _, tool := range tools {
			all = append(all, delegate.ToolDefinition{
				Name:        serverID + "." + tool.Name,
				Description: tool.Description,
				Schema:      marshalSchema(tool.InputSchema),
			})
		}
	}
	return all, nil
}

// Call implements delegate.ToolRunner. A tool-reported error comes back as
// an error so the delegate loop can feed it to the model as an observation.
func (e *ToolExecutor) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	serverID, toolName, err := splitToolName(name)
	if err != nil {
		return "", err
	}
	if !slices.Contains(e.serverIDs, serverID) {
		return "", fmt.Errorf("MCP server %q is not available for this delegation, available: %s",
			serverID, strings.Join(e.serverIDs, ", "))
	}

	result, err := e.client.CallTool(ctx, serverID, toolName, args)
	if err != nil {
		return "", err
	}

	content := extractTextContent(result)
	if result.IsError {
		return "", fmt.Errorf("tool %q reported an error: %s", name, content)
	}
	return content, nil
}

// Close releases the underlying sessions and transports.
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// splitToolName splits "server.tool" on the first dot. Tool names may
// themselves contain dots; server IDs may not.
func splitToolName(name string) (serverID, toolName string, err error) {
	serverID, toolName, found := strings.Cut(name, ".")
	if !found || serverID == "" || toolName == "" {
		return "", "", fmt.Errorf("tool name %q must have the form server.tool", name)
	}
	return serverID, toolName, nil
}

// extractTextContent concatenates the text items of a tool result. Non-text
// content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("MCP tool returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
