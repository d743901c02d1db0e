package mcp

import (
	"context"
	"fmt"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/delegate"
)

// ClientFactory opens per-delegation tool sessions against registered
// MCP servers.
type ClientFactory struct {
	registry *config.MCPServerRegistry
}

// NewClientFactory creates a factory over the server registry.
func NewClientFactory(registry *config.MCPServerRegistry) *ClientFactory {
	return &ClientFactory{registry: registry}
}

// Session implements delegate.ToolSource. The returned runner owns its
// connections; the caller closes it when the delegation ends.
func (f *ClientFactory) Session(ctx context.Context, serverIDs []string) (delegate.ToolRunner, error) {
	for _, id := range serverIDs {
		if !f.registry.Has(id) {
			return nil, fmt.Errorf("MCP server %q is not configured", id)
		}
	}

	client := newClient(f.registry)
	if err := client.Initialize(ctx, serverIDs); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewToolExecutor(client, serverIDs), nil
}

// Validate connects to every registered server once and reports the ones
// that fail. Run at startup so broken server configs surface immediately
// instead of during a delegation.
func (f *ClientFactory) Validate(ctx context.Context) error {
	ids := f.registry.IDs()
	if len(ids) == 0 {
		return nil
	}

	client := newClient(f.registry)
	defer func() { _ = client.Close() }()

	if err := client.Initialize(ctx, ids); err != nil {
		return err
	}
	if failed := client.FailedServers(); len(failed) > 0 {
		return fmt.Errorf("MCP servers failed validation: %v", failed)
	}
	return nil
}
