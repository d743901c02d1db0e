// Package mcp connects delegate agents to MCP (Model Context Protocol) tool
// servers and executes tool calls on their behalf. A Client is scoped to one
// delegation: it is created when the delegation starts and closed with it,
// so cached tool lists never go stale.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/version"
)

// Client manages MCP SDK sessions for a set of servers. Thread-safe: a
// group chat may run several delegations over the same client concurrently.
type Client struct {
	registry *config.MCPServerRegistry

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession
	failedServers map[string]string

	toolsMu   sync.RWMutex
	toolCache map[string][]*mcpsdk.Tool

	// Per-server mutex serializing connect and reconnect attempts.
	connectMu sync.Map
}

func newClient(registry *config.MCPServerRegistry) *Client {
	return &Client{
		registry:      registry,
		sessions:      make(map[string]*mcpsdk.ClientSession),
		failedServers: make(map[string]string),
		toolCache:     make(map[string][]*mcpsdk.Tool),
	}
}

// Initialize connects to the given servers. A server that fails to connect
// is recorded in FailedServers rather than aborting the rest; the caller
// decides whether partial connectivity is acceptable.
func (c *Client) Initialize(ctx context.Context, serverIDs []string) error {
	for _, serverID := range serverIDs {
		if err := c.connect(ctx, serverID); err != nil {
			c.mu.Lock()
			c.failedServers[serverID] = err.Error()
			c.mu.Unlock()
			slog.Warn("MCP server failed to connect", "server", serverID, "error", err)
		}
	}
	return nil
}

// connect establishes a session with one server, serialized per server so
// concurrent callers never race a handshake.
func (c *Client) connect(ctx context.Context, serverID string) error {
	muI, _ := c.connectMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.connectLocked(ctx, serverID)
}

func (c *Client) connectLocked(ctx context.Context, serverID string) error {
	c.mu.RLock()
	_, exists := c.sessions[serverID]
	c.mu.RUnlock()
	if exists {
		return nil
	}

	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return err
	}

	transport, err := createTransport(serverCfg.Transport)
	if err != nil {
		return fmt.Errorf("creating transport for %q: %w", serverID, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// The SDK closes the connection on most failure paths; closing the
		// transport too guards against leaked stdio child processes.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("connecting to %q: %w", serverID, err)
	}

	c.mu.Lock()
	c.sessions[serverID] = session
	delete(c.failedServers, serverID)
	c.mu.Unlock()

	slog.Info("MCP server connected", "server", serverID)
	return nil
}

// ListTools returns the tools of one server, cached after the first call.
func (c *Client) ListTools(ctx context.Context, serverID string) ([]*mcpsdk.Tool, error) {
	c.toolsMu.RLock()
	cached, ok := c.toolCache[serverID]
	c.toolsMu.RUnlock()
	if ok {
		return cached, nil
	}

	c.mu.RLock()
	session, exists := c.sessions[serverID]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tools from %q: %w", serverID, err)
	}

	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.toolsMu.Lock()
	c.toolCache[serverID] = tools
	c.toolsMu.Unlock()

	return tools, nil
}

// CallTool executes one tool call. A transport-level failure reconnects the
// session and retries once after a jittered backoff.
func (c *Client) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	params := &mcpsdk.CallToolParams{Name: toolName, Arguments: args}

	result, err := c.callToolOnce(ctx, serverID, params)
	if err == nil {
		return result, nil
	}
	if classifyError(err) == noRetry {
		return nil, err
	}

	slog.Info("MCP call failed, reconnecting and retrying",
		"server", serverID, "tool", toolName, "error", err)

	backoff := retryBackoffMin + time.Duration(rand.Int64N(int64(retryBackoffMax-retryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := c.reconnect(ctx, serverID); err != nil {
		return nil, fmt.Errorf("reconnecting %q: %w", serverID, err)
	}

	result, err = c.callToolOnce(ctx, serverID, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %q.%s: %w", serverID, toolName, err)
	}
	return result, nil
}

func (c *Client) callToolOnce(ctx context.Context, serverID string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	c.mu.RLock()
	session, exists := c.sessions[serverID]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for server %q", serverID)
	}

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return session.CallTool(opCtx, params)
}

// reconnect tears down a broken session and establishes a fresh one.
func (c *Client) reconnect(ctx context.Context, serverID string) error {
	muI, _ := c.connectMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if session, exists := c.sessions[serverID]; exists {
		_ = session.Close()
		delete(c.sessions, serverID)
	}
	c.mu.Unlock()

	c.toolsMu.Lock()
	delete(c.toolCache, serverID)
	c.toolsMu.Unlock()

	reinitCtx, cancel := context.WithTimeout(ctx, reconnectTimeout)
	defer cancel()
	return c.connectLocked(reinitCtx, serverID)
}

// Close shuts down all sessions and their transports.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for id, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing session %q: %w", id, err)
		}
	}
	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.failedServers = make(map[string]string)

	c.toolsMu.Lock()
	c.toolCache = make(map[string][]*mcpsdk.Tool)
	c.toolsMu.Unlock()

	return firstErr
}

// FailedServers returns the servers that failed to connect, with reasons.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedServers))
	for k, v := range c.failedServers {
		result[k] = v
	}
	return result
}
