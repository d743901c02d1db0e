package config

import "fmt"

// TransportType identifies how to reach an MCP server.
type TransportType string

// Supported MCP transport types.
const (
	TransportTypeStdio TransportType = "stdio"
	TransportTypeHTTP  TransportType = "http"
	TransportTypeSSE   TransportType = "sse"
)

// TransportConfig describes the connection to one MCP server.
type TransportConfig struct {
	Type TransportType `yaml:"type"`

	// stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// http / sse transports
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
	VerifySSL   *bool  `yaml:"verify_ssl,omitempty"`
	// Timeout in seconds for HTTP-based transports (0 = no client timeout).
	Timeout int `yaml:"timeout,omitempty"`
}

// MCPServerConfig is one named MCP server entry from mcp-servers.yaml.
type MCPServerConfig struct {
	// Description is shown to agents alongside the server's tools.
	Description string          `yaml:"description,omitempty"`
	Transport   TransportConfig `yaml:"transport"`
}

// MCPServerRegistry provides lookup of MCP server configurations by ID.
type MCPServerRegistry struct {
	servers map[string]*MCPServerConfig
}

// NewMCPServerRegistry creates a registry from a server map.
func NewMCPServerRegistry(servers map[string]*MCPServerConfig) *MCPServerRegistry {
	if servers == nil {
		servers = make(map[string]*MCPServerConfig)
	}
	return &MCPServerRegistry{servers: servers}
}

// Get retrieves a server config by ID.
func (r *MCPServerRegistry) Get(id string) (*MCPServerConfig, error) {
	cfg, ok := r.servers[id]
	if !ok {
		return nil, fmt.Errorf("MCP server %q not found", id)
	}
	return cfg, nil
}

// Has reports whether a server ID is registered.
func (r *MCPServerRegistry) Has(id string) bool {
	_, ok := r.servers[id]
	return ok
}

// IDs returns all registered server IDs.
func (r *MCPServerRegistry) IDs() []string {
	ids := make([]string, 0, len(r.servers))
	for id := range r.servers {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered servers.
func (r *MCPServerRegistry) Len() int {
	return len(r.servers)
}
