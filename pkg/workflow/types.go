// Package workflow defines the agent workflow graph model: typed nodes and
// edges, graph validation, scheduling dependencies, and input aggregation.
package workflow

// NodeType identifies what kind of agent a node represents.
type NodeType string

// Node type constants.
const (
	NodeStart            NodeType = "StartNode"
	NodeEnd              NodeType = "EndNode"
	NodeAssistant        NodeType = "AssistantAgent"
	NodeDelegate         NodeType = "DelegateAgent"
	NodeGroupChatManager NodeType = "GroupChatManager"
	NodeUserProxy        NodeType = "UserProxyAgent"
)

// EdgeType identifies how two nodes are connected.
type EdgeType string

// Edge type constants.
const (
	// EdgeSequential creates a scheduling dependency: target runs after source.
	EdgeSequential EdgeType = "sequential"
	// EdgeDelegate binds a DelegateAgent to its GroupChatManager. Treated as
	// undirected for delegate discovery; never a scheduling dependency.
	EdgeDelegate EdgeType = "delegate"
	// EdgeReflection routes an agent's output to a UserProxyAgent for review.
	// The only edge type along which cycles are permitted.
	EdgeReflection EdgeType = "reflection"
)

// DelegationMode selects the GCM orchestration strategy.
type DelegationMode string

// Delegation modes.
const (
	DelegationRoundRobin  DelegationMode = "round_robin"
	DelegationIntelligent DelegationMode = "intelligent"
)

// TerminationStrategy controls when a round-robin GCM stops its rounds.
type TerminationStrategy string

// Termination strategies. "max_iterations_reached" is accepted as an alias of
// all_delegates_complete (the per-delegate iteration cap already bounds it).
const (
	TerminateAllComplete TerminationStrategy = "all_delegates_complete"
	TerminateAnyComplete TerminationStrategy = "any_delegate_complete"
	terminateMaxIter     TerminationStrategy = "max_iterations_reached"
)

// NodeConfig carries the per-node configuration. It is a union across node
// types; validation per type happens in Graph.Validate.
type NodeConfig struct {
	Name          string `json:"name"`
	SystemMessage string `json:"system_message,omitempty"`
	// Description feeds delegate matching in intelligent mode.
	Description string `json:"description,omitempty"`

	LLMProvider string   `json:"llm_provider,omitempty"`
	LLMModel    string   `json:"llm_model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`

	TerminationCondition string `json:"termination_condition,omitempty"`
	MaxIterations        int    `json:"max_iterations,omitempty"`
	MaxRounds            int    `json:"max_rounds,omitempty"`

	DelegationMode                DelegationMode      `json:"delegation_mode,omitempty"`
	DelegationConfidenceThreshold *float64            `json:"delegation_confidence_threshold,omitempty"`
	DelegationTimeoutSeconds      int                 `json:"delegation_timeout_s,omitempty"`
	MaxDelegationRetries          *int                `json:"max_delegation_retries,omitempty"`
	MaxSubqueries                 int                 `json:"max_subqueries,omitempty"`
	TerminationStrategy           TerminationStrategy `json:"termination_strategy,omitempty"`

	RequireHumanInput bool `json:"require_human_input,omitempty"`

	// MCPServers names the tool servers this agent may call. Empty means
	// the agent answers from the model alone.
	MCPServers []string `json:"mcp_servers,omitempty"`

	DocAware         bool                   `json:"doc_aware,omitempty"`
	SearchMethod     string                 `json:"search_method,omitempty"`
	SearchParameters map[string]interface{} `json:"search_parameters,omitempty"`
	ContentFilters   []string               `json:"content_filters,omitempty"`
}

// Node is a single vertex of the workflow graph.
type Node struct {
	ID   string     `json:"id"`
	Type NodeType   `json:"type"`
	Data NodeConfig `json:"data"`
}

// DisplayName returns the configured name, falling back to the node ID.
func (n *Node) DisplayName() string {
	if n.Data.Name != "" {
		return n.Data.Name
	}
	return n.ID
}

// Edge is a single directed connection between two nodes.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
}

// Graph is a parsed and validated workflow graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	byID map[string]*Node
}

func validNodeType(t NodeType) bool {
	switch t {
	case NodeStart, NodeEnd, NodeAssistant, NodeDelegate, NodeGroupChatManager, NodeUserProxy:
		return true
	}
	return false
}

func validEdgeType(t EdgeType) bool {
	switch t {
	case EdgeSequential, EdgeDelegate, EdgeReflection:
		return true
	}
	return false
}

// NormalizeTerminationStrategy maps aliases onto the canonical strategy set.
func NormalizeTerminationStrategy(s TerminationStrategy) TerminationStrategy {
	switch s {
	case TerminateAnyComplete:
		return TerminateAnyComplete
	case terminateMaxIter, TerminateAllComplete, "":
		return TerminateAllComplete
	default:
		return TerminateAllComplete
	}
}
