package workflow

import (
	"encoding/json"
	"fmt"
)

// Parse decodes a workflow graph from JSON and validates it.
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode workflow graph: %w", err)
	}
	if err := g.init(); err != nil {
		return nil, err
	}
	return &g, nil
}

// FromMap rebuilds a graph from the JSON-shaped map stored on the execution
// row. Used on the resume path, where the in-memory graph is a fresh load.
func FromMap(m map[string]interface{}) (*Graph, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode stored workflow: %w", err)
	}
	return Parse(data)
}

// ToMap renders the graph as a JSON-shaped map for storage.
func (g *Graph) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workflow graph: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode workflow graph map: %w", err)
	}
	return m, nil
}

// init builds the node index and validates the graph.
func (g *Graph) init() error {
	g.byID = make(map[string]*Node, len(g.Nodes))
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.ID == "" {
			return fmt.Errorf("node %d has no id", i)
		}
		if _, dup := g.byID[n.ID]; dup {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		if !validNodeType(n.Type) {
			return fmt.Errorf("node %q has invalid type %q", n.ID, n.Type)
		}
		g.byID[n.ID] = n
	}
	return g.Validate()
}

// Validate checks the structural invariants of the graph:
// at least one StartNode, no dangling edges, delegate edges connect exactly
// one GCM with one DelegateAgent, reflection edges target a UserProxyAgent,
// and cycles exist only along reflection edges.
func (g *Graph) Validate() error {
	starts := 0
	for i := range g.Nodes {
		if g.Nodes[i].Type == NodeStart {
			starts++
		}
	}
	if starts == 0 {
		return fmt.Errorf("workflow graph has no StartNode")
	}

	for i, e := range g.Edges {
		src, ok := g.byID[e.Source]
		if !ok {
			return fmt.Errorf("edge %d references unknown source %q", i, e.Source)
		}
		dst, ok := g.byID[e.Target]
		if !ok {
			return fmt.Errorf("edge %d references unknown target %q", i, e.Target)
		}
		if !validEdgeType(e.Type) {
			return fmt.Errorf("edge %q -> %q has invalid type %q", e.Source, e.Target, e.Type)
		}

		switch e.Type {
		case EdgeDelegate:
			// Direction may be either way.
			if !isDelegatePair(src.Type, dst.Type) {
				return fmt.Errorf("delegate edge %q -> %q must connect a GroupChatManager with a DelegateAgent",
					e.Source, e.Target)
			}
		case EdgeReflection:
			if dst.Type != NodeUserProxy {
				return fmt.Errorf("reflection edge %q -> %q must target a UserProxyAgent",
					e.Source, e.Target)
			}
		}
	}

	if cycle := g.findSequentialCycle(); cycle != "" {
		return fmt.Errorf("workflow graph has a cycle through node %q (cycles are only permitted along reflection edges)", cycle)
	}
	return nil
}

func isDelegatePair(a, b NodeType) bool {
	return (a == NodeGroupChatManager && b == NodeDelegate) ||
		(a == NodeDelegate && b == NodeGroupChatManager)
}

// findSequentialCycle runs a three-color DFS over sequential edges only and
// returns the id of a node on a cycle, or "" when acyclic.
func (g *Graph) findSequentialCycle() string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.Nodes))
	next := make(map[string][]string)
	for _, e := range g.Edges {
		if e.Type == EdgeSequential {
			next[e.Source] = append(next[e.Source], e.Target)
		}
	}

	var visit func(id string) string
	visit = func(id string) string {
		color[id] = gray
		for _, t := range next[id] {
			switch color[t] {
			case gray:
				return t
			case white:
				if c := visit(t); c != "" {
					return c
				}
			}
		}
		color[id] = black
		return ""
	}

	for i := range g.Nodes {
		id := g.Nodes[i].ID
		if color[id] == white {
			if c := visit(id); c != "" {
				return c
			}
		}
	}
	return ""
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.byID[id]
}

// NodeByName returns the first node whose display name matches, or nil.
// Node names are not unique; ids are authoritative for scheduling.
func (g *Graph) NodeByName(name string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].DisplayName() == name {
			return &g.Nodes[i]
		}
	}
	return nil
}

// StartNodes returns all StartNode vertices.
func (g *Graph) StartNodes() []*Node {
	var out []*Node
	for i := range g.Nodes {
		if g.Nodes[i].Type == NodeStart {
			out = append(out, &g.Nodes[i])
		}
	}
	return out
}

// Delegates returns the DelegateAgent nodes connected to the given GCM by a
// delegate edge, scanning both directions. Order follows edge declaration
// order, deduplicated.
func (g *Graph) Delegates(gcmID string) []*Node {
	seen := make(map[string]bool)
	var out []*Node
	for _, e := range g.Edges {
		if e.Type != EdgeDelegate {
			continue
		}
		var other string
		switch gcmID {
		case e.Source:
			other = e.Target
		case e.Target:
			other = e.Source
		default:
			continue
		}
		n := g.byID[other]
		if n != nil && n.Type == NodeDelegate && !seen[other] {
			seen[other] = true
			out = append(out, n)
		}
	}
	return out
}

// OutgoingEdges returns the edges of the given type leaving a node.
// An empty edge type matches all types.
func (g *Graph) OutgoingEdges(id string, t EdgeType) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == id && (t == "" || e.Type == t) {
			out = append(out, e)
		}
	}
	return out
}

// IncomingEdges returns the edges of the given type entering a node.
// An empty edge type matches all types.
func (g *Graph) IncomingEdges(id string, t EdgeType) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Target == id && (t == "" || e.Type == t) {
			out = append(out, e)
		}
	}
	return out
}

// ReflectionTarget returns the UserProxyAgent a node's reflection edge points
// at, or nil when the node has no reflection edge.
func (g *Graph) ReflectionTarget(sourceID string) *Node {
	for _, e := range g.Edges {
		if e.Type == EdgeReflection && e.Source == sourceID {
			return g.byID[e.Target]
		}
	}
	return nil
}

// ReflectionSource returns the agent whose output a UserProxyAgent reviews,
// or nil when the proxy is not a reflection target.
func (g *Graph) ReflectionSource(userProxyID string) *Node {
	for _, e := range g.Edges {
		if e.Type == EdgeReflection && e.Target == userProxyID {
			return g.byID[e.Source]
		}
	}
	return nil
}
