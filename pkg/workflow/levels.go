package workflow

// Scheduled reports whether a node takes part in the main execution sequence.
// DelegateAgents bound to a GCM via a delegate edge are pulled in by their
// manager and never scheduled directly.
func (g *Graph) Scheduled(n *Node) bool {
	if n.Type != NodeDelegate {
		return true
	}
	for _, e := range g.Edges {
		if e.Type == EdgeDelegate && (e.Source == n.ID || e.Target == n.ID) {
			return false
		}
	}
	return true
}

// Dependencies returns the node ids that must be executed before the given
// node becomes ready: sources of incoming sequential edges, plus — when the
// node is a human-input-requiring UserProxyAgent — sources of incoming
// reflection edges.
func (g *Graph) Dependencies(id string) []string {
	n := g.byID[id]
	if n == nil {
		return nil
	}
	var deps []string
	seen := make(map[string]bool)
	add := func(src string) {
		if !seen[src] {
			seen[src] = true
			deps = append(deps, src)
		}
	}

	for _, e := range g.Edges {
		if e.Target != id {
			continue
		}
		switch e.Type {
		case EdgeSequential:
			add(e.Source)
		case EdgeReflection:
			if n.Type == NodeUserProxy && n.Data.RequireHumanInput {
				add(e.Source)
			}
		}
	}
	return deps
}

// ReadySet returns the scheduled nodes whose dependencies are all present in
// executed and which have not themselves executed. Within the returned slice
// there is no ordering guarantee beyond declaration order.
func (g *Graph) ReadySet(executed map[string]string) []*Node {
	var ready []*Node
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if _, done := executed[n.ID]; done {
			continue
		}
		if !g.Scheduled(n) {
			continue
		}
		if g.depsSatisfied(n.ID, executed) {
			ready = append(ready, n)
		}
	}
	return ready
}

// PendingCount returns the number of scheduled nodes not yet executed.
// Used for dead-lock detection: pending > 0 with an empty ready set is fatal.
func (g *Graph) PendingCount(executed map[string]string) int {
	count := 0
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if _, done := executed[n.ID]; done {
			continue
		}
		if g.Scheduled(n) {
			count++
		}
	}
	return count
}

func (g *Graph) depsSatisfied(id string, executed map[string]string) bool {
	for _, dep := range g.Dependencies(id) {
		if _, ok := executed[dep]; !ok {
			return false
		}
	}
	return true
}
