package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid linear graph", func(t *testing.T) {
		g, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {"name": "Start"}},
				{"id": "a", "type": "AssistantAgent", "data": {"name": "Writer"}},
				{"id": "end", "type": "EndNode", "data": {"name": "End"}}
			],
			"edges": [
				{"source": "start", "target": "a", "type": "sequential"},
				{"source": "a", "target": "end", "type": "sequential"}
			]
		}`))
		require.NoError(t, err)
		assert.Len(t, g.Nodes, 3)
		assert.Equal(t, "Writer", g.Node("a").DisplayName())
	})

	t.Run("missing start node", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [{"id": "a", "type": "AssistantAgent", "data": {}}],
			"edges": []
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no StartNode")
	})

	t.Run("dangling edge", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [{"id": "start", "type": "StartNode", "data": {}}],
			"edges": [{"source": "start", "target": "ghost", "type": "sequential"}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})

	t.Run("invalid node type", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [{"id": "x", "type": "WizardAgent", "data": {}}],
			"edges": []
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid type")
	})

	t.Run("duplicate node id", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "start", "type": "EndNode", "data": {}}
			],
			"edges": []
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate node id")
	})

	t.Run("delegate edge must pair GCM and delegate", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "a", "type": "AssistantAgent", "data": {}},
				{"id": "b", "type": "AssistantAgent", "data": {}}
			],
			"edges": [{"source": "a", "target": "b", "type": "delegate"}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delegate edge")
	})

	t.Run("reflection edge must target user proxy", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "a", "type": "AssistantAgent", "data": {}},
				{"id": "b", "type": "AssistantAgent", "data": {}}
			],
			"edges": [{"source": "a", "target": "b", "type": "reflection"}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UserProxyAgent")
	})

	t.Run("sequential cycle rejected", func(t *testing.T) {
		_, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "a", "type": "AssistantAgent", "data": {}},
				{"id": "b", "type": "AssistantAgent", "data": {}}
			],
			"edges": [
				{"source": "a", "target": "b", "type": "sequential"},
				{"source": "b", "target": "a", "type": "sequential"}
			]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("reflection cycle permitted", func(t *testing.T) {
		g, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "a", "type": "AssistantAgent", "data": {"name": "Author", "max_iterations": 3}},
				{"id": "u", "type": "UserProxyAgent", "data": {"name": "Reviewer", "require_human_input": true}},
				{"id": "end", "type": "EndNode", "data": {}}
			],
			"edges": [
				{"source": "start", "target": "a", "type": "sequential"},
				{"source": "a", "target": "u", "type": "reflection"},
				{"source": "u", "target": "end", "type": "sequential"}
			]
		}`))
		require.NoError(t, err)
		require.NotNil(t, g.ReflectionTarget("a"))
		assert.Equal(t, "u", g.ReflectionTarget("a").ID)
		require.NotNil(t, g.ReflectionSource("u"))
		assert.Equal(t, "a", g.ReflectionSource("u").ID)
	})
}

func gcmGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Parse([]byte(`{
		"nodes": [
			{"id": "start", "type": "StartNode", "data": {}},
			{"id": "gcm", "type": "GroupChatManager", "data": {"name": "Manager"}},
			{"id": "d1", "type": "DelegateAgent", "data": {"name": "Researcher", "description": "searches sources"}},
			{"id": "d2", "type": "DelegateAgent", "data": {"name": "Analyst", "description": "crunches numbers"}},
			{"id": "end", "type": "EndNode", "data": {}}
		],
		"edges": [
			{"source": "start", "target": "gcm", "type": "sequential"},
			{"source": "gcm", "target": "d1", "type": "delegate"},
			{"source": "d2", "target": "gcm", "type": "delegate"},
			{"source": "gcm", "target": "end", "type": "sequential"}
		]
	}`))
	require.NoError(t, err)
	return g
}

func TestDelegateDiscovery(t *testing.T) {
	g := gcmGraph(t)

	t.Run("finds delegates in both edge directions", func(t *testing.T) {
		delegates := g.Delegates("gcm")
		require.Len(t, delegates, 2)
		assert.Equal(t, "d1", delegates[0].ID)
		assert.Equal(t, "d2", delegates[1].ID)
	})

	t.Run("delegates are not scheduled", func(t *testing.T) {
		assert.False(t, g.Scheduled(g.Node("d1")))
		assert.False(t, g.Scheduled(g.Node("d2")))
		assert.True(t, g.Scheduled(g.Node("gcm")))
	})

	t.Run("delegate edges create no dependencies", func(t *testing.T) {
		assert.Equal(t, []string{"start"}, g.Dependencies("gcm"))
	})
}

func TestReadySet(t *testing.T) {
	g := gcmGraph(t)

	t.Run("start is ready first", func(t *testing.T) {
		ready := g.ReadySet(map[string]string{})
		require.Len(t, ready, 1)
		assert.Equal(t, "start", ready[0].ID)
	})

	t.Run("gcm ready after start", func(t *testing.T) {
		ready := g.ReadySet(map[string]string{"start": "[start]"})
		require.Len(t, ready, 1)
		assert.Equal(t, "gcm", ready[0].ID)
	})

	t.Run("nothing ready when complete", func(t *testing.T) {
		executed := map[string]string{"start": "s", "gcm": "g", "end": "e"}
		assert.Empty(t, g.ReadySet(executed))
		assert.Equal(t, 0, g.PendingCount(executed))
	})

	t.Run("parallel fan-out within a level", func(t *testing.T) {
		g, err := Parse([]byte(`{
			"nodes": [
				{"id": "start", "type": "StartNode", "data": {}},
				{"id": "a", "type": "AssistantAgent", "data": {"name": "A"}},
				{"id": "b", "type": "AssistantAgent", "data": {"name": "B"}},
				{"id": "join", "type": "AssistantAgent", "data": {"name": "Join"}}
			],
			"edges": [
				{"source": "start", "target": "a", "type": "sequential"},
				{"source": "start", "target": "b", "type": "sequential"},
				{"source": "a", "target": "join", "type": "sequential"},
				{"source": "b", "target": "join", "type": "sequential"}
			]
		}`))
		require.NoError(t, err)

		ready := g.ReadySet(map[string]string{"start": "s"})
		require.Len(t, ready, 2)

		// join waits for both branches
		ready = g.ReadySet(map[string]string{"start": "s", "a": "out-a"})
		require.Len(t, ready, 1)
		assert.Equal(t, "b", ready[0].ID)
	})
}

func TestAggregateInputs(t *testing.T) {
	g, err := Parse([]byte(`{
		"nodes": [
			{"id": "start", "type": "StartNode", "data": {}},
			{"id": "a", "type": "AssistantAgent", "data": {"name": "A"}},
			{"id": "b", "type": "AssistantAgent", "data": {"name": "B"}},
			{"id": "join", "type": "AssistantAgent", "data": {"name": "Join"}}
		],
		"edges": [
			{"source": "start", "target": "a", "type": "sequential"},
			{"source": "start", "target": "b", "type": "sequential"},
			{"source": "a", "target": "join", "type": "sequential"},
			{"source": "b", "target": "join", "type": "sequential"}
		]
	}`))
	require.NoError(t, err)

	t.Run("first input is primary, rest are named", func(t *testing.T) {
		executed := map[string]string{"a": "alpha output", "b": "beta output"}
		agg := g.AggregateInputs("join", executed, "")
		assert.Equal(t, 2, agg.InputCount)
		assert.Equal(t, "alpha output", agg.PrimaryInput)
		require.Len(t, agg.SecondaryInputs, 1)
		assert.Equal(t, "B", agg.SecondaryInputs[0].Name)
		assert.Contains(t, agg.CombinedText, "beta output")
		assert.Contains(t, agg.Formatted(), "Additional input from B")
	})

	t.Run("fallback used when no upstream outputs", func(t *testing.T) {
		agg := g.AggregateInputs("a", map[string]string{}, "the original prompt")
		assert.Equal(t, 1, agg.InputCount)
		assert.Equal(t, "the original prompt", agg.PrimaryInput)
	})

	t.Run("input sources lists contributing agents", func(t *testing.T) {
		executed := map[string]string{"a": "x", "b": "y"}
		assert.Equal(t, []string{"A", "B"}, g.InputSources("join", executed))
	})
}

func TestNormalizeTerminationStrategy(t *testing.T) {
	assert.Equal(t, TerminateAllComplete, NormalizeTerminationStrategy(""))
	assert.Equal(t, TerminateAllComplete, NormalizeTerminationStrategy("max_iterations_reached"))
	assert.Equal(t, TerminateAnyComplete, NormalizeTerminationStrategy(TerminateAnyComplete))
	assert.Equal(t, TerminateAllComplete, NormalizeTerminationStrategy("bogus"))
}
