package mcp

import (
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToolName(t *testing.T) {
	t.Run("splits on the first dot", func(t *testing.T) {
		server, tool, err := splitToolName("search.lookup")
		require.NoError(t, err)
		assert.Equal(t, "search", server)
		assert.Equal(t, "lookup", tool)
	})

	t.Run("tool names keep their own dots", func(t *testing.T) {
		server, tool, err := splitToolName("k8s.pods.list")
		require.NoError(t, err)
		assert.Equal(t, "k8s", server)
		assert.Equal(t, "pods.list", tool)
	})

	t.Run("rejects names without a server prefix", func(t *testing.T) {
		for _, name := range []string{"lookup", ".lookup", "search.", ""} {
			_, _, err := splitToolName(name)
			assert.Error(t, err, name)
		}
	})
}

func TestExtractTextContent(t *testing.T) {
	t.Run("concatenates text items", func(t *testing.T) {
		result := &mcpsdk.CallToolResult{Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: "first"},
			&mcpsdk.TextContent{Text: "second"},
		}}
		assert.Equal(t, "first\nsecond", extractTextContent(result))
	})

	t.Run("skips non-text content", func(t *testing.T) {
		result := &mcpsdk.CallToolResult{Content: []mcpsdk.Content{
			&mcpsdk.ImageContent{Data: []byte{1}},
			&mcpsdk.TextContent{Text: "caption"},
		}}
		assert.Equal(t, "caption", extractTextContent(result))
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Equal(t, "", extractTextContent(&mcpsdk.CallToolResult{}))
	})
}

func TestMarshalSchema(t *testing.T) {
	assert.Equal(t, "", marshalSchema(nil))
	assert.JSONEq(t, `{"type":"object"}`, marshalSchema(map[string]any{"type": "object"}))
}
