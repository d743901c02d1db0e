package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesFilters(t *testing.T) {
	doc := Document{
		Content: "chunk text",
		Metadata: map[string]any{
			"source":      "reports/q3/revenue.pdf",
			"document_id": "doc-17",
		},
	}

	t.Run("no filters admits everything", func(t *testing.T) {
		assert.True(t, MatchesFilters(doc, nil))
	})

	t.Run("folder prefix match", func(t *testing.T) {
		assert.True(t, MatchesFilters(doc, []string{"folder_reports/q3"}))
		assert.False(t, MatchesFilters(doc, []string{"folder_archive"}))
	})

	t.Run("file exact match", func(t *testing.T) {
		assert.True(t, MatchesFilters(doc, []string{"file_doc-17"}))
		assert.False(t, MatchesFilters(doc, []string{"file_doc-18"}))
	})

	t.Run("filters combine with OR", func(t *testing.T) {
		assert.True(t, MatchesFilters(doc, []string{"folder_archive", "file_doc-17"}))
		assert.False(t, MatchesFilters(doc, []string{"folder_archive", "file_doc-18"}))
	})

	t.Run("empty filter values never match", func(t *testing.T) {
		assert.False(t, MatchesFilters(doc, []string{"folder_", "file_"}))
	})
}

func TestFormatResults(t *testing.T) {
	t.Run("empty results render nothing", func(t *testing.T) {
		assert.Empty(t, FormatResults(nil))
	})

	t.Run("results carry source and score", func(t *testing.T) {
		out := FormatResults([]Document{
			{Content: "first chunk", Metadata: map[string]any{"source": "a.pdf", "score": 0.91}},
			{Content: "second chunk", Metadata: map[string]any{}},
		})
		assert.Contains(t, out, "[1] a.pdf (score 0.91)")
		assert.Contains(t, out, "first chunk")
		assert.Contains(t, out, "[2] unknown")
	})
}
