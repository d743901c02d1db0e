// Package retrieval provides the document search contract consumed by
// doc-aware agents, content filtering, and a Qdrant-backed implementation.
package retrieval

import (
	"context"
	"fmt"
	"strings"
)

// Document is one retrieved chunk with its metadata (source, page, score,
// chunk_type, document_id).
type Document struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// SearchRequest describes one retrieval call.
type SearchRequest struct {
	Query string
	// Method selects the search strategy (semantic, keyword, hybrid);
	// backends may ignore unsupported methods.
	Method string
	Params map[string]any
	// ContentFilters restrict results: "folder_<path>" matches source prefix,
	// "file_<doc_id>" matches document id exactly. Filters combine with OR.
	ContentFilters []string
	// ConversationContext optionally biases retrieval toward the ongoing
	// conversation.
	ConversationContext string
	TopK                int
}

// Searcher performs document retrieval. Implementations must honor the
// context deadline.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) ([]Document, error)
}

// MatchesFilters reports whether a document passes the content filters.
// An empty filter list admits everything.
func MatchesFilters(doc Document, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	source, _ := doc.Metadata["source"].(string)
	docID, _ := doc.Metadata["document_id"].(string)

	for _, f := range filters {
		switch {
		case strings.HasPrefix(f, "folder_"):
			if prefix := strings.TrimPrefix(f, "folder_"); prefix != "" && strings.HasPrefix(source, prefix) {
				return true
			}
		case strings.HasPrefix(f, "file_"):
			if id := strings.TrimPrefix(f, "file_"); id != "" && id == docID {
				return true
			}
		}
	}
	return false
}

// FormatResults renders retrieved documents as a prompt block with source and
// score annotations. Returns "" for an empty result set.
func FormatResults(docs []Document) string {
	if len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Relevant documents:\n")
	for i, doc := range docs {
		source, _ := doc.Metadata["source"].(string)
		if source == "" {
			source = "unknown"
		}
		score, _ := doc.Metadata["score"].(float64)
		fmt.Fprintf(&b, "\n[%d] %s (score %.2f)\n%s\n", i+1, source, score, doc.Content)
	}
	return b.String()
}
