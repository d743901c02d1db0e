package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
)

// Analyzer performs query splitting and delegate matching against an LLM.
type Analyzer struct {
	provider llm.Provider
}

// NewAnalyzer creates an Analyzer over the given provider.
func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// rawSubquery is the LLM-facing JSON shape of one subquery.
type rawSubquery struct {
	Query              string   `json:"query"`
	Priority           string   `json:"priority"`
	Dependencies       []int    `json:"dependencies"`
	SuggestedDelegates []string `json:"suggested_delegates"`
}

// Split partitions the input into subqueries. On any parse failure or an
// empty result the whole input becomes a single medium-priority subquery with
// every delegate suggested — the workflow never fails on a split.
func (a *Analyzer) Split(ctx context.Context, input string, delegates []DelegateDescription, maxSubqueries int) []Subquery {
	prompt := buildSplitPrompt(input, delegates, maxSubqueries)

	result, err := a.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: structuralTemperature,
		MaxTokens:   2048,
	})
	if err != nil || result.Text == "" {
		slog.Warn("Query split failed, falling back to single subquery", "error", err)
		return []Subquery{fallbackSubquery(input, delegates)}
	}

	raw, err := parseSubqueryArray(result.Text)
	if err != nil || len(raw) == 0 {
		slog.Warn("Query split returned unparseable output, falling back to single subquery",
			"error", err, "output_bytes", len(result.Text))
		return []Subquery{fallbackSubquery(input, delegates)}
	}

	subqueries := coerceSubqueries(raw)
	if len(subqueries) == 0 {
		return []Subquery{fallbackSubquery(input, delegates)}
	}

	if maxSubqueries > 0 && len(subqueries) > maxSubqueries {
		// Stable sort keeps the original order within a priority band. The
		// permutation is sorted instead of the slice itself so dependency
		// values, which reference pre-sort positions, can be remapped.
		order := make([]int, len(subqueries))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return subqueries[order[i]].Priority.Rank() < subqueries[order[j]].Priority.Rank()
		})
		newIndex := make(map[int]int, maxSubqueries)
		for n, o := range order[:maxSubqueries] {
			newIndex[o] = n
		}
		kept := make([]Subquery, maxSubqueries)
		for n, o := range order[:maxSubqueries] {
			sq := subqueries[o]
			deps := make([]int, 0, len(sq.Dependencies))
			for _, dep := range sq.Dependencies {
				if nd, ok := newIndex[dep]; ok && nd != n {
					deps = append(deps, nd)
				}
			}
			sq.Dependencies = deps
			kept[n] = sq
		}
		subqueries = kept
	}

	// Reassign indexes; drop dependencies that point outside the array or
	// at the subquery itself.
	for i := range subqueries {
		subqueries[i].Index = i
		kept := subqueries[i].Dependencies[:0]
		for _, dep := range subqueries[i].Dependencies {
			if dep >= 0 && dep < len(subqueries) && dep != i {
				kept = append(kept, dep)
			}
		}
		subqueries[i].Dependencies = kept
	}
	return subqueries
}

func buildSplitPrompt(input string, delegates []DelegateDescription, maxSubqueries int) string {
	var b strings.Builder
	b.WriteString("Split the following request into independent subqueries for a team of specialist agents.\n\n")
	b.WriteString("Available agents:\n")
	for _, d := range delegates {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
	}
	fmt.Fprintf(&b, "\nRequest:\n%s\n\n", input)
	b.WriteString("Respond with ONLY a JSON array. Each element:\n")
	b.WriteString(`{"query": "...", "priority": "high"|"medium"|"low", "dependencies": [indexes of subqueries that must complete first], "suggested_delegates": ["agent names"]}`)
	b.WriteString("\n")
	if maxSubqueries > 0 {
		fmt.Fprintf(&b, "Produce at most %d subqueries.\n", maxSubqueries)
	}
	b.WriteString("No prose, no markdown fences.")
	return b.String()
}

// parseSubqueryArray strips Markdown code fences and decodes the JSON array.
func parseSubqueryArray(text string) ([]rawSubquery, error) {
	cleaned := StripCodeFences(text)
	start := strings.IndexByte(cleaned, '[')
	end := strings.LastIndexByte(cleaned, ']')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array found in output")
	}
	var raw []rawSubquery
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode subquery array: %w", err)
	}
	return raw, nil
}

func coerceSubqueries(raw []rawSubquery) []Subquery {
	out := make([]Subquery, 0, len(raw))
	for _, r := range raw {
		q := strings.TrimSpace(r.Query)
		if q == "" {
			continue
		}
		priority := protocol.Priority(strings.ToLower(r.Priority))
		if !priority.Valid() {
			priority = protocol.PriorityMedium
		}
		out = append(out, Subquery{
			SubqueryID:         uuid.New().String(),
			Query:              q,
			Priority:           priority,
			Dependencies:       r.Dependencies,
			SuggestedDelegates: r.SuggestedDelegates,
			Index:              len(out),
			CreatedAt:          time.Now().UTC(),
		})
	}
	return out
}

func fallbackSubquery(input string, delegates []DelegateDescription) Subquery {
	return Subquery{
		SubqueryID:         uuid.New().String(),
		Query:              input,
		Priority:           protocol.PriorityMedium,
		SuggestedDelegates: Names(delegates),
		Index:              0,
		CreatedAt:          time.Now().UTC(),
	}
}

// StripCodeFences removes a wrapping Markdown code fence (``` or ```json)
// from LLM output, if present.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(trimmed[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
