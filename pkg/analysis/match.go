package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/weftworks/weft/pkg/llm"
)

// broadcastConfidence is recorded on assignments produced by the broadcast
// fallback.
const broadcastConfidence = 0.5

// Match assigns a subquery to delegates. When the model's confidence falls
// below threshold, the assigned set is empty after filtering, or the call
// fails outright, the subquery is broadcast to every delegate with the
// fallback cause recorded in the reasoning.
func (a *Analyzer) Match(ctx context.Context, sq Subquery, delegates []DelegateDescription, threshold float64) Assignment {
	prompt := buildMatchPrompt(sq, delegates)

	result, err := a.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: structuralTemperature,
		MaxTokens:   512,
	})
	if err != nil || result.Text == "" {
		slog.Warn("Delegate match failed, broadcasting to all delegates",
			"subquery_id", sq.SubqueryID, "error", err)
		return broadcast(sq, delegates, fmt.Sprintf("match call failed: %v", err))
	}

	var parsed struct {
		AssignedDelegates []string `json:"assigned_delegates"`
		Confidence        float64  `json:"confidence"`
		Reasoning         string   `json:"reasoning"`
	}
	cleaned := StripCodeFences(result.Text)
	if err := json.Unmarshal([]byte(extractObject(cleaned)), &parsed); err != nil {
		slog.Warn("Delegate match returned unparseable output, broadcasting",
			"subquery_id", sq.SubqueryID, "error", err)
		return broadcast(sq, delegates, "match output was not valid JSON")
	}

	confidence := clamp01(parsed.Confidence)

	// Keep only names that exist.
	known := make(map[string]bool, len(delegates))
	for _, d := range delegates {
		known[d.Name] = true
	}
	assigned := parsed.AssignedDelegates[:0]
	for _, name := range parsed.AssignedDelegates {
		if known[name] {
			assigned = append(assigned, name)
		}
	}

	if len(assigned) == 0 {
		return broadcast(sq, delegates, "no valid delegates in match output")
	}
	if confidence < threshold {
		return broadcast(sq, delegates,
			fmt.Sprintf("confidence %.2f below threshold %.2f", confidence, threshold))
	}

	return Assignment{
		Subquery:          sq,
		AssignedDelegates: assigned,
		Confidence:        confidence,
		Reasoning:         parsed.Reasoning,
		Status:            "pending",
	}
}

func buildMatchPrompt(sq Subquery, delegates []DelegateDescription) string {
	var b strings.Builder
	b.WriteString("Pick the best agent(s) for this task.\n\nAgents:\n")
	for _, d := range delegates {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
	}
	fmt.Fprintf(&b, "\nTask (priority %s):\n%s\n\n", sq.Priority, sq.Query)
	if len(sq.SuggestedDelegates) > 0 {
		fmt.Fprintf(&b, "Previously suggested: %s\n\n", strings.Join(sq.SuggestedDelegates, ", "))
	}
	b.WriteString(`Respond with ONLY a JSON object: {"assigned_delegates": ["name"], "confidence": 0.0-1.0, "reasoning": "..."}`)
	return b.String()
}

func broadcast(sq Subquery, delegates []DelegateDescription, cause string) Assignment {
	return Assignment{
		Subquery:          sq,
		AssignedDelegates: Names(delegates),
		Confidence:        broadcastConfidence,
		Reasoning:         "broadcast to all delegates: " + cause,
		Status:            "pending",
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// extractObject returns the first balanced JSON object in the text, or the
// text unchanged when no object is found (letting Unmarshal report the error).
func extractObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return text
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text
}
