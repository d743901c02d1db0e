package workflow

import (
	"fmt"
	"strings"
)

// NamedInput is a secondary input to a node, labeled with the producing
// agent's display name.
type NamedInput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// AggregatedContext is the ordered collection of upstream outputs feeding a
// node, plus a prompt-ready rendering.
type AggregatedContext struct {
	InputCount      int          `json:"input_count"`
	PrimaryInput    string       `json:"primary_input"`
	SecondaryInputs []NamedInput `json:"secondary_inputs,omitempty"`
	InputSummary    string       `json:"input_summary"`
	CombinedText    string       `json:"combined_text"`
}

// AggregateInputs collects executed outputs along the incoming sequential and
// reflection edges of a node, in edge declaration order. The first available
// input becomes the primary; the rest become named secondary inputs. When the
// node has no incoming edges with outputs, fallback is used as the sole input.
func (g *Graph) AggregateInputs(id string, executed map[string]string, fallback string) *AggregatedContext {
	agg := &AggregatedContext{}
	sources := make([]string, 0, 4)
	for _, e := range g.Edges {
		if e.Target != id {
			continue
		}
		if e.Type != EdgeSequential && e.Type != EdgeReflection {
			continue
		}
		sources = append(sources, e.Source)
	}

	for _, src := range sources {
		out, ok := executed[src]
		if !ok {
			continue
		}
		if agg.InputCount == 0 {
			agg.PrimaryInput = out
		} else {
			name := src
			if n := g.byID[src]; n != nil {
				name = n.DisplayName()
			}
			agg.SecondaryInputs = append(agg.SecondaryInputs, NamedInput{Name: name, Content: out})
		}
		agg.InputCount++
	}

	if agg.InputCount == 0 && fallback != "" {
		agg.PrimaryInput = fallback
		agg.InputCount = 1
	}

	agg.InputSummary = fmt.Sprintf("%d input(s) aggregated", agg.InputCount)

	var combined strings.Builder
	combined.WriteString(agg.PrimaryInput)
	for _, sec := range agg.SecondaryInputs {
		combined.WriteString("\n\n")
		combined.WriteString(sec.Content)
	}
	agg.CombinedText = combined.String()

	return agg
}

// Formatted renders the context as a human-readable block for prompts.
func (a *AggregatedContext) Formatted() string {
	if a.InputCount <= 1 && len(a.SecondaryInputs) == 0 {
		return a.PrimaryInput
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Primary input:\n%s\n", a.PrimaryInput)
	for _, sec := range a.SecondaryInputs {
		fmt.Fprintf(&b, "\nAdditional input from %s:\n%s\n", sec.Name, sec.Content)
	}
	return b.String()
}

// InputSources returns the display names of the agents contributing inputs,
// primary first. Used to build the human-input context shown on pause.
func (g *Graph) InputSources(id string, executed map[string]string) []string {
	var names []string
	for _, e := range g.Edges {
		if e.Target != id {
			continue
		}
		if e.Type != EdgeSequential && e.Type != EdgeReflection {
			continue
		}
		if _, ok := executed[e.Source]; !ok {
			continue
		}
		name := e.Source
		if n := g.byID[e.Source]; n != nil {
			name = n.DisplayName()
		}
		names = append(names, name)
	}
	return names
}
