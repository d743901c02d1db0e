package delegate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/weftworks/weft/pkg/llm"
)

const (
	defaultToolTurns = 5
	// observationLimit caps a single tool result fed back into the prompt.
	observationLimit = 8000
)

// ToolDefinition describes one callable tool, name-spaced as "server.tool".
type ToolDefinition struct {
	Name        string
	Description string
	Schema      string
}

// ToolRunner is a live tool session for one delegation. Implemented by
// mcp.ToolExecutor.
type ToolRunner interface {
	Tools(ctx context.Context) ([]ToolDefinition, error)
	Call(ctx context.Context, name string, args map[string]any) (string, error)
	Close() error
}

// ToolSource opens tool sessions against a set of configured servers.
// Implemented by mcp.ClientFactory.
type ToolSource interface {
	Session(ctx context.Context, serverIDs []string) (ToolRunner, error)
}

// toolAction is one parsed tool invocation from model output.
type toolAction struct {
	Name  string
	Input string
}

// generateWithTools runs a bounded reason-act loop: the model either answers
// or requests one tool call per turn, and each tool result is appended to the
// transcript before the next turn. Exhausting the turn budget returns the
// last model text as the answer.
func (e *Executor) generateWithTools(ctx context.Context, provider llm.Provider, task Task, base llm.Request) (*llm.Result, error) {
	session, err := e.tools.Session(ctx, task.Node.Data.MCPServers)
	if err != nil {
		return nil, fmt.Errorf("opening tool session for delegate %q: %w", task.Node.DisplayName(), err)
	}
	defer func() { _ = session.Close() }()

	defs, err := session.Tools(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tools for delegate %q: %w", task.Node.DisplayName(), err)
	}
	if len(defs) == 0 {
		return provider.Generate(ctx, base)
	}

	req := base
	req.SystemMessage = joinSections(base.SystemMessage, toolInstructions(defs))

	turns := task.Node.Data.MaxIterations
	if turns <= 0 {
		turns = defaultToolTurns
	}

	var transcript strings.Builder
	total := &llm.Result{}
	for turn := 0; turn < turns; turn++ {
		req.Prompt = base.Prompt + transcript.String()
		res, err := provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		total.TokenCount += res.TokenCount
		total.ResponseTimeMs += res.ResponseTimeMs

		action, answer, ok := parseToolAction(res.Text)
		if !ok {
			total.Text = answer
			return total, nil
		}

		observation := e.callTool(ctx, session, task, action)
		transcript.WriteString("\n\nAction: " + action.Name)
		transcript.WriteString("\nAction Input: " + action.Input)
		transcript.WriteString("\nObservation: " + observation)
		total.Text = answer
	}

	slog.Warn("Delegate exhausted tool turns, using last response",
		"delegate", task.Node.DisplayName(), "turns", turns)
	return total, nil
}

// callTool executes one action, mapping every failure into an observation
// string so the model can correct itself on the next turn.
func (e *Executor) callTool(ctx context.Context, session ToolRunner, task Task, action toolAction) string {
	args := map[string]any{}
	input := strings.TrimSpace(action.Input)
	if input != "" {
		if err := json.Unmarshal([]byte(input), &args); err != nil {
			return fmt.Sprintf("ERROR: Action Input is not valid JSON: %v", err)
		}
	}

	result, err := session.Call(ctx, action.Name, args)
	if err != nil {
		slog.Warn("Tool call failed",
			"delegate", task.Node.DisplayName(), "tool", action.Name, "error", err)
		return fmt.Sprintf("ERROR: tool call failed: %v", err)
	}
	if len(result) > observationLimit {
		result = result[:observationLimit] + "\n[tool output truncated]"
	}
	if result == "" {
		return "(no output)"
	}
	return result
}

// parseToolAction scans model output for an Action / Action Input pair.
// Returns the action when found; otherwise the final answer text, with a
// leading "Final Answer:" marker stripped.
func parseToolAction(text string) (toolAction, string, bool) {
	var action toolAction
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if name, ok := strings.CutPrefix(line, "Action:"); ok {
			action.Name = strings.TrimSpace(name)
			continue
		}
		if input, ok := strings.CutPrefix(line, "Action Input:"); ok {
			// Action Input may span lines (pretty-printed JSON); take
			// everything until the next marker or end of text.
			parts := []string{strings.TrimSpace(input)}
			for j := i + 1; j < len(lines); j++ {
				next := strings.TrimSpace(lines[j])
				if strings.HasPrefix(next, "Observation:") || strings.HasPrefix(next, "Final Answer:") {
					break
				}
				parts = append(parts, lines[j])
				i = j
			}
			action.Input = strings.TrimSpace(strings.Join(parts, "\n"))
		}
	}

	if action.Name != "" {
		return action, "", true
	}

	answer := strings.TrimSpace(text)
	if idx := strings.Index(answer, "Final Answer:"); idx >= 0 {
		answer = strings.TrimSpace(answer[idx+len("Final Answer:"):])
	}
	return toolAction{}, answer, false
}

// toolInstructions renders the tool list and call protocol appended to the
// delegate's system message.
func toolInstructions(defs []ToolDefinition) string {
	var b strings.Builder
	b.WriteString("You can call tools to gather information before answering.\n")
	b.WriteString("Available tools:\n")
	for _, d := range defs {
		b.WriteString("- " + d.Name)
		if d.Description != "" {
			b.WriteString(": " + d.Description)
		}
		b.WriteString("\n")
		if d.Schema != "" {
			b.WriteString("  parameters: " + d.Schema + "\n")
		}
	}
	b.WriteString("\nTo call a tool, respond with exactly:\n")
	b.WriteString("Action: <tool name>\n")
	b.WriteString("Action Input: <JSON object of arguments>\n")
	b.WriteString("\nWhen you have enough information, respond with:\n")
	b.WriteString("Final Answer: <your complete answer>\n")
	b.WriteString("Call one tool at a time and never invent tool results.")
	return b.String()
}

func joinSections(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n\n" + b
}
