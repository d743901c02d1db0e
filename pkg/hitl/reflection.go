package hitl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/workflow"
)

const defaultReflectionIterations = 3

// Reflector drives reflection feedback loops: a source agent's output is
// reviewed by a human, who either accepts it or sends it back with feedback
// for another iteration.
type Reflector struct {
	providers delegate.ProviderSource
}

// NewReflector builds a Reflector.
func NewReflector(providers delegate.ProviderSource) *Reflector {
	return &Reflector{providers: providers}
}

// Handle processes one resumed reflection. Submit accepts the current text;
// iterate re-runs the source agent with the feedback and pauses again. Once
// the iteration cap is reached, iterate degrades to submit with the last
// candidate.
func (r *Reflector) Handle(ctx context.Context, c *Controller, execution *models.Execution, graph *workflow.Graph, input string, action models.HumanInputAction) error {
	hctx := execution.HumanInputContext
	source := graph.Node(hctx.ReflectionSourceID)
	if source == nil {
		return fmt.Errorf("reflection source %q not found in workflow", hctx.ReflectionSourceID)
	}
	maxIterations := source.Data.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultReflectionIterations
	}

	if action == models.ActionIterate {
		if hctx.Iteration < maxIterations {
			return r.iterate(ctx, c, execution, graph, source, input)
		}
		slog.Info("Reflection iteration cap reached, accepting last candidate",
			"execution_id", execution.ID, "source", source.DisplayName(), "iterations", hctx.Iteration)
		input = ""
	}
	return r.submit(ctx, c, execution, source, input)
}

// submit finishes the loop: the accepted text becomes the source agent's
// final output, the reviewing proxy is marked executed, and the scheduler
// takes over. An empty input accepts the current candidate unchanged.
func (r *Reflector) submit(ctx context.Context, c *Controller, execution *models.Execution, source *workflow.Node, input string) error {
	executed, err := c.store.ExecutedNodes(ctx, execution.ID)
	if err != nil {
		return fmt.Errorf("loading executed nodes for %s: %w", execution.ID, err)
	}

	accepted := strings.TrimSpace(input)
	if accepted == "" {
		accepted = executed[source.ID]
	}
	executed[source.ID] = accepted
	executed[execution.HumanInputAgentID] = accepted
	if err := c.store.SaveExecutedNodes(ctx, execution.ID, executed); err != nil {
		return fmt.Errorf("saving accepted reflection output for %s: %w", execution.ID, err)
	}

	if err := c.store.AppendMessage(ctx, execution.ID, models.Message{
		AgentName: source.DisplayName(),
		AgentType: string(source.Type),
		Content:   accepted,
		Type:      models.MessageReflectionFinal,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("appending reflection final message for %s: %w", execution.ID, err)
	}

	return c.scheduler.Execute(ctx, execution.ID)
}

// iterate re-runs the source agent with the reviewer's feedback and pauses
// the execution again with the new candidate. When the provider call fails,
// the previous pause state is restored so the reviewer can try again.
func (r *Reflector) iterate(ctx context.Context, c *Controller, execution *models.Execution, graph *workflow.Graph, source *workflow.Node, feedback string) error {
	hctx := execution.HumanInputContext
	iteration := hctx.Iteration + 1

	executed, err := c.store.ExecutedNodes(ctx, execution.ID)
	if err != nil {
		return fmt.Errorf("loading executed nodes for %s: %w", execution.ID, err)
	}
	previous := executed[source.ID]

	candidate, genErr := r.revise(ctx, c, execution, graph, source, executed, previous, feedback)
	if genErr != nil {
		if pauseErr := c.Pause(ctx, execution.ID, models.PauseRequest{
			AgentName: execution.AwaitingHumanInput,
			AgentID:   execution.HumanInputAgentID,
			Context:   hctx,
		}); pauseErr != nil {
			slog.Error("Failed to restore pause state after reflection error",
				"execution_id", execution.ID, "error", pauseErr)
		}
		return fmt.Errorf("reflection iteration %d for %s: %w", iteration, execution.ID, genErr)
	}

	executed[source.ID] = candidate
	if err := c.store.SaveExecutedNodes(ctx, execution.ID, executed); err != nil {
		return fmt.Errorf("saving reflection candidate for %s: %w", execution.ID, err)
	}
	if err := c.store.AppendMessage(ctx, execution.ID, models.Message{
		AgentName: source.DisplayName(),
		AgentType: string(source.Type),
		Content:   candidate,
		Type:      models.MessageAgentResponse,
		Metadata:  map[string]any{"reflection_iteration": iteration},
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("appending reflection candidate for %s: %w", execution.ID, err)
	}

	return c.Pause(ctx, execution.ID, models.PauseRequest{
		AgentName: execution.AwaitingHumanInput,
		AgentID:   execution.HumanInputAgentID,
		Context: &models.HumanInputContext{
			InputSources:       []string{source.DisplayName()},
			Inputs:             candidate,
			ReflectionSource:   source.DisplayName(),
			ReflectionSourceID: source.ID,
			Iteration:          iteration,
		},
	})
}

// revise calls the source agent's LLM with the previous candidate and the
// feedback, and audits the interaction.
func (r *Reflector) revise(ctx context.Context, c *Controller, execution *models.Execution, graph *workflow.Graph, source *workflow.Node, executed map[string]string, previous, feedback string) (string, error) {
	provider, err := r.providers.Acquire(ctx, execution.ProjectID, source.Data.LLMProvider, source.Data.LLMModel)
	if err != nil {
		return "", fmt.Errorf("acquiring provider for %q: %w", source.DisplayName(), err)
	}

	var b strings.Builder
	if agg := graph.AggregateInputs(source.ID, executed, execution.Input); agg.InputCount > 0 {
		b.WriteString("Original task:\n")
		b.WriteString(agg.Formatted())
		b.WriteString("\n\n")
	}
	b.WriteString("Your previous response:\n")
	b.WriteString(previous)
	b.WriteString("\n\nReviewer feedback:\n")
	b.WriteString(feedback)
	b.WriteString("\n\nRevise your response to address the feedback. Return only the revised response.")

	req := llm.Request{SystemMessage: source.Data.SystemMessage, Prompt: b.String()}
	if source.Data.Temperature != nil {
		req.Temperature = *source.Data.Temperature
	}
	if source.Data.MaxTokens != nil {
		req.MaxTokens = *source.Data.MaxTokens
	}

	result, genErr := provider.Generate(ctx, req)
	interaction := models.LLMInteraction{
		NodeID:   source.ID,
		Provider: provider.Name(),
		Model:    provider.Model(),
		Purpose:  "node_prompt",
		Prompt:   b.String(),
	}
	if genErr != nil {
		interaction.ErrorMessage = genErr.Error()
	} else {
		interaction.Response = result.Text
		interaction.TokenCount = result.TokenCount
		interaction.ResponseTimeMs = result.ResponseTimeMs
	}
	if err := c.store.RecordInteraction(ctx, execution.ID, interaction); err != nil {
		slog.Warn("Failed to record reflection interaction",
			"execution_id", execution.ID, "error", err)
	}
	if genErr != nil {
		return "", genErr
	}
	return result.Text, nil
}
