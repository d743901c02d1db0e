package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/orchestrator"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/retrieval"
	"github.com/weftworks/weft/pkg/workflow"
)

const retrievalTopK = 5

// markerExecutor handles StartNode and EndNode. Both are no-ops that record
// a sentinel message; a StartNode additionally publishes the raw execution
// input so downstream nodes can consume it.
type markerExecutor struct{}

func (markerExecutor) Execute(ctx context.Context, run *Run, node *workflow.Node) (*NodeResult, error) {
	content := "Workflow execution started"
	output := run.Execution.Input
	if node.Type == workflow.NodeEnd {
		content = "Workflow execution finished"
		output = ""
	}
	if err := appendAgentMessage(ctx, run, node, content, models.MessageSystem); err != nil {
		return nil, err
	}
	return &NodeResult{Output: output, Persist: true}, nil
}

// AssistantExecutor runs AssistantAgent nodes (and top-level DelegateAgent
// nodes, which behave identically outside a group chat): aggregate inputs,
// optionally retrieve documents, call the node's LLM.
type AssistantExecutor struct {
	providers delegate.ProviderSource
	searcher  retrieval.Searcher
}

// NewAssistantExecutor builds an AssistantExecutor. searcher may be nil.
func NewAssistantExecutor(providers delegate.ProviderSource, searcher retrieval.Searcher) *AssistantExecutor {
	return &AssistantExecutor{providers: providers, searcher: searcher}
}

func (a *AssistantExecutor) Execute(ctx context.Context, run *Run, node *workflow.Node) (*NodeResult, error) {
	execution := run.Execution
	agg := run.Graph.AggregateInputs(node.ID, run.Executed, execution.Input)

	provider, err := a.providers.Acquire(ctx, execution.ProjectID, node.Data.LLMProvider, node.Data.LLMModel)
	if err != nil {
		return nil, fmt.Errorf("acquiring provider: %w", err)
	}

	prompt := a.buildPrompt(ctx, node, agg)
	req := llm.Request{SystemMessage: node.Data.SystemMessage, Prompt: prompt}
	if node.Data.Temperature != nil {
		req.Temperature = *node.Data.Temperature
	}
	if node.Data.MaxTokens != nil {
		req.MaxTokens = *node.Data.MaxTokens
	}

	result, genErr := provider.Generate(ctx, req)
	interaction := models.LLMInteraction{
		NodeID:   node.ID,
		Provider: provider.Name(),
		Model:    provider.Model(),
		Purpose:  "node_prompt",
		Prompt:   prompt,
	}
	if genErr != nil {
		interaction.ErrorMessage = genErr.Error()
	} else {
		interaction.Response = result.Text
		interaction.TokenCount = result.TokenCount
		interaction.ResponseTimeMs = result.ResponseTimeMs
	}
	if err := run.Store().RecordInteraction(ctx, execution.ID, interaction); err != nil {
		slog.Warn("Failed to record LLM interaction", "execution_id", execution.ID, "node", node.ID, "error", err)
	}
	if genErr != nil {
		if ctx.Err() != nil {
			return nil, genErr
		}
		// A failed generation becomes the node's output, prefixed ERROR:,
		// and flows to downstream consumers like any other text.
		return errorOutput(ctx, run, node, genErr)
	}

	if err := appendAgentMessage(ctx, run, node, result.Text, models.MessageAgentResponse); err != nil {
		return nil, err
	}
	return &NodeResult{Output: result.Text, Persist: true}, nil
}

// errorOutput renders a node-level failure as the node's output.
func errorOutput(ctx context.Context, run *Run, node *workflow.Node, cause error) (*NodeResult, error) {
	text := "ERROR: " + cause.Error()
	if err := appendAgentMessage(ctx, run, node, text, models.MessageAgentResponse); err != nil {
		return nil, err
	}
	return &NodeResult{Output: text, Persist: true}, nil
}

func (a *AssistantExecutor) buildPrompt(ctx context.Context, node *workflow.Node, agg *workflow.AggregatedContext) string {
	var b strings.Builder
	b.WriteString(agg.Formatted())

	if node.Data.DocAware && a.searcher != nil {
		docs, err := a.searcher.Search(ctx, retrieval.SearchRequest{
			Query:          agg.PrimaryInput,
			Method:         node.Data.SearchMethod,
			Params:         node.Data.SearchParameters,
			ContentFilters: node.Data.ContentFilters,
			TopK:           retrievalTopK,
		})
		if err != nil {
			slog.Warn("Document search failed, continuing without documents",
				"node", node.DisplayName(), "error", err)
		} else if formatted := retrieval.FormatResults(docs); formatted != "" {
			b.WriteString("\n\n")
			b.WriteString(formatted)
		}
	}
	return b.String()
}

// GroupChat runs a GroupChatManager node. Implemented by
// orchestrator.Orchestrator.
type GroupChat interface {
	Orchestrate(ctx context.Context, req orchestrator.Request) (*orchestrator.Outcome, error)
}

// GroupChatExecutor bridges GroupChatManager nodes to the orchestrator and
// persists the structured delegate conversation for replay.
type GroupChatExecutor struct {
	groupChat GroupChat
}

// NewGroupChatExecutor builds a GroupChatExecutor.
func NewGroupChatExecutor(groupChat GroupChat) *GroupChatExecutor {
	return &GroupChatExecutor{groupChat: groupChat}
}

func (g *GroupChatExecutor) Execute(ctx context.Context, run *Run, node *workflow.Node) (*NodeResult, error) {
	execution := run.Execution
	outcome, err := g.groupChat.Orchestrate(ctx, orchestrator.Request{
		ProjectID:     execution.ProjectID,
		ExecutionID:   execution.ID,
		Graph:         run.Graph,
		Node:          node,
		ExecutedNodes: run.Executed,
		FallbackInput: execution.Input,
	})
	if err != nil {
		// Configuration faults fail the run; orchestration faults become
		// the GCM node's output.
		if ctx.Err() != nil || errors.Is(err, llm.ErrNoCredential) || errors.Is(err, orchestrator.ErrNoDelegates) {
			return nil, err
		}
		return errorOutput(ctx, run, node, err)
	}

	conversations := map[string]any{
		"mode":  string(outcome.Mode),
		"turns": outcome.Turns,
	}
	if outcome.Metrics != nil {
		conversations["metrics"] = outcome.Metrics
	}
	if err := run.Store().SaveDelegateConversations(ctx, execution.ID, conversations); err != nil {
		slog.Warn("Failed to save delegate conversations", "execution_id", execution.ID, "error", err)
	}

	for _, turn := range outcome.Turns {
		msg := models.Message{
			AgentName: turn.Delegate,
			AgentType: string(workflow.NodeDelegate),
			Content:   turn.Content,
			Type:      models.MessageAgentResponse,
		}
		if turn.Status != "" && turn.Status != protocol.StatusCompleted {
			msg.Metadata = map[string]any{"status": string(turn.Status)}
		}
		if err := run.Store().AppendMessage(ctx, execution.ID, msg); err != nil {
			return nil, err
		}
	}
	if err := appendAgentMessage(ctx, run, node, outcome.FinalOutput, models.MessageAgentResponse); err != nil {
		return nil, err
	}
	return &NodeResult{Output: outcome.FinalOutput, Persist: true}, nil
}

// userProxyExecutor handles UserProxyAgent nodes. Interactive proxies pause
// the execution; non-interactive ones pass their aggregated input through.
type userProxyExecutor struct {
	pauser Pauser
}

func (u userProxyExecutor) Execute(ctx context.Context, run *Run, node *workflow.Node) (*NodeResult, error) {
	execution := run.Execution

	if !node.Data.RequireHumanInput {
		agg := run.Graph.AggregateInputs(node.ID, run.Executed, execution.Input)
		if err := appendAgentMessage(ctx, run, node, agg.CombinedText, models.MessageAgentResponse); err != nil {
			return nil, err
		}
		return &NodeResult{Output: agg.CombinedText, Persist: true}, nil
	}

	// An answered proxy is recorded in executed_nodes at submit time, so
	// a proxy that reaches this point is unanswered and pauses, even when
	// another proxy was answered earlier in the run.
	agg := run.Graph.AggregateInputs(node.ID, run.Executed, execution.Input)
	hctx := &models.HumanInputContext{
		InputSources: run.Graph.InputSources(node.ID, run.Executed),
		Inputs:       agg.Formatted(),
	}
	if src := run.Graph.ReflectionSource(node.ID); src != nil {
		hctx.ReflectionSource = src.DisplayName()
		hctx.ReflectionSourceID = src.ID
		hctx.Iteration = 1
	}

	if err := u.pauser.Pause(ctx, execution.ID, models.PauseRequest{
		AgentName:     node.DisplayName(),
		AgentID:       node.ID,
		Context:       hctx,
		ExecutedNodes: run.Executed,
	}); err != nil {
		return nil, fmt.Errorf("pausing for human input at %q: %w", node.DisplayName(), err)
	}
	return &NodeResult{Paused: true}, nil
}
