// Package orchestrator implements group chat orchestration: a
// GroupChatManager node drives its connected delegate agents through either
// iterative round-robin conversation or a single-pass intelligent delegation
// pipeline, then synthesizes a final answer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/workflow"
)

const (
	defaultMaxRounds     = 3
	defaultMaxIterations = 3
	// historyWindow is how many trailing conversation entries each delegate
	// sees in its round prompt.
	historyWindow = 3
	defaultConfidenceThreshold = 0.7
)

// errFallbackRoundRobin marks intelligent-mode precondition failures that
// should degrade to round robin rather than fail the node.
var errFallbackRoundRobin = errors.New("intelligent delegation preconditions not met")

// ErrNoDelegates reports a GroupChatManager without delegate edges. A
// configuration fault, not a runtime one.
var ErrNoDelegates = errors.New("group chat has no connected delegates")

// TaskRunner executes a single delegation. Satisfied by delegate.Executor.
type TaskRunner interface {
	Execute(ctx context.Context, task delegate.Task) (*delegate.Result, error)
}

// Orchestrator runs GroupChatManager nodes.
type Orchestrator struct {
	providers delegate.ProviderSource
	runner    TaskRunner
}

// New builds an Orchestrator.
func New(providers delegate.ProviderSource, runner TaskRunner) *Orchestrator {
	return &Orchestrator{providers: providers, runner: runner}
}

// Request carries everything an orchestration needs from the engine.
type Request struct {
	ProjectID   string
	ExecutionID string
	Graph       *workflow.Graph
	// Node is the GroupChatManager being executed.
	Node          *workflow.Node
	ExecutedNodes map[string]string
	// FallbackInput seeds the aggregated context when the GCM has no
	// upstream outputs, typically the raw execution input.
	FallbackInput string
}

// Turn is one delegate contribution to the group conversation.
type Turn struct {
	Round      int                     `json:"round"`
	Delegate   string                  `json:"delegate"`
	Content    string                  `json:"content"`
	Status     protocol.ResponseStatus `json:"status"`
	SubqueryID string                  `json:"subquery_id,omitempty"`
}

// Metrics summarizes an intelligent delegation run.
type Metrics struct {
	TotalDelegations int   `json:"total_delegations"`
	Successful       int   `json:"successful"`
	Failed           int   `json:"failed"`
	Timeouts         int   `json:"timeouts"`
	Retries          int   `json:"retries"`
	MatchingTimeMs   int64 `json:"matching_time_ms"`
	DelegationTimeMs int64 `json:"delegation_time_ms"`
}

// Outcome is the result of one GCM execution.
type Outcome struct {
	FinalOutput   string
	Mode          workflow.DelegationMode
	Turns         []Turn
	Metrics       *Metrics
	DelegateNames []string
	TokenCount    int
}

// Orchestrate executes one GroupChatManager node. Delegate discovery and
// input aggregation are independent and run concurrently. Intelligent mode
// degrades to round robin when its preconditions fail.
func (o *Orchestrator) Orchestrate(ctx context.Context, req Request) (*Outcome, error) {
	var (
		delegates []*workflow.Node
		agg       *workflow.AggregatedContext
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		delegates = req.Graph.Delegates(req.Node.ID)
	}()
	go func() {
		defer wg.Done()
		agg = req.Graph.AggregateInputs(req.Node.ID, req.ExecutedNodes, req.FallbackInput)
	}()
	wg.Wait()

	if len(delegates) == 0 {
		return nil, fmt.Errorf("group chat %q: %w", req.Node.DisplayName(), ErrNoDelegates)
	}

	provider, err := o.providers.Acquire(ctx, req.ProjectID, req.Node.Data.LLMProvider, req.Node.Data.LLMModel)
	if err != nil {
		return nil, fmt.Errorf("acquiring provider for group chat %q: %w", req.Node.DisplayName(), err)
	}

	mode := req.Node.Data.DelegationMode
	if mode == "" {
		mode = workflow.DelegationRoundRobin
	}

	if mode == workflow.DelegationIntelligent {
		outcome, err := o.intelligent(ctx, req, provider, delegates, agg)
		if err == nil {
			return outcome, nil
		}
		if !errors.Is(err, errFallbackRoundRobin) {
			return nil, err
		}
		slog.Warn("Intelligent delegation unavailable, falling back to round robin",
			"execution_id", req.ExecutionID, "gcm", req.Node.DisplayName(), "cause", err)
	}

	return o.roundRobin(ctx, req, provider, delegates, agg)
}

// synthesize makes the single final LLM call over the conversation log.
func (o *Orchestrator) synthesize(ctx context.Context, provider llm.Provider, node *workflow.Node, agg *workflow.AggregatedContext, transcript string) (*llm.Result, error) {
	var b strings.Builder
	b.WriteString("Original request:\n")
	b.WriteString(agg.Formatted())
	b.WriteString("\n\nAgent conversation:\n")
	b.WriteString(transcript)
	b.WriteString("\n\nSynthesize a single, complete final response to the original request based on the conversation above.")

	req := llm.Request{
		SystemMessage: node.Data.SystemMessage,
		Prompt:        b.String(),
	}
	if node.Data.Temperature != nil {
		req.Temperature = *node.Data.Temperature
	}
	if node.Data.MaxTokens != nil {
		req.MaxTokens = *node.Data.MaxTokens
	}
	return provider.Generate(ctx, req)
}

// delegationTask wraps a delegation into a delegate.Task using the GCM's
// timeout and retry settings.
func delegationTask(req Request, node *workflow.Node, d *protocol.Delegation) delegate.Task {
	maxRetries := -1
	if req.Node.Data.MaxDelegationRetries != nil {
		maxRetries = *req.Node.Data.MaxDelegationRetries
	}
	task := delegate.Task{
		ProjectID:  req.ProjectID,
		Node:       node,
		Delegation: d,
		MaxRetries: maxRetries,
	}
	if s := req.Node.Data.DelegationTimeoutSeconds; s > 0 {
		task.Timeout = time.Duration(s) * time.Second
	}
	return task
}

// turnFromResult converts a delegation result (or failure) into a Turn.
// Failures become error turns so one delegate cannot abort a batch.
func turnFromResult(round int, name, subqueryID string, res *delegate.Result, err error) Turn {
	if err != nil {
		return Turn{
			Round:      round,
			Delegate:   name,
			Content:    "ERROR: " + err.Error(),
			Status:     protocol.StatusError,
			SubqueryID: subqueryID,
		}
	}
	return Turn{
		Round:      round,
		Delegate:   name,
		Content:    res.Response.Response,
		Status:     res.Response.Status,
		SubqueryID: subqueryID,
	}
}
