// Package engine schedules workflow graphs: it computes ready sets from
// executed nodes, runs each level concurrently, and drives individual node
// execution through a per-type executor registry. Pausing for human input
// and resuming from durable state both go through the same scheduling loop,
// so a resume is just a re-entry with refreshed state.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/workflow"
)

// Store is the durable state the engine reads and writes. Implemented by
// services.ExecutionService.
type Store interface {
	Get(ctx context.Context, executionID string) (*models.Execution, error)
	MarkStarted(ctx context.Context, executionID string) error
	// SetExecutedNode appends one node output. Existing keys keep their
	// value on conflict; executed nodes never regress.
	SetExecutedNode(ctx context.Context, executionID, nodeID, output string) error
	ExecutedNodes(ctx context.Context, executionID string) (map[string]string, error)
	SaveDelegateConversations(ctx context.Context, executionID string, conversations map[string]any) error
	AppendMessage(ctx context.Context, executionID string, msg models.Message) error
	Messages(ctx context.Context, executionID string) ([]models.Message, error)
	RecordInteraction(ctx context.Context, executionID string, in models.LLMInteraction) error
	Finalize(ctx context.Context, executionID string, req models.FinalizeRequest) error
}

// Pauser suspends an execution for human input. Implemented by
// hitl.Controller.
type Pauser interface {
	Pause(ctx context.Context, executionID string, req models.PauseRequest) error
}

// Notifier publishes execution status transitions. Implemented by
// events.Hub; a nil Notifier disables publishing.
type Notifier interface {
	ExecutionStatusChanged(executionID string, status models.ExecutionStatus, detail string)
}

// NodeResult is a node executor's outcome.
type NodeResult struct {
	Output string
	// Persist controls whether Output is written to executed_nodes. A
	// terminal UserProxyAgent completes without publishing output.
	Persist bool
	// Paused means the execution suspended for human input instead of
	// producing output.
	Paused bool
}

// NodeExecutor runs one node type.
type NodeExecutor interface {
	Execute(ctx context.Context, run *Run, node *workflow.Node) (*NodeResult, error)
}

// Engine owns the scheduling loop and the executor registry.
type Engine struct {
	store     Store
	pauser    Pauser
	notifier  Notifier
	executors map[workflow.NodeType]NodeExecutor
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier wires status event publishing.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithExecutor overrides the executor for one node type.
func WithExecutor(t workflow.NodeType, ex NodeExecutor) Option {
	return func(e *Engine) { e.executors[t] = ex }
}

// New builds an Engine with the default executor registry. assistant also
// serves top-level DelegateAgent nodes, which outside a group chat behave
// like assistants.
func New(store Store, pauser Pauser, assistant, groupChat NodeExecutor, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		pauser: pauser,
		executors: map[workflow.NodeType]NodeExecutor{
			workflow.NodeStart:            markerExecutor{},
			workflow.NodeEnd:              markerExecutor{},
			workflow.NodeAssistant:        assistant,
			workflow.NodeDelegate:         assistant,
			workflow.NodeGroupChatManager: groupChat,
			workflow.NodeUserProxy:        userProxyExecutor{pauser: pauser},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run is the in-memory state of one scheduling pass. Node executors read
// from it; only the scheduling loop mutates it.
type Run struct {
	Execution *models.Execution
	Graph     *workflow.Graph
	// Executed is the authoritative node output map for this pass,
	// refreshed from storage on entry.
	Executed map[string]string

	engine *Engine
}

// Store exposes the engine's store to node executors, for message appends
// and interaction audits.
func (r *Run) Store() Store { return r.engine.store }

// Execute drives an execution from its current durable state to completion,
// failure, or a human-input pause. Safe to call again after a resume; it
// refreshes executed nodes and recomputes readiness rather than trusting
// any stored position.
func (e *Engine) Execute(ctx context.Context, executionID string) error {
	execution, err := e.store.Get(ctx, executionID)
	if err != nil {
		return fmt.Errorf("loading execution %s: %w", executionID, err)
	}

	graph, err := workflow.FromMap(execution.Workflow)
	if err != nil {
		e.fail(ctx, executionID, fmt.Sprintf("invalid workflow graph: %v", err))
		return fmt.Errorf("parsing workflow for execution %s: %w", executionID, err)
	}

	if execution.StartedAt == nil {
		if err := e.store.MarkStarted(ctx, executionID); err != nil {
			return fmt.Errorf("marking execution %s started: %w", executionID, err)
		}
	}
	e.notify(executionID, models.StatusRunning, "")

	executed, err := e.store.ExecutedNodes(ctx, executionID)
	if err != nil {
		return fmt.Errorf("refreshing executed nodes for %s: %w", executionID, err)
	}
	run := &Run{Execution: execution, Graph: graph, Executed: executed, engine: e}

	return e.schedule(ctx, run)
}

// schedule loops over ready sets until nothing remains or the execution
// pauses. Each level runs concurrently.
func (e *Engine) schedule(ctx context.Context, run *Run) error {
	id := run.Execution.ID
	for {
		ready := run.Graph.ReadySet(run.Executed)
		if len(ready) == 0 {
			if pending := run.Graph.PendingCount(run.Executed); pending > 0 {
				msg := fmt.Sprintf("workflow deadlocked: %d node(s) can never become ready", pending)
				e.fail(ctx, id, msg)
				return errors.New(msg)
			}
			return e.finalize(ctx, run)
		}

		paused, err := e.runLevel(ctx, run, ready)
		if err != nil {
			// A cancelled or timed-out claim is not a workflow failure. The
			// caller releases the claim and completed nodes replay from
			// executed_nodes on the next attempt.
			if ctx.Err() != nil {
				return err
			}
			e.fail(ctx, id, err.Error())
			return err
		}
		if paused {
			slog.Info("Execution paused for human input", "execution_id", id)
			return nil
		}
	}
}

// levelResult is one node's outcome within a level.
type levelResult struct {
	node   *workflow.Node
	result *NodeResult
}

// runLevel executes one ready set concurrently. Nodes run independently:
// one node's failure neither cancels its siblings nor discards their
// finished outputs, which are persisted before the error surfaces. A pause
// stops scheduling without being an error.
func (e *Engine) runLevel(ctx context.Context, run *Run, ready []*workflow.Node) (paused bool, err error) {
	var g errgroup.Group
	results := make(chan levelResult, len(ready))

	for _, node := range ready {
		node := node
		g.Go(func() error {
			executor, ok := e.executors[node.Type]
			if !ok {
				return fmt.Errorf("no executor for node type %q", node.Type)
			}
			res, err := executor.Execute(ctx, run, node)
			if err != nil {
				return fmt.Errorf("node %q failed: %w", node.DisplayName(), err)
			}
			results <- levelResult{node: node, result: res}
			return nil
		})
	}
	runErr := g.Wait()
	close(results)

	for r := range results {
		if r.result.Paused {
			paused = true
			continue
		}
		if r.result.Persist {
			if err := e.store.SetExecutedNode(ctx, run.Execution.ID, r.node.ID, r.result.Output); err != nil {
				return false, fmt.Errorf("persisting output of node %q: %w", r.node.DisplayName(), err)
			}
		}
		// The local map also tracks unpersisted completions so the ready
		// set and pending count converge.
		run.Executed[r.node.ID] = r.result.Output
	}
	if runErr != nil {
		return false, runErr
	}
	return paused, nil
}

// finalize closes out a completed execution: distinct agent count excludes
// the Start/End markers, duration comes from the stored start time.
func (e *Engine) finalize(ctx context.Context, run *Run) error {
	id := run.Execution.ID

	final := run.finalOutput()
	messages, err := e.store.Messages(ctx, id)
	if err != nil {
		return fmt.Errorf("loading messages for %s: %w", id, err)
	}
	agents := map[string]bool{}
	for _, m := range messages {
		if m.AgentType == string(workflow.NodeStart) || m.AgentType == string(workflow.NodeEnd) {
			continue
		}
		agents[m.AgentName] = true
	}

	req := models.FinalizeRequest{
		Status:              models.StatusCompleted,
		FinalOutput:         final,
		ResultSummary:       fmt.Sprintf("Workflow completed with %d agent(s)", len(agents)),
		TotalAgentsInvolved: len(agents),
	}
	if err := e.store.Finalize(ctx, id, req); err != nil {
		return fmt.Errorf("finalizing execution %s: %w", id, err)
	}
	e.notify(id, models.StatusCompleted, "")
	slog.Info("Execution completed", "execution_id", id, "agents_involved", len(agents))
	return nil
}

// finalOutput prefers the inputs feeding an EndNode, then falls back to the
// last non-marker output.
func (r *Run) finalOutput() string {
	for i := range r.Graph.Nodes {
		n := &r.Graph.Nodes[i]
		if n.Type != workflow.NodeEnd {
			continue
		}
		if agg := r.Graph.AggregateInputs(n.ID, r.Executed, ""); agg.InputCount > 0 {
			return agg.CombinedText
		}
	}
	var last string
	for i := range r.Graph.Nodes {
		n := &r.Graph.Nodes[i]
		if n.Type == workflow.NodeStart || n.Type == workflow.NodeEnd {
			continue
		}
		if out, ok := r.Executed[n.ID]; ok && out != "" {
			last = out
		}
	}
	return last
}

func (e *Engine) fail(ctx context.Context, executionID, message string) {
	req := models.FinalizeRequest{Status: models.StatusFailed, ErrorMessage: message}
	if err := e.store.Finalize(ctx, executionID, req); err != nil {
		slog.Error("Failed to mark execution failed", "execution_id", executionID, "error", err)
	}
	e.notify(executionID, models.StatusFailed, message)
}

func (e *Engine) notify(executionID string, status models.ExecutionStatus, detail string) {
	if e.notifier != nil {
		e.notifier.ExecutionStatusChanged(executionID, status, detail)
	}
}

// appendAgentMessage records a node's contribution to the message log.
func appendAgentMessage(ctx context.Context, run *Run, node *workflow.Node, content string, t models.MessageType) error {
	return run.Store().AppendMessage(ctx, run.Execution.ID, models.Message{
		AgentName: node.DisplayName(),
		AgentType: string(node.Type),
		Content:   content,
		Type:      t,
		CreatedAt: time.Now().UTC(),
	})
}
