// Package hitl implements human-in-the-loop control for executions: pausing
// at UserProxyAgent nodes, resuming with submitted input, reflection
// feedback loops, and cleanup of executions nobody answered.
package hitl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/workflow"
)

// ErrNotAwaitingInput is returned when a resume arrives for an execution
// that is not waiting for a human.
var ErrNotAwaitingInput = errors.New("execution is not awaiting human input")

// Store is the durable state the controller needs. Implemented by
// services.ExecutionService.
type Store interface {
	Get(ctx context.Context, executionID string) (*models.Execution, error)
	ExecutedNodes(ctx context.Context, executionID string) (map[string]string, error)
	// SaveExecutedNodes replaces the stored node output map. Only the
	// pause merge and reflection updates use it; the scheduler itself
	// appends through SetExecutedNode.
	SaveExecutedNodes(ctx context.Context, executionID string, nodes map[string]string) error
	SetExecutedNode(ctx context.Context, executionID, nodeID, output string) error
	// SavePause atomically records the waiting state: status running,
	// human_input_required, the awaiting agent, context, and request time.
	SavePause(ctx context.Context, executionID string, req models.PauseRequest, requestedAt time.Time) error
	// ClearHumanInput drops the waiting flag and records the receipt time.
	ClearHumanInput(ctx context.Context, executionID string, receivedAt time.Time) error
	AppendConversation(ctx context.Context, executionID, entry string) error
	AppendMessage(ctx context.Context, executionID string, msg models.Message) error
	RecordHumanInput(ctx context.Context, executionID string, rec models.HumanInputRecord) error
	RecordInteraction(ctx context.Context, executionID string, in models.LLMInteraction) error
	Finalize(ctx context.Context, executionID string, req models.FinalizeRequest) error
	// StaleAwaiting lists executions that have been waiting for input
	// since before the cutoff.
	StaleAwaiting(ctx context.Context, cutoff time.Time) ([]*models.Execution, error)
}

// Scheduler re-enters the engine after a resume. Implemented by
// engine.Engine.
type Scheduler interface {
	Execute(ctx context.Context, executionID string) error
}

// Controller coordinates pause, resume and reflection.
type Controller struct {
	store     Store
	scheduler Scheduler
	reflector *Reflector
}

// NewController builds a Controller. The scheduler is attached separately
// with SetScheduler because the engine and the controller reference each
// other.
func NewController(store Store, reflector *Reflector) *Controller {
	return &Controller{store: store, reflector: reflector}
}

// SetScheduler attaches the engine used to continue resumed executions.
func (c *Controller) SetScheduler(s Scheduler) { c.scheduler = s }

// Pause suspends an execution at a human-input node. Stored executed nodes
// are merged with the scheduler's local copy first; the local copy wins on
// conflicts because it reflects the just-finished node.
func (c *Controller) Pause(ctx context.Context, executionID string, req models.PauseRequest) error {
	if len(req.ExecutedNodes) > 0 {
		stored, err := c.store.ExecutedNodes(ctx, executionID)
		if err != nil {
			return fmt.Errorf("refreshing executed nodes for %s: %w", executionID, err)
		}
		merged := make(map[string]string, len(stored)+len(req.ExecutedNodes))
		for k, v := range stored {
			merged[k] = v
		}
		for k, v := range req.ExecutedNodes {
			merged[k] = v
		}
		if err := c.store.SaveExecutedNodes(ctx, executionID, merged); err != nil {
			return fmt.Errorf("saving merged executed nodes for %s: %w", executionID, err)
		}
	}

	if err := c.store.SavePause(ctx, executionID, req, time.Now().UTC()); err != nil {
		return fmt.Errorf("saving pause state for %s: %w", executionID, err)
	}
	slog.Info("Execution awaiting human input",
		"execution_id", executionID, "agent", req.AgentName)
	return nil
}

// Resume feeds a human's input back into a paused execution and either
// hands off to the reflection loop or re-enters the scheduler. Calling it
// for an execution that is not waiting fails with ErrNotAwaitingInput,
// which makes duplicate resumes harmless.
func (c *Controller) Resume(ctx context.Context, req models.ResumeRequest) error {
	execution, err := c.store.Get(ctx, req.ExecutionID)
	if err != nil {
		return fmt.Errorf("loading execution %s: %w", req.ExecutionID, err)
	}
	if !acceptsInput(execution) {
		return fmt.Errorf("%w: execution %s has status %s",
			ErrNotAwaitingInput, req.ExecutionID, execution.Status)
	}
	action := req.Action
	if action == "" {
		action = models.ActionSubmit
	}

	iteration := 0
	if execution.HumanInputContext != nil {
		iteration = execution.HumanInputContext.Iteration
	}
	if err := c.store.RecordHumanInput(ctx, req.ExecutionID, models.HumanInputRecord{
		AgentID:   execution.HumanInputAgentID,
		AgentName: execution.AwaitingHumanInput,
		Input:     req.Input,
		Action:    action,
		Iteration: iteration,
	}); err != nil {
		return fmt.Errorf("recording human input for %s: %w", req.ExecutionID, err)
	}

	if err := c.store.ClearHumanInput(ctx, req.ExecutionID, time.Now().UTC()); err != nil {
		return fmt.Errorf("clearing human input flag for %s: %w", req.ExecutionID, err)
	}

	agentName := execution.AwaitingHumanInput
	if agentName == "" {
		agentName = "human"
	}
	if err := c.store.AppendConversation(ctx, req.ExecutionID, agentName+": "+req.Input); err != nil {
		return fmt.Errorf("appending conversation entry for %s: %w", req.ExecutionID, err)
	}
	if err := c.store.AppendMessage(ctx, req.ExecutionID, models.Message{
		AgentName: agentName,
		AgentType: string(workflow.NodeUserProxy),
		Content:   req.Input,
		Type:      models.MessageHumanInput,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("appending human input message for %s: %w", req.ExecutionID, err)
	}

	graph, err := workflow.FromMap(execution.Workflow)
	if err != nil {
		return fmt.Errorf("parsing workflow for %s: %w", req.ExecutionID, err)
	}

	if execution.HumanInputContext != nil && execution.HumanInputContext.ReflectionSourceID != "" {
		return c.reflector.Handle(ctx, c, execution, graph, req.Input, action)
	}

	if err := c.routeInput(ctx, graph, execution, req.Input); err != nil {
		return err
	}
	return c.scheduler.Execute(ctx, req.ExecutionID)
}

// routeInput publishes the human input to downstream agents when the proxy
// has downstream edges. A terminal proxy's input lives in the conversation
// history alone; its executed_nodes entry is an empty marker that records
// the answer durably so the scheduler never pauses at that proxy again.
func (c *Controller) routeInput(ctx context.Context, graph *workflow.Graph, execution *models.Execution, input string) error {
	proxyID := execution.HumanInputAgentID
	if proxyID == "" {
		return nil
	}
	output := input
	if !hasOutgoingEdges(graph, proxyID) {
		output = ""
	}
	if err := c.store.SetExecutedNode(ctx, execution.ID, proxyID, output); err != nil {
		return fmt.Errorf("routing human input for %s: %w", execution.ID, err)
	}
	return nil
}

// acceptsInput is the resume admission check. The status fallback covers
// executions whose waiting flag was lost across a redeploy.
func acceptsInput(execution *models.Execution) bool {
	if execution.HumanInputRequired {
		return true
	}
	switch execution.Status {
	case models.StatusAwaitingHumanInput, models.StatusRunning, models.StatusPending:
		return true
	}
	return false
}

func hasOutgoingEdges(graph *workflow.Graph, nodeID string) bool {
	for _, e := range graph.Edges {
		if e.Source == nodeID && e.Type != workflow.EdgeDelegate {
			return true
		}
	}
	return false
}
