package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/workflowexecution"
	"github.com/weftworks/weft/pkg/models"
)

// ExecutionService manages workflow execution lifecycle and per-execution
// shared state (executed nodes, pause state, conversation history).
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution persists a submitted workflow in pending state.
func (s *ExecutionService) CreateExecution(httpCtx context.Context, req models.CreateExecutionRequest) (*models.Execution, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if len(req.Workflow) == 0 {
		return nil, NewValidationError("workflow", "required")
	}
	if req.Input == "" {
		return nil, NewValidationError("input", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	executionID := req.ID
	if executionID == "" {
		executionID = uuid.New().String()
	}

	row, err := s.client.WorkflowExecution.Create().
		SetID(executionID).
		SetProjectID(req.ProjectID).
		SetWorkflow(req.Workflow).
		SetInput(req.Input).
		SetStatus(workflowexecution.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	return executionFromRow(row), nil
}

// Get retrieves an execution by ID.
func (s *ExecutionService) Get(ctx context.Context, executionID string) (*models.Execution, error) {
	row, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return executionFromRow(row), nil
}

// List lists executions with filtering and pagination, newest first.
func (s *ExecutionService) List(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionList, error) {
	query := s.client.WorkflowExecution.Query()

	if filters.ProjectID != "" {
		query = query.Where(workflowexecution.ProjectIDEQ(filters.ProjectID))
	}
	if filters.Status != "" {
		query = query.Where(workflowexecution.StatusEQ(workflowexecution.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	executions := make([]*models.Execution, len(rows))
	for i, row := range rows {
		executions[i] = executionFromRow(row)
	}

	return &models.ExecutionList{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// MarkStarted records the start time and flips the execution to running.
// The engine only calls this on the first scheduling pass, so started_at is
// written unconditionally.
func (s *ExecutionService) MarkStarted(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark execution started: %w", err)
	}
	return nil
}

// SetExecutedNode appends one node output to the executed node map. Existing
// keys keep their value; node outputs never regress. Concurrent appends are
// safe because a single worker owns an execution after claim.
func (s *ExecutionService) SetExecutedNode(ctx context.Context, executionID, nodeID, output string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	nodes := row.ExecutedNodes
	if nodes == nil {
		nodes = map[string]string{}
	}
	if _, exists := nodes[nodeID]; exists {
		return nil
	}
	nodes[nodeID] = output

	if err := tx.WorkflowExecution.UpdateOneID(executionID).
		SetExecutedNodes(nodes).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to save executed node %s: %w", nodeID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit executed node: %w", err)
	}
	return nil
}

// ExecutedNodes returns the stored node output map.
func (s *ExecutionService) ExecutedNodes(ctx context.Context, executionID string) (map[string]string, error) {
	row, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Select(workflowexecution.FieldExecutedNodes).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get executed nodes: %w", err)
	}

	nodes := make(map[string]string, len(row.ExecutedNodes))
	for k, v := range row.ExecutedNodes {
		nodes[k] = v
	}
	return nodes, nil
}

// SaveExecutedNodes replaces the stored node output map. Only the pause merge
// and reflection updates use this; the scheduler appends through
// SetExecutedNode.
func (s *ExecutionService) SaveExecutedNodes(ctx context.Context, executionID string, nodes map[string]string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetExecutedNodes(nodes).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save executed nodes: %w", err)
	}
	return nil
}

// SaveDelegateConversations merges the structured group chat transcript into
// the stored conversations map.
func (s *ExecutionService) SaveDelegateConversations(ctx context.Context, executionID string, conversations map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	merged := row.DelegateConversations
	if merged == nil {
		merged = map[string]any{}
	}
	for k, v := range conversations {
		merged[k] = v
	}

	if err := tx.WorkflowExecution.UpdateOneID(executionID).
		SetDelegateConversations(merged).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to save delegate conversations: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delegate conversations: %w", err)
	}
	return nil
}

// AppendConversation appends one rendered entry to the conversation history
// transcript.
func (s *ExecutionService) AppendConversation(ctx context.Context, executionID, entry string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	history := row.ConversationHistory
	if history != "" {
		history += "\n"
	}
	history += entry

	if err := tx.WorkflowExecution.UpdateOneID(executionID).
		SetConversationHistory(history).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to append conversation entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conversation entry: %w", err)
	}
	return nil
}

// SavePause atomically records the waiting state: the awaiting agent, the
// input context shown to the human, and the request time.
func (s *ExecutionService) SavePause(ctx context.Context, executionID string, req models.PauseRequest, requestedAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusAwaitingHumanInput).
		SetHumanInputRequired(true).
		SetAwaitingHumanInputAgent(req.AgentName).
		SetHumanInputAgentID(req.AgentID).
		SetHumanInputRequestedAt(requestedAt)

	if req.Context != nil {
		ctxMap, err := contextToMap(req.Context)
		if err != nil {
			return err
		}
		update = update.SetHumanInputContext(ctxMap)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save pause state: %w", err)
	}
	return nil
}

// ClearHumanInput drops the waiting flag, records the receipt time, and puts
// the execution back in running state for re-scheduling.
func (s *ExecutionService) ClearHumanInput(ctx context.Context, executionID string, receivedAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusRunning).
		SetHumanInputRequired(false).
		SetHumanInputReceivedAt(receivedAt).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to clear human input state: %w", err)
	}
	return nil
}

// Finalize closes out an execution with its terminal status and results.
func (s *ExecutionService) Finalize(ctx context.Context, executionID string, req models.FinalizeRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	now := time.Now()
	update := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.Status(req.Status)).
		SetCompletedAt(now)

	if req.FinalOutput != "" {
		update = update.SetFinalOutput(req.FinalOutput)
	}
	if req.ResultSummary != "" {
		update = update.SetResultSummary(req.ResultSummary)
	}
	if req.TotalAgentsInvolved > 0 {
		update = update.SetTotalAgentsInvolved(req.TotalAgentsInvolved)
	}
	if req.ErrorMessage != "" {
		update = update.SetErrorMessage(req.ErrorMessage)
	}
	if row.StartedAt != nil {
		update = update.SetDurationSeconds(now.Sub(*row.StartedAt).Seconds())
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to finalize execution: %w", err)
	}
	return nil
}

// Cancel stops a pending, running or waiting execution. Terminal executions
// are left untouched.
func (s *ExecutionService) Cancel(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.IDEQ(executionID),
			workflowexecution.StatusIn(
				workflowexecution.StatusPending,
				workflowexecution.StatusRunning,
				workflowexecution.StatusAwaitingHumanInput,
			),
		).
		SetStatus(workflowexecution.StatusStopped).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel execution: %w", err)
	}
	if count == 0 {
		exists, err := s.client.WorkflowExecution.Query().
			Where(workflowexecution.IDEQ(executionID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check execution: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrNotCancellable
	}
	return nil
}

// StaleAwaiting lists executions that have been waiting for human input since
// before the cutoff.
func (s *ExecutionService) StaleAwaiting(ctx context.Context, cutoff time.Time) ([]*models.Execution, error) {
	rows, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusAwaitingHumanInput),
			workflowexecution.HumanInputRequiredEQ(true),
			workflowexecution.HumanInputRequestedAtNotNil(),
			workflowexecution.HumanInputRequestedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale executions: %w", err)
	}

	executions := make([]*models.Execution, len(rows))
	for i, row := range rows {
		executions[i] = executionFromRow(row)
	}
	return executions, nil
}

// DeleteOldExecutions removes terminal executions whose completed_at is older
// than the retention window. Messages and interaction rows go with them via
// FK cascade. Returns the number of executions deleted.
func (s *ExecutionService) DeleteOldExecutions(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.client.WorkflowExecution.Delete().
		Where(
			workflowexecution.StatusIn(
				workflowexecution.StatusCompleted,
				workflowexecution.StatusFailed,
				workflowexecution.StatusStopped,
			),
			workflowexecution.CompletedAtNotNil(),
			workflowexecution.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old executions: %w", err)
	}
	return count, nil
}

// ClaimNextPending atomically claims the oldest pending execution for a pod.
// Returns nil when the queue is empty or another pod won the claim.
func (s *ExecutionService) ClaimNextPending(ctx context.Context, podID string) (*models.Execution, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	row, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusPending)).
		Order(ent.Asc(workflowexecution.FieldCreatedAt)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending execution: %w", err)
	}

	row, err = row.Update().
		SetStatus(workflowexecution.StatusRunning).
		SetPodID(podID).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return executionFromRow(row), nil
}

// QueueDepth counts executions waiting to be claimed.
func (s *ExecutionService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending executions: %w", err)
	}
	return count, nil
}

// RunningCount counts running executions across all pods. The worker pool
// uses it to enforce the global concurrency limit.
func (s *ExecutionService) RunningCount(ctx context.Context) (int, error) {
	count, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.StatusEQ(workflowexecution.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running executions: %w", err)
	}
	return count, nil
}

// ActiveCount counts running executions claimed by a pod.
func (s *ExecutionService) ActiveCount(ctx context.Context, podID string) (int, error) {
	count, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusRunning),
			workflowexecution.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active executions: %w", err)
	}
	return count, nil
}

// FindOrphaned lists running executions that were claimed by the given pod.
// Called at startup to recover work lost to a previous crash of this pod.
func (s *ExecutionService) FindOrphaned(ctx context.Context, podID string) ([]*models.Execution, error) {
	rows, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusRunning),
			workflowexecution.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned executions: %w", err)
	}

	executions := make([]*models.Execution, len(rows))
	for i, row := range rows {
		executions[i] = executionFromRow(row)
	}
	return executions, nil
}

// StaleRunning lists running executions whose claim looks dead: started
// before the cutoff, or claimed but never started. The caller decides the
// cutoff; it must exceed the execution timeout so live claims are skipped.
func (s *ExecutionService) StaleRunning(ctx context.Context, cutoff time.Time) ([]*models.Execution, error) {
	rows, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusEQ(workflowexecution.StatusRunning),
			workflowexecution.Or(
				workflowexecution.StartedAtLT(cutoff),
				workflowexecution.And(
					workflowexecution.StartedAtIsNil(),
					workflowexecution.CreatedAtLT(cutoff),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale running executions: %w", err)
	}

	executions := make([]*models.Execution, len(rows))
	for i, row := range rows {
		executions[i] = executionFromRow(row)
	}
	return executions, nil
}

// Requeue puts a claimed execution back in the pending queue, clearing the
// claiming pod. Used for orphan recovery; resume re-runs completed nodes from
// executed_nodes so a requeue never repeats finished work.
func (s *ExecutionService) Requeue(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetStatus(workflowexecution.StatusPending).
		ClearPodID().
		ClearStartedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to requeue execution: %w", err)
	}
	return nil
}

func executionFromRow(row *ent.WorkflowExecution) *models.Execution {
	e := &models.Execution{
		ID:                    row.ID,
		ProjectID:             row.ProjectID,
		Workflow:              row.Workflow,
		Input:                 row.Input,
		Status:                models.ExecutionStatus(row.Status),
		ExecutedNodes:         row.ExecutedNodes,
		HumanInputRequired:    row.HumanInputRequired,
		HumanInputRequestedAt: row.HumanInputRequestedAt,
		HumanInputReceivedAt:  row.HumanInputReceivedAt,
		CreatedAt:             row.CreatedAt,
		StartedAt:             row.StartedAt,
		CompletedAt:           row.CompletedAt,
	}
	if row.ExecutedNodes == nil {
		e.ExecutedNodes = map[string]string{}
	}
	if row.AwaitingHumanInputAgent != nil {
		e.AwaitingHumanInput = *row.AwaitingHumanInputAgent
	}
	if row.HumanInputAgentID != nil {
		e.HumanInputAgentID = *row.HumanInputAgentID
	}
	if len(row.HumanInputContext) > 0 {
		e.HumanInputContext = contextFromMap(row.HumanInputContext)
	}
	if row.FinalOutput != nil {
		e.FinalOutput = *row.FinalOutput
	}
	if row.ResultSummary != nil {
		e.ResultSummary = *row.ResultSummary
	}
	if row.TotalAgentsInvolved != nil {
		e.TotalAgentsInvolved = *row.TotalAgentsInvolved
	}
	if row.ErrorMessage != nil {
		e.ErrorMessage = *row.ErrorMessage
	}
	if row.PodID != nil {
		e.PodID = *row.PodID
	}
	return e
}

func contextToMap(hctx *models.HumanInputContext) (map[string]any, error) {
	data, err := json.Marshal(hctx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal human input context: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal human input context: %w", err)
	}
	return m, nil
}

func contextFromMap(m map[string]any) *models.HumanInputContext {
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var hctx models.HumanInputContext
	if err := json.Unmarshal(data, &hctx); err != nil {
		return nil
	}
	return &hctx
}
