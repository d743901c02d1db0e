package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/workflow"
)

// delegateStatus tracks one delegate's progress across rounds.
type delegateStatus struct {
	node                 *workflow.Node
	iterations           int
	maxIterations        int
	terminationCondition string
	completed            bool
}

// roundRobin runs the iterative conversation mode: each round fans out to
// the not-yet-completed delegates in parallel, appends their contributions
// to a shared log, and checks per-delegate and global termination.
func (o *Orchestrator) roundRobin(ctx context.Context, req Request, provider llm.Provider, delegates []*workflow.Node, agg *workflow.AggregatedContext) (*Outcome, error) {
	maxRounds := req.Node.Data.MaxRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxRounds
	}
	strategy := workflow.NormalizeTerminationStrategy(req.Node.Data.TerminationStrategy)

	statuses := make([]*delegateStatus, 0, len(delegates))
	for _, d := range delegates {
		statuses = append(statuses, &delegateStatus{
			node:                 d,
			maxIterations:        iterationCap(d, req.Node),
			terminationCondition: d.Data.TerminationCondition,
		})
	}

	var (
		log   []string
		turns []Turn
	)
	for round := 0; round < maxRounds; round++ {
		// A completed delegate that never ran still gets one turn, which
		// guards against a misconfigured termination condition.
		var selected []*delegateStatus
		for _, st := range statuses {
			if !st.completed || st.iterations == 0 {
				selected = append(selected, st)
			}
		}
		if len(selected) == 0 {
			break
		}

		for _, turn := range o.dispatchRound(ctx, req, selected, agg, log, round) {
			st := selected[turn.index]
			log = append(log, fmt.Sprintf("[Round %d] %s: %s", round+1, turn.turn.Delegate, turn.turn.Content))
			turns = append(turns, turn.turn)
			st.iterations++
			if matchesTermination(turn.turn.Content, st.terminationCondition) {
				st.completed = true
			}
			if st.iterations >= st.maxIterations {
				st.completed = true
			}
		}

		if terminated(strategy, statuses) {
			slog.Debug("Group chat terminated early",
				"execution_id", req.ExecutionID, "strategy", strategy, "rounds", round+1)
			break
		}
	}

	if len(turns) == 0 {
		return nil, errors.New("no delegate conversations generated")
	}

	final, err := o.synthesize(ctx, provider, req.Node, agg, strings.Join(log, "\n"))
	if err != nil {
		return nil, fmt.Errorf("synthesizing group chat %q: %w", req.Node.DisplayName(), err)
	}

	return &Outcome{
		FinalOutput:   final.Text,
		Mode:          workflow.DelegationRoundRobin,
		Turns:         turns,
		DelegateNames: delegateNames(delegates),
		TokenCount:    final.TokenCount,
	}, nil
}

// indexedTurn carries a fan-out result back with its dispatch position so
// rounds replay in a deterministic order.
type indexedTurn struct {
	index int
	turn  Turn
}

// dispatchRound fans the selected delegates out concurrently and gathers
// their turns. A single delegate failure becomes an error turn and never
// cancels the rest of the round.
func (o *Orchestrator) dispatchRound(ctx context.Context, req Request, selected []*delegateStatus, agg *workflow.AggregatedContext, log []string, round int) []indexedTurn {
	results := make(chan indexedTurn, len(selected))
	recent := recentEntries(log, historyWindow)

	for i, st := range selected {
		go func(i int, st *delegateStatus) {
			d := protocol.NewDelegation(
				uuid.New().String(),
				roundPrompt(agg, recent, st),
				protocol.PriorityMedium,
				protocol.DelegationContext{OriginalInput: agg.PrimaryInput, Iteration: st.iterations + 1},
				1.0,
			)
			res, err := o.runner.Execute(ctx, delegationTask(req, st.node, d))
			results <- indexedTurn{index: i, turn: turnFromResult(round+1, st.node.DisplayName(), "", res, err)}
		}(i, st)
	}

	collected := make([]indexedTurn, 0, len(selected))
	for range selected {
		collected = append(collected, <-results)
	}
	sort.Slice(collected, func(a, b int) bool { return collected[a].index < collected[b].index })
	return collected
}

// roundPrompt builds a delegate's task for one round: the aggregated
// context, a window of recent conversation, and the iteration counter.
func roundPrompt(agg *workflow.AggregatedContext, recent []string, st *delegateStatus) string {
	var b strings.Builder
	b.WriteString(agg.Formatted())
	if len(recent) > 0 {
		b.WriteString("\n\nRecent conversation:\n")
		b.WriteString(strings.Join(recent, "\n"))
	}
	fmt.Fprintf(&b, "\n\nContribute your perspective as %s (turn %d of %d).",
		st.node.DisplayName(), st.iterations+1, st.maxIterations)
	return b.String()
}

// iterationCap picks a delegate's per-conversation iteration limit: its own
// max_iterations, else the manager's max_iterations, else max_rounds, else
// the default. Never below one.
func iterationCap(d, gcm *workflow.Node) int {
	limit := d.Data.MaxIterations
	if limit <= 0 {
		limit = gcm.Data.MaxIterations
	}
	if limit <= 0 {
		limit = gcm.Data.MaxRounds
	}
	if limit <= 0 {
		limit = defaultMaxIterations
	}
	return limit
}

// matchesTermination reports whether a response ends with the delegate's
// termination condition, after trimming trailing whitespace.
func matchesTermination(text, condition string) bool {
	if condition == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimSpace(text), condition)
}

// terminated applies the conversation-wide termination strategy.
func terminated(strategy workflow.TerminationStrategy, statuses []*delegateStatus) bool {
	if strategy == workflow.TerminateAnyComplete {
		for _, st := range statuses {
			if st.completed {
				return true
			}
		}
		return false
	}
	for _, st := range statuses {
		if !st.completed {
			return false
		}
	}
	return true
}

func recentEntries(log []string, n int) []string {
	if len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}

func delegateNames(delegates []*workflow.Node) []string {
	names := make([]string, 0, len(delegates))
	for _, d := range delegates {
		names = append(names, d.DisplayName())
	}
	return names
}
