package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/weftworks/weft/pkg/analysis"
	"github.com/weftworks/weft/pkg/delegate"
	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/protocol"
	"github.com/weftworks/weft/pkg/workflow"
)

// intelligent runs the single-pass delegation pipeline: split the input into
// subqueries, match each to delegates concurrently, dispatch by dependency
// level, then synthesize. Precondition failures return
// errFallbackRoundRobin so the caller can degrade gracefully.
func (o *Orchestrator) intelligent(ctx context.Context, req Request, provider llm.Provider, delegates []*workflow.Node, agg *workflow.AggregatedContext) (*Outcome, error) {
	if strings.TrimSpace(agg.CombinedText) == "" {
		return nil, fmt.Errorf("%w: no input context to split", errFallbackRoundRobin)
	}

	analyzer := analysis.NewAnalyzer(provider)
	descriptions := describeDelegates(delegates)
	subqueries := analyzer.Split(ctx, agg.CombinedText, descriptions, req.Node.Data.MaxSubqueries)

	threshold := defaultConfidenceThreshold
	if req.Node.Data.DelegationConfidenceThreshold != nil {
		threshold = *req.Node.Data.DelegationConfidenceThreshold
	}

	matchStart := time.Now()
	assignments := o.matchAll(ctx, analyzer, subqueries, descriptions, threshold)
	matchingMs := time.Since(matchStart).Milliseconds()

	byName := make(map[string]*workflow.Node, len(delegates))
	for _, d := range delegates {
		byName[d.DisplayName()] = d
	}

	metrics := &Metrics{MatchingTimeMs: matchingMs}
	dispatchStart := time.Now()
	responses := make(map[string]map[string]*protocol.Response, len(subqueries))
	var turns []Turn

	for _, level := range dependencyLevels(assignments) {
		for _, r := range o.dispatchLevel(ctx, req, level, byName, agg) {
			if responses[r.subqueryID] == nil {
				responses[r.subqueryID] = make(map[string]*protocol.Response)
			}
			turn := turnFromResult(1, r.delegateName, r.subqueryID, r.res, r.err)
			turns = append(turns, turn)
			responses[r.subqueryID][r.delegateName] = protocol.NewResponse(r.subqueryID, r.delegateName, turn.Content, turn.Status)

			metrics.TotalDelegations++
			if turn.Status == protocol.StatusError {
				metrics.Failed++
			} else {
				metrics.Successful++
			}
			if r.res != nil {
				metrics.Retries += r.res.RetryCount
				if r.res.TimedOut {
					metrics.Timeouts++
				}
			}
		}
	}
	metrics.DelegationTimeMs = time.Since(dispatchStart).Milliseconds()

	transcript := intelligentTranscript(assignments, responses)
	transcript += "\n" + utilizationSummary(turns)

	final, err := o.synthesize(ctx, provider, req.Node, agg, transcript)
	if err != nil {
		return nil, fmt.Errorf("synthesizing group chat %q: %w", req.Node.DisplayName(), err)
	}

	return &Outcome{
		FinalOutput:   final.Text,
		Mode:          workflow.DelegationIntelligent,
		Turns:         turns,
		Metrics:       metrics,
		DelegateNames: delegateNames(delegates),
		TokenCount:    final.TokenCount,
	}, nil
}

// matchAll fans out one match call per subquery. Match itself never fails;
// unmatchable subqueries come back as broadcasts.
func (o *Orchestrator) matchAll(ctx context.Context, analyzer *analysis.Analyzer, subqueries []analysis.Subquery, descriptions []analysis.DelegateDescription, threshold float64) []analysis.Assignment {
	type indexed struct {
		index int
		a     analysis.Assignment
	}
	results := make(chan indexed, len(subqueries))
	for i, sq := range subqueries {
		go func(i int, sq analysis.Subquery) {
			results <- indexed{index: i, a: analyzer.Match(ctx, sq, descriptions, threshold)}
		}(i, sq)
	}

	assignments := make([]analysis.Assignment, len(subqueries))
	for range subqueries {
		r := <-results
		assignments[r.index] = r.a
	}
	return assignments
}

// dependencyLevels groups assignments by subquery dependency depth. Within a
// level all subqueries are independent. When no remaining subquery has its
// dependencies satisfied, the rest run together in arbitrary order.
func dependencyLevels(assignments []analysis.Assignment) [][]analysis.Assignment {
	placed := make([]bool, len(assignments))
	var levels [][]analysis.Assignment
	remaining := len(assignments)

	for remaining > 0 {
		var level []analysis.Assignment
		var indexes []int
		for i, a := range assignments {
			if placed[i] {
				continue
			}
			ready := true
			for _, dep := range a.Subquery.Dependencies {
				if dep >= 0 && dep < len(assignments) && !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, a)
				indexes = append(indexes, i)
			}
		}

		if len(level) == 0 {
			slog.Warn("Subquery dependency cycle detected, running remaining subqueries unordered",
				"remaining", remaining)
			for i, a := range assignments {
				if !placed[i] {
					level = append(level, a)
				}
			}
			levels = append(levels, level)
			return levels
		}

		for _, i := range indexes {
			placed[i] = true
		}
		levels = append(levels, level)
		remaining -= len(level)
	}
	return levels
}

// dispatchResult is one delegate's answer to one subquery.
type dispatchResult struct {
	order        int
	subqueryID   string
	delegateName string
	res          *delegate.Result
	err          error
}

// dispatchLevel fans out every (subquery, assigned delegate) pair of a level
// concurrently and gathers all results.
func (o *Orchestrator) dispatchLevel(ctx context.Context, req Request, level []analysis.Assignment, byName map[string]*workflow.Node, agg *workflow.AggregatedContext) []dispatchResult {
	type job struct {
		order int
		a     analysis.Assignment
		node  *workflow.Node
		name  string
	}
	var jobs []job
	for _, a := range level {
		for _, name := range a.AssignedDelegates {
			node, ok := byName[name]
			if !ok {
				continue
			}
			jobs = append(jobs, job{order: len(jobs), a: a, node: node, name: name})
		}
	}

	results := make(chan dispatchResult, len(jobs))
	for _, j := range jobs {
		go func(j job) {
			d := protocol.NewDelegation(
				j.a.Subquery.SubqueryID,
				j.a.Subquery.Query,
				j.a.Subquery.Priority,
				protocol.DelegationContext{
					OriginalInput:     agg.PrimaryInput,
					RelatedSubqueries: relatedQueries(level, j.a.Subquery.SubqueryID),
				},
				j.a.Confidence,
			)
			res, err := o.runner.Execute(ctx, delegationTask(req, j.node, d))
			results <- dispatchResult{order: j.order, subqueryID: j.a.Subquery.SubqueryID, delegateName: j.name, res: res, err: err}
		}(j)
	}

	collected := make([]dispatchResult, 0, len(jobs))
	for range jobs {
		collected = append(collected, <-results)
	}
	sort.Slice(collected, func(a, b int) bool { return collected[a].order < collected[b].order })
	return collected
}

func relatedQueries(level []analysis.Assignment, excludeID string) []string {
	var related []string
	for _, a := range level {
		if a.Subquery.SubqueryID != excludeID {
			related = append(related, a.Subquery.Query)
		}
	}
	return related
}

func describeDelegates(delegates []*workflow.Node) []analysis.DelegateDescription {
	out := make([]analysis.DelegateDescription, 0, len(delegates))
	for _, d := range delegates {
		desc := d.Data.Description
		if desc == "" {
			desc = d.Data.SystemMessage
		}
		out = append(out, analysis.DelegateDescription{Name: d.DisplayName(), Description: desc})
	}
	return out
}

// intelligentTranscript renders per-subquery delegate responses for the
// synthesis prompt.
func intelligentTranscript(assignments []analysis.Assignment, responses map[string]map[string]*protocol.Response) string {
	var b strings.Builder
	for i, a := range assignments {
		fmt.Fprintf(&b, "Subquery %d: %s\n", i+1, a.Subquery.Query)
		for _, name := range a.AssignedDelegates {
			if resp, ok := responses[a.Subquery.SubqueryID][name]; ok {
				fmt.Fprintf(&b, "  %s: %s\n", name, resp.Response)
			}
		}
	}
	return b.String()
}

// utilizationSummary reports per-delegate call counts and success rates.
func utilizationSummary(turns []Turn) string {
	total := make(map[string]int)
	succeeded := make(map[string]int)
	var order []string
	for _, t := range turns {
		if total[t.Delegate] == 0 {
			order = append(order, t.Delegate)
		}
		total[t.Delegate]++
		if t.Status != protocol.StatusError {
			succeeded[t.Delegate]++
		}
	}

	var b strings.Builder
	b.WriteString("Delegate utilization:\n")
	for _, name := range order {
		fmt.Fprintf(&b, "  %s: %d delegation(s), %.0f%% successful\n",
			name, total[name], 100*float64(succeeded[name])/float64(total[name]))
	}
	return b.String()
}
