// Package analysis implements LLM-backed query analysis for intelligent
// delegation: splitting an input into subqueries and matching subqueries to
// delegates with a confidence score. Both operations degrade to documented
// fallbacks instead of failing the workflow.
package analysis

import (
	"time"

	"github.com/weftworks/weft/pkg/protocol"
)

// structuralTemperature keeps query splitting and delegate matching close to
// deterministic.
const structuralTemperature = 0.2

// Subquery is one split piece of the original input.
type Subquery struct {
	SubqueryID         string            `json:"subquery_id"`
	Query              string            `json:"query"`
	Priority           protocol.Priority `json:"priority"`
	Dependencies       []int             `json:"dependencies,omitempty"`
	SuggestedDelegates []string          `json:"suggested_delegates,omitempty"`
	Index              int               `json:"index"`
	CreatedAt          time.Time         `json:"created_at"`
}

// Assignment binds a subquery to the delegates that will answer it.
type Assignment struct {
	Subquery          Subquery `json:"subquery"`
	AssignedDelegates []string `json:"assigned_delegates"`
	Confidence        float64  `json:"confidence"`
	Reasoning         string   `json:"reasoning"`
	Status            string   `json:"status"` // pending, completed, error
}

// DelegateDescription names a delegate and what it is good at. The
// description comes from the node config and feeds the matching prompt.
type DelegateDescription struct {
	Name        string
	Description string
}

// Names extracts the delegate names, in order.
func Names(delegates []DelegateDescription) []string {
	out := make([]string, len(delegates))
	for i, d := range delegates {
		out[i] = d.Name
	}
	return out
}
