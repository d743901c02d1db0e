package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatDelegation renders a delegation as the human-readable block delegates
// actually receive. The delegate sees text rather than JSON, which keeps LLMs
// robust to schema drift.
func FormatDelegation(d *Delegation) string {
	var b strings.Builder
	b.WriteString("=== TASK DELEGATION ===\n")
	fmt.Fprintf(&b, "Subquery ID: %s\n", d.SubqueryID)
	fmt.Fprintf(&b, "Priority: %s\n", strings.ToUpper(string(d.Priority)))
	fmt.Fprintf(&b, "Task: %s\n", d.Subquery)
	if d.Context.OriginalInput != "" {
		fmt.Fprintf(&b, "Original request: %s\n", d.Context.OriginalInput)
	}
	if n := len(d.Context.RelatedSubqueries); n > 0 {
		fmt.Fprintf(&b, "Related subqueries: %d\n", n)
	}
	if d.Context.Iteration > 0 {
		fmt.Fprintf(&b, "Iteration: %d\n", d.Context.Iteration)
	}
	b.WriteString("=======================")
	return b.String()
}

// ParseResponse parses delegate output opportunistically. If the text contains
// a JSON object carrying a "type" field it is decoded as a structured Response;
// anything else — plain prose, malformed JSON, JSON without a type — is
// wrapped as a completed Response with parsed_from_text set.
func ParseResponse(subqueryID, delegateName, text string) *Response {
	if obj := extractJSONObject(text); obj != "" {
		var probe struct {
			Type MessageType `json:"type"`
		}
		if err := json.Unmarshal([]byte(obj), &probe); err == nil && probe.Type != "" {
			if r := decodeStructured(obj, subqueryID, delegateName); r != nil {
				return r
			}
		}
	}

	r := NewResponse(subqueryID, delegateName, strings.TrimSpace(text), StatusCompleted)
	r.Metadata = map[string]any{"parsed_from_text": true}
	return r
}

func decodeStructured(obj, subqueryID, delegateName string) *Response {
	var r Response
	if err := json.Unmarshal([]byte(obj), &r); err != nil {
		return nil
	}
	if r.Type != TypeResponse {
		// Error messages from the delegate surface as error-status responses.
		if r.Type == TypeError {
			var em ErrorMessage
			if err := json.Unmarshal([]byte(obj), &em); err == nil {
				resp := NewResponse(subqueryID, delegateName, em.ErrorMessage, StatusError)
				resp.Metadata = map[string]any{"error_type": em.ErrorType, "retryable": em.Retryable}
				return resp
			}
		}
		return nil
	}
	if r.SubqueryID == "" {
		r.SubqueryID = subqueryID
	}
	if r.DelegateName == "" {
		r.DelegateName = delegateName
	}
	if r.Status == "" {
		r.Status = StatusCompleted
	}
	if r.MessageID == "" {
		r.Header = newHeader(TypeResponse)
	}
	return &r
}

// extractJSONObject returns the first balanced top-level JSON object in the
// text, or "". Handles strings and escapes so braces inside quoted values do
// not unbalance the scan.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
