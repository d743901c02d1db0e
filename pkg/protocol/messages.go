// Package protocol defines the typed message protocol spoken between a
// Group Chat Manager and its delegates: delegation requests, acknowledgments,
// responses, and errors, plus validation and transport formatting.
package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the kind of a protocol message.
type MessageType string

// Message kinds.
const (
	TypeDelegation     MessageType = "delegation"
	TypeAcknowledgment MessageType = "acknowledgment"
	TypeResponse       MessageType = "response"
	TypeError          MessageType = "error"
)

// Priority orders subqueries. High sorts before medium sorts before low.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (lower runs first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// AckStatus is the delegate's reaction to a delegation.
type AckStatus string

// Acknowledgment statuses.
const (
	AckAccepted              AckStatus = "accepted"
	AckRejected              AckStatus = "rejected"
	AckRequiresClarification AckStatus = "requires_clarification"
)

// ResponseStatus is the completion state of a delegate response.
type ResponseStatus string

// Response statuses.
const (
	StatusCompleted  ResponseStatus = "completed"
	StatusInProgress ResponseStatus = "in_progress"
	StatusError      ResponseStatus = "error"
)

// Header carries the fields common to every protocol message.
type Header struct {
	Type      MessageType `json:"type"`
	MessageID string      `json:"message_id"`
	Timestamp time.Time   `json:"timestamp"`
}

func newHeader(t MessageType) Header {
	return Header{Type: t, MessageID: uuid.New().String(), Timestamp: time.Now().UTC()}
}

// DelegationContext carries the surrounding state a delegate may need.
type DelegationContext struct {
	OriginalInput     string   `json:"original_input"`
	RelatedSubqueries []string `json:"related_subqueries,omitempty"`
	Iteration         int      `json:"iteration"`
}

// Delegation assigns one subquery to a delegate.
type Delegation struct {
	Header
	SubqueryID string            `json:"subquery_id"`
	Subquery   string            `json:"subquery"`
	Priority   Priority          `json:"priority"`
	Context    DelegationContext `json:"context"`
	Metadata   map[string]any    `json:"metadata,omitempty"`
}

// NewDelegation builds a Delegation with a fresh message id and timestamp.
func NewDelegation(subqueryID, subquery string, priority Priority, dctx DelegationContext, confidence float64) *Delegation {
	return &Delegation{
		Header:     newHeader(TypeDelegation),
		SubqueryID: subqueryID,
		Subquery:   subquery,
		Priority:   priority,
		Context:    dctx,
		Metadata:   map[string]any{"delegation_confidence": confidence},
	}
}

// Validate checks required fields and enum values.
func (d *Delegation) Validate() error {
	if d.Type != TypeDelegation {
		return fmt.Errorf("delegation message has type %q", d.Type)
	}
	if d.SubqueryID == "" {
		return fmt.Errorf("delegation missing subquery_id")
	}
	if d.Subquery == "" {
		return fmt.Errorf("delegation missing subquery")
	}
	if !d.Priority.Valid() {
		return fmt.Errorf("delegation has invalid priority %q", d.Priority)
	}
	return nil
}

// Acknowledgment is a delegate's receipt of a delegation.
type Acknowledgment struct {
	Header
	SubqueryID   string    `json:"subquery_id"`
	DelegateName string    `json:"delegate_name"`
	Status       AckStatus `json:"status"`
	Message      string    `json:"message,omitempty"`
}

// Validate checks required fields and enum values.
func (a *Acknowledgment) Validate() error {
	if a.Type != TypeAcknowledgment {
		return fmt.Errorf("acknowledgment message has type %q", a.Type)
	}
	if a.SubqueryID == "" {
		return fmt.Errorf("acknowledgment missing subquery_id")
	}
	if a.DelegateName == "" {
		return fmt.Errorf("acknowledgment missing delegate_name")
	}
	switch a.Status {
	case AckAccepted, AckRejected, AckRequiresClarification:
	default:
		return fmt.Errorf("acknowledgment has invalid status %q", a.Status)
	}
	return nil
}

// Response carries a delegate's answer to one subquery.
type Response struct {
	Header
	SubqueryID   string         `json:"subquery_id"`
	DelegateName string         `json:"delegate_name"`
	Response     string         `json:"response"`
	Status       ResponseStatus `json:"status"`
	Confidence   float64        `json:"confidence,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// NewResponse builds a Response with a fresh message id and timestamp.
func NewResponse(subqueryID, delegateName, text string, status ResponseStatus) *Response {
	return &Response{
		Header:       newHeader(TypeResponse),
		SubqueryID:   subqueryID,
		DelegateName: delegateName,
		Response:     text,
		Status:       status,
	}
}

// Validate checks required fields and enum values.
func (r *Response) Validate() error {
	if r.Type != TypeResponse {
		return fmt.Errorf("response message has type %q", r.Type)
	}
	if r.SubqueryID == "" {
		return fmt.Errorf("response missing subquery_id")
	}
	if r.DelegateName == "" {
		return fmt.Errorf("response missing delegate_name")
	}
	switch r.Status {
	case StatusCompleted, StatusInProgress, StatusError:
	default:
		return fmt.Errorf("response has invalid status %q", r.Status)
	}
	return nil
}

// ErrorMessage reports a failure processing a delegation.
type ErrorMessage struct {
	Header
	SubqueryID   string `json:"subquery_id"`
	DelegateName string `json:"delegate_name,omitempty"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
	Retryable    bool   `json:"retryable"`
}

// NewErrorMessage builds an ErrorMessage with a fresh message id and timestamp.
func NewErrorMessage(subqueryID, delegateName, errorType, message string, retryable bool) *ErrorMessage {
	return &ErrorMessage{
		Header:       newHeader(TypeError),
		SubqueryID:   subqueryID,
		DelegateName: delegateName,
		ErrorType:    errorType,
		ErrorMessage: message,
		Retryable:    retryable,
	}
}

// Validate checks required fields.
func (e *ErrorMessage) Validate() error {
	if e.Type != TypeError {
		return fmt.Errorf("error message has type %q", e.Type)
	}
	if e.SubqueryID == "" {
		return fmt.Errorf("error message missing subquery_id")
	}
	if e.ErrorType == "" {
		return fmt.Errorf("error message missing error_type")
	}
	return nil
}
