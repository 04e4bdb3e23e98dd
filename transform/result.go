package transform

import "github.com/google/uuid"

// Result kind constants
const (
	KindValue   = "VALUE"   // Execution produced a value
	KindWarning = "WARNING" // Execution produced a value but something is worth flagging
	KindError   = "ERROR"   // Execution failed
)

// Result is the outcome envelope of a single utility execution. Exactly one
// of the three kinds holds:
//
//   - VALUE: a payload was produced
//   - WARNING: a payload was produced (possibly empty) plus a warning message
//   - ERROR: execution failed and the failure was captured
//
// Results are created by the constructors below and never mutated afterwards.
type Result struct {
	id      string
	utility Utility
	kind    string
	message string
	payload any
	err     error
}

// NewValue creates a VALUE result carrying the produced payload.
func NewValue(u Utility, payload any) *Result {
	return &Result{
		id:      uuid.NewString(),
		utility: u,
		kind:    KindValue,
		payload: payload,
	}
}

// NewWarning creates a WARNING result carrying a message and a (possibly
// empty) payload.
func NewWarning(u Utility, message string, payload any) *Result {
	return &Result{
		id:      uuid.NewString(),
		utility: u,
		kind:    KindWarning,
		message: message,
		payload: payload,
	}
}

// NewError creates an ERROR result capturing the failure.
func NewError(u Utility, err error) *Result {
	return &Result{
		id:      uuid.NewString(),
		utility: u,
		kind:    KindError,
		err:     err,
	}
}

// ID returns the unique correlation identifier assigned to this result.
// The surrounding engine uses it to tie log lines and audit records to a
// single execution.
func (r *Result) ID() string {
	return r.id
}

// Utility returns the utility instance that produced this result.
func (r *Result) Utility() Utility {
	return r.utility
}

// Kind returns the result kind: VALUE, WARNING or ERROR. Consumers branch on
// the kind without inspecting the payload type first.
func (r *Result) Kind() string {
	return r.kind
}

// Message returns the warning message, or "" for VALUE and ERROR results.
func (r *Result) Message() string {
	return r.message
}

// Payload returns the produced value. It is nil for ERROR results; the
// concrete type is determined by the producing utility.
func (r *Result) Payload() any {
	return r.payload
}

// Err returns the captured failure, or nil unless the kind is ERROR.
func (r *Result) Err() error {
	return r.err
}
