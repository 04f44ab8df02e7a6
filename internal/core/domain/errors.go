package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates no search transport is configured.
	ErrSearchUnavailable = errors.New("search transport unavailable")

	// Transport Errors.

	// ErrNetwork indicates the backend could not be reached.
	// Driving adapters use it to tell connectivity failures apart.
	ErrNetwork = errors.New("network error")

	// ErrAuthRequired indicates no session token is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the session token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Record Errors.

	// ErrRecord is the base of every record resolution failure.
	ErrRecord = errors.New("record error")

	// ErrRecordNotFound indicates a referenced id is absent from the record map.
	ErrRecordNotFound = fmt.Errorf("%w: not found", ErrRecord)

	// ErrRecordType indicates an unsupported or workspace table type was
	// requested as a resolvable record.
	ErrRecordType = fmt.Errorf("%w: unsupported table type", ErrRecord)

	// ErrRecordCycle indicates an ancestor walk revisited a record or
	// exceeded the depth bound.
	ErrRecordCycle = fmt.Errorf("%w: parent cycle", ErrRecord)
)

// RecordErrorKind classifies a RecordError.
type RecordErrorKind string

const (
	RecordErrorNotFound  RecordErrorKind = "not_found"
	RecordErrorType      RecordErrorKind = "type"
	RecordErrorInvariant RecordErrorKind = "invariant"
	RecordErrorCycle     RecordErrorKind = "cycle"
)

// RecordContext is an immutable snapshot of what was being resolved.
// It never references the record map itself.
type RecordContext struct {
	ID        string    `json:"id"`
	TableType TableType `json:"table_type"`
	BlockType BlockType `json:"block_type,omitempty"`

	// ReferencedBy is the id of the record holding the dangling reference,
	// if the failure came from following one.
	ReferencedBy string `json:"referenced_by,omitempty"`
}

// Fields flattens the context for diagnostic logging.
func (c RecordContext) Fields() map[string]any {
	fields := map[string]any{
		"id":         c.ID,
		"table_type": c.TableType,
	}
	if c.BlockType != "" {
		fields["block_type"] = c.BlockType
	}
	if c.ReferencedBy != "" {
		fields["referenced_by"] = c.ReferencedBy
	}
	return fields
}

// RecordError is returned when a record cannot be resolved from a record map.
type RecordError struct {
	Kind    RecordErrorKind
	Message string
	Context RecordContext
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record: %s", e.Message)
}

// Unwrap maps the kind onto its sentinel so errors.Is works.
func (e *RecordError) Unwrap() error {
	switch e.Kind {
	case RecordErrorNotFound:
		return ErrRecordNotFound
	case RecordErrorType:
		return ErrRecordType
	case RecordErrorCycle:
		return ErrRecordCycle
	case RecordErrorInvariant:
		return ErrRecord
	default:
		return ErrRecord
	}
}

// NewRecordNotFoundError builds a NotFound record error.
func NewRecordNotFoundError(message string, ctx RecordContext) *RecordError {
	return &RecordError{Kind: RecordErrorNotFound, Message: message, Context: ctx}
}

// NewRecordTypeError builds a Type record error.
func NewRecordTypeError(message string, ctx RecordContext) *RecordError {
	return &RecordError{Kind: RecordErrorType, Message: message, Context: ctx}
}

// IsRecordError reports whether err is a record resolution failure.
func IsRecordError(err error) bool {
	return errors.Is(err, ErrRecord)
}

// UserMessage renders err for people, telling connectivity and session
// failures apart from everything else.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthRequired):
		return "not logged in: run 'quickfind auth login'"
	case errors.Is(err, ErrAuthInvalid):
		return "session token rejected: run 'quickfind auth login'"
	case errors.Is(err, ErrRateLimited):
		return "rate limited by Notion, try again shortly"
	case errors.Is(err, ErrNetwork):
		return "network error: could not reach Notion"
	case errors.Is(err, ErrSearchUnavailable):
		return "search is not configured"
	default:
		return err.Error()
	}
}
