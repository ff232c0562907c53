// Package domainerrors carries coded errors across layers. Stores wrap
// infrastructure failures, services translate them into codes, and the HTTP
// layer maps codes onto status codes without inspecting messages.
package domainerrors

import (
	"errors"
	"sort"
	"strings"
)

// Code classifies an error for callers that need to react to it.
type Code string

const (
	CodeBadRequest       Code = "bad_request"
	CodeValidation       Code = "validation_failed"
	CodeConflict         Code = "duplicate_candidate"
	CodeNotFound         Code = "not_found"
	CodeIncompletePacket Code = "incomplete_packet"
	CodeInvalidCriteria  Code = "invalid_criteria_value"
	CodeInvalidPageSize  Code = "invalid_page_size"
	CodeAuditWrite       Code = "audit_write_failure"
	CodeTimeout          Code = "timeout"
	CodeInternal         Code = "internal_error"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// chain carries none.
func CodeOf(err error) Code {
	var ve *ValidationError
	var de *Error
	switch {
	case errors.As(err, &de):
		return de.Code
	case errors.As(err, &ve):
		return CodeValidation
	default:
		return CodeInternal
	}
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			if e.Code == code {
				return true
			}
		case *ValidationError:
			if code == CodeValidation {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// ValidationError collects field-level messages keyed by field name. It is a
// result for the caller to act on, so it never wraps a cause.
type ValidationError struct {
	Fields map[string][]string
}

// Add records msg against field.
func (v *ValidationError) Add(field, msg string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], msg)
}

// Merge copies other's messages under prefix (e.g. "associations[1].").
func (v *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		for _, msg := range msgs {
			v.Add(prefix+field, msg)
		}
	}
}

// Empty reports whether no messages were recorded.
func (v *ValidationError) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

// Err returns v as an error, or nil when it is empty.
func (v *ValidationError) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(v.Fields[field], ","))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation extracts the field messages from err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
