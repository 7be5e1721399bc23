package aggregates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode standardizes aggregate failure semantics.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeDuplicateField     ErrorCode = "duplicate_field"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical aggregate error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// DuplicateField names a business-unique field that already exists in the store.
type DuplicateField string

const (
	DuplicateEmail  DuplicateField = "email"
	DuplicateStreet DuplicateField = "street"
)

// DuplicateFieldError lists every violated field; it never reports a subset.
type DuplicateFieldError struct {
	Fields []DuplicateField
}

func (e *DuplicateFieldError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}
	return "duplicate field(s): " + strings.Join(names, ", ")
}

// NewDuplicateFieldError returns a CodeDuplicateField error for fields, sorted and de-duplicated.
// It returns nil when fields is empty.
func NewDuplicateFieldError(op string, fields []DuplicateField) error {
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[DuplicateField]struct{}, len(fields))
	uniq := make([]DuplicateField, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		uniq = append(uniq, f)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	cause := &DuplicateFieldError{Fields: uniq}
	return NewError(CodeDuplicateField, op, cause.Error(), cause)
}

// DuplicateFields returns the violated fields carried by err, or nil.
func DuplicateFields(err error) []DuplicateField {
	var dup *DuplicateFieldError
	if !errors.As(err, &dup) {
		return nil
	}
	return dup.Fields
}

// FieldError describes one failed input constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors is the typed result of payload validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// NewValidationError wraps field errors as a CodeValidation error. It returns nil when v is empty.
func NewValidationError(op string, v ValidationErrors) error {
	if len(v) == 0 {
		return nil
	}
	return NewError(CodeValidation, op, v.Error(), v)
}

// FieldErrors returns the field-level validation failures carried by err, or nil.
func FieldErrors(err error) ValidationErrors {
	var v ValidationErrors
	if !errors.As(err, &v) {
		return nil
	}
	return v
}
