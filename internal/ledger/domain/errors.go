package domain

import "fmt"

// Error codes returned to API clients alongside a human-readable message.
const (
	CodeValidation     = "VALIDATION"
	CodeImbalance      = "IMBALANCE"
	CodeEmptyCreditSet = "EMPTY_CREDIT_SET"
	CodeNotFound       = "NOT_FOUND"
	CodePersistence    = "PERSISTENCE"
)

// Error is a domain-level failure with a machine code and display message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError reports a missing or malformed required field.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NewImbalanceError reports a journal entry whose debit does not equal its
// total credit.
func NewImbalanceError() *Error {
	return &Error{Code: CodeImbalance, Message: "Debit and Credit amounts must be equal."}
}

// NewEmptyCreditSetError reports a journal entry submitted with no credits.
func NewEmptyCreditSetError() *Error {
	return &Error{Code: CodeEmptyCreditSet, Message: "At least one credit entry is required."}
}

// NewNotFoundError reports an operation against an id that does not exist.
func NewNotFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// NewPersistenceError wraps a storage failure, keeping the underlying error
// for diagnostics.
func NewPersistenceError(message string, cause error) *Error {
	return &Error{Code: CodePersistence, Message: message, cause: cause}
}
