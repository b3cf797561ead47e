package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown         Code = "UNKNOWN"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"
	CodeResultTooLarge  Code = "RESULT_TOO_LARGE"
	CodeResultTooSmall  Code = "RESULT_TOO_SMALL"
	CodeInvalidOperator Code = "INVALID_OPERATOR"
	CodeInvalidOperand  Code = "INVALID_OPERAND"
)

// Sentinels for errors.Is comparisons. Matching is by code only.
var (
	ErrDivisionByZero  = &Error{Code: CodeDivisionByZero}
	ErrResultTooLarge  = &Error{Code: CodeResultTooLarge}
	ErrResultTooSmall  = &Error{Code: CodeResultTooSmall}
	ErrInvalidOperator = &Error{Code: CodeInvalidOperator}
	ErrInvalidOperand  = &Error{Code: CodeInvalidOperand}
)

// Error is a calculator error with a code and templating metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata creates an error whose metadata is used by message templates.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// NewInvalidOperator reports an operator outside + - * /.
func NewInvalidOperator(op string) *Error {
	return WithMetadata(CodeInvalidOperator,
		fmt.Sprintf("invalid operator: %s", op),
		map[string]string{"Operator": op})
}

// NewInvalidOperand reports input that is not a finite number.
func NewInvalidOperand(input string) *Error {
	return WithMetadata(CodeInvalidOperand,
		fmt.Sprintf("invalid operand: %s", input),
		map[string]string{"Input": input})
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
