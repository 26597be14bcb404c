package leptjson

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ParseStatus is the result code of Parse
type ParseStatus int

const (
	StatusOK ParseStatus = iota
	StatusExpectValue
	StatusInvalidValue
	StatusRootNotSingular
	StatusNumberTooBig
)

func (s ParseStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusExpectValue:
		return "expect_value"
	case StatusInvalidValue:
		return "invalid_value"
	case StatusRootNotSingular:
		return "root_not_singular"
	case StatusNumberTooBig:
		return "number_too_big"
	default:
		return "ParseStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// Err returns the sentinel error for the status, or nil for StatusOK
func (s ParseStatus) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusExpectValue:
		return ErrExpectValue
	case StatusInvalidValue:
		return ErrInvalidValue
	case StatusRootNotSingular:
		return ErrRootNotSingular
	case StatusNumberTooBig:
		return ErrNumberTooBig
	default:
		return ErrOperationFailed
	}
}

var (
	// Parse failures, one per non-OK status
	ErrExpectValue     = errors.New("expect value")
	ErrInvalidValue    = errors.New("invalid value")
	ErrRootNotSingular = errors.New("root not singular")
	ErrNumberTooBig    = errors.New("number too big")

	// Processor errors
	ErrOperationFailed  = errors.New("operation failed")
	ErrProcessorClosed  = errors.New("processor is closed")
	ErrSizeLimit        = errors.New("size limit exceeded")
	ErrOperationTimeout = errors.New("operation timeout")
)

// ParseError describes a failed parse with the offset where parsing stopped
type ParseError struct {
	Op      string      `json:"op"`
	Offset  int         `json:"offset"`
	Status  ParseStatus `json:"status"`
	Message string      `json:"message"`
	Err     error       `json:"err"`
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("JSON %s failed at offset %d: %s", e.Op, e.Offset, e.Message)
	}
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches another *ParseError by op and cause, or the wrapped error
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*ParseError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}
	return errors.Is(e.Err, target)
}

// newStatusError creates a ParseError for a failed status
func newStatusError(op string, status ParseStatus, offset int) error {
	return &ParseError{
		Op:      op,
		Offset:  offset,
		Status:  status,
		Message: status.Err().Error(),
		Err:     status.Err(),
	}
}

// newOperationError creates a ParseError for failures outside the grammar
func newOperationError(op, message string, err error) error {
	return &ParseError{
		Op:      op,
		Offset:  -1,
		Message: message,
		Err:     err,
	}
}

// newSizeLimitError creates a ParseError for inputs above the configured size
func newSizeLimitError(op string, actual, limit int64) error {
	return &ParseError{
		Op:      op,
		Offset:  -1,
		Message: fmt.Sprintf("size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

// newContextError creates a ParseError for a done context.
// A passed deadline also matches ErrOperationTimeout.
func newContextError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ParseError{
			Op:      op,
			Offset:  -1,
			Message: "deadline exceeded",
			Err:     fmt.Errorf("%w: %w", ErrOperationTimeout, err),
		}
	}
	return newOperationError(op, "context done", err)
}

// StatusOf extracts the parse status carried by err.
// It returns StatusOK for nil and false when err carries no status.
func StatusOf(err error) (ParseStatus, bool) {
	if err == nil {
		return StatusOK, true
	}
	var perr *ParseError
	if errors.As(err, &perr) && perr.Status != StatusOK {
		return perr.Status, true
	}
	return StatusOK, false
}

// ErrorClassifier helps classify errors for better handling
type ErrorClassifier struct{}

// NewErrorClassifier creates a new error classifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsRetryable determines if an error is retryable
func (ec *ErrorClassifier) IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrOperationTimeout):
		return true
	default:
		return false
	}
}

// IsUserError determines if an error is caused by the input text
func (ec *ErrorClassifier) IsUserError(err error) bool {
	switch {
	case errors.Is(err, ErrExpectValue),
		errors.Is(err, ErrInvalidValue),
		errors.Is(err, ErrRootNotSingular),
		errors.Is(err, ErrNumberTooBig),
		errors.Is(err, ErrSizeLimit):
		return true
	default:
		return false
	}
}

// GetErrorSuggestion provides helpful suggestions for common errors
func (ec *ErrorClassifier) GetErrorSuggestion(err error) string {
	switch {
	case errors.Is(err, ErrExpectValue):
		return "Input is empty or whitespace only; provide null, true, false or a number"
	case errors.Is(err, ErrInvalidValue):
		return "Check literal spelling (lowercase true/false/null) and number syntax"
	case errors.Is(err, ErrRootNotSingular):
		return "Remove trailing characters after the value; numbers cannot have leading zeros"
	case errors.Is(err, ErrNumberTooBig):
		return "Number magnitude exceeds float64 range"
	case errors.Is(err, ErrSizeLimit):
		return "Reduce input size or increase MaxInputSize in configuration"
	case errors.Is(err, ErrProcessorClosed):
		return "Create a new processor with New()"
	case errors.Is(err, ErrOperationTimeout):
		return "Retry with a longer deadline or a smaller batch"
	default:
		return "Check the error message for specific details"
	}
}
