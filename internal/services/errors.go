package services

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoProductIDs    = errors.New("ids must be a non-empty array")
)

// MissingFieldError reports the first required field left blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

// NotConfiguredError means a pipeline's mail transport lacks required
// variables. Only variable names are kept, never their values.
type NotConfiguredError struct {
	Pipeline string
	Missing  []string
}

func (e *NotConfiguredError) Error() string {
	return e.Pipeline + " email service not configured: missing " + strings.Join(e.Missing, ", ")
}

// TransportError wraps a failed send.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
