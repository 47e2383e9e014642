package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrForbidden          = errors.New("upload privilege required")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// TransportError rejects an upload before its content is looked at.
type TransportError struct {
	Reason string
}

func (e *TransportError) Error() string {
	return e.Reason
}

// FormatError reports content that cannot be read as delimited tabular text.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid CSV content: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SchemaError lists required columns absent from the header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("CSV file is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// StoreError wraps a destination store read or write failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
