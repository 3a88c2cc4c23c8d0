// Package errors defines the typed error values used by the collection
// pipeline. Resolution failure is never an error (it is an outcome
// value); these cover real faults: unreadable files, parse failures,
// invalid configuration.
package errors

import (
	"fmt"
	"time"
)

// ErrorType classifies collection errors
type ErrorType string

const (
	ErrorTypeCollect ErrorType = "collect"
	ErrorTypeParse   ErrorType = "parse"

	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypeFileTooLarge ErrorType = "file_too_large"
	ErrorTypePermission   ErrorType = "permission"

	ErrorTypeConfig ErrorType = "config"

	ErrorTypeInternal ErrorType = "internal"
)

// CollectError represents an error during the declaration-collection
// pass.
type CollectError struct {
	Type        ErrorType
	FilePath    string
	Operation   string
	Underlying  error
	Timestamp   time.Time
	Recoverable bool
}

// NewCollectError creates a new collection error with context
func NewCollectError(op string, err error) *CollectError {
	return &CollectError{
		Type:       ErrorTypeCollect,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithFile adds file information to the error
func (e *CollectError) WithFile(path string) *CollectError {
	e.FilePath = path
	return e
}

// WithType overrides the error classification
func (e *CollectError) WithType(t ErrorType) *CollectError {
	e.Type = t
	return e
}

// WithRecoverable marks the error as recoverable
func (e *CollectError) WithRecoverable(recoverable bool) *CollectError {
	e.Recoverable = recoverable
	return e
}

// Error implements the error interface
func (e *CollectError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Operation, e.FilePath, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *CollectError) Unwrap() error {
	return e.Underlying
}

// IsRecoverable checks if the error can be retried
func (e *CollectError) IsRecoverable() bool {
	return e.Recoverable
}

// ParseError represents a parsing error in a Java source file
type ParseError struct {
	Type       ErrorType
	FilePath   string
	Line       int
	Column     int
	Underlying error
	Timestamp  time.Time
}

// NewParseError creates a new parse error
func NewParseError(path string, line, column int, err error) *ParseError {
	return &ParseError{
		Type:       ErrorTypeParse,
		FilePath:   path,
		Line:       line,
		Column:     column,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s:%d:%d: %v", e.FilePath, e.Line, e.Column, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Underlying
}
