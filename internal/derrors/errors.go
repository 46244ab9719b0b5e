// Package derrors provides custom error types for scriptcomplete.
// Each type carries a stable code so callers can branch on the failure
// class without string matching.
package derrors

import (
	"fmt"
)

// SnippetError is the base interface for all scriptcomplete errors
type SnippetError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all scriptcomplete errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
		},
		Resource: resource,
	}
}

// AlreadyExistsError represents errors when a resource already exists
type AlreadyExistsError struct {
	baseError
	Resource string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource string, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			code:    "ALREADY_EXISTS",
			message: message,
		},
		Resource: resource,
	}
}

// ContractError reports input that a rule's own trigger expression should
// have made unreachable, such as an unknown kind code reaching a mapping table.
type ContractError struct {
	baseError
	Rule  string
	Input string
}

// NewContractError creates a new contract violation error
func NewContractError(rule, input, message string) *ContractError {
	return &ContractError{
		baseError: baseError{
			code:    "CONTRACT_ERROR",
			message: fmt.Sprintf("%s: %s %q", rule, message, input),
		},
		Rule:  rule,
		Input: input,
	}
}

// InputError represents unusable command line input
type InputError struct {
	baseError
	Source string
}

// NewInputError creates a new input error
func NewInputError(source string, message string, cause error) *InputError {
	return &InputError{
		baseError: baseError{
			code:    "INPUT_ERROR",
			message: message,
			cause:   cause,
		},
		Source: source,
	}
}
