// Package sdtmap provides custom error types for better error handling and reporting.
package sdtmap

import (
	"errors"
	"fmt"
)

// CorruptPackageError indicates that the input bytes are not a readable
// document container, or that the container is missing the main document part.
type CorruptPackageError struct {
	Reason string
	Cause  error
}

func (e *CorruptPackageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt package: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("corrupt package: %s", e.Reason)
}

func (e *CorruptPackageError) Unwrap() error {
	return e.Cause
}

// NewCorruptPackageError creates a new corrupt package error
func NewCorruptPackageError(reason string, cause error) error {
	return &CorruptPackageError{
		Reason: reason,
		Cause:  cause,
	}
}

// MalformedDocumentError indicates that a document part is not well-formed
// markup or lacks a required namespace declaration.
type MalformedDocumentError struct {
	Part   string
	Reason string
	Cause  error
}

func (e *MalformedDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed document part %s: %s: %v", e.Part, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed document part %s: %s", e.Part, e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Cause
}

// NewMalformedDocumentError creates a new malformed document error
func NewMalformedDocumentError(part, reason string, cause error) error {
	return &MalformedDocumentError{
		Part:   part,
		Reason: reason,
		Cause:  cause,
	}
}

// DepthExceededError indicates that the document tree is nested more deeply
// than the configured ceiling allows.
type DepthExceededError struct {
	Depth int
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("depth exceeded: document tree depth %d exceeds limit %d", e.Depth, e.Limit)
}

// NewDepthExceededError creates a new depth exceeded error
func NewDepthExceededError(depth, limit int) error {
	return &DepthExceededError{
		Depth: depth,
		Limit: limit,
	}
}

// MappingError indicates an inconsistency in a substitution plan, such as a
// malformed row or a row count above the configured ceiling.
type MappingError struct {
	Tag    string
	Reason string
}

func (e *MappingError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("mapping error for tag %q: %s", e.Tag, e.Reason)
	}
	return fmt.Sprintf("mapping error: %s", e.Reason)
}

// NewMappingError creates a new mapping error
func NewMappingError(tag, reason string) error {
	return &MappingError{
		Tag:    tag,
		Reason: reason,
	}
}

// PackagingError indicates that serializing the mutated document or
// rebuilding the output container failed.
type PackagingError struct {
	Part  string
	Cause error
}

func (e *PackagingError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("packaging error for %s: %v", e.Part, e.Cause)
	}
	return fmt.Sprintf("packaging error: %v", e.Cause)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// NewPackagingError creates a new packaging error
func NewPackagingError(part string, cause error) error {
	return &PackagingError{
		Part:  part,
		Cause: cause,
	}
}

// IsCorruptPackage checks if an error is a corrupt package error
func IsCorruptPackage(err error) bool {
	var target *CorruptPackageError
	return errors.As(err, &target)
}

// IsMalformedDocument checks if an error is a malformed document error
func IsMalformedDocument(err error) bool {
	var target *MalformedDocumentError
	return errors.As(err, &target)
}

// IsDepthExceeded checks if an error is a depth exceeded error
func IsDepthExceeded(err error) bool {
	var target *DepthExceededError
	return errors.As(err, &target)
}

// IsMappingError checks if an error is a mapping error
func IsMappingError(err error) bool {
	var target *MappingError
	return errors.As(err, &target)
}

// IsPackagingError checks if an error is a packaging error
func IsPackagingError(err error) bool {
	var target *PackagingError
	return errors.As(err, &target)
}
