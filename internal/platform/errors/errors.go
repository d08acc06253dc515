package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUsage          Kind = "usage"
	KindConfig         Kind = "config"
	KindPathResolution Kind = "path resolution"
	KindTraversal      Kind = "traversal"
	KindIO             Kind = "io"
	KindInternal       Kind = "internal"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, message string, cause error) error {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func NewUsage(message string) error {
	return New(KindUsage, message, nil)
}

func NewConfig(message string, cause error) error {
	return New(KindConfig, message, cause)
}

// NewPathResolution reports a project root that is missing or cannot be canonicalized.
func NewPathResolution(path string, cause error) error {
	return New(KindPathResolution, "cannot resolve project root "+path, cause)
}

// NewTraversal reports a project root whose top-level listing failed.
func NewTraversal(path string, cause error) error {
	return New(KindTraversal, "cannot read project root "+path, cause)
}

func NewInternal(message string, cause error) error {
	return New(KindInternal, message, cause)
}

// KindOf returns the kind of the first AppError in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func IsUsage(err error) bool {
	return KindOf(err) == KindUsage
}

func IsPathResolution(err error) bool {
	return KindOf(err) == KindPathResolution
}

func IsTraversal(err error) bool {
	return KindOf(err) == KindTraversal
}
