package advising

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to classify a failure.
var (
	ErrInvalidAction         = errors.New("invalid action")
	ErrNotShortlisted        = errors.New("university not shortlisted")
	ErrNotLocked             = errors.New("university not locked")
	ErrNotFound              = errors.New("not found")
	ErrAlreadyDone           = errors.New("task already done")
	ErrOnboardingIncomplete  = errors.New("onboarding incomplete")
	ErrGenerationUnavailable = errors.New("generation unavailable")
	ErrExecutionTimeout      = errors.New("action execution timed out")
)

var kinds = []struct {
	kind error
	code string
}{
	{ErrInvalidAction, "INVALID_ACTION"},
	{ErrNotShortlisted, "NOT_SHORTLISTED"},
	{ErrNotLocked, "NOT_LOCKED"},
	{ErrNotFound, "NOT_FOUND"},
	{ErrAlreadyDone, "ALREADY_DONE"},
	{ErrOnboardingIncomplete, "ONBOARDING_INCOMPLETE"},
	{ErrGenerationUnavailable, "GENERATION_UNAVAILABLE"},
	{ErrExecutionTimeout, "EXECUTION_TIMEOUT"},
}

// Error is a classified advising failure. Kind is one of the sentinel errors above.
type Error struct {
	Kind    error
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Code returns the stable wire code of the error kind.
func (e *Error) Code() string {
	return CodeOf(e.Kind)
}

// Newf builds a classified error with a formatted message.
func Newf(kind error, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// CodeOf maps any error to its wire code. Unclassified errors are INTERNAL.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		err = ae.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k.kind) {
			return k.code
		}
	}
	return "INTERNAL"
}

// MessageOf returns the human readable part of a classified error.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Message != "" {
			return ae.Message
		}
		if ae.Err != nil {
			return ae.Err.Error()
		}
		return ae.Kind.Error()
	}
	return err.Error()
}
