package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindConflict
	KindInvalidInput
)

// Error is a failure the caller is allowed to see.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches on kind; a sentinel with an empty message matches any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Code is the client-facing error code. Role failures share the
// authentication code.
func (e *Error) Code() string {
	switch e.Kind {
	case KindUnauthenticated, KindForbidden:
		return "UNAUTHENTICATED"
	case KindConflict:
		return "CONFLICT"
	case KindInvalidInput:
		return "BAD_USER_INPUT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

var (
	ErrNotAuthenticated   = &Error{Kind: KindUnauthenticated, Message: "Not authenticated"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Message: "Invalid credentials"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "Email already registered"}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
)

func onlyAdmin(verb string) *Error {
	return &Error{Kind: KindForbidden, Message: "Only admin can " + verb + " employees"}
}

// invalidInput turns validator output into a single BAD_USER_INPUT error.
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field != "" {
			field = strings.ToLower(field[:1]) + field[1:]
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", field, fe.Tag()))
		}
	}
	return &Error{Kind: KindInvalidInput, Message: "invalid input: " + strings.Join(parts, "; ")}
}
