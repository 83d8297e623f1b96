package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrPaymentVerification = errors.New("payment verification failed")
)

// Error carries a client-facing message on top of one of the sentinel kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

func notFound(what string) error {
	return newError(ErrNotFound, "%s not found", what)
}

// translate maps storage errors onto the service taxonomy. what names the
// entity in not-found messages.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newError(ErrConflict, "%s already exists", what)
	}
	return err
}
