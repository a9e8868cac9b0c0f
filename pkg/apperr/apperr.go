// Package apperr holds the error taxonomy shared by services and controllers.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a missing restaurant/menu/order record.
var ErrNotFound = errors.New("not found")

// AuthError covers bad credentials, duplicate accounts and weak passwords.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

func Auth(reason string) error { return &AuthError{Reason: reason} }

func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// ValidationError covers malformed form input. It is rendered inline and
// never reaches the auth provider or the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(msg string) error { return &ValidationError{Message: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps a read/write failure against the catalog store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
