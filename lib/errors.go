package lib

import (
	"errors"
	"fmt"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin access required")
)

// StoreError carries the data store's native error payload. The API surfaces
// it verbatim: this layer does not translate codes into domain kinds.
type StoreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error %s: %s", e.Code, e.Message)
}

// MapPgError maps a driver error to a sentinel where one applies, otherwise
// wraps the native payload in a StoreError.
func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
		return &StoreError{
			Code:    pgErr.Field('C'),
			Message: pgErr.Field('M'),
			Detail:  pgErr.Field('D'),
		}
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// StorePayload extracts the native store payload when the error carries one,
// for handlers that surface code/message in the response body.
func StorePayload(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
