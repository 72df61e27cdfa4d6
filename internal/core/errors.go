package core

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error sentinels. Handlers map these to HTTP statuses: ErrInvalid 400,
// ErrNotFound 404, ErrConflict 409; anything else is unexpected (500).
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type serviceError struct {
	sentinel error
	msg      string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.sentinel }

// Invalid reports bad or missing input.
func Invalid(msg string) error { return &serviceError{sentinel: ErrInvalid, msg: msg} }

// NotFound reports a missing row.
func NotFound(msg string) error { return &serviceError{sentinel: ErrNotFound, msg: msg} }

// Conflict reports a uniqueness violation.
func Conflict(msg string) error { return &serviceError{sentinel: ErrConflict, msg: msg} }

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// mapStoreError re-maps raw store errors into the taxonomy so pgx errors
// never leak to the HTTP layer. Unrecognized errors pass through unchanged.
func mapStoreError(err error, notFoundMsg, conflictMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflict(conflictMsg)
		case pgNotNullViolation:
			return Invalid("one or more required fields are null")
		}
	}
	return err
}
