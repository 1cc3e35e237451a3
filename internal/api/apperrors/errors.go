// Package apperrors defines the error kinds every mutation can return.
// Services wrap these with %w and handlers map them to HTTP statuses;
// nothing outside a handler inspects error strings.
package apperrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound: a referenced film/review/reaction/user-film/user does not exist.
	ErrNotFound = errors.New("not_found")
	// ErrAlreadyExists: duplicate user-film, duplicate identical reaction,
	// duplicate unique name.
	ErrAlreadyExists = errors.New("already_exists")
	// ErrConflict: reaction type collision (un-react first), genre name taken
	// on rename.
	ErrConflict = errors.New("conflict")
	// ErrForbidden: role or ownership check failed.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState: transition violates air-status/progress/plan-to-watch
	// preconditions.
	ErrInvalidState = errors.New("invalid_state")
	// ErrConcurrency: version check lost against a concurrent writer; the
	// operation may be retried.
	ErrConcurrency = errors.New("concurrency_conflict")
	// ErrInvalidRequest: payload failed validation before touching storage.
	ErrInvalidRequest = errors.New("invalid_request")
)

// IsUniqueViolation classifies duplicate-key failures from the database so
// repositories can turn them into ErrAlreadyExists. Postgres reports
// SQLSTATE 23505 through pgconn; the sqlite driver used in tests only gives
// us the message text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}
