package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Details carries the underlying diagnostic for server-side failures.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	cause   error
}

var ErrDatabaseUnavailable = errors.New("database unavailable")

// Error returns the error message.
func (e *Failure) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}

	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Storage returns a new Failure for a failed database round trip. The message is what the client
// sees as error, the cause becomes details.
func Storage(msg string, err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) && fail.Code != http.StatusInternalServerError {
		return err
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		Details: err.Error(),
		cause:   err,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsUnavailable reports whether err comes from running without a database.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}
