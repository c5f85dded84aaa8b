package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"ourstory/shared/constant"
	"ourstory/shared/failure"
	"ourstory/shared/logger"
)

type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type NotFound struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

type Message struct {
	Message string `json:"message"`
}

type Success struct {
	Success bool `json:"success"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithJSON(writer, code, Message{Message: message})
}

// WithJSON sends payload as the response body, unwrapped.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithSuccess sends {"success": true}.
func WithSuccess(writer http.ResponseWriter) {
	WithJSON(writer, http.StatusOK, Success{Success: true})
}

// WithError sends the error envelope. Only server failures carry details.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{Error: err.Error()}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		body.Error = fail.Message
		body.Details = fail.Details
	}

	if code == http.StatusInternalServerError {
		if body.Details == "" {
			body.Details = body.Error
			body.Error = constant.ResponseErrorInternal
		}
	} else {
		body.Details = ""
	}

	response(writer, code, body)
}

// WithNotFound sends the catch-all 404 for path.
func WithNotFound(writer http.ResponseWriter, path string) {
	response(writer, http.StatusNotFound, NotFound{Error: constant.ResponseErrorNotFound, Path: path})
}

func WithMethodNotAllowed(writer http.ResponseWriter) {
	response(writer, http.StatusMethodNotAllowed, Error{Error: constant.ResponseErrorMethodNotAllowed})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
