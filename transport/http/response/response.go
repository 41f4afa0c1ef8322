package response

import (
	"encoding/json"
	"net/http"

	"tick/shared/constant"
	"tick/shared/failure"
	"tick/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type FieldErrors struct {
	Errors map[string]string `json:"errors"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing the payload as-is.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError renders a failure. Authentication and not-found failures answer
// with an empty body so they leak nothing about why the request was turned
// away; validation failures carry their per-field messages.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code == http.StatusUnauthorized || code == http.StatusNotFound {
		writer.WriteHeader(code)

		return
	}

	if fields := failure.GetFields(err); fields != nil {
		response(writer, code, FieldErrors{Errors: fields})

		return
	}

	errMsg := err.Error()
	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
