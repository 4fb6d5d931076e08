package response

import (
	"encoding/json"
	"net/http"
	"village/shared/constant"
	"village/shared/failure"
	"village/shared/logger"
)

// Envelope is the uniform response shape for every endpoint. Status duplicates
// the HTTP status code; Data is null on failure.
type Envelope struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Data   any    `json:"data"`
}

// WithData sends a success envelope carrying a JSON payload.
func WithData(writer http.ResponseWriter, code int, msg string, data any) {
	write(writer, code, Envelope{Status: code, Msg: msg, Data: data})
}

// WithMessage sends an envelope with a message and no payload.
func WithMessage(writer http.ResponseWriter, code int, msg string) {
	write(writer, code, Envelope{Status: code, Msg: msg, Data: nil})
}

// WithError sends a failure envelope; the status comes from the failure code.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	write(writer, code, Envelope{Status: code, Msg: err.Error(), Data: nil})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload Envelope) {
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
