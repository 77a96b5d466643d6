// Package io holds the request decoding and response encoding helpers
// shared by all API handlers.
package io

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RespondJSON converts a Go value to JSON and sends it to the client.
func RespondJSON(ctx context.Context, log *zap.SugaredLogger, w http.ResponseWriter, data interface{}, statusCode int) {
	// nothing to marshal, just set the status code
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.With("err", err).Error("marshalling JSON")
	}

	// set the content type and headers once we know marshalling has succeeded
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		log.With("err", err).Error("writing response")
	}
}

// RespondText returns a plain text response back to the client.
func RespondText(ctx context.Context, log *zap.SugaredLogger, w http.ResponseWriter, text string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(text)); err != nil {
		log.With("err", err).Error("writing response")
	}
}

// RespondError sends an error response back to the client and logs the
// error internally. If the error is of type *Error its message and
// status are sent back; otherwise we return a HTTP 500 with an opaque
// response to avoid leaking information from the server.
func RespondError(ctx context.Context, log *zap.SugaredLogger, w http.ResponseWriter, err error) {
	log.With("err", err).Error("web handler error")

	if webErr, ok := errors.Cause(err).(*Error); ok {
		er := ErrorResponse{
			Error:  webErr.Err.Error(),
			Fields: webErr.Fields,
		}
		RespondJSON(ctx, log, w, er, webErr.Status)
		return
	}

	er := ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	}
	RespondJSON(ctx, log, w, er, http.StatusInternalServerError)
}
