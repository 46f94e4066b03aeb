package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError attaches the status sentinel and the server's error message
// to a [*retry.NetworkError] produced for a non-2xx response. Other errors
// are returned as is.
func mapHTTPError(resp *resty.Response, err error) error {
	var ne *retry.NetworkError
	if err == nil || resp == nil || !errors.As(err, &ne) || ne.Status == 0 {
		return err
	}

	if sentinel, ok := statusErrors[ne.Status]; ok && ne.Err == nil {
		ne.Err = sentinel
	}

	if msg := errorMessage(resp.Body()); msg != "" {
		ne.Message = fmt.Sprintf("HTTP %d: %s", ne.Status, msg)
	}

	return err
}

// errorMessage extracts the message of an error body, accepting both the
// JSON envelope and plain text.
func errorMessage(body []byte) string {
	var env utils.ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return strings.TrimSpace(string(body))
}
