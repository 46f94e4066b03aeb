package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
)

// Transient error codes. A [NetworkError] carrying one of them is retried.
const (
	CodeNetworkError      = "NETWORK_ERROR"
	CodeTimeout           = "TIMEOUT"
	CodeConnectionRefused = "CONNECTION_REFUSED"
	CodeDNSError          = "DNS_ERROR"
	CodeConnReset         = "ECONNRESET"
	CodeNotFound          = "ENOTFOUND"
	CodeConnTimedOut      = "ETIMEDOUT"
)

// ErrCircuitOpen is matched by every [*CircuitOpenError].
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitOpenError is returned without running the operation while the
// breaker of Operation is open.
type CircuitOpenError struct {
	Operation string
}

func (e *CircuitOpenError) Error() string {
	return "circuit breaker is open for operation: " + e.Operation
}

// Is reports true for [ErrCircuitOpen].
func (e *CircuitOpenError) Is(target error) bool {
	return target == ErrCircuitOpen
}

// NetworkError is a failed network call enriched with what is needed to
// decide whether to retry it: the HTTP status, a transient error code, or an
// explicit retryability override.
type NetworkError struct {
	// Status is the HTTP status code, 0 when no response was received.
	Status int
	// Code is one of the Code* constants, or empty.
	Code string
	// Retryable overrides classification when non-nil.
	Retryable *bool
	Message   string
	Err       error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Status != 0:
		return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
	default:
		return "network error: " + e.Code
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MarkNonRetryable wraps err so that [IsRetryable] reports false for it
// whatever its status or code.
func MarkNonRetryable(err error) error {
	if err == nil {
		return nil
	}

	no := false
	var ne *NetworkError
	if errors.As(err, &ne) {
		cp := *ne
		cp.Retryable = &no
		return &cp
	}

	return &NetworkError{Retryable: &no, Err: err}
}

var (
	nonRetryableStatuses = map[int]struct{}{
		http.StatusBadRequest:          {},
		http.StatusUnauthorized:        {},
		http.StatusForbidden:           {},
		http.StatusNotFound:            {},
		http.StatusUnprocessableEntity: {},
	}

	retryableStatuses = map[int]struct{}{
		http.StatusRequestTimeout:      {},
		http.StatusTooManyRequests:     {},
		http.StatusInternalServerError: {},
		http.StatusBadGateway:          {},
		http.StatusServiceUnavailable:  {},
		http.StatusGatewayTimeout:      {},
	}

	retryableCodes = map[string]struct{}{
		CodeNetworkError:      {},
		CodeTimeout:           {},
		CodeConnectionRefused: {},
		CodeDNSError:          {},
		CodeConnReset:         {},
		CodeNotFound:          {},
		CodeConnTimedOut:      {},
	}
)

// IsRetryable classifies err. Anything not known to be transient is not
// retried.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrCircuitOpen) {
		return false
	}

	ne := Classify(err)
	if ne == nil {
		return false
	}

	if ne.Retryable != nil && !*ne.Retryable {
		return false
	}
	if _, ok := nonRetryableStatuses[ne.Status]; ok {
		return false
	}
	if _, ok := retryableCodes[ne.Code]; ok {
		return true
	}
	if _, ok := retryableStatuses[ne.Status]; ok {
		return true
	}
	if ne.Retryable != nil {
		return *ne.Retryable
	}

	return false
}

// Classify returns the [*NetworkError] in err's chain, or builds one from
// well-known transport errors. It returns nil for errors it does not
// recognize.
func Classify(err error) *NetworkError {
	if err == nil {
		return nil
	}

	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		code := CodeDNSError
		if dnsErr.IsNotFound {
			code = CodeNotFound
		}
		return &NetworkError{Code: code, Err: err}
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return &NetworkError{Code: CodeConnectionRefused, Err: err}
	case errors.Is(err, syscall.ECONNRESET):
		return &NetworkError{Code: CodeConnReset, Err: err}
	case errors.Is(err, syscall.ETIMEDOUT):
		return &NetworkError{Code: CodeConnTimedOut, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &NetworkError{Code: CodeTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &NetworkError{Code: CodeTimeout, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &NetworkError{Code: CodeNetworkError, Err: err}
	}

	return nil
}
