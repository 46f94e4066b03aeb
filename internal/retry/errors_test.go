package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "400", err: &NetworkError{Status: 400}, want: false},
		{name: "401", err: &NetworkError{Status: 401}, want: false},
		{name: "403", err: &NetworkError{Status: 403}, want: false},
		{name: "404", err: &NetworkError{Status: 404}, want: false},
		{name: "422", err: &NetworkError{Status: 422}, want: false},
		{name: "408", err: &NetworkError{Status: 408}, want: true},
		{name: "429", err: &NetworkError{Status: 429}, want: true},
		{name: "500", err: &NetworkError{Status: 500}, want: true},
		{name: "502", err: &NetworkError{Status: 502}, want: true},
		{name: "503", err: &NetworkError{Status: 503}, want: true},
		{name: "504", err: &NetworkError{Status: 504}, want: true},
		{name: "501 unclassified", err: &NetworkError{Status: 501}, want: false},
		{name: "network code", err: &NetworkError{Code: CodeNetworkError}, want: true},
		{name: "dns code", err: &NetworkError{Code: CodeDNSError}, want: true},
		{name: "unknown code", err: &NetworkError{Code: "EWHATEVER"}, want: false},
		{name: "explicit false beats 503", err: &NetworkError{Status: 503, Retryable: &no}, want: false},
		{name: "explicit true on unknown", err: &NetworkError{Retryable: &yes}, want: true},
		{name: "404 beats network code", err: &NetworkError{Status: 404, Code: CodeNetworkError}, want: false},
		{name: "wrapped 503", err: fmt.Errorf("fetch: %w", &NetworkError{Status: 503}), want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "cancelled", err: context.Canceled, want: false},
		{name: "circuit open", err: &CircuitOpenError{Operation: "x"}, want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantNil  bool
	}{
		{name: "dns", err: &net.DNSError{Err: "server misbehaving", Name: "api"}, wantCode: CodeDNSError},
		{name: "dns not found", err: &net.DNSError{Err: "no such host", Name: "api", IsNotFound: true}, wantCode: CodeNotFound},
		{name: "refused", err: syscall.ECONNREFUSED, wantCode: CodeConnectionRefused},
		{name: "reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), wantCode: CodeConnReset},
		{name: "timed out", err: syscall.ETIMEDOUT, wantCode: CodeConnTimedOut},
		{name: "net timeout", err: timeoutErr{}, wantCode: CodeTimeout},
		{name: "op error", err: &net.OpError{Op: "read", Err: errors.New("broken pipe")}, wantCode: CodeNetworkError},
		{name: "unexpected eof", err: io.ErrUnexpectedEOF, wantCode: CodeNetworkError},
		{name: "unknown", err: errors.New("boom"), wantNil: true},
		{name: "nil", err: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantCode, got.Code)
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestNetworkError_Error(t *testing.T) {
	assert.Equal(t, "HTTP 503: Service Unavailable", (&NetworkError{Status: 503}).Error())
	assert.Equal(t, "custom", (&NetworkError{Status: 503, Message: "custom"}).Error())
	assert.Equal(t, "network error: TIMEOUT", (&NetworkError{Code: CodeTimeout}).Error())
	assert.Equal(t, "boom", (&NetworkError{Err: errors.New("boom")}).Error())
}

func TestMarkNonRetryable(t *testing.T) {
	assert.Nil(t, MarkNonRetryable(nil))

	base := errors.New("validation failed")
	marked := MarkNonRetryable(base)
	assert.False(t, IsRetryable(marked))
	assert.ErrorIs(t, marked, base)

	orig := &NetworkError{Status: 503}
	marked = MarkNonRetryable(orig)
	assert.False(t, IsRetryable(marked))
	assert.True(t, IsRetryable(orig), "original error must not be mutated")
}
