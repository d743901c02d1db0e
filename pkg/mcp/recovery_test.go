package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNetError struct {
	timeout bool
}

func (e *fakeNetError) Error() string   { return "net error" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want recoveryAction
	}{
		{"nil", nil, noRetry},
		{"context canceled", context.Canceled, noRetry},
		{"deadline exceeded", context.DeadlineExceeded, noRetry},
		{"network timeout", &fakeNetError{timeout: true}, noRetry},
		{"network failure", &fakeNetError{}, retryNewSession},
		{"eof", io.EOF, retryNewSession},
		{"wrapped eof", fmt.Errorf("read: %w", io.ErrUnexpectedEOF), retryNewSession},
		{"connection refused", errors.New("dial tcp: connection refused"), retryNewSession},
		{"broken pipe", errors.New("write: Broken Pipe"), retryNewSession},
		{"protocol error", errors.New("jsonrpc: invalid params"), noRetry},
		{"unknown error", errors.New("something else"), noRetry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
