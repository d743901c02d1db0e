package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"
)

// recoveryAction says how to handle an MCP call failure.
type recoveryAction int

const (
	// noRetry: the error is not recoverable (bad request, timeout, protocol).
	noRetry recoveryAction = iota
	// retryNewSession: transport failure, reconnect and retry once.
	retryNewSession
)

const (
	// initTimeout bounds the transport start plus MCP handshake per server.
	initTimeout = 30 * time.Second

	// reconnectTimeout bounds session recreation during call recovery.
	reconnectTimeout = 10 * time.Second

	// operationTimeout is the per-call deadline for ListTools and CallTool.
	// Generous because some tools are legitimately slow; the delegation
	// timeout above it is the hard ceiling.
	operationTimeout = 90 * time.Second

	retryBackoffMin = 250 * time.Millisecond
	retryBackoffMax = 750 * time.Millisecond
)

// classifyError decides the recovery action for a failed MCP call.
func classifyError(err error) recoveryAction {
	if err == nil {
		return noRetry
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return noRetry
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			// A slow server stays slow; retrying just doubles the wait.
			return noRetry
		}
		return retryNewSession
	}

	if isConnectionError(err) {
		return retryNewSession
	}

	return noRetry
}

func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
		"no such host",
	} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
