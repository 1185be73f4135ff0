package errors

import "errors"

// Sentinel errors for commonly checked conditions.
var (
	// ErrDuplicateRequestID indicates a correlation identifier collided
	// with an existing registration. Identifiers come from a monotonic
	// counter, so this signals a bug in allocation, not a recoverable
	// runtime condition.
	ErrDuplicateRequestID = errors.New("duplicate request identifier")

	// ErrClientNotStarted indicates the client was used before Start.
	ErrClientNotStarted = errors.New("client not started")

	// ErrClientAlreadyStarted indicates Start was called twice.
	ErrClientAlreadyStarted = errors.New("client already started")

	// ErrClientClosed indicates the client has been closed and cannot be
	// reused. Clients are single-use; create a new one with New().
	ErrClientClosed = errors.New("client closed: clients are single-use, create a new one with New()")

	// ErrRequestTimeout indicates a blocking request timed out.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrDispatcherStopped indicates the dispatch loop has stopped and
	// no further responses can arrive.
	ErrDispatcherStopped = errors.New("dispatcher stopped")
)
