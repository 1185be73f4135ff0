package tdclient

import "github.com/wagiedev/tdlib-client-go/internal/errors"

// Re-export sentinel errors from the internal package.
var (
	// ErrDuplicateRequestID indicates a correlation identifier
	// collision; it signals a bug in allocation, never a condition to
	// retry.
	ErrDuplicateRequestID = errors.ErrDuplicateRequestID

	// ErrClientNotStarted indicates the client was used before Start.
	ErrClientNotStarted = errors.ErrClientNotStarted

	// ErrClientAlreadyStarted indicates Start was called twice.
	ErrClientAlreadyStarted = errors.ErrClientAlreadyStarted

	// ErrClientClosed indicates the client has been closed and cannot
	// be reused.
	ErrClientClosed = errors.ErrClientClosed

	// ErrRequestTimeout indicates a blocking request timed out.
	ErrRequestTimeout = errors.ErrRequestTimeout

	// ErrDispatcherStopped indicates the dispatch loop has stopped and
	// no further responses can arrive.
	ErrDispatcherStopped = errors.ErrDispatcherStopped
)
