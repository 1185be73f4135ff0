package tdclient

import "context"

// Client correlates requests to the underlying actor with their
// responses and dispatches unsolicited notifications.
//
// Lifecycle: clients are single-use. Create one with New, Start it,
// and after Close create a new client over a fresh transport.
//
// Example usage:
//
//	client := tdclient.New(transport,
//	    tdclient.WithAPICredentials(apiID, apiHash),
//	)
//	defer client.Close()
//
//	if err := client.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := client.Execute(ctx, request)
//	if err != nil {
//	    log.Fatal(err)
//	}
type Client interface {
	// Start begins consuming the transport's notification channel.
	// Must be called before Execute or ExecuteAsync can complete.
	Start(ctx context.Context) error

	// Send issues a fire-and-forget request and returns its
	// correlation identifier immediately. No callback is registered;
	// any eventual response is dropped.
	Send(ctx context.Context, req any) uint64

	// ExecuteAsync blocks until the authorization handshake completes,
	// then issues the request with callbacks registered under its
	// identifier. Exactly one of onResult or onError fires, at most
	// once, when a matching envelope arrives.
	ExecuteAsync(ctx context.Context, req any, onResult, onError func(Envelope)) (uint64, error)

	// Execute issues the request and blocks until its response
	// arrives, returning the envelope whatever its kind. The wait ends
	// early on context cancellation, the configured request timeout,
	// or transport failure.
	Execute(ctx context.Context, req any) (Envelope, error)

	// SetUpdateCallback sets the standing subscriber for unsolicited
	// success envelopes, preserving the error and close callbacks.
	SetUpdateCallback(fn func(Envelope))

	// SetErrorCallback sets the standing subscriber for unsolicited
	// error envelopes, preserving the update and close callbacks.
	SetErrorCallback(fn func(Envelope))

	// SetCloseCallback sets the callback fired exactly once when the
	// transport closes, preserving the update and error callbacks.
	SetCloseCallback(fn func())

	// WaitReady blocks until the authorization handshake reaches its
	// terminal state, the context ends, or the transport fails.
	WaitReady(ctx context.Context) error

	// Done returns a channel closed when the dispatch loop stops.
	Done() <-chan struct{}

	// Wait blocks until the dispatch loop exits and returns its fatal
	// error, if any.
	Wait() error

	// Close signals the transport to terminate. It does not wait for
	// the close notification. Safe to call multiple times.
	Close() error
}

// New creates a client over the given transport.
//
//	client := tdclient.New(transport,
//	    tdclient.WithLogger(slog.Default()),
//	    tdclient.WithAPICredentials(apiID, apiHash),
//	)
func New(transport Transport, opts ...Option) Client {
	return newClientImpl(transport, opts)
}
