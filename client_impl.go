package tdclient

import (
	"context"

	"github.com/wagiedev/tdlib-client-go/internal/client"
	"github.com/wagiedev/tdlib-client-go/internal/config"
)

// clientWrapper adapts the internal client to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl(transport Transport, opts []Option) Client {
	options := &config.Options{Parameters: config.DefaultParameters()}
	for _, opt := range opts {
		opt(options)
	}

	return &clientWrapper{impl: client.New(transport, options)}
}

// Start begins consuming the transport's notification channel.
func (c *clientWrapper) Start(ctx context.Context) error {
	return c.impl.Start(ctx)
}

// Send issues a fire-and-forget request.
func (c *clientWrapper) Send(ctx context.Context, req any) uint64 {
	return c.impl.Send(ctx, req)
}

// ExecuteAsync issues a request with response callbacks.
func (c *clientWrapper) ExecuteAsync(
	ctx context.Context,
	req any,
	onResult, onError func(Envelope),
) (uint64, error) {
	return c.impl.ExecuteAsync(ctx, req, onResult, onError)
}

// Execute issues a request and blocks until its response arrives.
func (c *clientWrapper) Execute(ctx context.Context, req any) (Envelope, error) {
	return c.impl.Execute(ctx, req)
}

// SetUpdateCallback sets the standing subscriber for unsolicited success envelopes.
func (c *clientWrapper) SetUpdateCallback(fn func(Envelope)) {
	c.impl.SetUpdateCallback(fn)
}

// SetErrorCallback sets the standing subscriber for unsolicited error envelopes.
func (c *clientWrapper) SetErrorCallback(fn func(Envelope)) {
	c.impl.SetErrorCallback(fn)
}

// SetCloseCallback sets the callback fired when the transport closes.
func (c *clientWrapper) SetCloseCallback(fn func()) {
	c.impl.SetCloseCallback(fn)
}

// WaitReady blocks until the authorization handshake completes.
func (c *clientWrapper) WaitReady(ctx context.Context) error {
	return c.impl.WaitReady(ctx)
}

// Done returns a channel closed when the dispatch loop stops.
func (c *clientWrapper) Done() <-chan struct{} {
	return c.impl.Done()
}

// Wait blocks until the dispatch loop exits.
func (c *clientWrapper) Wait() error {
	return c.impl.Wait()
}

// Close signals the transport to terminate.
func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
