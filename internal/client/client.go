// Package client implements the correlation facade over an injected
// transport: identifier allocation, the blocking and fire-and-forget
// call primitives, default-subscriber management and the readiness
// gate driven by the authorization state machine.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/tdlib-client-go/internal/auth"
	"github.com/wagiedev/tdlib-client-go/internal/config"
	"github.com/wagiedev/tdlib-client-go/internal/dispatch"
	sdkerrors "github.com/wagiedev/tdlib-client-go/internal/errors"
	"github.com/wagiedev/tdlib-client-go/internal/message"
	"github.com/wagiedev/tdlib-client-go/internal/registry"
)

// Client is the correlation facade. Create one with New, call Start to
// begin consuming the transport, and Close when done. Clients are
// single-use; after Close a fresh instance (and a fresh transport) is
// required.
type Client struct {
	log       *slog.Logger
	transport config.Transport
	options   *config.Options

	reg     *registry.Registry
	machine *auth.Machine
	disp    *dispatch.Dispatcher

	// nextID allocates correlation identifiers. The first Add(1)
	// yields 1; identifier 0 stays reserved for the default slot.
	nextID atomic.Uint64

	// Errgroup for the dispatch goroutine
	eg *errgroup.Group

	// Lifecycle management
	mu      sync.Mutex
	started bool
	closed  bool
}

// Compile-time check that *Client satisfies the sender surface handed
// to credential sources.
var _ config.Sender = (*Client)(nil)

// New creates a client over the given transport.
//
// The client is idle after creation; Start begins consuming envelopes.
func New(transport config.Transport, options *config.Options) *Client {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("client_id", ulid.Make().String())

	c := &Client{
		log:       log.With("component", "client"),
		transport: transport,
		options:   options,
		reg:       registry.New(),
	}

	c.machine = auth.NewMachine(log, c, options.Parameters, options.Credentials)
	c.disp = dispatch.New(log, c.reg, c.machine)

	return c
}

// Start begins consuming the transport's notification channel on a
// background goroutine. It returns immediately; use WaitReady to block
// until the authorization handshake completes.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return sdkerrors.ErrClientClosed
	}

	if c.started {
		return sdkerrors.ErrClientAlreadyStarted
	}

	envelopes, errs := c.transport.Updates(ctx)

	eg, egCtx := errgroup.WithContext(ctx)
	c.eg = eg

	eg.Go(func() error {
		return c.disp.Run(egCtx, envelopes, errs)
	})

	c.started = true

	c.log.Info("Client started")

	return nil
}

// Send allocates the next correlation identifier, hands the tagged
// request to the transport and returns the identifier immediately.
//
// Fire-and-forget: no callback is registered, so any eventual response
// is dropped by the dispatcher. Submission failures are logged, not
// returned; the transport contract is that Submit does not block and
// delivery is not acknowledged.
func (c *Client) Send(ctx context.Context, req any) uint64 {
	id := c.nextID.Add(1)

	if err := c.transport.Submit(ctx, id, req); err != nil {
		c.log.Warn("Failed to submit request", "request_id", id, "error", err)
	}

	return id
}

// ExecuteAsync waits for the authorization handshake to complete, then
// issues the request and registers the callbacks under its identifier.
// Exactly one of onResult or onError fires when the response arrives.
//
// The slot is registered before the request reaches the transport, so
// registration happens-before any possible delivery for the returned
// identifier.
func (c *Client) ExecuteAsync(
	ctx context.Context,
	req any,
	onResult func(message.Envelope),
	onError func(message.Envelope),
) (uint64, error) {
	if err := c.WaitReady(ctx); err != nil {
		return 0, err
	}

	id := c.nextID.Add(1)

	slot := &registry.Slot{OnResult: onResult, OnError: onError}
	if err := c.reg.Register(id, slot); err != nil {
		return 0, err
	}

	if err := c.transport.Submit(ctx, id, req); err != nil {
		c.reg.Take(id)

		return 0, fmt.Errorf("submit request: %w", err)
	}

	c.log.Debug("Request registered", "request_id", id)

	return id, nil
}

// Execute issues the request and blocks until its response arrives,
// returning the envelope whatever its kind. Error envelopes are data,
// not Go errors: the correlation layer does not interpret payloads.
//
// The wait ends early if the context is cancelled, the configured
// request timeout elapses, or the dispatcher stops; in each case the
// pending registration is removed so it cannot leak.
func (c *Client) Execute(ctx context.Context, req any) (message.Envelope, error) {
	// Buffered so the dispatch goroutine never blocks on delivery.
	response := make(chan message.Envelope, 1)

	deliver := func(env message.Envelope) {
		response <- env
	}

	id, err := c.ExecuteAsync(ctx, req, deliver, deliver)
	if err != nil {
		return message.Envelope{}, err
	}

	var timeoutC <-chan time.Time

	if c.options.RequestTimeout > 0 {
		timer := time.NewTimer(c.options.RequestTimeout)
		defer timer.Stop()

		timeoutC = timer.C
	}

	select {
	case env := <-response:
		c.log.Debug("Received response", "request_id", id, "kind", env.Kind.String())

		return env, nil

	case <-c.disp.Done():
		c.reg.Take(id)

		if err := c.disp.Err(); err != nil {
			return message.Envelope{}, fmt.Errorf("transport error: %w", err)
		}

		return message.Envelope{}, sdkerrors.ErrDispatcherStopped

	case <-timeoutC:
		c.reg.Take(id)
		c.log.Warn("Request timed out", "request_id", id, "timeout", c.options.RequestTimeout)

		return message.Envelope{}, fmt.Errorf("%w after %s", sdkerrors.ErrRequestTimeout, c.options.RequestTimeout)

	case <-ctx.Done():
		c.reg.Take(id)

		return message.Envelope{}, ctx.Err()
	}
}

// SetUpdateCallback replaces the default subscriber for unsolicited
// success envelopes, preserving the error and close callbacks.
func (c *Client) SetUpdateCallback(fn func(message.Envelope)) {
	c.reg.SetOnResult(fn)
}

// SetErrorCallback replaces the default subscriber for unsolicited
// error envelopes, preserving the update and close callbacks.
func (c *Client) SetErrorCallback(fn func(message.Envelope)) {
	c.reg.SetOnError(fn)
}

// SetCloseCallback replaces the callback fired when the transport
// closes, preserving the update and error callbacks.
func (c *Client) SetCloseCallback(fn func()) {
	c.reg.SetOnClose(fn)
}

// WaitReady blocks until the authorization handshake reaches its
// terminal state. It returns early with an error if the context ends
// or the dispatcher stops before readiness.
func (c *Client) WaitReady(ctx context.Context) error {
	select {
	case <-c.machine.Ready():
		return nil

	case <-c.disp.Done():
		if err := c.disp.Err(); err != nil {
			return fmt.Errorf("transport error: %w", err)
		}

		return sdkerrors.ErrDispatcherStopped

	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when the dispatch loop stops,
// whether by transport close, fatal error, or Close.
func (c *Client) Done() <-chan struct{} {
	return c.disp.Done()
}

// Wait blocks until the dispatch loop exits and returns its error, if
// any. Callers that only want the close notification can register a
// close callback instead.
func (c *Client) Wait() error {
	c.mu.Lock()
	eg := c.eg
	c.mu.Unlock()

	if eg == nil {
		return sdkerrors.ErrClientNotStarted
	}

	return eg.Wait()
}

// Close signals the transport to terminate. It does not wait for the
// close notification; the dispatch loop keeps draining until the
// transport closes its channel, which fires the close callback. Safe
// to call multiple times.
func (c *Client) Close() error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()

		return nil
	}

	c.closed = true

	c.mu.Unlock()

	c.log.Info("Closing client")

	if err := c.transport.Close(); err != nil {
		return fmt.Errorf("close transport: %w", err)
	}

	return nil
}
