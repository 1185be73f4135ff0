// Package dispatch routes inbound envelopes from the transport's
// single multiplexed channel to the registered callbacks.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wagiedev/tdlib-client-go/internal/message"
	"github.com/wagiedev/tdlib-client-go/internal/registry"
)

// AuthHandler consumes authorization state updates. They are routed
// here before any registry lookup and never reach per-request
// callbacks, whatever identifier they carry.
type AuthHandler interface {
	Handle(ctx context.Context, state message.AuthorizationState)
}

// Dispatcher consumes the transport's envelope and error channels and
// routes each envelope to the matching callback slot.
//
// Routing rules, in order:
//   - authorization state updates go to the AuthHandler
//   - identifier 0 goes to the default slot, without removal
//   - any other identifier claims its slot atomically, so each request
//     observes at most one callback invocation
//
// A malformed or unroutable envelope never halts the loop; dispatch of
// subsequent envelopes always continues.
type Dispatcher struct {
	log  *slog.Logger
	reg  *registry.Registry
	auth AuthHandler

	// Fatal error handling - stores the first error and broadcasts via
	// the done channel.
	errMu    sync.RWMutex
	fatalErr error

	doneOnce sync.Once
	done     chan struct{}

	// The transport delivers its close signal exactly once, but a
	// faulty transport must not be able to fire OnClose twice.
	closedOnce sync.Once
}

// New creates a dispatcher routing into reg and auth.
func New(log *slog.Logger, reg *registry.Registry, auth AuthHandler) *Dispatcher {
	return &Dispatcher{
		log:  log.With("component", "dispatch"),
		reg:  reg,
		auth: auth,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the dispatch loop stops.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Err returns the fatal transport error, if one occurred.
func (d *Dispatcher) Err() error {
	d.errMu.RLock()
	defer d.errMu.RUnlock()

	return d.fatalErr
}

// Stop signals the dispatch loop to exit. Safe to call multiple times.
func (d *Dispatcher) Stop() {
	d.closeDone()
}

// closeDone safely closes the done channel exactly once.
func (d *Dispatcher) closeDone() {
	d.doneOnce.Do(func() {
		close(d.done)
	})
}

// setFatalError stores the first fatal error and broadcasts it by
// closing done.
func (d *Dispatcher) setFatalError(err error) {
	d.errMu.Lock()

	if d.fatalErr == nil {
		d.fatalErr = err
	}

	d.errMu.Unlock()

	d.closeDone()
}

// Run consumes envelopes until the transport closes its channel, a
// fatal transport error arrives, Stop is called, or the context ends.
// It blocks; callers run it on its own goroutine.
func (d *Dispatcher) Run(
	ctx context.Context,
	envelopes <-chan message.Envelope,
	errs <-chan error,
) error {
	defer d.closeDone()
	defer d.log.Debug("Dispatch loop stopped")

	d.log.Debug("Dispatch loop started")

	for {
		select {
		case env, ok := <-envelopes:
			if !ok {
				d.log.Info("Transport closed")
				d.dispatchClosed()

				return nil
			}

			d.Dispatch(ctx, env)

		case err, ok := <-errs:
			if !ok {
				// Keep draining envelopes; the close signal arrives on
				// the envelope channel.
				d.log.Debug("Transport error channel closed")

				errs = nil

				continue
			}

			if err != nil {
				d.log.Error("Transport error", "error", err)
				d.setFatalError(err)

				return err
			}

		case <-d.done:
			d.log.Debug("Dispatch stop signal received")

			return nil

		case <-ctx.Done():
			d.log.Debug("Context cancelled in dispatch loop")

			return ctx.Err()
		}
	}
}

// Dispatch routes a single envelope. Safe to invoke concurrently for
// different envelopes; the transport may deliver on several worker
// goroutines.
func (d *Dispatcher) Dispatch(ctx context.Context, env message.Envelope) {
	switch payload := env.Payload.(type) {
	case message.UpdateAuthorizationState:
		d.auth.Handle(ctx, payload.State)

		return
	case *message.UpdateAuthorizationState:
		if payload != nil {
			d.auth.Handle(ctx, payload.State)

			return
		}
	}

	if env.ID == registry.DefaultID {
		d.dispatchDefault(env)

		return
	}

	slot, ok := d.reg.Take(env.ID)
	if !ok {
		// The caller stopped waiting, or this is a duplicate or late
		// delivery. Dropping it is the contract, not an error.
		d.log.Debug("Dropping envelope with no registered handler",
			"request_id", env.ID, "kind", env.Kind.String())

		return
	}

	d.invoke(slot, env)
}

// dispatchDefault routes an unsolicited envelope to the standing
// default subscriber. The slot is read, never removed. A missing
// callback is an absent capability, not an error.
func (d *Dispatcher) dispatchDefault(env message.Envelope) {
	slot := d.reg.Default()

	if env.IsError() {
		if slot.OnError == nil {
			d.log.Debug("No default error callback registered, dropping envelope")

			return
		}

		slot.OnError(env)

		return
	}

	if slot.OnResult == nil {
		d.log.Debug("No default update callback registered, dropping envelope")

		return
	}

	slot.OnResult(env)
}

// dispatchClosed fires the default slot's close callback exactly once.
// Only the current value is read; the default slot itself is never
// mutated by close dispatch.
func (d *Dispatcher) dispatchClosed() {
	d.closedOnce.Do(func() {
		if fn := d.reg.Default().OnClose; fn != nil {
			fn()
		}
	})
}

// invoke fires the callback matching the envelope kind on a claimed
// per-request slot.
func (d *Dispatcher) invoke(slot *registry.Slot, env message.Envelope) {
	if env.IsError() {
		if slot.OnError != nil {
			slot.OnError(env)
		}

		return
	}

	if slot.OnResult != nil {
		slot.OnResult(env)
	}
}
