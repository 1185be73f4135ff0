// Package config provides configuration types for the client SDK.
package config

import (
	"context"

	"github.com/wagiedev/tdlib-client-go/internal/message"
)

// Transport defines the interface to the underlying messaging actor.
// Implement this to bridge the client to a real instance, or to inject
// a fake for testing.
//
// The transport owns its own delivery goroutines; envelopes may be
// produced concurrently.
type Transport interface {
	// Submit hands a request tagged with a correlation identifier to
	// the actor. Fire-and-forget: it must not block waiting for the
	// response. This method must be safe for concurrent use.
	Submit(ctx context.Context, id uint64, req any) error

	// Updates returns channels for receiving envelopes and transport
	// errors. Closing the envelope channel is the transport's close
	// signal; after it no further envelopes are delivered.
	Updates(ctx context.Context) (<-chan message.Envelope, <-chan error)

	// Close signals the actor to terminate. It does not wait for the
	// close signal to be delivered. Safe to call multiple times.
	Close() error
}

// Sender is the minimal sending surface handed to collaborators that
// need to issue requests of their own, such as credential sources.
type Sender interface {
	// Send allocates a correlation identifier, submits the request and
	// returns the identifier. Fire-and-forget: any eventual response is
	// dropped unless a callback was registered separately.
	Send(ctx context.Context, req any) uint64
}

// CredentialSource supplies interactive login credentials during the
// authorization handshake. Implementations decide the input medium:
// console, UI, network, or fixed test values.
type CredentialSource interface {
	// OnWaitPhoneNumber is invoked when the instance asks for a phone
	// number. The source drives itself: it is expected to call back
	// into the sender (for example with a SetPhoneNumber request) and
	// must not assume it runs on any particular goroutine.
	OnWaitPhoneNumber(ctx context.Context, sender Sender)

	// Code returns the one-time authentication code.
	Code(ctx context.Context) (string, error)

	// Password returns the two-step verification password.
	Password(ctx context.Context) (string, error)
}
