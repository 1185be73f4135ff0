package message

import "fmt"

// Kind discriminates the two classes of payload an envelope can carry.
type Kind int

const (
	// KindResult marks a success payload: a response to a request or a
	// general update pushed by the transport.
	KindResult Kind = iota

	// KindError marks an error payload reported by the transport. The
	// payload contents are opaque to this package; errors are routed to
	// error callbacks, never interpreted.
	KindError
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Envelope is one inbound unit of data delivered on the transport's
// single multiplexed channel.
//
// ID links the envelope back to the request that produced it. ID 0 is
// reserved for unsolicited notifications that correspond to no specific
// outstanding request.
type Envelope struct {
	// ID is the correlation identifier the request was tagged with.
	ID uint64

	// Kind tells whether Payload is a success or an error payload.
	Kind Kind

	// Payload is the transport's object. Opaque to the correlation
	// layer, with one exception: UpdateAuthorizationState payloads are
	// recognized by the dispatcher and routed to the authorization
	// state machine instead of the callback registry.
	Payload any
}

// IsError reports whether the envelope carries an error payload.
func (e Envelope) IsError() bool {
	return e.Kind == KindError
}
