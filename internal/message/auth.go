package message

import "fmt"

// AuthorizationState enumerates the setup states the underlying
// instance walks through before it is usable for general requests.
//
// Transitions are driven entirely by inbound UpdateAuthorizationState
// notifications; the client never changes state on its own.
type AuthorizationState int

const (
	// AuthorizationStateUnknown covers state values this version does
	// not recognize. Unknown states are ignored for forward
	// compatibility.
	AuthorizationStateUnknown AuthorizationState = iota

	// AuthorizationStateWaitParameters means the instance is waiting
	// for its setup parameters.
	AuthorizationStateWaitParameters

	// AuthorizationStateWaitEncryptionKey means the instance is waiting
	// for its database encryption key to be checked.
	AuthorizationStateWaitEncryptionKey

	// AuthorizationStateWaitPhoneNumber means the instance is waiting
	// for a phone number (or equivalent login credential).
	AuthorizationStateWaitPhoneNumber

	// AuthorizationStateWaitCode means the instance is waiting for the
	// one-time authentication code.
	AuthorizationStateWaitCode

	// AuthorizationStateWaitPassword means the instance is waiting for
	// the two-step verification password.
	AuthorizationStateWaitPassword

	// AuthorizationStateReady means the handshake completed and general
	// requests may be issued.
	AuthorizationStateReady
)

// String returns a human-readable name for the state.
func (s AuthorizationState) String() string {
	switch s {
	case AuthorizationStateWaitParameters:
		return "wait_parameters"
	case AuthorizationStateWaitEncryptionKey:
		return "wait_encryption_key"
	case AuthorizationStateWaitPhoneNumber:
		return "wait_phone_number"
	case AuthorizationStateWaitCode:
		return "wait_code"
	case AuthorizationStateWaitPassword:
		return "wait_password"
	case AuthorizationStateReady:
		return "ready"
	default:
		return fmt.Sprintf("authorization_state(%d)", int(s))
	}
}

// UpdateAuthorizationState is the unsolicited notification the
// transport emits whenever the authorization state changes. The
// dispatcher routes it to the authorization state machine; it never
// reaches the callback registry, regardless of the envelope's ID.
type UpdateAuthorizationState struct {
	State AuthorizationState
}
