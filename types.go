package tdclient

import (
	"github.com/wagiedev/tdlib-client-go/internal/config"
	"github.com/wagiedev/tdlib-client-go/internal/message"
)

// Re-export core types from internal packages.

// Envelope is one inbound unit of data from the transport: a response,
// an error, or an unsolicited update.
type Envelope = message.Envelope

// Kind discriminates success and error payloads.
type Kind = message.Kind

const (
	// KindResult marks a success payload.
	KindResult = message.KindResult

	// KindError marks an error payload.
	KindError = message.KindError
)

// AuthorizationState enumerates the setup states of the underlying
// instance.
type AuthorizationState = message.AuthorizationState

const (
	// AuthorizationStateUnknown covers unrecognized state values.
	AuthorizationStateUnknown = message.AuthorizationStateUnknown

	// AuthorizationStateWaitParameters waits for setup parameters.
	AuthorizationStateWaitParameters = message.AuthorizationStateWaitParameters

	// AuthorizationStateWaitEncryptionKey waits for the key check.
	AuthorizationStateWaitEncryptionKey = message.AuthorizationStateWaitEncryptionKey

	// AuthorizationStateWaitPhoneNumber waits for a phone number.
	AuthorizationStateWaitPhoneNumber = message.AuthorizationStateWaitPhoneNumber

	// AuthorizationStateWaitCode waits for the one-time code.
	AuthorizationStateWaitCode = message.AuthorizationStateWaitCode

	// AuthorizationStateWaitPassword waits for the password.
	AuthorizationStateWaitPassword = message.AuthorizationStateWaitPassword

	// AuthorizationStateReady is the terminal, usable state.
	AuthorizationStateReady = message.AuthorizationStateReady
)

// UpdateAuthorizationState is the unsolicited notification announcing
// an authorization state change. Transports deliver it as an envelope
// payload; the client routes it to its internal state machine.
type UpdateAuthorizationState = message.UpdateAuthorizationState

// Request payloads emitted during the authorization handshake.
type (
	// SetParameters configures the underlying instance.
	SetParameters = message.SetParameters

	// CheckEncryptionKey checks the database encryption key.
	CheckEncryptionKey = message.CheckEncryptionKey

	// SetPhoneNumber supplies the login phone number.
	SetPhoneNumber = message.SetPhoneNumber

	// CheckCode supplies the one-time authentication code.
	CheckCode = message.CheckCode

	// CheckPassword supplies the two-step verification password.
	CheckPassword = message.CheckPassword
)

// Transport is the injected boundary to the underlying messaging
// actor.
type Transport = config.Transport

// Sender is the minimal sending surface handed to credential sources.
type Sender = config.Sender

// CredentialSource supplies interactive login credentials during the
// authorization handshake.
type CredentialSource = config.CredentialSource

// Parameters holds the setup values sent during the handshake.
type Parameters = config.Parameters

// DefaultParameters returns the parameter defaults used when nothing
// is configured. APIID and APIHash must still be supplied.
func DefaultParameters() Parameters {
	return config.DefaultParameters()
}
