// Package auth drives the authorization handshake of the underlying
// instance.
//
// The machine is purely reactive: each inbound authorization state
// causes exactly one outbound request or one delegation to the
// credential source, and nothing else triggers a transition. The only
// local state is the readiness latch flipped by the terminal state.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wagiedev/tdlib-client-go/internal/config"
	"github.com/wagiedev/tdlib-client-go/internal/message"
)

// Machine reacts to authorization state updates by issuing the next
// setup request. It must be safe to call from the dispatch goroutine;
// states that need interactive input are handled on worker goroutines
// so the notification loop can never deadlock on user input.
type Machine struct {
	log    *slog.Logger
	sender config.Sender
	params config.Parameters
	creds  config.CredentialSource

	readyOnce sync.Once
	ready     chan struct{}

	wg sync.WaitGroup
}

// NewMachine creates a machine. creds may be nil, in which case the
// interactive states are skipped with a warning.
func NewMachine(
	log *slog.Logger,
	sender config.Sender,
	params config.Parameters,
	creds config.CredentialSource,
) *Machine {
	return &Machine{
		log:    log.With("component", "auth"),
		sender: sender,
		params: params,
		creds:  creds,
		ready:  make(chan struct{}),
	}
}

// Ready returns a channel that is closed once the handshake reaches
// its terminal state. There is no reset: the instance's lifecycle is
// one-shot, and so is the latch.
func (m *Machine) Ready() <-chan struct{} {
	return m.ready
}

// Handle processes one inbound authorization state.
func (m *Machine) Handle(ctx context.Context, state message.AuthorizationState) {
	m.log.Debug("Handling authorization state", "state", state.String())

	switch state {
	case message.AuthorizationStateWaitParameters:
		m.sender.Send(ctx, message.SetParameters{
			DatabaseDirectory:      m.params.DatabaseDirectory,
			UseMessageDatabase:     m.params.UseMessageDatabase,
			UseSecretChats:         m.params.UseSecretChats,
			APIID:                  m.params.APIID,
			APIHash:                m.params.APIHash,
			SystemLanguageCode:     m.params.SystemLanguageCode,
			DeviceModel:            m.params.DeviceModel,
			SystemVersion:          m.params.SystemVersion,
			ApplicationVersion:     m.params.ApplicationVersion,
			EnableStorageOptimizer: m.params.EnableStorageOptimizer,
		})

	case message.AuthorizationStateWaitEncryptionKey:
		m.sender.Send(ctx, message.CheckEncryptionKey{})

	case message.AuthorizationStateWaitPhoneNumber:
		m.delegate(ctx, state, func(ctx context.Context) {
			m.creds.OnWaitPhoneNumber(ctx, m.sender)
		})

	case message.AuthorizationStateWaitCode:
		m.delegate(ctx, state, func(ctx context.Context) {
			code, err := m.creds.Code(ctx)
			if err != nil {
				m.log.Warn("Credential source failed to provide code", "error", err)

				return
			}

			m.sender.Send(ctx, message.CheckCode{Code: code})
		})

	case message.AuthorizationStateWaitPassword:
		m.delegate(ctx, state, func(ctx context.Context) {
			password, err := m.creds.Password(ctx)
			if err != nil {
				m.log.Warn("Credential source failed to provide password", "error", err)

				return
			}

			m.sender.Send(ctx, message.CheckPassword{Password: password})
		})

	case message.AuthorizationStateReady:
		m.log.Info("Authorization complete")
		m.readyOnce.Do(func() {
			close(m.ready)
		})

	default:
		// Unknown states are ignored for forward compatibility.
		m.log.Debug("Ignoring unknown authorization state", "state", state.String())
	}
}

// delegate runs a credential-collecting step on its own goroutine.
// Credential sources may block on interactive input; running them on
// the dispatch goroutine would stall every subsequent notification.
func (m *Machine) delegate(ctx context.Context, state message.AuthorizationState, fn func(ctx context.Context)) {
	if m.creds == nil {
		m.log.Warn("No credential source configured, skipping authorization state",
			"state", state.String())

		return
	}

	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		fn(ctx)
	}()
}

// Wait blocks until all in-flight credential steps have finished.
func (m *Machine) Wait() {
	m.wg.Wait()
}
