package tdclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport walks the authorization handshake: each setup
// request it receives triggers the next authorization state.
type scriptedTransport struct {
	mu        sync.Mutex
	submitted []any

	envelopes chan Envelope
	errs      chan error
	closeOnce sync.Once
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{
		envelopes: make(chan Envelope, 100),
		errs:      make(chan error, 1),
	}
}

func (t *scriptedTransport) Submit(_ context.Context, id uint64, req any) error {
	t.mu.Lock()
	t.submitted = append(t.submitted, req)
	t.mu.Unlock()

	switch r := req.(type) {
	case SetParameters:
		t.pushState(AuthorizationStateWaitEncryptionKey)
	case CheckEncryptionKey:
		t.pushState(AuthorizationStateWaitPhoneNumber)
	case SetPhoneNumber:
		t.pushState(AuthorizationStateWaitCode)
	case CheckCode:
		t.pushState(AuthorizationStateWaitPassword)
	case CheckPassword:
		t.pushState(AuthorizationStateReady)
	case string:
		// General requests are echoed back as their own response.
		t.envelopes <- Envelope{ID: id, Kind: KindResult, Payload: "echo:" + r}
	}

	return nil
}

func (t *scriptedTransport) pushState(state AuthorizationState) {
	t.envelopes <- Envelope{Payload: UpdateAuthorizationState{State: state}}
}

func (t *scriptedTransport) Updates(context.Context) (<-chan Envelope, <-chan error) {
	return t.envelopes, t.errs
}

func (t *scriptedTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.envelopes)
	})

	return nil
}

func (t *scriptedTransport) requests() []any {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]any, len(t.submitted))
	copy(result, t.submitted)

	return result
}

// fixedCredentials supplies canned values without any prompting.
type fixedCredentials struct {
	phone    string
	code     string
	password string
}

func (c *fixedCredentials) OnWaitPhoneNumber(ctx context.Context, sender Sender) {
	sender.Send(ctx, SetPhoneNumber{PhoneNumber: c.phone})
}

func (c *fixedCredentials) Code(context.Context) (string, error) {
	return c.code, nil
}

func (c *fixedCredentials) Password(context.Context) (string, error) {
	return c.password, nil
}

func TestClient_FullHandshakeAndCall(t *testing.T) {
	transport := newScriptedTransport()
	client := New(transport,
		WithAPICredentials(94575, "test-hash"),
		WithDatabaseDirectory(t.TempDir()),
		WithCredentials(&fixedCredentials{phone: "+15550100", code: "12345", password: "hunter2"}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.Start(ctx))

	// Kick off the handshake the way the actor does.
	transport.pushState(AuthorizationStateWaitParameters)

	require.NoError(t, client.WaitReady(ctx))

	env, err := client.Execute(ctx, "getMe")
	require.NoError(t, err)
	assert.Equal(t, "echo:getMe", env.Payload)

	// The handshake emitted each setup request exactly once, in order.
	reqs := transport.requests()
	require.Len(t, reqs, 6)

	params, ok := reqs[0].(SetParameters)
	require.True(t, ok)
	assert.Equal(t, int32(94575), params.APIID)

	assert.IsType(t, CheckEncryptionKey{}, reqs[1])
	assert.Equal(t, SetPhoneNumber{PhoneNumber: "+15550100"}, reqs[2])
	assert.Equal(t, CheckCode{Code: "12345"}, reqs[3])
	assert.Equal(t, CheckPassword{Password: "hunter2"}, reqs[4])
	assert.Equal(t, "getMe", reqs[5])
}

func TestClient_DefaultCallbacks_MergeAcrossSetters(t *testing.T) {
	transport := newScriptedTransport()
	client := New(transport, WithCredentials(&fixedCredentials{}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.Start(ctx))

	updates := make(chan Envelope, 4)
	errs := make(chan Envelope, 4)

	client.SetUpdateCallback(func(env Envelope) { updates <- env })
	client.SetErrorCallback(func(env Envelope) { errs <- env })

	// Setting the error callback must not have cleared the update one,
	// and vice versa.
	transport.envelopes <- Envelope{ID: 0, Kind: KindResult, Payload: "update"}
	transport.envelopes <- Envelope{ID: 0, Kind: KindError, Payload: "error"}

	select {
	case env := <-updates:
		assert.Equal(t, "update", env.Payload)
	case <-time.After(time.Second):
		t.Fatal("default update callback did not fire")
	}

	select {
	case env := <-errs:
		assert.Equal(t, "error", env.Payload)
	case <-time.After(time.Second):
		t.Fatal("default error callback did not fire")
	}

	require.NoError(t, client.Close())
}

func TestClient_CloseCallback_FiredOnTransportClose(t *testing.T) {
	transport := newScriptedTransport()
	client := New(transport)

	ctx := context.Background()
	require.NoError(t, client.Start(ctx))

	closed := make(chan struct{})

	client.SetCloseCallback(func() { close(closed) })

	require.NoError(t, client.Close())

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("close callback did not fire")
	}

	require.NoError(t, client.Wait())
}
