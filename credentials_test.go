package tdclient

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	sent []any
}

func (s *captureSender) Send(_ context.Context, req any) uint64 {
	s.sent = append(s.sent, req)

	return uint64(len(s.sent))
}

func TestReaderCredentialSource_PromptsAndReads(t *testing.T) {
	in := strings.NewReader("12345\nhunter2\n")
	out := &strings.Builder{}

	source := NewReaderCredentialSource(in, out)

	ctx := context.Background()

	code, err := source.Code(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12345", code)

	password, err := source.Password(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)

	assert.Contains(t, out.String(), "Insert your code: ")
	assert.Contains(t, out.String(), "Insert your password: ")
}

func TestReaderCredentialSource_PhoneNumberSentThroughSender(t *testing.T) {
	in := strings.NewReader("+15550100\n")
	out := &strings.Builder{}

	source := NewReaderCredentialSource(in, out)
	sender := &captureSender{}

	source.OnWaitPhoneNumber(context.Background(), sender)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, SetPhoneNumber{PhoneNumber: "+15550100"}, sender.sent[0])
}

func TestReaderCredentialSource_LastLineWithoutNewline(t *testing.T) {
	source := NewReaderCredentialSource(strings.NewReader("12345"), &strings.Builder{})

	code, err := source.Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12345", code)
}

func TestReaderCredentialSource_CancelledContext(t *testing.T) {
	source := NewReaderCredentialSource(strings.NewReader("12345\n"), &strings.Builder{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Code(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
