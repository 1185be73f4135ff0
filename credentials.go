package tdclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ReaderCredentialSource collects credentials by prompting on a writer
// and reading lines from a reader, typically os.Stdout and os.Stdin.
//
// Reads are serialized: the authorization handshake asks for one value
// at a time, but the source stays correct even if it ever does not.
type ReaderCredentialSource struct {
	mu sync.Mutex
	r  *bufio.Reader
	w  io.Writer
}

// Compile-time check that *ReaderCredentialSource implements CredentialSource.
var _ CredentialSource = (*ReaderCredentialSource)(nil)

// NewReaderCredentialSource creates a credential source reading from r
// and prompting on w.
func NewReaderCredentialSource(r io.Reader, w io.Writer) *ReaderCredentialSource {
	return &ReaderCredentialSource{r: bufio.NewReader(r), w: w}
}

// OnWaitPhoneNumber prompts for a phone number and submits it through
// the sender.
func (s *ReaderCredentialSource) OnWaitPhoneNumber(ctx context.Context, sender Sender) {
	phone, err := s.readLine(ctx, "Insert your phone number: ")
	if err != nil {
		return
	}

	sender.Send(ctx, SetPhoneNumber{PhoneNumber: phone})
}

// Code prompts for the one-time authentication code.
func (s *ReaderCredentialSource) Code(ctx context.Context) (string, error) {
	return s.readLine(ctx, "Insert your code: ")
}

// Password prompts for the two-step verification password.
func (s *ReaderCredentialSource) Password(ctx context.Context) (string, error) {
	return s.readLine(ctx, "Insert your password: ")
}

// readLine prints the prompt and reads one trimmed line. The context
// is checked before prompting; the read itself is a plain blocking
// read, which is why the state machine runs credential steps off the
// dispatch goroutine.
func (s *ReaderCredentialSource) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprint(s.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read credential: %w", err)
	}

	return strings.TrimSpace(line), nil
}
