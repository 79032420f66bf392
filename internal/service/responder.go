package service

import "context"

// Responder produces the reply text for a chat message. A client for a
// real text-generation backend implements this interface when the
// scaffold is customized; until then the echo placeholder is wired in.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// EchoResponder is the placeholder Responder. It repeats the incoming
// message behind an "Echo: " prefix and never fails.
type EchoResponder struct{}

// NewEchoResponder creates a new echo responder
func NewEchoResponder() *EchoResponder {
	return &EchoResponder{}
}

// Respond returns the echoed message.
func (r *EchoResponder) Respond(_ context.Context, message string) (string, error) {
	return "Echo: " + message, nil
}
