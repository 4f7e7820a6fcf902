// Package mailer abstracts outbound email delivery. The intake handler
// only depends on the Sender interface; the concrete provider (Gmail
// SMTP relay or the SendGrid API) is chosen once at startup.
package mailer

import (
	"context"

	"github.com/google/uuid"

	"github.com/cinettoyage/site-backend/pkg/logging"
)

// Sender delivers a rendered email and returns the provider message ID.
// Implementations can be swapped (SMTP, SendGrid) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents an email to be sent.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// StubSender logs instead of sending. It keeps local development and
// tests working when no provider is configured.
type StubSender struct {
	logger *logging.Logger
}

// NewStubSender creates a stub sender that logs but doesn't send.
func NewStubSender(logger *logging.Logger) *StubSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSender{logger: logger}
}

// Send logs the email and returns a generated message ID.
func (s *StubSender) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	s.logger.Info("stub sender: would send email", "to", msg.To, "subject", msg.Subject, "message_id", id)
	return id, nil
}

var _ Sender = (*StubSender)(nil)
