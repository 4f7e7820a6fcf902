package mailer

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/cinettoyage/site-backend/pkg/logging"
)

// SMTPSender sends emails through an authenticated SMTP relay (Gmail in
// the default deployment). The sender identity is the authenticated
// account itself.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	logger   *logging.Logger

	mu     sync.Mutex
	dialer *gomail.Dialer
}

// SMTPConfig holds configuration for the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewSMTPSender creates an SMTP email sender. The relay connection is
// set up lazily on first send, so a sender can be constructed before
// credentials are known.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) *SMTPSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
	}
}

// getDialer returns the memoized dialer, building it on first use.
// Only a successful build is cached: if credentials are absent the
// error is returned and a later send retries once they are configured.
func (s *SMTPSender) getDialer() (*gomail.Dialer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dialer != nil {
		return s.dialer, nil
	}
	if s.username == "" || s.password == "" {
		return nil, ErrMissingCredentials
	}
	s.dialer = gomail.NewDialer(s.host, s.port, s.username, s.password)
	return s.dialer, nil
}

// Send sends an email through the relay and returns the Message-ID it
// assigned to the outgoing message.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	dialer, err := s.getDialer()
	if err != nil {
		return "", err
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)

	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)
	m.SetBody("text/html", msg.HTML)

	if err := dialer.DialAndSend(m); err != nil {
		s.logger.Error("smtp send failed", "error", err, "to", msg.To, "host", s.host)
		return "", fmt.Errorf("mailer: smtp send failed: %w", err)
	}

	s.logger.Info("email sent via smtp", "to", msg.To, "subject", msg.Subject, "message_id", id)
	return id, nil
}

var _ Sender = (*SMTPSender)(nil)
