package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ISender defines the interface for sending rendered emails.
type ISender interface {
	Send(ctx context.Context, email Email) error
}

// SenderConfig holds SMTP configuration.
type SenderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	cfg SenderConfig
}

var ErrSenderHostRequired = errors.New("email: SMTP host is required")

// NewSender creates an SMTP sender. Returns the interface.
func NewSender(cfg SenderConfig) (ISender, error) {
	if cfg.Host == "" {
		return nil, ErrSenderHostRequired
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	return &smtpSender{cfg: cfg}, nil
}

// Send delivers the email over SMTP. The context is checked before dialing;
// net/smtp does not support mid-send cancellation.
func (s *smtpSender) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := append([]string{email.Recipient}, email.CC...)
	msg := s.buildMessage(email)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *smtpSender) buildMessage(email Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", email.Recipient)
	if len(email.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(email.CC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	return []byte(b.String())
}
