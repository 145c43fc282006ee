// Package mailer sends templated HTML email through an SMTP transport.
package mailer

import (
	"fmt"
	"strings"

	"fintrack/internal/config"
	"fintrack/internal/uuid"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound mail transport. Send delivers a single HTML
// message and returns its Message-ID. There is no queueing or retry:
// a failed send is the caller's problem.
type Mailer interface {
	Send(to, subject, htmlBody string) (messageID string, err error)
}

// SMTPMailer sends mail through a plain SMTP server using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer from the application SMTP configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers one HTML message. The Message-ID is generated locally so it
// can be returned to the caller regardless of what the server reports.
func (m *SMTPMailer) Send(to, subject, htmlBody string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.New(), messageIDDomain(m.from))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return messageID, nil
}

func messageIDDomain(from string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return strings.TrimSuffix(from[i+1:], ">")
	}
	return "fintrack.local"
}
