// Package mail delivers lead notifications over SMTP and renders their bodies.
package mail

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Message is one outbound email. Text and HTML are alternative bodies of the
// same content.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a message atomically: it either returns nil or the
// message was not accepted.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig is the connection and credential set for one SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender sends through gomail. A new connection is dialed per message.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	return errors.Wrap(s.dialer.DialAndSend(m), "smtp send")
}
