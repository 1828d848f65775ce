package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"chemical-leads-api/internal/config"
	"chemical-leads-api/internal/mail"
	"chemical-leads-api/internal/models"
	"chemical-leads-api/internal/validation"
)

// ContactService relays contact inquiries: an internal notification to the
// sales inbox, then an acknowledgement to the sender.
type ContactService struct {
	cfg    config.ContactMailConfig
	sender mail.Sender
}

func NewContactService(cfg config.ContactMailConfig, sender mail.Sender) *ContactService {
	return &ContactService{cfg: cfg, sender: sender}
}

// Submit runs the contact pipeline. A filled honeypot returns nil without
// sending anything. The acknowledgement is only attempted after the
// notification was accepted, and either failure fails the whole submission.
func (s *ContactService) Submit(ctx context.Context, in models.ContactInquiry) error {
	if strings.TrimSpace(in.Website) != "" {
		zap.L().Info("contact honeypot tripped, discarding submission")
		return nil
	}

	if field := validation.MissingContactField(in); field != "" {
		zap.L().Info("contact submission rejected", zap.String("missing", field))
		return &MissingFieldError{Field: field}
	}

	inq, err := validation.ValidateContact(in)
	if err != nil {
		zap.L().Info("contact submission rejected", zap.Error(err))
		return err
	}

	if missing := s.cfg.Missing(); len(missing) > 0 {
		zap.L().Error("contact email service not configured", zap.Strings("missing", missing))
		return &NotConfiguredError{Pipeline: "contact", Missing: missing}
	}

	notification, err := mail.ContactNotification(inq)
	if err != nil {
		return err
	}
	ack, err := mail.ContactAcknowledgement(inq, s.cfg.Brand)
	if err != nil {
		return err
	}

	messages := []struct {
		kind string
		msg  mail.Message
	}{
		{"notification", mail.Message{
			From:    s.cfg.From,
			To:      s.cfg.To,
			ReplyTo: inq.Email,
			Subject: notification.Subject,
			Text:    notification.Text,
			HTML:    notification.HTML,
		}},
		{"acknowledgement", mail.Message{
			From:    s.cfg.From,
			To:      inq.Email,
			ReplyTo: s.cfg.To,
			Subject: ack.Subject,
			Text:    ack.Text,
			HTML:    ack.HTML,
		}},
	}

	for _, m := range messages {
		if err := s.sender.Send(ctx, m.msg); err != nil {
			zap.L().Error("contact email failed", zap.String("message", m.kind), zap.Error(err))
			return &TransportError{Err: err}
		}
		zap.L().Info("contact email sent", zap.String("message", m.kind))
	}
	return nil
}
