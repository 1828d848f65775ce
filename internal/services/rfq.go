package services

import (
	"context"

	"go.uber.org/zap"

	"chemical-leads-api/internal/config"
	"chemical-leads-api/internal/mail"
	"chemical-leads-api/internal/models"
	"chemical-leads-api/internal/validation"
	"chemical-leads-api/pkg/utils"
)

// RFQService relays requests for quote to the sales inbox as one email.
type RFQService struct {
	cfg    config.RFQMailConfig
	sender mail.Sender
}

func NewRFQService(cfg config.RFQMailConfig, sender mail.Sender) *RFQService {
	return &RFQService{cfg: cfg, sender: sender}
}

// Submit validates the request, checks every line item again on its own and
// sends a single notification. Send failures are not retried.
func (s *RFQService) Submit(ctx context.Context, in models.RFQRequest) error {
	req, err := validation.ValidateRFQ(in)
	if err != nil {
		zap.L().Info("rfq submission rejected", zap.Error(err))
		return err
	}

	var productErrors []validation.ProductError
	for i, item := range req.Products {
		if pe := validation.ValidateLineItem(i, item); pe != nil {
			productErrors = append(productErrors, *pe)
		}
	}
	if len(productErrors) > 0 {
		err := validation.NewProductsError(productErrors)
		zap.L().Info("rfq line items rejected", zap.Error(err))
		return err
	}

	phone := utils.DisplayPhone(req.CountryCode, req.Phone)

	if missing := s.cfg.Missing(); len(missing) > 0 {
		zap.L().Error("rfq email service not configured", zap.Strings("missing", missing))
		return &NotConfiguredError{Pipeline: "rfq", Missing: missing}
	}

	content, err := mail.RFQNotification(req, phone)
	if err != nil {
		return err
	}

	msg := mail.Message{
		From:    s.cfg.From,
		To:      s.cfg.To,
		ReplyTo: req.Email,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		zap.L().Error("rfq email failed", zap.Error(err))
		return &TransportError{Err: err}
	}

	zap.L().Info("rfq email sent", zap.Int("products", len(req.Products)))
	return nil
}
