package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lankadrive-backend/internal/config"
	"lankadrive-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns the SendGrid-backed email service, or a no-op
// sender when no API key is configured so a dev setup works without one.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("no sendgrid api key configured, emails will be logged only")
		return &noopEmailService{}
	}
	return &sendGridEmailService{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error {
	logger.ExternalServiceCall("sendgrid", "Send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", toEmail)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", toEmail)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", toEmail)
	return nil
}

func (s *sendGridEmailService) SendInquiryReceivedNotification(ctx context.Context, adminEmail, customerName, carName, pickupDate, returnDate string) error {
	subject := fmt.Sprintf("New booking inquiry: %s", carName)
	plainText := fmt.Sprintf(
		"%s sent a booking inquiry for %s, %s to %s. Review it in the admin dashboard.",
		customerName, carName, pickupDate, returnDate,
	)
	htmlContent := fmt.Sprintf(
		"<p><strong>%s</strong> sent a booking inquiry for <strong>%s</strong>, %s to %s.</p><p>Review it in the admin dashboard.</p>",
		customerName, carName, pickupDate, returnDate,
	)
	return s.send(ctx, adminEmail, "", subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendBookingConfirmedNotification(ctx context.Context, customerEmail, customerName, carName, pickupDate, returnDate string) error {
	subject := fmt.Sprintf("Your booking for %s is confirmed", carName)
	plainText := fmt.Sprintf(
		"Hi %s, your booking for %s from %s to %s is confirmed. See you at pickup!",
		customerName, carName, pickupDate, returnDate,
	)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking for <strong>%s</strong> from %s to %s is confirmed. See you at pickup!</p>",
		customerName, carName, pickupDate, returnDate,
	)
	return s.send(ctx, customerEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendBookingCanceledNotification(ctx context.Context, customerEmail, customerName, carName string) error {
	subject := fmt.Sprintf("Your booking for %s was canceled", carName)
	plainText := fmt.Sprintf(
		"Hi %s, your booking for %s has been canceled. Contact us if this is unexpected.",
		customerName, carName,
	)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking for <strong>%s</strong> has been canceled. Contact us if this is unexpected.</p>",
		customerName, carName,
	)
	return s.send(ctx, customerEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendPendingInquiryReminder(ctx context.Context, adminEmail string, pendingCount int32) error {
	subject := fmt.Sprintf("%d booking inquiries awaiting review", pendingCount)
	plainText := fmt.Sprintf(
		"There are %d pending booking inquiries in the admin dashboard.",
		pendingCount,
	)
	htmlContent := fmt.Sprintf(
		"<p>There are <strong>%d</strong> pending booking inquiries in the admin dashboard.</p>",
		pendingCount,
	)
	return s.send(ctx, adminEmail, "", subject, plainText, htmlContent)
}

// noopEmailService logs instead of sending.
type noopEmailService struct{}

func (n *noopEmailService) SendInquiryReceivedNotification(ctx context.Context, adminEmail, customerName, carName, pickupDate, returnDate string) error {
	logger.Info("email skipped: inquiry received", "to", adminEmail, "car", carName)
	return nil
}

func (n *noopEmailService) SendBookingConfirmedNotification(ctx context.Context, customerEmail, customerName, carName, pickupDate, returnDate string) error {
	logger.Info("email skipped: booking confirmed", "to", customerEmail, "car", carName)
	return nil
}

func (n *noopEmailService) SendBookingCanceledNotification(ctx context.Context, customerEmail, customerName, carName string) error {
	logger.Info("email skipped: booking canceled", "to", customerEmail, "car", carName)
	return nil
}

func (n *noopEmailService) SendPendingInquiryReminder(ctx context.Context, adminEmail string, pendingCount int32) error {
	logger.Info("email skipped: pending reminder", "to", adminEmail, "count", pendingCount)
	return nil
}
