package service

import (
	"context"
	"fmt"

	"equiprent-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	recipient := sgmail.NewEmail(toName, to)
	message := sgmail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("Email send failed", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		logger.Error("Email rejected by sendgrid", "to", to, "subject", subject, "status", response.StatusCode)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

func (s *emailService) SendRequestReceived(ctx context.Context, email, name, reference string, estimateCents int32) error {
	subject := fmt.Sprintf("We received your rental request %s", reference)
	body := fmt.Sprintf("Hello %s,\n\nYour rental request %s has been received and is awaiting review.\nEstimated cost: $%.2f.\n\nWe will notify you once an inspector has reviewed it.\n\nBest regards,\nThe EquipRent Team", name, reference, float64(estimateCents)/100)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendRequestApproved(ctx context.Context, email, name, reference string) error {
	subject := fmt.Sprintf("Rental request %s approved", reference)
	body := fmt.Sprintf("Hello %s,\n\nGood news: your rental request %s has been approved.\nOur team will contact you to arrange handover.\n\nBest regards,\nThe EquipRent Team", name, reference)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendRequestRejected(ctx context.Context, email, name, reference, reason string) error {
	subject := fmt.Sprintf("Rental request %s rejected", reference)
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your rental request %s was rejected.", name, reference)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe EquipRent Team"
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendRequestCompleted(ctx context.Context, email, name, reference string) error {
	subject := fmt.Sprintf("Rental %s completed", reference)
	body := fmt.Sprintf("Hello %s,\n\nYour rental %s is now completed. Thank you for renting with us.\n\nBest regards,\nThe EquipRent Team", name, reference)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendPendingReminder(ctx context.Context, email, name string, pendingCount int32) error {
	subject := "Rental requests awaiting review"
	body := fmt.Sprintf("Hello %s,\n\nThere are %d rental requests awaiting review.\n\nBest regards,\nThe EquipRent Team", name, pendingCount)
	return s.send(ctx, email, name, subject, body)
}
