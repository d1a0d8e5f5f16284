package service

import (
	"context"
	"fmt"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed notifier. With an empty API key
// the service logs and drops every message, which keeps local development
// working without an account.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	if s.apiKey == "" {
		logger.Debug("Email sending disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendAccountStatusNotification(ctx context.Context, email, name string, status domain.UserStatus) error {
	subject := "Your DonorLink account status has changed"
	body := fmt.Sprintf("Hello %s,\n\nYour account status has been updated to: %s.", name, status)
	if status == domain.UserStatusActive {
		body += "\n\nYou can now log in and start using the platform."
	}
	body += "\n\nBest regards,\nThe DonorLink Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendClaimNotification(ctx context.Context, donorEmail, donorName, ngoName, donationName string) error {
	subject := fmt.Sprintf("Your donation %q has been claimed", donationName)
	body := fmt.Sprintf("Hello %s,\n\n%s has claimed your donation %q and will arrange the delivery.\n\nBest regards,\nThe DonorLink Team", donorName, ngoName, donationName)
	return s.send(donorEmail, donorName, subject, body)
}
