package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/caseline/caseline/internal/model"
)

type EmailService struct {
	client     *resend.Client
	fromEmail  string
	staffEmail string
	appName    string
	isDev      bool
}

func NewEmailService(apiKey, fromEmail, staffEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		staffEmail: staffEmail,
		appName:    appName,
		isDev:      isDev,
	}
}

// SendSubmissionNotification emails the intake staff a plain-text digest of a
// freshly submitted timeline.
func (s *EmailService) SendSubmissionNotification(sub *model.TimelineSubmission) error {
	subject, body := submissionNotificationTemplate(sub, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "submission_notification", "to", s.staffEmail, "subject", subject)
		fmt.Println(body)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.staffEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "submission_notification", "to", s.staffEmail)
	}
	return err
}
