package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"velvetden-backend/internal/config"
	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/storage"
)

type sendGridEmailService struct {
	client       *sendgrid.Client
	fromAddress  string
	fromName     string
	adminAddress string
	frontendURL  string
	files        storage.FileStorage
}

func NewEmailService(cfg config.EmailConfig, files storage.FileStorage) EmailService {
	return &sendGridEmailService{
		client:       sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromAddress:  cfg.FromAddress,
		fromName:     cfg.FromName,
		adminAddress: cfg.AdminAddress,
		frontendURL:  cfg.FrontendURL,
		files:        files,
	}
}

func (s *sendGridEmailService) SendRegistrationNotification(ctx context.Context, user *domain.User) error {
	subject := fmt.Sprintf("New registration awaiting review: %s %s", user.FirstName, user.LastName)
	approveURL := fmt.Sprintf("%s/admin/users/%d?action=approve", s.frontendURL, user.ID)
	rejectURL := fmt.Sprintf("%s/admin/users/%d?action=reject", s.frontendURL, user.ID)

	plain := fmt.Sprintf(
		"%s %s (%s) registered and is awaiting review.\n\nApprove: %s\nReject: %s\n",
		user.FirstName, user.LastName, user.Email, approveURL, rejectURL,
	)
	html := fmt.Sprintf(
		`<p><strong>%s %s</strong> (%s) registered and is awaiting review.</p>
<p>The verification picture is attached.</p>
<p><a href="%s">Approve</a> | <a href="%s">Reject</a></p>`,
		user.FirstName, user.LastName, user.Email, approveURL, rejectURL,
	)

	from := mail.NewEmail(s.fromName, s.fromAddress)
	to := mail.NewEmail("Admin", s.adminAddress)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	if att := s.verificationAttachment(user); att != nil {
		message.AddAttachment(att)
	}

	return s.send(ctx, "registration_notification", message)
}

func (s *sendGridEmailService) SendStatusNotification(ctx context.Context, user *domain.User) error {
	var subject, body string
	switch user.Status {
	case domain.UserStatusApproved:
		subject = "Your account has been approved"
		body = fmt.Sprintf("Hi %s,\n\nYour account has been approved. You can now book a space for upcoming events.\n\n%s\n", user.FirstName, s.frontendURL)
	case domain.UserStatusRejected:
		subject = "Your registration was not approved"
		body = fmt.Sprintf("Hi %s,\n\nUnfortunately your registration was not approved.\n", user.FirstName)
	case domain.UserStatusPictureRequested:
		subject = "A new verification picture is needed"
		body = fmt.Sprintf("Hi %s,\n\nWe could not verify your identity from the picture you uploaded. Please sign in and upload a new one.\n\n%s/profile\n", user.FirstName, s.frontendURL)
	default:
		// IN_REVIEW and friends produce no outbound mail.
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromAddress)
	to := mail.NewEmail(user.FirstName+" "+user.LastName, user.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "<p>"+body+"</p>")

	return s.send(ctx, "status_notification", message)
}

func (s *sendGridEmailService) SendEventReminder(ctx context.Context, email, firstName, city string, dateTime time.Time, spaceName string) error {
	subject := fmt.Sprintf("Reminder: %s event on %s", city, dateTime.Format("Jan 2"))
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that the %s event starts at %s. Your space is %s.\n\nSee you there!\n",
		firstName, city, dateTime.Format("Mon, Jan 2 at 15:04"), spaceName,
	)

	from := mail.NewEmail(s.fromName, s.fromAddress)
	to := mail.NewEmail(firstName, email)
	message := mail.NewSingleEmail(from, subject, to, body, "<p>"+body+"</p>")

	return s.send(ctx, "event_reminder", message)
}

// verificationAttachment loads the user's verification image; a missing or
// unreadable file just means the mail goes out without it.
func (s *sendGridEmailService) verificationAttachment(user *domain.User) *mail.Attachment {
	if s.files == nil || user.VerificationImagePath == "" {
		return nil
	}
	f, err := s.files.Open(user.VerificationImagePath)
	if err != nil {
		logger.Warn("Could not attach verification image", "path", user.VerificationImagePath, "error", err)
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		logger.Warn("Could not read verification image", "path", user.VerificationImagePath, "error", err)
		return nil
	}

	att := mail.NewAttachment()
	att.SetContent(base64.StdEncoding.EncodeToString(data))
	att.SetType(storage.ContentTypeForFile(user.VerificationImagePath))
	att.SetFilename(filepath.Base(user.VerificationImagePath))
	att.SetDisposition("attachment")
	return att
}

func (s *sendGridEmailService) send(ctx context.Context, operation string, message *mail.SGMailV3) error {
	logger.ExternalServiceCall("sendgrid", operation)
	response, err := s.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", operation, err)
	return err
}
