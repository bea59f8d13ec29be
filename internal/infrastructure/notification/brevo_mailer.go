package notification

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"gmcl_backoffice/internal/usecase/interfaces"

	brevo "github.com/getbrevo/brevo-go/lib"
)

var ErrMissingBrevoAPIKey = errors.New("missing BREVO_API_KEY")
var ErrMailerNotConfigured = errors.New("mailer not configured")

// BrevoMailer sends transactional email through the Brevo API.
//
// The API key and sender identity are fixed at construction; nothing on the
// shared client is mutated per call.
type BrevoMailer struct {
	client      *brevo.APIClient
	senderName  string
	senderEmail string
	mockMode    bool
}

var _ interfaces.IMailer = (*BrevoMailer)(nil)

func NewBrevoMailer(apiKey, senderName, senderEmail string) (*BrevoMailer, error) {
	if isMailerMockEnabled() {
		log.Printf("[mail][brevo] mock mode enabled")
		return &BrevoMailer{mockMode: true, senderName: senderName, senderEmail: senderEmail}, nil
	}

	if apiKey == "" {
		log.Printf("[mail][brevo] missing BREVO_API_KEY")
		return nil, ErrMissingBrevoAPIKey
	}

	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	log.Printf("[mail][brevo] client initialized sender=%s", senderEmail)

	return &BrevoMailer{
		client:      brevo.NewAPIClient(cfg),
		senderName:  senderName,
		senderEmail: senderEmail,
	}, nil
}

func (m *BrevoMailer) SendEmail(ctx context.Context, email interfaces.Email) (string, error) {
	if m != nil && m.mockMode {
		log.Printf("[mail][brevo] mock send to=%d subject=%q", len(email.Recipients), email.Subject)
		return "mock", nil
	}
	if m == nil || m.client == nil {
		return "", ErrMailerNotConfigured
	}

	to := make([]brevo.SendSmtpEmailTo, 0, len(email.Recipients))
	for _, rcpt := range email.Recipients {
		to = append(to, brevo.SendSmtpEmailTo{Email: rcpt.Email, Name: rcpt.Name})
	}

	msg := brevo.SendSmtpEmail{
		Sender: &brevo.SendSmtpEmailSender{
			Name:  m.senderName,
			Email: m.senderEmail,
		},
		To:          to,
		Subject:     email.Subject,
		HtmlContent: email.HTMLContent,
	}

	created, _, err := m.client.TransactionalEmailsApi.SendTransacEmail(ctx, msg)
	if err != nil {
		log.Printf("[mail][brevo] send failed subject=%q err=%v", email.Subject, err)
		return "", err
	}
	log.Printf("[mail][brevo] send success message_id=%s", created.MessageId)
	return created.MessageId, nil
}

func isMailerMockEnabled() bool {
	for _, key := range []string{"MAILER_MOCK", "BREVO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
