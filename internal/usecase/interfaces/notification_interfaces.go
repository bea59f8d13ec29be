package interfaces

import "context"

// EmailRecipient is one address on a transactional email.
type EmailRecipient struct {
	Email string
	Name  string
}

// Email is a single transactional message. One email per recipient is the
// rule for fan-out; Recipients is a slice only to match the provider API.
type Email struct {
	Recipients  []EmailRecipient
	Subject     string
	HTMLContent string
}

// IMailer abstracts the external transactional-email provider (Brevo).
//
// Implementations carry their own immutable configuration (sender identity,
// API key) injected at construction; nothing is mutated per call.
type IMailer interface {
	SendEmail(ctx context.Context, email Email) (messageID string, err error)
}

// ISMSSender abstracts the SMS automation webhook.
// One call per recipient: POST {phone, message}.
type ISMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}
