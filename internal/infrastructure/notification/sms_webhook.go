package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"gmcl_backoffice/internal/usecase/interfaces"
)

var ErrMissingSMSWebhookURL = errors.New("missing SMS_WEBHOOK_URL")

// SMSWebhookSender posts {phone, message} to an SMS automation webhook.
// The URL itself is the secret; no extra authentication is applied.
type SMSWebhookSender struct {
	url    string
	client *http.Client
}

var _ interfaces.ISMSSender = (*SMSWebhookSender)(nil)

func NewSMSWebhookSender(url string) (*SMSWebhookSender, error) {
	if url == "" {
		log.Printf("[sms][webhook] missing SMS_WEBHOOK_URL")
		return nil, ErrMissingSMSWebhookURL
	}
	return &SMSWebhookSender{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *SMSWebhookSender) SendSMS(ctx context.Context, phone, message string) error {
	payload := map[string]string{
		"phone":   phone,
		"message": message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[sms][webhook] send failed phone=%s err=%v", phone, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[sms][webhook] provider rejected request phone=%s status=%d", phone, resp.StatusCode)
		return fmt.Errorf("sms webhook rejected request: status %d", resp.StatusCode)
	}
	log.Printf("[sms][webhook] send success phone=%s", phone)
	return nil
}
