package usecase

import (
	"context"
	"log"
	"sync"

	"gmcl_backoffice/internal/usecase/interfaces"
)

// SMS is one pending text message.
type SMS struct {
	Phone   string
	Message string
}

// Outbound is one pending notification: exactly one of Email or SMS is set.
type Outbound struct {
	Email *interfaces.Email
	SMS   *SMS
}

// Dispatcher fans out transactional notifications to the email and SMS
// providers. Providers are injected once at construction; their
// configuration is immutable afterwards.
//
// Dispatch is strictly best-effort: every send runs in its own goroutine,
// the batch waits for all of them to settle, and individual failures are
// logged and swallowed. Dispatch never fails the calling workflow.
type Dispatcher struct {
	mailer interfaces.IMailer
	sms    interfaces.ISMSSender
}

func NewDispatcher(mailer interfaces.IMailer, sms interfaces.ISMSSender) *Dispatcher {
	return &Dispatcher{mailer: mailer, sms: sms}
}

// Dispatch sends the batch concurrently and blocks until every send has
// settled. It returns the number of failed sends, for logging only.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []Outbound) int {
	if d == nil || len(batch) == 0 {
		return 0
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	fail := func() {
		mu.Lock()
		failed++
		mu.Unlock()
	}

	for _, out := range batch {
		switch {
		case out.Email != nil:
			if d.mailer == nil {
				log.Printf("[notify][dispatch] mailer not configured, skipping email subject=%q", out.Email.Subject)
				continue
			}
			email := *out.Email
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := d.mailer.SendEmail(ctx, email); err != nil {
					log.Printf("[notify][dispatch] email send failed subject=%q err=%v", email.Subject, err)
					fail()
				}
			}()
		case out.SMS != nil:
			if d.sms == nil {
				log.Printf("[notify][dispatch] sms sender not configured, skipping phone=%s", out.SMS.Phone)
				continue
			}
			sms := *out.SMS
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := d.sms.SendSMS(ctx, sms.Phone, sms.Message); err != nil {
					log.Printf("[notify][dispatch] sms send failed phone=%s err=%v", sms.Phone, err)
					fail()
				}
			}()
		}
	}

	wg.Wait()
	if failed > 0 {
		log.Printf("[notify][dispatch] batch settled size=%d failed=%d", len(batch), failed)
	}
	return failed
}

// wantsEmail reports whether the contact method includes email.
func wantsEmail(contactMethod string) bool {
	switch normalizeContactMethod(contactMethod) {
	case "email", "both":
		return true
	}
	return false
}

// wantsSMS reports whether the contact method includes phone/SMS.
func wantsSMS(contactMethod string) bool {
	switch normalizeContactMethod(contactMethod) {
	case "phone", "sms", "both":
		return true
	}
	return false
}
