package usecase

import (
	"context"
	"errors"
	"testing"

	"gmcl_backoffice/internal/usecase/interfaces"
	mock_interfaces "gmcl_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDispatcher_Dispatch(t *testing.T) {
	email := interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: "jean@example.com", Name: "Jean"}},
		Subject:     "hello",
		HTMLContent: "<p>hi</p>",
	}

	t.Run("all sends settle even when every provider fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		d := NewDispatcher(mailer, sms)

		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", errors.New("smtp down")).Times(2)
		sms.EXPECT().SendSMS(gomock.Any(), "+15145550001", "ping").Return(errors.New("webhook down"))

		batch := []Outbound{
			{Email: &email},
			{Email: &email},
			{SMS: &SMS{Phone: "+15145550001", Message: "ping"}},
		}
		if failed := d.Dispatch(context.Background(), batch); failed != 3 {
			t.Fatalf("expected 3 failures, got %d", failed)
		}
	})

	t.Run("nil providers skip their channel", func(t *testing.T) {
		d := NewDispatcher(nil, nil)

		batch := []Outbound{
			{Email: &email},
			{SMS: &SMS{Phone: "+15145550001", Message: "ping"}},
		}
		if failed := d.Dispatch(context.Background(), batch); failed != 0 {
			t.Fatalf("skipped sends are not failures, got %d", failed)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		if failed := d.Dispatch(context.Background(), nil); failed != 0 {
			t.Fatalf("expected 0, got %d", failed)
		}
	})

	t.Run("mixed outcome counts only failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		d := NewDispatcher(mailer, sms)

		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil)
		sms.EXPECT().SendSMS(gomock.Any(), "+15145550001", "ping").Return(errors.New("webhook down"))

		batch := []Outbound{
			{Email: &email},
			{SMS: &SMS{Phone: "+15145550001", Message: "ping"}},
		}
		if failed := d.Dispatch(context.Background(), batch); failed != 1 {
			t.Fatalf("expected 1 failure, got %d", failed)
		}
	})
}

func TestContactMethodRouting(t *testing.T) {
	cases := []struct {
		method    string
		wantEmail bool
		wantSMS   bool
	}{
		{"email", true, false},
		{"Email", true, false},
		{"phone", false, true},
		{"sms", false, true},
		{"both", true, true},
		{" BOTH ", true, true},
		{"", false, false},
		{"pigeon", false, false},
	}
	for _, tc := range cases {
		if got := wantsEmail(tc.method); got != tc.wantEmail {
			t.Fatalf("wantsEmail(%q) = %v, want %v", tc.method, got, tc.wantEmail)
		}
		if got := wantsSMS(tc.method); got != tc.wantSMS {
			t.Fatalf("wantsSMS(%q) = %v, want %v", tc.method, got, tc.wantSMS)
		}
	}
}
