package usecase

import (
	"strings"
	"testing"
	"time"

	"gmcl_backoffice/internal/domain/entities"
)

func TestClientMessagesFollowPreferredLanguage(t *testing.T) {
	e := entities.Estimation{
		FullName: "Jean Tremblay", Email: "jean@example.com",
		Brand: "Honda", Model: "Civic",
	}

	t.Run("french client", func(t *testing.T) {
		e.PreferredLanguage = "fr"
		email := clientEstimationEmail(e)
		if !strings.Contains(email.Subject, "Votre demande d'estimation") {
			t.Fatalf("expected French subject, got %q", email.Subject)
		}
		if !strings.Contains(clientEstimationSMS(e), "GMCL :") {
			t.Fatal("expected French SMS copy")
		}
	})

	t.Run("other language falls back to english", func(t *testing.T) {
		e.PreferredLanguage = "en"
		email := clientEstimationEmail(e)
		if !strings.Contains(email.Subject, "Your estimate request") {
			t.Fatalf("expected English subject, got %q", email.Subject)
		}
		if email.Recipients[0].Email != "jean@example.com" {
			t.Fatalf("unexpected recipient %+v", email.Recipients)
		}
	})
}

func TestManagerMessagesAreAlwaysFrench(t *testing.T) {
	manager := entities.Employee{Name: "Marie", Email: "marie@gmcl.ca"}
	e := entities.Estimation{
		FullName: "John Smith", Brand: "Ford", Model: "F-150", Year: 2021,
		PreferredLanguage: "en",
	}

	email := managerEstimationEmail(manager, e)
	if email.Subject != "Nouvelle estimation - Ford F-150" {
		t.Fatalf("unexpected subject %q", email.Subject)
	}
	if !strings.Contains(email.HTMLContent, "Bonjour Marie") {
		t.Fatal("expected French greeting for staff")
	}

	rdv := entities.RendezVous{
		ClientFullName: "John Smith", Type: "Inspection",
		Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), Heure: "09:00",
		PreferredLanguage: "en",
	}
	if got := managerRendezVousEmail(manager, rdv).Subject; got != "Nouveau rendez-vous - Inspection" {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestManagerFallbackGreeting(t *testing.T) {
	email := managerEstimationEmail(entities.Employee{Email: "staff@gmcl.ca"}, entities.Estimation{Brand: "Ford", Model: "Focus"})
	if !strings.Contains(email.HTMLContent, "Cher employé") {
		t.Fatal("expected fallback greeting for unnamed manager")
	}
}

func TestFormatDateFR(t *testing.T) {
	got := formatDateFR(time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local))
	if got != "29 février 2024" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestClientReplyEmailMentionsValidity(t *testing.T) {
	e := entities.Estimation{
		FullName: "Jean", Email: "jean@example.com",
		Brand: "Honda", Model: "Civic",
		ReplyMessage: "Estimation : 850$", ReplyDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PreferredLanguage: "fr",
	}
	email := clientReplyEmail(e)
	if !strings.Contains(email.HTMLContent, "valable 15 jours") {
		t.Fatal("expected validity window in reply email")
	}
	if !strings.Contains(email.HTMLContent, "Estimation : 850$") {
		t.Fatal("expected reply message in email body")
	}
}
