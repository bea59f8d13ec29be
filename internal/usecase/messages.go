package usecase

import (
	"fmt"
	"strings"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"
)

// Message copy for transactional notifications. Client-bound content
// branches on the client's preferred language: "fr" selects French, anything
// else English. Staff notifications are always French — the shop works in
// French regardless of the client's preference.

const langFrench = "fr"

func isFrench(lang string) bool {
	return strings.EqualFold(strings.TrimSpace(lang), langFrench)
}

func normalizeContactMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func formatDateFR(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

func formatDateEN(t time.Time) string {
	return t.Format("January 2, 2006")
}

func clientEstimationEmail(e entities.Estimation) interfaces.Email {
	var subject, html string
	if isFrench(e.PreferredLanguage) {
		subject = fmt.Sprintf("Votre demande d'estimation - %s %s", e.Brand, e.Model)
		html = fmt.Sprintf(`
			<h3>Bonjour %s,</h3>
			<p>Nous avons bien reçu votre demande d'estimation pour votre <strong>%s %s</strong>.</p>
			<p>Notre équipe analysera les informations et les photos transmises et vous répondra dans les plus brefs délais.</p>
			<p>Cordialement,<br>L'équipe GMCL</p>`,
			e.FullName, e.Brand, e.Model)
	} else {
		subject = fmt.Sprintf("Your estimate request - %s %s", e.Brand, e.Model)
		html = fmt.Sprintf(`
			<h3>Hello %s,</h3>
			<p>We have received your estimate request for your <strong>%s %s</strong>.</p>
			<p>Our team will review the information and photos you submitted and get back to you shortly.</p>
			<p>Best regards,<br>The GMCL Team</p>`,
			e.FullName, e.Brand, e.Model)
	}
	return interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: e.Email, Name: e.FullName}},
		Subject:     subject,
		HTMLContent: html,
	}
}

func clientEstimationSMS(e entities.Estimation) string {
	if isFrench(e.PreferredLanguage) {
		return fmt.Sprintf("GMCL : nous avons bien reçu votre demande d'estimation pour votre %s %s. Nous vous répondrons sous peu.", e.Brand, e.Model)
	}
	return fmt.Sprintf("GMCL: we received your estimate request for your %s %s. We will get back to you shortly.", e.Brand, e.Model)
}

// managerEstimationEmail is always French: staff alerts do not follow the
// client's language preference.
func managerEstimationEmail(manager entities.Employee, e entities.Estimation) interfaces.Email {
	name := manager.Name
	if name == "" {
		name = "Cher employé"
	}

	imagesBlock := ""
	if len(e.Images) > 0 {
		imagesBlock = fmt.Sprintf("<h4>Images :</h4><p>%d image(s) disponible(s) sur le tableau de bord</p>", len(e.Images))
	}
	description := e.Description
	if description == "" {
		description = "Aucune description fournie"
	}

	html := fmt.Sprintf(`
		<h3>Bonjour %s,</h3>
		<p>Une nouvelle estimation a été soumise :</p>
		<h4>Détails du client :</h4>
		<ul>
			<li><strong>Nom :</strong> %s</li>
			<li><strong>Email :</strong> %s</li>
			<li><strong>Téléphone :</strong> %s</li>
		</ul>
		<h4>Détails du véhicule :</h4>
		<ul>
			<li><strong>Type :</strong> %s</li>
			<li><strong>Marque :</strong> %s</li>
			<li><strong>Modèle :</strong> %s</li>
			<li><strong>Finition :</strong> %s</li>
			<li><strong>Année :</strong> %d</li>
		</ul>
		<h4>Description :</h4>
		<p>%s</p>
		%s
		<hr>
		<p>Connectez-vous à votre tableau de bord pour voir les détails complets et répondre au client.</p>
		<p>Cordialement,<br>L'équipe GMCL</p>`,
		name, e.FullName, e.Email, e.Phone,
		e.Type, e.Brand, e.Model, e.Trim, e.Year,
		description, imagesBlock)

	return interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: manager.Email, Name: name}},
		Subject:     fmt.Sprintf("Nouvelle estimation - %s %s", e.Brand, e.Model),
		HTMLContent: html,
	}
}

func managerEstimationSMS(e entities.Estimation) string {
	return fmt.Sprintf("GMCL : nouvelle estimation soumise par %s (%s %s %d). Consultez le tableau de bord.", e.FullName, e.Brand, e.Model, e.Year)
}

func clientReplyEmail(e entities.Estimation) interfaces.Email {
	var subject, html string
	if isFrench(e.PreferredLanguage) {
		subject = fmt.Sprintf("Réponse à votre estimation pour %s %s", e.Brand, e.Model)
		html = fmt.Sprintf(`
			<h3>Bonjour %s,</h3>
			<p>Nous vous remercions pour votre demande d'estimation concernant votre véhicule.</p>
			<p><strong>Véhicule concerné :</strong> %s %s</p>
			<p style="white-space: pre-line;">%s</p>
			<p>Cette estimation est valable 15 jours.</p>
			<p><strong>Date de réponse :</strong> %s</p>
			<p>Nous restons à votre disposition pour toute information complémentaire.</p>
			<p>Cordialement,<br>L'équipe GMCL</p>`,
			e.FullName, e.Brand, e.Model, e.ReplyMessage, formatDateFR(e.ReplyDate))
	} else {
		subject = fmt.Sprintf("Reply to your estimate for %s %s", e.Brand, e.Model)
		html = fmt.Sprintf(`
			<h3>Hello %s,</h3>
			<p>Thank you for your estimate request regarding your vehicle.</p>
			<p><strong>Vehicle:</strong> %s %s</p>
			<p style="white-space: pre-line;">%s</p>
			<p>This estimate is valid for 15 days.</p>
			<p><strong>Reply date:</strong> %s</p>
			<p>We remain available for any further information.</p>
			<p>Best regards,<br>The GMCL Team</p>`,
			e.FullName, e.Brand, e.Model, e.ReplyMessage, formatDateEN(e.ReplyDate))
	}
	return interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: e.Email, Name: e.FullName}},
		Subject:     subject,
		HTMLContent: html,
	}
}

func clientReplySMS(e entities.Estimation) string {
	if isFrench(e.PreferredLanguage) {
		return fmt.Sprintf("GMCL : nous avons répondu à votre estimation pour votre %s %s. Consultez votre courriel pour les détails.", e.Brand, e.Model)
	}
	return fmt.Sprintf("GMCL: we replied to your estimate for your %s %s. Check your email for details.", e.Brand, e.Model)
}

func managerRendezVousEmail(manager entities.Employee, rdv entities.RendezVous) interfaces.Email {
	name := manager.Name
	if name == "" {
		name = "Cher employé"
	}

	html := fmt.Sprintf(`
		<h3>Bonjour %s,</h3>
		<p>Un nouveau rendez-vous a été créé :</p>
		<h4>Détails du client :</h4>
		<ul>
			<li><strong>Nom :</strong> %s</li>
			<li><strong>Email :</strong> %s</li>
			<li><strong>Téléphone :</strong> %s</li>
		</ul>
		<h4>Détails du rendez-vous :</h4>
		<ul>
			<li><strong>Type :</strong> %s</li>
			<li><strong>Date :</strong> %s</li>
			<li><strong>Heure :</strong> %s</li>
		</ul>
		<hr>
		<p>Connectez-vous à votre tableau de bord pour voir les détails et gérer ce rendez-vous.</p>
		<p>Cordialement,<br>L'équipe GMCL</p>`,
		name, rdv.ClientFullName, rdv.ClientEmail, rdv.ClientPhoneNumber,
		rdv.Type, formatDateFR(rdv.Date), rdv.Heure)

	return interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: manager.Email, Name: name}},
		Subject:     fmt.Sprintf("Nouveau rendez-vous - %s", rdv.Type),
		HTMLContent: html,
	}
}

func managerRendezVousSMS(rdv entities.RendezVous) string {
	return fmt.Sprintf("GMCL : nouveau rendez-vous (%s) le %s à %s pour %s.", rdv.Type, formatDateFR(rdv.Date), rdv.Heure, rdv.ClientFullName)
}

func clientConfirmationEmail(rdv entities.RendezVous) interfaces.Email {
	var subject, html string
	if isFrench(rdv.PreferredLanguage) {
		subject = "Confirmation de votre rendez-vous"
		descriptionBlock := ""
		if rdv.Description != "" {
			descriptionBlock = fmt.Sprintf("<p><strong>Informations complémentaires :</strong> %s</p>", rdv.Description)
		}
		html = fmt.Sprintf(`
			<h3>Bonjour %s,</h3>
			<p>Nous avons le plaisir de vous confirmer votre rendez-vous avec notre équipe.</p>
			<ul>
				<li><strong>Date :</strong> %s</li>
				<li><strong>Heure :</strong> %s</li>
				<li><strong>Type :</strong> %s</li>
			</ul>
			%s
			<p>Pour toute modification ou annulation, merci de nous contacter au plus tôt.</p>
			<p>Cordialement,<br>L'équipe GMCL</p>`,
			rdv.ClientFullName, formatDateFR(rdv.Date), rdv.Heure, rdv.Type, descriptionBlock)
	} else {
		subject = "Your appointment confirmation"
		descriptionBlock := ""
		if rdv.Description != "" {
			descriptionBlock = fmt.Sprintf("<p><strong>Additional information:</strong> %s</p>", rdv.Description)
		}
		html = fmt.Sprintf(`
			<h3>Hello %s,</h3>
			<p>We are pleased to confirm your appointment with our team.</p>
			<ul>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
				<li><strong>Type:</strong> %s</li>
			</ul>
			%s
			<p>For any change or cancellation, please contact us as soon as possible.</p>
			<p>Best regards,<br>The GMCL Team</p>`,
			rdv.ClientFullName, formatDateEN(rdv.Date), rdv.Heure, rdv.Type, descriptionBlock)
	}
	return interfaces.Email{
		Recipients:  []interfaces.EmailRecipient{{Email: rdv.ClientEmail, Name: rdv.ClientFullName}},
		Subject:     subject,
		HTMLContent: html,
	}
}

func clientConfirmationSMS(rdv entities.RendezVous) string {
	if isFrench(rdv.PreferredLanguage) {
		return fmt.Sprintf("GMCL : votre rendez-vous du %s à %s est confirmé.", formatDateFR(rdv.Date), rdv.Heure)
	}
	return fmt.Sprintf("GMCL: your appointment on %s at %s is confirmed.", formatDateEN(rdv.Date), rdv.Heure)
}
