package entities

import "time"

// RendezVous is a scheduled appointment, optionally linked to an Estimation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Date carries the calendar day of the appointment; Heure is the
// time-of-day label the client picked ("14:30"). Confirmation fields stay
// zero until the appointment is confirmed; re-confirming overwrites them
// and re-sends the client notification.
type RendezVous struct {
	ID                string    `json:"id"`
	ClientFullName    string    `json:"clientFullName"`
	ClientPhoneNumber string    `json:"clientPhoneNumber"`
	ClientEmail       string    `json:"clientEmail"`
	Date              time.Time `json:"date"`
	Heure             string    `json:"heure"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	EstimationID      string    `json:"estimationId,omitempty"`
	Confirmation      bool      `json:"confirmation"`
	ConfirmedBy       string    `json:"confirmedBy,omitempty"`
	ConfirmedAt       time.Time `json:"confirmedAt,omitempty"`
	PreferredLanguage string    `json:"preferredLanguage"`
	ContactMethod     string    `json:"contactMethod"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
