package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// RendezVousRequest is the JSON payload for creating or updating an
// appointment. Date accepts either a full RFC3339 timestamp or a bare
// "2006-01-02" day (interpreted in server-local time).
type RendezVousRequest struct {
	ClientFullName    string `json:"clientFullName" binding:"required"`
	ClientPhoneNumber string `json:"clientPhoneNumber" binding:"required"`
	ClientEmail       string `json:"clientEmail" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Heure             string `json:"heure" binding:"required"`
	Type              string `json:"type" binding:"required"`
	Description       string `json:"description"`
	EstimationID      string `json:"estimationId"`
	PreferredLanguage string `json:"preferredLanguage" binding:"required"`
	ContactMethod     string `json:"contactMethod" binding:"required"`

	// ConfirmedBy is only meaningful on the create-confirm endpoint.
	ConfirmedBy string `json:"confirmedBy"`
}

func (r RendezVousRequest) ResolveDate() (time.Time, error) {
	raw := strings.TrimSpace(r.Date)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

type ConfirmRendezVousRequest struct {
	ConfirmedBy string `json:"confirmedBy" binding:"required"`
}
