package entities

import "time"

// Estimation is a client-submitted vehicle damage assessment request,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Images hold uploads-relative paths ("uploads/<file>"), in the order the
// client attached them. Seen is an append-only set of employee names;
// duplicates are never stored.
type Estimation struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	Trim              string    `json:"trim"`
	Year              int       `json:"year"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Seen              []string  `json:"Seen"`
	PreferredLanguage string    `json:"preferredLanguage"`
	ContactMethod     string    `json:"contactMethod"`
	Reply             bool      `json:"reply"`
	ReplyBy           string    `json:"replyBy"`
	ReplyMessage      string    `json:"replyMessage"`
	ReplyDate         time.Time `json:"replyDate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SeenBy reports whether name already marked this estimation as seen.
func (e Estimation) SeenBy(name string) bool {
	for _, s := range e.Seen {
		if s == name {
			return true
		}
	}
	return false
}
