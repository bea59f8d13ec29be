package entities

import "time"

const RoleManager = "manager"

// Employee is a staff record and the notification recipient directory.
// Employees with the manager role receive business-event alerts.
//
// PasswordHash stores a bcrypt hash; plaintext passwords are never
// persisted or serialized.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (e Employee) IsManager() bool {
	return e.Role == RoleManager
}
