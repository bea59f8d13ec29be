package entities

import "time"

// TimeEntry logs hours worked by an employee on a given day.
type TimeEntry struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Hours        float64   `json:"hours"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
