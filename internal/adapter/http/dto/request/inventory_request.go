package request

import (
	"strings"
	"time"
)

type EmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type StockRequest struct {
	Name             string `json:"name" binding:"required"`
	Quantity         int    `json:"quantity"`
	Category         string `json:"category" binding:"required"`
	QuantityConsumed int    `json:"quantityConsumed"`
}

type AssignmentRequest struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	ItemName     string `json:"itemName" binding:"required"`
	ItemID       string `json:"itemId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
}

func (r AssignmentRequest) ResolveDate() (time.Time, error) {
	return resolveDate(r.Date)
}

type TimeEntryRequest struct {
	EmployeeName string  `json:"employeeName" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Hours        float64 `json:"hours"`
	Note         string  `json:"note"`
}

func (r TimeEntryRequest) ResolveDate() (time.Time, error) {
	return resolveDate(r.Date)
}

func resolveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
