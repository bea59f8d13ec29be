package entities

import "time"

// Stock is an inventory row. Deleting a stock cascades to every
// Assignment referencing it (application-level cascade, see stock use case).
type Stock struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Quantity         int       `json:"quantity"`
	Category         string    `json:"category"`
	QuantityConsumed int       `json:"quantityConsumed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Assignment hands a quantity of a stock item to an employee.
// ItemID is a back-reference to Stock.
type Assignment struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	ItemName     string    `json:"itemName"`
	ItemID       string    `json:"itemId"`
	Date         time.Time `json:"date"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"createdAt"`
}
