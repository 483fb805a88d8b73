package asset

import (
	"time"
)

// Asset mirrors the upstream backend's asset record. JSON tags match the
// upstream wire format.
type Asset struct {
	ID             string     `json:"id"`
	AssetTag       string     `json:"assetTag"`
	Type           string     `json:"type"`
	SerialNumber   string     `json:"serialNumber,omitempty"`
	Condition      string     `json:"condition,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry,omitempty"`
}

// Assignment links an asset to an employee for a period of time.
type Assignment struct {
	ID         string     `json:"assignmentId"`
	AssetID    string     `json:"assetId"`
	AssetTag   string     `json:"assetTag,omitempty"`
	EmployeeID string     `json:"employeeId"`
	AssignedAt time.Time  `json:"assignedAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}
