package employee

import (
	"time"
)

// Employee mirrors the upstream backend's employee record. JSON tags
// match the upstream wire format.
type Employee struct {
	ID        string     `json:"employeeId"`
	UserID    string     `json:"userId,omitempty"`
	CompanyID string     `json:"companyId"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Position  string     `json:"position,omitempty"`
	HireDate  *time.Time `json:"hireDate,omitempty"`
	IsActive  bool       `json:"isActive"`
}
