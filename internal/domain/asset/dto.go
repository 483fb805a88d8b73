package asset

import "github.com/workgrid-hq/hr-portal/internal/pkg/validator"

type CreateAssetRequest struct {
	AssetTag       string `json:"asset_tag"`
	Type           string `json:"type"`
	SerialNumber   string `json:"serial_number,omitempty"`
	Condition      string `json:"condition,omitempty"`
	PurchaseDate   string `json:"purchase_date,omitempty"`
	WarrantyExpiry string `json:"warranty_expiry,omitempty"`
}

func (r *CreateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssetTag) {
		errs = append(errs, validator.ValidationError{
			Field:   "asset_tag",
			Message: "asset_tag is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if r.PurchaseDate != "" {
		if _, ok := validator.IsValidDate(r.PurchaseDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "purchase_date",
				Message: "purchase_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.WarrantyExpiry != "" {
		if _, ok := validator.IsValidDate(r.WarrantyExpiry); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "warranty_expiry",
				Message: "warranty_expiry must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssetRequest struct {
	ID           string  `json:"-"`
	AssetTag     *string `json:"asset_tag,omitempty"`
	Type         *string `json:"type,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Condition    *string `json:"condition,omitempty"`
}

func (r *UpdateAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "asset_id",
			Message: "asset_id is required",
		})
	}

	if r.AssetTag != nil && validator.IsEmpty(*r.AssetTag) {
		errs = append(errs, validator.ValidationError{
			Field:   "asset_tag",
			Message: "asset_tag must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignRequest struct {
	AssetID    string `json:"asset_id"`
	EmployeeID string `json:"employee_id"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "asset_id",
			Message: "asset_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReturnRequest struct {
	AssignmentID string `json:"assignment_id"`
}

func (r *ReturnRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
