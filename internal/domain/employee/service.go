package employee

import (
	"context"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
)

// EmployeeService exposes the admin console's employee directory plus
// the caller's own profile. All writes pass through to the upstream
// backend.
type EmployeeService interface {
	// List returns every employee in the caller's company (admin)
	List(ctx context.Context, sess auth.Session) ([]Employee, error)

	// Get returns a single employee by ID (admin)
	Get(ctx context.Context, sess auth.Session, id string) (Employee, error)

	// Me returns the caller's own employee record
	Me(ctx context.Context, sess auth.Session) (Employee, error)

	// Create adds an employee upstream (admin)
	Create(ctx context.Context, sess auth.Session, req CreateEmployeeRequest) (Employee, error)

	// Update modifies an employee upstream (admin)
	Update(ctx context.Context, sess auth.Session, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee upstream (admin)
	Delete(ctx context.Context, sess auth.Session, id string) error
}
