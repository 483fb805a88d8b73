package asset

import (
	"context"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
)

// AssetService exposes the admin asset console and the employee's "my
// assets" view. All writes pass through to the upstream backend.
type AssetService interface {
	// List returns every asset in the caller's company (admin)
	List(ctx context.Context, sess auth.Session) ([]Asset, error)

	// Create registers a new asset upstream (admin)
	Create(ctx context.Context, sess auth.Session, req CreateAssetRequest) (Asset, error)

	// Update modifies an asset upstream (admin)
	Update(ctx context.Context, sess auth.Session, req UpdateAssetRequest) (Asset, error)

	// Delete removes an asset upstream (admin)
	Delete(ctx context.Context, sess auth.Session, id string) error

	// Assignments lists open assignments company-wide (admin)
	Assignments(ctx context.Context, sess auth.Session) ([]Assignment, error)

	// MyAssets lists assets currently assigned to the caller
	MyAssets(ctx context.Context, sess auth.Session) ([]Assignment, error)

	// Assign hands an asset to an employee (admin)
	Assign(ctx context.Context, sess auth.Session, req AssignRequest) (Assignment, error)

	// Return marks an assignment as returned (admin)
	Return(ctx context.Context, sess auth.Session, req ReturnRequest) error
}
