package asset

import (
	"context"
	"fmt"

	"github.com/workgrid-hq/hr-portal/internal/domain/asset"
	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

type AssetServiceImpl struct {
	upstream *upstream.Client
}

func NewAssetService(client *upstream.Client) asset.AssetService {
	return &AssetServiceImpl{upstream: client}
}

// List implements asset.AssetService.
func (s *AssetServiceImpl) List(ctx context.Context, sess auth.Session) ([]asset.Asset, error) {
	assets, err := s.upstream.Assets(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// Create implements asset.AssetService.
func (s *AssetServiceImpl) Create(ctx context.Context, sess auth.Session, req asset.CreateAssetRequest) (asset.Asset, error) {
	if err := req.Validate(); err != nil {
		return asset.Asset{}, err
	}
	created, err := s.upstream.CreateAsset(ctx, sess.UpstreamToken, sess.CompanyID, req)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("create asset: %w", err)
	}
	return created, nil
}

// Update implements asset.AssetService.
func (s *AssetServiceImpl) Update(ctx context.Context, sess auth.Session, req asset.UpdateAssetRequest) (asset.Asset, error) {
	if err := req.Validate(); err != nil {
		return asset.Asset{}, err
	}
	updated, err := s.upstream.UpdateAsset(ctx, sess.UpstreamToken, sess.CompanyID, req)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("update asset: %w", err)
	}
	return updated, nil
}

// Delete implements asset.AssetService.
func (s *AssetServiceImpl) Delete(ctx context.Context, sess auth.Session, id string) error {
	if err := s.upstream.DeleteAsset(ctx, sess.UpstreamToken, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// Assignments implements asset.AssetService.
func (s *AssetServiceImpl) Assignments(ctx context.Context, sess auth.Session) ([]asset.Assignment, error) {
	assignments, err := s.upstream.AssetAssignments(ctx, sess.UpstreamToken, sess.CompanyID, "")
	if err != nil {
		return nil, fmt.Errorf("list asset assignments: %w", err)
	}
	return assignments, nil
}

// MyAssets implements asset.AssetService.
func (s *AssetServiceImpl) MyAssets(ctx context.Context, sess auth.Session) ([]asset.Assignment, error) {
	if sess.EmployeeID == "" {
		return nil, auth.ErrNoEmployeeProfile
	}
	assignments, err := s.upstream.AssetAssignments(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("list own asset assignments: %w", err)
	}

	// Returned assignments stay in the upstream log; the "my assets"
	// view only shows what the employee still holds.
	open := make([]asset.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ReturnedAt == nil {
			open = append(open, a)
		}
	}
	return open, nil
}

// Assign implements asset.AssetService.
func (s *AssetServiceImpl) Assign(ctx context.Context, sess auth.Session, req asset.AssignRequest) (asset.Assignment, error) {
	if err := req.Validate(); err != nil {
		return asset.Assignment{}, err
	}
	assignment, err := s.upstream.AssignAsset(ctx, sess.UpstreamToken, sess.CompanyID, req.AssetID, req.EmployeeID)
	if err != nil {
		return asset.Assignment{}, fmt.Errorf("assign asset: %w", err)
	}
	return assignment, nil
}

// Return implements asset.AssetService.
func (s *AssetServiceImpl) Return(ctx context.Context, sess auth.Session, req asset.ReturnRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.upstream.ReturnAsset(ctx, sess.UpstreamToken, sess.CompanyID, req.AssignmentID); err != nil {
		return fmt.Errorf("return asset: %w", err)
	}
	return nil
}
