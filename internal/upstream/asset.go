package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/workgrid-hq/hr-portal/internal/domain/asset"
)

func (c *Client) Assets(ctx context.Context, token, companyID string) ([]asset.Asset, error) {
	path := "/api/v1/assets?companyId=" + url.QueryEscape(companyID)

	var assets []asset.Asset
	if err := c.do(ctx, http.MethodGet, path, token, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

type assetPayload struct {
	CompanyID      string `json:"companyId"`
	AssetTag       string `json:"assetTag,omitempty"`
	Type           string `json:"type,omitempty"`
	SerialNumber   string `json:"serialNumber,omitempty"`
	Condition      string `json:"condition,omitempty"`
	PurchaseDate   string `json:"purchaseDate,omitempty"`
	WarrantyExpiry string `json:"warrantyExpiry,omitempty"`
}

func (c *Client) CreateAsset(ctx context.Context, token, companyID string, req asset.CreateAssetRequest) (asset.Asset, error) {
	body := assetPayload{
		CompanyID:      companyID,
		AssetTag:       req.AssetTag,
		Type:           req.Type,
		SerialNumber:   req.SerialNumber,
		Condition:      req.Condition,
		PurchaseDate:   req.PurchaseDate,
		WarrantyExpiry: req.WarrantyExpiry,
	}

	var created asset.Asset
	if err := c.do(ctx, http.MethodPost, "/api/v1/assets", token, body, &created); err != nil {
		return asset.Asset{}, err
	}
	return created, nil
}

func (c *Client) UpdateAsset(ctx context.Context, token, companyID string, req asset.UpdateAssetRequest) (asset.Asset, error) {
	body := assetPayload{CompanyID: companyID}
	if req.AssetTag != nil {
		body.AssetTag = *req.AssetTag
	}
	if req.Type != nil {
		body.Type = *req.Type
	}
	if req.SerialNumber != nil {
		body.SerialNumber = *req.SerialNumber
	}
	if req.Condition != nil {
		body.Condition = *req.Condition
	}

	var updated asset.Asset
	if err := c.do(ctx, http.MethodPut, "/api/v1/assets/"+url.PathEscape(req.ID), token, body, &updated); err != nil {
		return asset.Asset{}, err
	}
	return updated, nil
}

func (c *Client) DeleteAsset(ctx context.Context, token, assetID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/assets/"+url.PathEscape(assetID), token, nil, nil)
}

// AssetAssignments lists assignments, optionally filtered to one
// employee. Pass an empty employeeID for the company-wide view.
func (c *Client) AssetAssignments(ctx context.Context, token, companyID, employeeID string) ([]asset.Assignment, error) {
	path := "/api/v1/assets/assignments?companyId=" + url.QueryEscape(companyID)
	if employeeID != "" {
		path += "&employeeId=" + url.QueryEscape(employeeID)
	}

	var assignments []asset.Assignment
	if err := c.do(ctx, http.MethodGet, path, token, nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

type assignAssetRequest struct {
	CompanyID  string `json:"companyId"`
	AssetID    string `json:"assetId"`
	EmployeeID string `json:"employeeId"`
}

func (c *Client) AssignAsset(ctx context.Context, token, companyID, assetID, employeeID string) (asset.Assignment, error) {
	body := assignAssetRequest{
		CompanyID:  companyID,
		AssetID:    assetID,
		EmployeeID: employeeID,
	}

	var assignment asset.Assignment
	if err := c.do(ctx, http.MethodPost, "/api/v1/assets/assign", token, body, &assignment); err != nil {
		return asset.Assignment{}, err
	}
	return assignment, nil
}

type returnAssetRequest struct {
	CompanyID    string `json:"companyId"`
	AssignmentID string `json:"assignmentId"`
}

func (c *Client) ReturnAsset(ctx context.Context, token, companyID, assignmentID string) error {
	body := returnAssetRequest{CompanyID: companyID, AssignmentID: assignmentID}
	return c.do(ctx, http.MethodPost, "/api/v1/assets/return", token, body, nil)
}
