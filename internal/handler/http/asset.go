package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workgrid-hq/hr-portal/internal/domain/asset"
	"github.com/workgrid-hq/hr-portal/internal/handler/http/middleware"
	"github.com/workgrid-hq/hr-portal/internal/handler/http/response"
)

type AssetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assignments(w http.ResponseWriter, r *http.Request)
	MyAssets(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
}

type assetHandlerImpl struct {
	assetService asset.AssetService
}

func NewAssetHandler(assetService asset.AssetService) AssetHandler {
	return &assetHandlerImpl{
		assetService: assetService,
	}
}

// List implements AssetHandler.
func (h *assetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assets, err := h.assetService.List(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assets)
}

// Create implements AssetHandler.
func (h *assetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req asset.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.assetService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created", created)
}

// Update implements AssetHandler.
func (h *assetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req asset.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.assetService.Update(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset updated", updated)
}

// Delete implements AssetHandler.
func (h *assetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.assetService.Delete(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset deleted", nil)
}

// Assignments implements AssetHandler.
func (h *assetHandlerImpl) Assignments(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.assetService.Assignments(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// MyAssets implements AssetHandler.
func (h *assetHandlerImpl) MyAssets(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignments, err := h.assetService.MyAssets(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// Assign implements AssetHandler.
func (h *assetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req asset.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.assetService.Assign(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset assigned", assignment)
}

// Return implements AssetHandler.
func (h *assetHandlerImpl) Return(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req asset.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.assetService.Return(r.Context(), sess, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset returned", nil)
}
