package http

import (
	"net/http"
	"strconv"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/service"
)

type AssetHandler struct {
	assets service.AssetService
}

func NewAssetHandler(assets service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

type assetBody struct {
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Type              domain.AssetType `json:"type"`
	TotalQuantity     int32            `json:"total_quantity"`
	AvailableQuantity int32            `json:"available_quantity"`
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body assetBody
	if err := ParseJSON(r, &body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asset := &domain.Asset{
		Name:              body.Name,
		Description:       body.Description,
		Type:              body.Type,
		TotalQuantity:     body.TotalQuantity,
		AvailableQuantity: body.AvailableQuantity,
	}
	if err := h.assets.Add(r.Context(), claims.OrgID, asset); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	assetID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.assets.Get(r.Context(), assetID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	assetID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var body assetBody
	if err := ParseJSON(r, &body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asset := &domain.Asset{
		ID:                assetID,
		Name:              body.Name,
		Description:       body.Description,
		Type:              body.Type,
		TotalQuantity:     body.TotalQuantity,
		AvailableQuantity: body.AvailableQuantity,
	}
	if err := h.assets.AdjustInventory(r.Context(), claims.OrgID, asset); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	assetID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.assets.Remove(r.Context(), claims.OrgID, assetID); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	// Admins browse their own catalog; employees pass the sponsoring
	// organization explicitly.
	orgID := claims.OrgID
	if raw := r.URL.Query().Get("org_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "invalid org_id")
			return
		}
		orgID = int32(id)
	}

	assets, err := h.assets.ListByOrg(r.Context(), orgID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}
