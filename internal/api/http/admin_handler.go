package http

import (
	"net/http"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/service"
)

// AdminHandler serves the organization-scoped administrative projections:
// active employees, their deactivation, and the payment history.
type AdminHandler struct {
	affiliations  service.AffiliationService
	subscriptions service.SubscriptionService
}

func NewAdminHandler(affiliations service.AffiliationService, subscriptions service.SubscriptionService) *AdminHandler {
	return &AdminHandler{
		affiliations:  affiliations,
		subscriptions: subscriptions,
	}
}

type orgMember struct {
	Employee    domain.User        `json:"employee"`
	Affiliation domain.Affiliation `json:"affiliation"`
}

func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	affiliations, users, err := h.affiliations.ListActiveEmployees(r.Context(), claims.OrgID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	members := make([]orgMember, 0, len(affiliations))
	for i := range affiliations {
		members = append(members, orgMember{Employee: users[i], Affiliation: affiliations[i]})
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"employees": members})
}

func (h *AdminHandler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	employeeID, err := pathID(r, "employeeID")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.affiliations.Deactivate(r.Context(), claims.OrgID, employeeID); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	payments, err := h.subscriptions.ListOrgPayments(r.Context(), claims.OrgID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}

func (h *AdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.subscriptions.ListPackages(r.Context())
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"packages": packages})
}
