package http

import (
	"net/http"

	"assetdesk-backend/internal/service"
)

type AssignmentHandler struct {
	assignments service.AssignmentService
}

func NewAssignmentHandler(assignments service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

func (h *AssignmentHandler) Return(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	assignmentID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	returned, err := h.assignments.Return(r.Context(), claims.UserID, assignmentID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, returned)
}

func (h *AssignmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	assignments, err := h.assignments.ListMine(r.Context(), claims.UserID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"assignments": assignments})
}
