package http

import (
	"net/http"
	"strconv"

	"assetdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

type RequestHandler struct {
	requests service.RequestService
}

func NewRequestHandler(requests service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

type submitRequestBody struct {
	AssetID int32  `json:"asset_id"`
	Note    string `json:"note"`
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var body submitRequestBody
	if err := ParseJSON(r, &body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rq, err := h.requests.Submit(r.Context(), claims.UserID, body.AssetID, body.Note)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, rq)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	reqs, err := h.requests.ListMine(r.Context(), claims.UserID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"requests": reqs})
}

type editNoteBody struct {
	Note string `json:"note"`
}

func (h *RequestHandler) EditNote(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body editNoteBody
	if err := ParseJSON(r, &body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.requests.EditNote(r.Context(), claims.UserID, requestID, body.Note); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.requests.Delete(r.Context(), claims.UserID, requestID); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	rq, assignment, err := h.requests.Approve(r.Context(), claims.UserID, claims.OrgID, requestID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"request":    rq,
		"assignment": assignment,
	})
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	rq, err := h.requests.Reject(r.Context(), claims.UserID, claims.OrgID, requestID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, rq)
}

func (h *RequestHandler) ListOrgRequests(w http.ResponseWriter, r *http.Request) {
	claims, err := IdentityFromContext(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	status := r.URL.Query().Get("status")
	reqs, err := h.requests.ListOrgRequests(r.Context(), claims.OrgID, status)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"requests": reqs})
}
