package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/logger"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithDomainError maps the domain error taxonomy onto HTTP status
// codes. Anything unrecognized is a store failure and surfaces as a
// generic 500 without leaking internals.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrConflict):
		RespondWithError(w, http.StatusConflict, domain.ErrConflict.Error())
	case errors.Is(err, domain.ErrCapacityExceeded):
		RespondWithError(w, http.StatusConflict, domain.ErrCapacityExceeded.Error())
	case errors.Is(err, domain.ErrOutOfStock):
		RespondWithError(w, http.StatusConflict, domain.ErrOutOfStock.Error())
	case errors.Is(err, domain.ErrAlreadyReturned):
		RespondWithError(w, http.StatusConflict, domain.ErrAlreadyReturned.Error())
	default:
		logger.Error("internal error", "error", err)
		RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func ParseJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
