package http

import (
	"net/http"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/service"
)

// PaymentWebhookHandler receives the provider's "payment completed"
// notifications. Signature verification and transport security are the
// provider integration's responsibility; by the time an event lands here
// it is trusted. Redeliveries are expected and must respond 200 so the
// provider stops retrying.
type PaymentWebhookHandler struct {
	subscriptions service.SubscriptionService
}

func NewPaymentWebhookHandler(subscriptions service.SubscriptionService) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{subscriptions: subscriptions}
}

type paymentEventBody struct {
	TransactionID string `json:"transaction_id"`
	OrgID         int32  `json:"org_id"`
	PackageID     string `json:"package_id"`
	AmountCents   int32  `json:"amount_cents"`
	CompletedOn   string `json:"completed_on"`
}

func (h *PaymentWebhookHandler) HandlePaymentCompleted(w http.ResponseWriter, r *http.Request) {
	var body paymentEventBody
	if err := ParseJSON(r, &body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	event := domain.PaymentEvent{
		TransactionID: body.TransactionID,
		OrgID:         body.OrgID,
		PackageID:     body.PackageID,
		AmountCents:   body.AmountCents,
	}
	if body.CompletedOn != "" {
		completed, err := time.Parse(time.RFC3339, body.CompletedOn)
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "invalid completed_on timestamp")
			return
		}
		event.CompletedOn = completed
	}

	if err := h.subscriptions.Apply(r.Context(), event); err != nil {
		RespondWithDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}
