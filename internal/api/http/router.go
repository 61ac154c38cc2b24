package http

import (
	"net/http"

	"assetdesk-backend/internal/security"
	"assetdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles the service dependencies the router wires up.
type Services struct {
	Requests      service.RequestService
	Assets        service.AssetService
	Assignments   service.AssignmentService
	Affiliations  service.AffiliationService
	Subscriptions service.SubscriptionService
}

// NewRouter builds the full API surface. The payment webhook and the
// health check stay outside the bearer-auth subrouter.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RecoveryMiddleware, RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	webhooks := NewPaymentWebhookHandler(svcs.Subscriptions)
	r.HandleFunc("/api/v1/webhooks/payment", webhooks.HandlePaymentCompleted).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	requests := NewRequestHandler(svcs.Requests)
	api.HandleFunc("/requests", requests.Submit).Methods("POST")
	api.HandleFunc("/requests/mine", requests.ListMine).Methods("GET")
	api.HandleFunc("/requests/{id:[0-9]+}/note", requests.EditNote).Methods("PATCH")
	api.HandleFunc("/requests/{id:[0-9]+}", requests.Delete).Methods("DELETE")
	api.HandleFunc("/requests/{id:[0-9]+}/approve", RequireAdmin(requests.Approve)).Methods("POST")
	api.HandleFunc("/requests/{id:[0-9]+}/reject", RequireAdmin(requests.Reject)).Methods("POST")
	api.HandleFunc("/org/requests", RequireAdmin(requests.ListOrgRequests)).Methods("GET")

	assignments := NewAssignmentHandler(svcs.Assignments)
	api.HandleFunc("/assignments/mine", assignments.ListMine).Methods("GET")
	api.HandleFunc("/assignments/{id:[0-9]+}/return", assignments.Return).Methods("POST")

	assets := NewAssetHandler(svcs.Assets)
	api.HandleFunc("/assets", assets.List).Methods("GET")
	api.HandleFunc("/assets", RequireAdmin(assets.Create)).Methods("POST")
	api.HandleFunc("/assets/{id:[0-9]+}", assets.Get).Methods("GET")
	api.HandleFunc("/assets/{id:[0-9]+}", RequireAdmin(assets.Update)).Methods("PUT")
	api.HandleFunc("/assets/{id:[0-9]+}", RequireAdmin(assets.Delete)).Methods("DELETE")

	admin := NewAdminHandler(svcs.Affiliations, svcs.Subscriptions)
	api.HandleFunc("/org/employees", RequireAdmin(admin.ListEmployees)).Methods("GET")
	api.HandleFunc("/org/employees/{employeeID:[0-9]+}", RequireAdmin(admin.DeactivateEmployee)).Methods("DELETE")
	api.HandleFunc("/org/payments", RequireAdmin(admin.ListPayments)).Methods("GET")
	api.HandleFunc("/packages", admin.ListPackages).Methods("GET")

	return r
}
