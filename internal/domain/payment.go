package domain

import "time"

// Payment is the immutable record of one completed provider transaction.
// The unique transaction ID is the idempotency guard for webhook
// redelivery. AppliedOn is nil until the capacity update has landed;
// the reconciliation job scans for such rows.
type Payment struct {
	ID            int32      `json:"id"`
	TransactionID string     `json:"transaction_id"`
	OrgID         int32      `json:"org_id"`
	PackageID     string     `json:"package_id"`
	AmountCents   int32      `json:"amount_cents"`
	CompletedOn   time.Time  `json:"completed_on"`
	AppliedOn     *time.Time `json:"applied_on,omitempty"`
}

// PaymentEvent is the provider's "payment completed" notification as
// delivered to the webhook. Signature verification happens upstream.
type PaymentEvent struct {
	TransactionID string    `json:"transaction_id"`
	OrgID         int32     `json:"org_id"`
	PackageID     string    `json:"package_id"`
	AmountCents   int32     `json:"amount_cents"`
	CompletedOn   time.Time `json:"completed_on"`
}

// SubscriptionPackage maps a provider package ID to the capacity it buys.
type SubscriptionPackage struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EmployeeLimit int32  `json:"employee_limit"`
	Tier          string `json:"tier"`
	PriceCents    int32  `json:"price_cents"`
}
