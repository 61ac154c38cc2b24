package jobs

import (
	"context"

	"assetdesk-backend/internal/logger"
)

// ReconcilePayments retries the capacity update for recorded payments
// whose application failed (unknown package at delivery time, transient
// store failure). A recorded payment is never dropped; this job is the
// out-of-band path that eventually lands it.
func (jr *JobRunner) ReconcilePayments() {
	jr.runWithRecovery("ReconcilePayments", func(ctx context.Context) {
		applied, err := jr.subscriptions.Reconcile(ctx)
		if err != nil {
			logger.Error("payment reconciliation failed", "error", err)
			return
		}
		if applied > 0 {
			logger.Info("payment reconciliation applied deferred capacity updates", "count", applied)
		}
	})
}

// AuditCounters scans for counter-invariant violations and logs them.
// The atomic conditional writes should make this impossible; a hit here
// means something bypassed them and needs a human.
func (jr *JobRunner) AuditCounters() {
	jr.runWithRecovery("AuditCounters", func(ctx context.Context) {
		orgs, err := jr.orgRepo.ListOverCapacity(ctx)
		if err != nil {
			logger.Error("capacity audit query failed", "error", err)
		} else {
			for _, o := range orgs {
				logger.Error("organization over capacity",
					"org_id", o.ID, "current", o.CurrentEmployeeCount, "limit", o.EmployeeLimit)
			}
		}

		assets, err := jr.assetRepo.ListInvariantViolations(ctx)
		if err != nil {
			logger.Error("inventory audit query failed", "error", err)
			return
		}
		for _, a := range assets {
			logger.Error("asset inventory out of bounds",
				"asset_id", a.ID, "available", a.AvailableQuantity, "total", a.TotalQuantity)
		}
	})
}
