package jobs

import (
	"context"

	"sandevex-hiring-backend/internal/logger"
)

// ReconcileOfferRecords retries backend record creation for every journaled
// "email sent, record pending" dispatch entry.
func (jr *JobRunner) ReconcileOfferRecords() {
	jr.runWithRecovery("ReconcileOfferRecords", func() {
		ctx := context.Background()

		resolved, err := jr.dispatch.Reconcile(ctx)
		if err != nil {
			logger.Error("Failed to reconcile dispatch journal", "error", err)
			return
		}
		if resolved > 0 {
			logger.Info("Reconciled dispatch records", "resolved", resolved)
		}
	})
}
