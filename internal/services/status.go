package services

import "github.com/cyphera/swarm-api/internal/db"

// ComputeTransactionStatus reduces the full current target set into one
// transaction status. The reduction is pure and order-independent, so it can
// be recomputed from scratch after every target mutation regardless of
// interleaving. Precedence, first match wins:
//
//  1. any target still PENDING or SUBMITTED -> PROCESSING
//  2. any target FAILED and not all CONFIRMED -> FAILED
//  3. otherwise -> COMPLETED
//
// A transaction with no targets at all (every wallet failed before a target
// could resolve) is FAILED, never COMPLETED.
func ComputeTransactionStatus(targets []db.TransactionTarget) db.TransactionStatus {
	if len(targets) == 0 {
		return db.TransactionStatusFailed
	}

	anyInFlight := false
	anyFailed := false
	allConfirmed := true

	for _, target := range targets {
		switch target.Status {
		case db.TargetStatusPending, db.TargetStatusSubmitted:
			anyInFlight = true
			allConfirmed = false
		case db.TargetStatusFailed:
			anyFailed = true
			allConfirmed = false
		case db.TargetStatusConfirmed:
		}
	}

	if anyInFlight {
		return db.TransactionStatusProcessing
	}
	if anyFailed && !allConfirmed {
		return db.TransactionStatusFailed
	}
	return db.TransactionStatusCompleted
}
