package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/client/signer"
	"github.com/cyphera/swarm-api/internal/client/userop"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
)

const (
	// DefaultReconcileInterval is how often the reconciler sweeps for
	// targets left SUBMITTED by an executor whose inline wait ran out.
	DefaultReconcileInterval = 30 * time.Second

	// sweepReceiptTimeout bounds each receipt lookup inside a sweep. The
	// sweep is a quick poll, not a long wait; an operation not yet mined
	// stays SUBMITTED until a later pass.
	sweepReceiptTimeout = 5 * time.Second
)

// ReconcilerService is the background sweep that drives SUBMITTED targets to
// their terminal state once their user operations land on chain.
type ReconcilerService struct {
	queries     db.Querier
	signers     SignerProvider
	submissions userop.Factory
	interval    time.Duration
	runTx       TxRunner
	logger      *zap.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewReconcilerService creates a new reconciler sweeping at the given
// interval.
func NewReconcilerService(queries db.Querier, signers SignerProvider, submissions userop.Factory, interval time.Duration, runTx TxRunner) *ReconcilerService {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(q db.Querier) error) error {
			return fn(queries)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ReconcilerService{
		queries:     queries,
		signers:     signers,
		submissions: submissions,
		interval:    interval,
		runTx:       runTx,
		logger:      logger.Log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the sweep loop.
func (r *ReconcilerService) Start() {
	r.logger.Info("Starting reconciler", zap.Duration("interval", r.interval))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.ctx.Done():
				r.logger.Info("Reconciler stopped")
				return
			case <-ticker.C:
				r.Sweep(r.ctx)
			}
		}
	}()
}

// Stop stops the sweep loop and waits for an in-flight sweep to finish.
func (r *ReconcilerService) Stop() {
	r.logger.Info("Stopping reconciler")
	r.cancel()
	r.wg.Wait()
}

// Sweep checks every SUBMITTED target's user operation once and settles the
// ones that have landed. Each target is handled independently; one failing
// lookup never stops the rest.
func (r *ReconcilerService) Sweep(ctx context.Context) {
	targets, err := r.queries.ListSubmittedTargets(ctx)
	if err != nil {
		r.logger.Error("Failed to list submitted targets", zap.Error(err))
		return
	}
	if len(targets) == 0 {
		return
	}

	r.logger.Debug("Sweeping submitted targets", zap.Int("count", len(targets)))

	sess, err := r.signers.SessionSigner(ctx)
	if err != nil {
		r.logger.Error("Failed to obtain session signer for sweep", zap.Error(err))
		return
	}

	touched := make(map[uuid.UUID]struct{})
	for _, target := range targets {
		if r.reconcileTarget(ctx, target, sess) {
			touched[target.TransactionID] = struct{}{}
		}
	}

	for transactionID := range touched {
		if err := r.recomputeStatus(ctx, transactionID); err != nil {
			r.logger.Error("Failed to recompute transaction status after sweep",
				zap.String("transaction_id", transactionID.String()),
				zap.Error(err),
			)
		}
	}
}

// reconcileTarget reports whether the target's state changed.
func (r *ReconcilerService) reconcileTarget(ctx context.Context, target db.ListSubmittedTargetsRow, sess signer.Signer) bool {
	client, err := r.submissions.ForWallet(ctx, target.WalletAddress, sess)
	if err != nil {
		r.logger.Error("Failed to build submission client for sweep",
			zap.String("target_id", target.ID.String()),
			zap.Error(err),
		)
		return false
	}

	receipt, err := client.WaitForReceipt(ctx, target.UserOpHash.String, sweepReceiptTimeout)
	if errors.Is(err, userop.ErrReceiptTimeout) {
		// Still in flight; the next sweep will look again.
		return false
	}
	if err != nil {
		r.logger.Error("Failed to fetch receipt during sweep",
			zap.String("target_id", target.ID.String()),
			zap.String("user_op_hash", target.UserOpHash.String),
			zap.Error(err),
		)
		return false
	}

	if !receipt.Success {
		if _, err := r.queries.UpdateTargetFailed(ctx, db.UpdateTargetFailedParams{
			ID:    target.ID,
			Error: pgtype.Text{String: "user operation reverted on chain", Valid: true},
		}); err != nil {
			r.logger.Error("Failed to record reverted target",
				zap.String("target_id", target.ID.String()),
				zap.Error(err),
			)
			return false
		}
		return true
	}

	if _, err := r.queries.ConfirmSubmittedTarget(ctx, db.ConfirmSubmittedTargetParams{
		ID:     target.ID,
		TxHash: pgtype.Text{String: receipt.TransactionHash, Valid: true},
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already settled by the executor between listing and here.
			return false
		}
		r.logger.Error("Failed to confirm target during sweep",
			zap.String("target_id", target.ID.String()),
			zap.Error(err),
		)
		return false
	}

	r.logger.Info("Reconciled target",
		zap.String("target_id", target.ID.String()),
		zap.String("tx_hash", receipt.TransactionHash),
	)
	return true
}

// recomputeStatus runs the list-then-update pair in one database transaction
// so it cannot interleave with a concurrent executor recompute.
func (r *ReconcilerService) recomputeStatus(ctx context.Context, transactionID uuid.UUID) error {
	return r.runTx(ctx, func(q db.Querier) error {
		targets, err := q.ListTargetsByTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		_, err = q.UpdateTransactionStatus(ctx, db.UpdateTransactionStatusParams{
			ID:     transactionID,
			Status: ComputeTransactionStatus(targets),
		})
		return err
	})
}
