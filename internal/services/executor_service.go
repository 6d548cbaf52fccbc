package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/client/chain"
	"github.com/cyphera/swarm-api/internal/client/signer"
	"github.com/cyphera/swarm-api/internal/client/userop"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/template"
)

// DefaultConfirmTimeout bounds the inline wait for each user operation
// receipt. A target still unconfirmed after this stays SUBMITTED and is
// picked up by the reconciler.
const DefaultConfirmTimeout = 60 * time.Second

// ExecutorService fans a transaction out across the swarm's active wallets.
// Wallets are processed sequentially; one wallet's failure never aborts the
// rest of the batch. Only failures before any per-wallet work starts (signer,
// membership listing, persistence of the transaction itself) abort the run.
type ExecutorService struct {
	queries        db.Querier
	contexts       WalletContextProvider
	signers        SignerProvider
	submissions    userop.Factory
	swapPlans      *SwapPlanService
	confirmTimeout time.Duration
	runTx          TxRunner
	logger         *zap.Logger
}

// NewExecutorService creates a new executor service.
func NewExecutorService(
	queries db.Querier,
	contexts WalletContextProvider,
	signers SignerProvider,
	submissions userop.Factory,
	swapPlans *SwapPlanService,
	confirmTimeout time.Duration,
	runTx TxRunner,
) *ExecutorService {
	if confirmTimeout <= 0 {
		confirmTimeout = DefaultConfirmTimeout
	}
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(q db.Querier) error) error {
			return fn(queries)
		}
	}
	return &ExecutorService{
		queries:        queries,
		contexts:       contexts,
		signers:        signers,
		submissions:    submissions,
		swapPlans:      swapPlans,
		confirmTimeout: confirmTimeout,
		runTx:          runTx,
		logger:         logger.Log,
	}
}

// ExecuteTransaction runs the full batch for one transaction. A returned
// error means the batch never got to per-wallet processing; the caller is
// responsible for marking the transaction FAILED. Per-wallet failures are
// absorbed into target rows and reflected in the recomputed status.
func (s *ExecutorService) ExecuteTransaction(ctx context.Context, txn db.Transaction) error {
	action, err := template.DecodeAction(txn.Template)
	if err != nil {
		return fmt.Errorf("stored template failed validation: %w", err)
	}

	if _, err := s.queries.UpdateTransactionStatus(ctx, db.UpdateTransactionStatusParams{
		ID:     txn.ID,
		Status: db.TransactionStatusProcessing,
	}); err != nil {
		return fmt.Errorf("failed to mark transaction processing: %w", err)
	}

	sess, err := s.signers.SessionSigner(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain session signer: %w", err)
	}

	s.logger.Info("Executing transaction",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("swarm_id", txn.SwarmID.String()),
		zap.String("action_type", string(action.Type)),
	)

	switch action.Type {
	case template.ActionTypeCall:
		err = s.executeCallAction(ctx, txn, action.Call, sess)
	case template.ActionTypeSwap:
		err = s.executeSwapAction(ctx, txn, action.Swap, sess)
	default:
		err = fmt.Errorf("unknown action type %q", action.Type)
	}
	if err != nil {
		return err
	}

	return s.recomputeStatus(ctx, txn)
}

func (s *ExecutorService) executeCallAction(ctx context.Context, txn db.Transaction, tmpl *template.TransactionTemplate, sess signer.Signer) error {
	memberships, err := s.queries.ListActiveMembershipsBySwarm(ctx, txn.SwarmID)
	if err != nil {
		return fmt.Errorf("failed to list active memberships: %w", err)
	}

	requiredTokens := template.RequiredTokenAddresses(tmpl)

	for _, membership := range memberships {
		target, err := s.queries.CreateTransactionTarget(ctx, db.CreateTransactionTargetParams{
			TransactionID: txn.ID,
			MembershipID:  membership.ID,
			Status:        db.TargetStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create target for wallet %s: %w", membership.WalletAddress, err)
		}

		s.processCallTarget(ctx, target, membership.WalletAddress, tmpl, requiredTokens, sess)

		if err := s.recomputeStatus(ctx, txn); err != nil {
			s.logger.Error("Failed to recompute transaction status",
				zap.String("transaction_id", txn.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// processCallTarget resolves and submits one wallet's call. All failures are
// absorbed into the target row.
func (s *ExecutorService) processCallTarget(ctx context.Context, target db.TransactionTarget, walletAddress string, tmpl *template.TransactionTemplate, requiredTokens []string, sess signer.Signer) {
	wctx, err := s.contexts.GetWalletContext(ctx, walletAddress, requiredTokens)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to fetch wallet context: %v", err))
		return
	}

	resolved, err := template.Resolve(tmpl, wctx)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to resolve template: %v", err))
		return
	}

	payload, err := json.Marshal(resolved)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to serialize resolved call: %v", err))
		return
	}
	if _, err := s.queries.UpdateTargetResolvedData(ctx, db.UpdateTargetResolvedDataParams{
		ID:             target.ID,
		ResolvedTxData: payload,
	}); err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to persist resolved call: %v", err))
		return
	}

	s.submitCalls(ctx, target, walletAddress, sess, []userop.Call{{
		To:    resolved.To,
		Value: resolved.Value,
		Data:  resolved.Data,
	}})
}

func (s *ExecutorService) executeSwapAction(ctx context.Context, txn db.Transaction, action *template.SwapAction, sess signer.Signer) error {
	plan, err := s.swapPlans.BuildPlan(ctx, txn.SwarmID, action)
	if err != nil {
		return fmt.Errorf("failed to build swap plan: %w", err)
	}

	for _, entry := range plan.Entries {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to serialize plan entry for wallet %s: %w", entry.WalletAddress, err)
		}

		params := db.CreateTransactionTargetParams{
			TransactionID:  txn.ID,
			MembershipID:   entry.MembershipID,
			ResolvedTxData: payload,
			Status:         db.TargetStatusPending,
		}
		if entry.Error != "" {
			// The plan already rejected this wallet; record the outcome
			// without touching the chain.
			params.Status = db.TargetStatusFailed
			params.Error = pgtype.Text{String: entry.Error, Valid: true}
		}

		target, err := s.queries.CreateTransactionTarget(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to create target for wallet %s: %w", entry.WalletAddress, err)
		}

		if entry.Error == "" {
			s.processSwapTarget(ctx, target, action, entry, sess)
		}

		if err := s.recomputeStatus(ctx, txn); err != nil {
			s.logger.Error("Failed to recompute transaction status",
				zap.String("transaction_id", txn.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// processSwapTarget checks the sell-token allowance, prepends an approve call
// when it is short, and submits the leg.
func (s *ExecutorService) processSwapTarget(ctx context.Context, target db.TransactionTarget, action *template.SwapAction, entry *SwapPlanEntry, sess signer.Signer) {
	var calls []userop.Call

	if entry.AllowanceTarget != "" {
		current, err := s.contexts.Allowance(ctx, action.SellToken, entry.WalletAddress, entry.AllowanceTarget)
		if err != nil {
			s.failTarget(ctx, target, fmt.Sprintf("failed to check allowance: %v", err))
			return
		}
		if current.Cmp(entry.SellAmount) < 0 {
			approveData, err := chain.PackApprove(entry.AllowanceTarget)
			if err != nil {
				s.failTarget(ctx, target, fmt.Sprintf("failed to encode approve call: %v", err))
				return
			}
			calls = append(calls, userop.Call{To: action.SellToken, Data: approveData})
		}
	}

	calls = append(calls, userop.Call{
		To:    entry.To,
		Value: entry.Value,
		Data:  entry.Data,
	})

	s.submitCalls(ctx, target, entry.WalletAddress, sess, calls)
}

// submitCalls drives one target through submission and the inline
// confirmation wait. A receipt timeout leaves the target SUBMITTED for the
// reconciler.
func (s *ExecutorService) submitCalls(ctx context.Context, target db.TransactionTarget, walletAddress string, sess signer.Signer, calls []userop.Call) {
	client, err := s.submissions.ForWallet(ctx, walletAddress, sess)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to build submission client: %v", err))
		return
	}

	callData, err := client.EncodeCalls(calls)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to encode batch: %v", err))
		return
	}

	userOpHash, err := client.SendUserOperation(ctx, callData)
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to submit user operation: %v", err))
		return
	}

	if _, err := s.queries.UpdateTargetSubmitted(ctx, db.UpdateTargetSubmittedParams{
		ID:         target.ID,
		UserOpHash: pgtype.Text{String: userOpHash, Valid: true},
	}); err != nil {
		s.logger.Error("Failed to record user operation hash",
			zap.String("target_id", target.ID.String()),
			zap.String("user_op_hash", userOpHash),
			zap.Error(err),
		)
		return
	}

	receipt, err := client.WaitForReceipt(ctx, userOpHash, s.confirmTimeout)
	if errors.Is(err, userop.ErrReceiptTimeout) {
		s.logger.Info("Receipt wait timed out, leaving target submitted",
			zap.String("target_id", target.ID.String()),
			zap.String("user_op_hash", userOpHash),
		)
		return
	}
	if err != nil {
		s.failTarget(ctx, target, fmt.Sprintf("failed to fetch receipt: %v", err))
		return
	}
	if !receipt.Success {
		s.failTarget(ctx, target, "user operation reverted on chain")
		return
	}

	if _, err := s.queries.ConfirmSubmittedTarget(ctx, db.ConfirmSubmittedTargetParams{
		ID:     target.ID,
		TxHash: pgtype.Text{String: receipt.TransactionHash, Valid: true},
	}); err != nil {
		s.logger.Error("Failed to confirm target",
			zap.String("target_id", target.ID.String()),
			zap.String("tx_hash", receipt.TransactionHash),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Target confirmed",
		zap.String("target_id", target.ID.String()),
		zap.String("wallet_address", walletAddress),
		zap.String("tx_hash", receipt.TransactionHash),
	)
}

func (s *ExecutorService) failTarget(ctx context.Context, target db.TransactionTarget, reason string) {
	s.logger.Warn("Target failed",
		zap.String("target_id", target.ID.String()),
		zap.String("reason", reason),
	)
	if _, err := s.queries.UpdateTargetFailed(ctx, db.UpdateTargetFailedParams{
		ID:    target.ID,
		Error: pgtype.Text{String: reason, Valid: true},
	}); err != nil {
		s.logger.Error("Failed to record target failure",
			zap.String("target_id", target.ID.String()),
			zap.Error(err),
		)
	}
}

// recomputeStatus re-derives the transaction status from the full current
// target set. The read and the write run in one database transaction so a
// concurrent sweep cannot interleave a stale aggregate between them.
func (s *ExecutorService) recomputeStatus(ctx context.Context, txn db.Transaction) error {
	return s.runTx(ctx, func(q db.Querier) error {
		targets, err := q.ListTargetsByTransaction(ctx, txn.ID)
		if err != nil {
			return fmt.Errorf("failed to list targets: %w", err)
		}

		if _, err := q.UpdateTransactionStatus(ctx, db.UpdateTransactionStatusParams{
			ID:     txn.ID,
			Status: ComputeTransactionStatus(targets),
		}); err != nil {
			return fmt.Errorf("failed to update transaction status: %w", err)
		}
		return nil
	})
}
