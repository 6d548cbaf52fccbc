package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/client/attestation"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/template"
)

// ErrSignoffRequired is returned when a swarm requires member sign-off and
// the action has not collected enough attestations yet.
var ErrSignoffRequired = errors.New("transaction requires member sign-off")

// ErrSwarmNotFound is returned when the referenced swarm does not exist.
var ErrSwarmNotFound = errors.New("swarm not found")

// ErrTransactionNotFound is returned when the referenced transaction does not
// exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrTransactionInFlight is returned when a resend is requested for a
// transaction that has not settled yet.
var ErrTransactionInFlight = errors.New("transaction is still in flight")

// Executor runs the per-wallet batch for a transaction.
type Executor interface {
	ExecuteTransaction(ctx context.Context, txn db.Transaction) error
}

// TransactionService is the ingress for swarm transactions: it validates the
// action, applies sign-off gating, persists the transaction, and hands it to
// the executor in the background.
type TransactionService struct {
	queries     db.Querier
	executor    Executor
	swapPlans   *SwapPlanService
	attestation attestation.Checker
	logger      *zap.Logger
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(queries db.Querier, executor Executor, swapPlans *SwapPlanService, att attestation.Checker) *TransactionService {
	return &TransactionService{
		queries:     queries,
		executor:    executor,
		swapPlans:   swapPlans,
		attestation: att,
		logger:      logger.Log,
	}
}

// TransactionWithTargets pairs a transaction with its current target rows.
type TransactionWithTargets struct {
	Transaction db.Transaction         `json:"transaction"`
	Targets     []db.TransactionTarget `json:"targets"`
}

// CreateAndExecute validates the raw action, checks sign-off when the swarm
// requires it, persists the transaction, and starts execution in the
// background. The returned transaction is PENDING; callers poll for
// progress.
func (s *TransactionService) CreateAndExecute(ctx context.Context, swarmID uuid.UUID, rawAction []byte) (*db.Transaction, error) {
	if _, err := template.DecodeAction(rawAction); err != nil {
		return nil, err
	}

	swarm, err := s.queries.GetSwarm(ctx, swarmID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSwarmNotFound
		}
		return nil, fmt.Errorf("failed to fetch swarm: %w", err)
	}

	if swarm.RequiresSignoff {
		status, err := s.attestation.IsApproved(ctx, ActionDigest(rawAction))
		if err != nil {
			return nil, fmt.Errorf("failed to check sign-off status: %w", err)
		}
		if !status.Approved {
			s.logger.Info("Transaction blocked pending sign-off",
				zap.String("swarm_id", swarmID.String()),
				zap.Int("confirmations", status.Confirmations),
				zap.Int("threshold", status.Threshold),
			)
			return nil, ErrSignoffRequired
		}
	}

	txn, err := s.queries.CreateTransaction(ctx, db.CreateTransactionParams{
		SwarmID:  swarmID,
		Template: rawAction,
		Status:   db.TransactionStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Created transaction",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("swarm_id", swarmID.String()),
	)

	go s.runExecution(txn)

	return &txn, nil
}

// runExecution drives the executor outside the request context. A critical
// executor error means no per-wallet work happened, so the transaction is
// marked FAILED outright; already-settled targets are never rewritten.
func (s *TransactionService) runExecution(txn db.Transaction) {
	ctx := context.Background()

	if err := s.executor.ExecuteTransaction(ctx, txn); err != nil {
		s.logger.Error("Transaction execution failed",
			zap.String("transaction_id", txn.ID.String()),
			zap.Error(err),
		)
		if _, updateErr := s.queries.UpdateTransactionStatus(ctx, db.UpdateTransactionStatusParams{
			ID:     txn.ID,
			Status: db.TransactionStatusFailed,
		}); updateErr != nil {
			s.logger.Error("Failed to mark transaction failed",
				zap.String("transaction_id", txn.ID.String()),
				zap.Error(updateErr),
			)
		}
	}
}

// PreviewSwap builds the swap plan without persisting anything. Preview and
// execution share the same computation, so a preview is an exact dry run of
// the amounts execution would use against the same balances.
func (s *TransactionService) PreviewSwap(ctx context.Context, swarmID uuid.UUID, rawAction []byte) (*SwapPlan, error) {
	action, err := template.DecodeAction(rawAction)
	if err != nil {
		return nil, err
	}
	if action.Type != template.ActionTypeSwap {
		return nil, &template.ValidationError{Reason: "preview is only supported for swap actions"}
	}

	if _, err := s.queries.GetSwarm(ctx, swarmID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSwarmNotFound
		}
		return nil, fmt.Errorf("failed to fetch swarm: %w", err)
	}

	return s.swapPlans.BuildPlan(ctx, swarmID, action.Swap)
}

// Get returns a transaction with its targets.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*TransactionWithTargets, error) {
	txn, err := s.queries.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	targets, err := s.queries.ListTargetsByTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	return &TransactionWithTargets{Transaction: txn, Targets: targets}, nil
}

// ListBySwarm returns the swarm's transactions, newest first.
func (s *TransactionService) ListBySwarm(ctx context.Context, swarmID uuid.UUID) ([]db.Transaction, error) {
	if _, err := s.queries.GetSwarm(ctx, swarmID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSwarmNotFound
		}
		return nil, fmt.Errorf("failed to fetch swarm: %w", err)
	}

	txns, err := s.queries.ListTransactionsBySwarm(ctx, swarmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// Resend replays a finished transaction's template as a brand new
// transaction. It is a replay, not a retry: amounts re-resolve against
// current balances, and the old transaction and its targets are untouched.
func (s *TransactionService) Resend(ctx context.Context, id uuid.UUID) (*db.Transaction, error) {
	original, err := s.queries.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	if original.Status == db.TransactionStatusPending || original.Status == db.TransactionStatusProcessing {
		return nil, fmt.Errorf("transaction %s is still %s: %w", id, original.Status, ErrTransactionInFlight)
	}

	return s.CreateAndExecute(ctx, original.SwarmID, original.Template)
}

// ActionDigest is the stable identifier members attest against: the hex
// SHA-256 of the raw action bytes.
func ActionDigest(rawAction []byte) string {
	sum := sha256.Sum256(rawAction)
	return hex.EncodeToString(sum[:])
}
