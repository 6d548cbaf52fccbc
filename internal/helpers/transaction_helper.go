package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes a function within a database transaction.
// It automatically handles commit/rollback based on the error returned by the function.
// If the function returns an error, the transaction is rolled back.
// If the function returns nil, the transaction is committed.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	// Start transaction
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure we always attempt to finalize the transaction
	defer func() {
		// If transaction is already closed (committed), rollback will return ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
			)
		}
	}()

	// Execute the function
	if err := fn(tx); err != nil {
		// Function returned error, transaction will be rolled back by defer
		return fmt.Errorf("transaction failed: %w", err)
	}

	// Commit the transaction
	if err := tx.Commit(ctx); err != nil {
		// Commit failed, transaction will be rolled back by defer
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Success - transaction is committed
	return nil
}
