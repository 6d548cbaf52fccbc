package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/services"
	"github.com/cyphera/swarm-api/internal/template"
)

// TransactionHandler handles swarm transaction operations
type TransactionHandler struct {
	transactions *services.TransactionService
	logger       *zap.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactions *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger.Log,
	}
}

// CreateTransaction accepts a raw action payload for a swarm, validates it,
// and kicks off batch execution. The response is the PENDING transaction;
// clients poll GetTransaction for progress.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	swarmID, ok := parseUUIDParam(c, "swarm_id")
	if !ok {
		return
	}

	rawAction, err := io.ReadAll(c.Request.Body)
	if err != nil || len(rawAction) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body is required"})
		return
	}
	if !json.Valid(rawAction) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be valid JSON"})
		return
	}

	txn, err := h.transactions.CreateAndExecute(c.Request.Context(), swarmID, rawAction)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, txn)
}

func (h *TransactionHandler) respondCreateError(c *gin.Context, err error) {
	var validationErr *template.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
	case errors.Is(err, services.ErrSwarmNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "swarm not found"})
	case errors.Is(err, services.ErrSignoffRequired):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "transaction requires member sign-off"})
	default:
		h.logger.Error("Failed to create transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create transaction"})
	}
}

// PreviewSwap computes the per-wallet swap plan without executing or
// persisting anything.
func (h *TransactionHandler) PreviewSwap(c *gin.Context) {
	swarmID, ok := parseUUIDParam(c, "swarm_id")
	if !ok {
		return
	}

	rawAction, err := io.ReadAll(c.Request.Body)
	if err != nil || len(rawAction) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body is required"})
		return
	}

	plan, err := h.transactions.PreviewSwap(c.Request.Context(), swarmID, rawAction)
	if err != nil {
		var validationErr *template.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
		case errors.Is(err, services.ErrSwarmNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "swarm not found"})
		default:
			h.logger.Error("Failed to preview swap", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to preview swap"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetTransaction returns a transaction and its per-wallet targets.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseUUIDParam(c, "transaction_id")
	if !ok {
		return
	}

	result, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "transaction not found"})
			return
		}
		h.logger.Error("Failed to fetch transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch transaction"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTransactions returns a swarm's transactions, newest first.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	swarmID, ok := parseUUIDParam(c, "swarm_id")
	if !ok {
		return
	}

	txns, err := h.transactions.ListBySwarm(c.Request.Context(), swarmID)
	if err != nil {
		if errors.Is(err, services.ErrSwarmNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "swarm not found"})
			return
		}
		h.logger.Error("Failed to list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// ResendTransaction replays a settled transaction's template as a new
// transaction against current balances.
func (h *TransactionHandler) ResendTransaction(c *gin.Context) {
	id, ok := parseUUIDParam(c, "transaction_id")
	if !ok {
		return
	}

	txn, err := h.transactions.Resend(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "transaction not found"})
		case errors.Is(err, services.ErrSignoffRequired):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "transaction requires member sign-off"})
		case errors.Is(err, services.ErrTransactionInFlight):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("Failed to resend transaction", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resend transaction"})
		}
		return
	}

	c.JSON(http.StatusAccepted, txn)
}
