package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
)

// SwarmHandler handles swarm and membership reads
type SwarmHandler struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewSwarmHandler creates a new swarm handler
func NewSwarmHandler(queries db.Querier) *SwarmHandler {
	return &SwarmHandler{
		queries: queries,
		logger:  logger.Log,
	}
}

// SwarmResponse pairs a swarm with its active memberships
type SwarmResponse struct {
	Swarm       db.Swarm        `json:"swarm"`
	Memberships []db.Membership `json:"memberships"`
}

// GetSwarm returns a swarm and its active memberships in execution order.
func (h *SwarmHandler) GetSwarm(c *gin.Context) {
	swarmID, ok := parseUUIDParam(c, "swarm_id")
	if !ok {
		return
	}

	swarm, err := h.queries.GetSwarm(c.Request.Context(), swarmID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "swarm not found"})
			return
		}
		h.logger.Error("Failed to fetch swarm", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch swarm"})
		return
	}

	memberships, err := h.queries.ListActiveMembershipsBySwarm(c.Request.Context(), swarmID)
	if err != nil {
		h.logger.Error("Failed to list memberships", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list memberships"})
		return
	}

	c.JSON(http.StatusOK, SwarmResponse{
		Swarm:       swarm,
		Memberships: memberships,
	})
}
