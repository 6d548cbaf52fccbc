package services_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

func targetsWithStatuses(statuses ...db.TargetStatus) []db.TransactionTarget {
	targets := make([]db.TransactionTarget, len(statuses))
	for i, status := range statuses {
		targets[i] = db.TransactionTarget{Status: status}
	}
	return targets
}

func TestComputeTransactionStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []db.TargetStatus
		want     db.TransactionStatus
	}{
		{
			name:     "no targets means failed",
			statuses: nil,
			want:     db.TransactionStatusFailed,
		},
		{
			name:     "all confirmed means completed",
			statuses: []db.TargetStatus{db.TargetStatusConfirmed, db.TargetStatusConfirmed, db.TargetStatusConfirmed},
			want:     db.TransactionStatusCompleted,
		},
		{
			name:     "single pending keeps processing",
			statuses: []db.TargetStatus{db.TargetStatusConfirmed, db.TargetStatusPending, db.TargetStatusFailed},
			want:     db.TransactionStatusProcessing,
		},
		{
			name:     "single submitted keeps processing",
			statuses: []db.TargetStatus{db.TargetStatusFailed, db.TargetStatusFailed, db.TargetStatusSubmitted},
			want:     db.TransactionStatusProcessing,
		},
		{
			name:     "settled mix of confirmed and failed is failed",
			statuses: []db.TargetStatus{db.TargetStatusConfirmed, db.TargetStatusFailed, db.TargetStatusConfirmed},
			want:     db.TransactionStatusFailed,
		},
		{
			name:     "all failed is failed",
			statuses: []db.TargetStatus{db.TargetStatusFailed, db.TargetStatusFailed},
			want:     db.TransactionStatusFailed,
		},
		{
			name:     "single confirmed is completed",
			statuses: []db.TargetStatus{db.TargetStatusConfirmed},
			want:     db.TransactionStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeTransactionStatus(targetsWithStatuses(tt.statuses...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTransactionStatusOrderIndependent(t *testing.T) {
	statuses := []db.TargetStatus{
		db.TargetStatusConfirmed,
		db.TargetStatusFailed,
		db.TargetStatusSubmitted,
		db.TargetStatusPending,
		db.TargetStatusConfirmed,
	}

	want := services.ComputeTransactionStatus(targetsWithStatuses(statuses...))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]db.TargetStatus, len(statuses))
		copy(shuffled, statuses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := services.ComputeTransactionStatus(targetsWithStatuses(shuffled...))
		assert.Equal(t, want, got)
	}
}
