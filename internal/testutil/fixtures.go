package testutil

import (
	"math/big"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/placeholder"
)

// CreateTestSwarm creates a swarm row for unit tests
func CreateTestSwarm(name string, requiresSignoff bool) db.Swarm {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return db.Swarm{
		ID:              uuid.New(),
		Name:            name,
		RequiresSignoff: requiresSignoff,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CreateTestMembership creates an active membership row for unit tests
func CreateTestMembership(swarmID uuid.UUID, walletAddress string) db.Membership {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return db.Membership{
		ID:            uuid.New(),
		SwarmID:       swarmID,
		WalletAddress: walletAddress,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateTestTransaction creates a transaction row for unit tests
func CreateTestTransaction(swarmID uuid.UUID, template []byte, status db.TransactionStatus) db.Transaction {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return db.Transaction{
		ID:        uuid.New(),
		SwarmID:   swarmID,
		Template:  template,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestTarget creates a transaction target row for unit tests
func CreateTestTarget(transactionID, membershipID uuid.UUID, status db.TargetStatus) db.TransactionTarget {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return db.TransactionTarget{
		ID:            uuid.New(),
		TransactionID: transactionID,
		MembershipID:  membershipID,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateTestWalletContext creates a wallet context with the given ETH balance
// and token balances keyed by address
func CreateTestWalletContext(walletAddress string, ethBalance *big.Int, tokenBalances map[string]*big.Int) *placeholder.WalletContext {
	return placeholder.NewWalletContext(walletAddress, ethBalance, tokenBalances, uint64(time.Now().Unix()))
}

// DumpOnFailure logs a full dump of value if the test ends up failing
func DumpOnFailure(t *testing.T, label string, value interface{}) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("%s:\n%s", label, spew.Sdump(value))
		}
	})
}
