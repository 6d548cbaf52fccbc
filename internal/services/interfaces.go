package services

import (
	"context"
	"math/big"

	"github.com/cyphera/swarm-api/internal/client/aggregator"
	"github.com/cyphera/swarm-api/internal/client/signer"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/placeholder"
)

// TxRunner executes fn against a transactional view of the store so
// multi-statement updates commit or roll back together. A nil runner executes
// fn directly against the base queries, without a transaction.
type TxRunner func(ctx context.Context, fn func(q db.Querier) error) error

// WalletContextProvider supplies the per-wallet state templates resolve
// against, plus allowance reads for swap approvals.
type WalletContextProvider interface {
	GetWalletContext(ctx context.Context, walletAddress string, tokenAddresses []string) (*placeholder.WalletContext, error)
	Allowance(ctx context.Context, tokenAddress, owner, spender string) (*big.Int, error)
}

// SwapAggregator prices and builds per-wallet swap legs.
type SwapAggregator interface {
	GetSwapExecuteData(ctx context.Context, requests []aggregator.QuoteRequest) ([]aggregator.QuoteResult, error)
}

// SignerProvider hands out the shared signing credential. Each execution
// reconstructs its own signing context.
type SignerProvider interface {
	SessionSigner(ctx context.Context) (signer.Signer, error)
}
