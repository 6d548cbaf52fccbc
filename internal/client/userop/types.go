// Package userop submits batched calls through EIP-4337 smart accounts via a
// bundler, co-signed by the shared network signer.
package userop

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cyphera/swarm-api/internal/client/signer"
)

// ErrReceiptTimeout is returned when a confirmation wait runs out before the
// operation lands on chain. It is not a failure: the operation may still be
// confirmed by a later reconciliation sweep.
var ErrReceiptTimeout = errors.New("timed out waiting for user operation receipt")

// Call is one concrete contract call inside a user operation batch.
type Call struct {
	To    string   `json:"to"`
	Value *big.Int `json:"value"`
	Data  string   `json:"data"`
}

// Receipt is the confirmed outcome of a user operation.
type Receipt struct {
	UserOpHash      string `json:"userOpHash"`
	TransactionHash string `json:"transactionHash"`
	Success         bool   `json:"success"`
}

// UserOperation is the EIP-4337 wire shape sent to the bundler.
type UserOperation struct {
	Sender               common.Address `json:"sender"`
	Nonce                string         `json:"nonce"`
	InitCode             string         `json:"initCode"`
	CallData             string         `json:"callData"`
	CallGasLimit         string         `json:"callGasLimit"`
	VerificationGasLimit string         `json:"verificationGasLimit"`
	PreVerificationGas   string         `json:"preVerificationGas"`
	MaxFeePerGas         string         `json:"maxFeePerGas"`
	MaxPriorityFeePerGas string         `json:"maxPriorityFeePerGas"`
	PaymasterAndData     string         `json:"paymasterAndData"`
	Signature            string         `json:"signature"`
}

// SubmissionClient submits batched calls through one wallet's smart account.
// Implementations are bound to a single wallet and a single signer.
type SubmissionClient interface {
	// EncodeCalls encodes the batch into smart-account call data.
	EncodeCalls(calls []Call) (string, error)
	// SendUserOperation signs and submits the call data, returning the
	// user operation hash.
	SendUserOperation(ctx context.Context, callData string) (string, error)
	// WaitForReceipt waits up to timeout for on-chain confirmation. A
	// timeout surfaces as ErrReceiptTimeout.
	WaitForReceipt(ctx context.Context, userOpHash string, timeout time.Duration) (*Receipt, error)
}

// Factory builds per-wallet submission clients around the shared session
// signer.
type Factory interface {
	ForWallet(ctx context.Context, walletAddress string, s signer.Signer) (SubmissionClient, error)
}
