package userop

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/client/signer"
	"github.com/cyphera/swarm-api/internal/logger"
)

// Default gas fields sent with every operation. The bundler reprices fees at
// submission; these only bound the simulation.
const (
	defaultCallGasLimit         = 1_500_000
	defaultVerificationGasLimit = 500_000
	defaultPreVerificationGas   = 100_000
)

const accountABIJSON = `[
	{"name":"executeBatch","type":"function","stateMutability":"nonpayable","inputs":[{"name":"dest","type":"address[]"},{"name":"value","type":"uint256[]"},{"name":"func","type":"bytes[]"}],"outputs":[]},
	{"name":"getNonce","type":"function","stateMutability":"view","inputs":[{"name":"sender","type":"address"},{"name":"key","type":"uint192"}],"outputs":[{"name":"nonce","type":"uint256"}]}
]`

var accountABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(accountABIJSON))
	if err != nil {
		panic("invalid smart account ABI: " + err.Error())
	}
	accountABI = parsed
}

// BundlerFactory creates per-wallet submission clients that share one RPC
// connection to the bundler.
type BundlerFactory struct {
	bundlerURL string
	entryPoint common.Address
	client     *rpc.Client
	chainID    *big.Int
	logger     *zap.Logger
}

var _ Factory = (*BundlerFactory)(nil)

// NewBundlerFactory creates an unconnected factory for the given bundler
// endpoint and entry point contract.
func NewBundlerFactory(bundlerURL, entryPoint string) *BundlerFactory {
	return &BundlerFactory{
		bundlerURL: bundlerURL,
		entryPoint: common.HexToAddress(entryPoint),
		logger:     logger.Log,
	}
}

// Connect dials the bundler and caches the chain ID used in operation
// hashing.
func (f *BundlerFactory) Connect(ctx context.Context) error {
	if f.bundlerURL == "" {
		return fmt.Errorf("bundler URL is required")
	}

	client, err := rpc.DialContext(ctx, f.bundlerURL)
	if err != nil {
		return fmt.Errorf("failed to connect to bundler: %w", err)
	}

	var chainIDHex string
	if err := client.CallContext(ctx, &chainIDHex, "eth_chainId"); err != nil {
		client.Close()
		return fmt.Errorf("failed to fetch chain ID from bundler: %w", err)
	}
	chainID, err := hexutil.DecodeBig(chainIDHex)
	if err != nil {
		client.Close()
		return fmt.Errorf("bundler returned invalid chain ID %q: %w", chainIDHex, err)
	}

	f.client = client
	f.chainID = chainID
	f.logger.Info("Connected to bundler", zap.String("chain_id", chainID.String()))
	return nil
}

// Close releases the bundler connection.
func (f *BundlerFactory) Close() {
	if f.client != nil {
		f.client.Close()
	}
}

// ForWallet binds a submission client to one smart account and the shared
// signer.
func (f *BundlerFactory) ForWallet(ctx context.Context, walletAddress string, s signer.Signer) (SubmissionClient, error) {
	if f.client == nil {
		return nil, fmt.Errorf("bundler factory is not connected")
	}
	if s == nil {
		return nil, fmt.Errorf("signer is required")
	}

	return &walletClient{
		factory: f,
		sender:  common.HexToAddress(walletAddress),
		signer:  s,
	}, nil
}

type walletClient struct {
	factory *BundlerFactory
	sender  common.Address
	signer  signer.Signer
}

func (c *walletClient) EncodeCalls(calls []Call) (string, error) {
	if len(calls) == 0 {
		return "", fmt.Errorf("at least one call is required")
	}

	dests := make([]common.Address, len(calls))
	values := make([]*big.Int, len(calls))
	datas := make([][]byte, len(calls))
	for i, call := range calls {
		dests[i] = common.HexToAddress(call.To)
		values[i] = call.Value
		if values[i] == nil {
			values[i] = big.NewInt(0)
		}
		data, err := hexutil.Decode(call.Data)
		if err != nil {
			return "", fmt.Errorf("call %d has invalid data: %w", i, err)
		}
		datas[i] = data
	}

	packed, err := accountABI.Pack("executeBatch", dests, values, datas)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch: %w", err)
	}
	return hexutil.Encode(packed), nil
}

func (c *walletClient) SendUserOperation(ctx context.Context, callData string) (string, error) {
	nonce, err := c.nonce(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch account nonce: %w", err)
	}

	op := UserOperation{
		Sender:               c.sender,
		Nonce:                hexutil.EncodeBig(nonce),
		InitCode:             "0x",
		CallData:             callData,
		CallGasLimit:         hexutil.EncodeUint64(defaultCallGasLimit),
		VerificationGasLimit: hexutil.EncodeUint64(defaultVerificationGasLimit),
		PreVerificationGas:   hexutil.EncodeUint64(defaultPreVerificationGas),
		MaxFeePerGas:         hexutil.EncodeBig(big.NewInt(0)),
		MaxPriorityFeePerGas: hexutil.EncodeBig(big.NewInt(0)),
		PaymasterAndData:     "0x",
		Signature:            "0x",
	}

	opHash, err := hashUserOperation(&op, c.factory.entryPoint, c.factory.chainID)
	if err != nil {
		return "", fmt.Errorf("failed to hash user operation: %w", err)
	}

	signature, err := c.signer.SignHash(ctx, opHash.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to sign user operation: %w", err)
	}
	op.Signature = hexutil.Encode(signature)

	var userOpHash string
	if err := c.factory.client.CallContext(ctx, &userOpHash, "eth_sendUserOperation", op, c.factory.entryPoint.Hex()); err != nil {
		return "", fmt.Errorf("bundler rejected user operation: %w", err)
	}
	return userOpHash, nil
}

func (c *walletClient) WaitForReceipt(ctx context.Context, userOpHash string, timeout time.Duration) (*Receipt, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	poll := time.NewTicker(2 * time.Second)
	defer poll.Stop()

	for {
		receipt, err := c.receipt(ctx, userOpHash)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrReceiptTimeout
		case <-poll.C:
		}
	}
}

type receiptResponse struct {
	UserOpHash string `json:"userOpHash"`
	Success    bool   `json:"success"`
	Receipt    struct {
		TransactionHash string `json:"transactionHash"`
	} `json:"receipt"`
}

func (c *walletClient) receipt(ctx context.Context, userOpHash string) (*Receipt, error) {
	var resp *receiptResponse
	if err := c.factory.client.CallContext(ctx, &resp, "eth_getUserOperationReceipt", userOpHash); err != nil {
		return nil, fmt.Errorf("failed to fetch user operation receipt: %w", err)
	}
	if resp == nil {
		// Not yet included.
		return nil, nil
	}
	return &Receipt{
		UserOpHash:      resp.UserOpHash,
		TransactionHash: resp.Receipt.TransactionHash,
		Success:         resp.Success,
	}, nil
}

func (c *walletClient) nonce(ctx context.Context) (*big.Int, error) {
	data, err := accountABI.Pack("getNonce", c.sender, big.NewInt(0))
	if err != nil {
		return nil, err
	}

	call := map[string]interface{}{
		"to":   c.factory.entryPoint.Hex(),
		"data": hexutil.Encode(data),
	}
	var result string
	if err := c.factory.client.CallContext(ctx, &result, "eth_call", call, "latest"); err != nil {
		return nil, err
	}

	output, err := hexutil.Decode(result)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(output), nil
}

// hashUserOperation computes the v0.6 entry point hash the signer co-signs:
// keccak(abi.encode(keccak(packedOp), entryPoint, chainId)).
func hashUserOperation(op *UserOperation, entryPoint common.Address, chainID *big.Int) (common.Hash, error) {
	decodeBig := func(s string) (*big.Int, error) {
		if s == "0x" || s == "" {
			return big.NewInt(0), nil
		}
		return hexutil.DecodeBig(s)
	}
	decodeBytes := func(s string) ([]byte, error) {
		if s == "" {
			return nil, nil
		}
		return hexutil.Decode(s)
	}

	nonce, err := decodeBig(op.Nonce)
	if err != nil {
		return common.Hash{}, err
	}
	callGasLimit, err := decodeBig(op.CallGasLimit)
	if err != nil {
		return common.Hash{}, err
	}
	verificationGasLimit, err := decodeBig(op.VerificationGasLimit)
	if err != nil {
		return common.Hash{}, err
	}
	preVerificationGas, err := decodeBig(op.PreVerificationGas)
	if err != nil {
		return common.Hash{}, err
	}
	maxFeePerGas, err := decodeBig(op.MaxFeePerGas)
	if err != nil {
		return common.Hash{}, err
	}
	maxPriorityFeePerGas, err := decodeBig(op.MaxPriorityFeePerGas)
	if err != nil {
		return common.Hash{}, err
	}
	initCode, err := decodeBytes(op.InitCode)
	if err != nil {
		return common.Hash{}, err
	}
	callData, err := decodeBytes(op.CallData)
	if err != nil {
		return common.Hash{}, err
	}
	paymasterAndData, err := decodeBytes(op.PaymasterAndData)
	if err != nil {
		return common.Hash{}, err
	}

	addressTy, _ := abi.NewType("address", "", nil)
	uint256Ty, _ := abi.NewType("uint256", "", nil)
	bytes32Ty, _ := abi.NewType("bytes32", "", nil)

	packedArgs := abi.Arguments{
		{Type: addressTy}, {Type: uint256Ty}, {Type: bytes32Ty}, {Type: bytes32Ty},
		{Type: uint256Ty}, {Type: uint256Ty}, {Type: uint256Ty}, {Type: uint256Ty},
		{Type: uint256Ty}, {Type: bytes32Ty},
	}
	packed, err := packedArgs.Pack(
		op.Sender,
		nonce,
		crypto.Keccak256Hash(initCode),
		crypto.Keccak256Hash(callData),
		callGasLimit,
		verificationGasLimit,
		preVerificationGas,
		maxFeePerGas,
		maxPriorityFeePerGas,
		crypto.Keccak256Hash(paymasterAndData),
	)
	if err != nil {
		return common.Hash{}, err
	}

	envelopeArgs := abi.Arguments{{Type: bytes32Ty}, {Type: addressTy}, {Type: uint256Ty}}
	envelope, err := envelopeArgs.Pack(crypto.Keccak256Hash(packed), entryPoint, chainID)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(envelope), nil
}
