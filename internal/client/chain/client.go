// Package chain provides the on-chain read side: per-wallet balances,
// block timestamps and ERC-20 allowances.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/placeholder"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Client reads wallet state from an Ethereum JSON-RPC endpoint.
type Client struct {
	rpcURL string
	client *ethclient.Client
	logger *zap.Logger
}

// NewClient creates an unconnected chain client for the given RPC URL.
func NewClient(rpcURL string) *Client {
	return &Client{
		rpcURL: rpcURL,
		logger: logger.Log,
	}
}

// Connect dials the RPC endpoint.
func (c *Client) Connect(ctx context.Context) error {
	if c.rpcURL == "" {
		return fmt.Errorf("chain RPC URL is required")
	}

	client, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to chain RPC: %w", err)
	}
	c.client = client

	c.logger.Info("Connected to chain RPC")
	return nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// GetWalletContext fetches the wallet's current ETH balance, the balance of
// every requested token and the latest block timestamp. Everything is read at
// call time; contexts are never cached or persisted.
func (c *Client) GetWalletContext(ctx context.Context, walletAddress string, tokenAddresses []string) (*placeholder.WalletContext, error) {
	if c.client == nil {
		return nil, fmt.Errorf("chain client is not connected")
	}

	wallet := common.HexToAddress(walletAddress)

	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest block header: %w", err)
	}

	ethBalance, err := c.client.BalanceAt(ctx, wallet, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ETH balance for %s: %w", walletAddress, err)
	}

	tokenBalances := make(map[string]*big.Int, len(tokenAddresses))
	for _, token := range tokenAddresses {
		balance, err := c.tokenBalance(ctx, token, wallet)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch balance of %s for %s: %w", token, walletAddress, err)
		}
		tokenBalances[token] = balance
	}

	return placeholder.NewWalletContext(walletAddress, ethBalance, tokenBalances, header.Time), nil
}

// Allowance returns the current ERC-20 allowance granted by owner to spender.
func (c *Client) Allowance(ctx context.Context, tokenAddress, owner, spender string) (*big.Int, error) {
	if c.client == nil {
		return nil, fmt.Errorf("chain client is not connected")
	}

	data, err := PackAllowance(owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to encode allowance call: %w", err)
	}

	token := common.HexToAddress(tokenAddress)
	output, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("allowance call to %s failed: %w", tokenAddress, err)
	}

	return unpackUint256("allowance", output)
}

func (c *Client) tokenBalance(ctx context.Context, tokenAddress string, wallet common.Address) (*big.Int, error) {
	data, err := PackBalanceOf(wallet.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to encode balanceOf call: %w", err)
	}

	token := common.HexToAddress(tokenAddress)
	output, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	return unpackUint256("balanceOf", output)
}
