package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const erc20ABIJSON = `[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"allowance","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"approve","type":"function","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

var erc20ABI abi.ABI

// MaxUint256 is the unlimited-approval amount used when prepending approve
// calls to swap batches.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func init() {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic("invalid ERC-20 ABI: " + err.Error())
	}
	erc20ABI = parsed
}

// PackBalanceOf encodes an ERC-20 balanceOf call.
func PackBalanceOf(owner string) ([]byte, error) {
	return erc20ABI.Pack("balanceOf", common.HexToAddress(owner))
}

// PackAllowance encodes an ERC-20 allowance call.
func PackAllowance(owner, spender string) ([]byte, error) {
	return erc20ABI.Pack("allowance", common.HexToAddress(owner), common.HexToAddress(spender))
}

// PackApprove encodes an unlimited ERC-20 approve for the given spender,
// returned as 0x-prefixed call data.
func PackApprove(spender string) (string, error) {
	data, err := erc20ABI.Pack("approve", common.HexToAddress(spender), MaxUint256)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

func unpackUint256(method string, output []byte) (*big.Int, error) {
	values, err := erc20ABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s result type %T", method, values[0])
	}
	return value, nil
}
