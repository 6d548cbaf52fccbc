package placeholder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cyphera/swarm-api/internal/helpers"
	"github.com/ethereum/go-ethereum/common"
)

// WalletContext carries the per-wallet numeric/address context placeholders
// resolve against. It is fetched fresh for every execution and never
// persisted.
type WalletContext struct {
	WalletAddress string
	EthBalance    *big.Int
	// TokenBalances is keyed by lowercased token address.
	TokenBalances  map[string]*big.Int
	BlockTimestamp uint64
}

// NewWalletContext builds a context with normalized token balance keys.
func NewWalletContext(walletAddress string, ethBalance *big.Int, tokenBalances map[string]*big.Int, blockTimestamp uint64) *WalletContext {
	normalized := make(map[string]*big.Int, len(tokenBalances))
	for addr, bal := range tokenBalances {
		normalized[helpers.NormalizeAddress(addr)] = bal
	}
	return &WalletContext{
		WalletAddress:  walletAddress,
		EthBalance:     ethBalance,
		TokenBalances:  normalized,
		BlockTimestamp: blockTimestamp,
	}
}

func (c *WalletContext) tokenBalance(tokenAddress string) *big.Int {
	if bal, ok := c.TokenBalances[helpers.NormalizeAddress(tokenAddress)]; ok && bal != nil {
		return bal
	}
	// Unknown tokens resolve to zero rather than failing the wallet.
	return big.NewInt(0)
}

// Resolver resolves placeholders against a single wallet's context. It
// remembers every resolved token so slippage references can pick up values
// computed earlier in the same template.
type Resolver struct {
	ctx      *WalletContext
	resolved map[string]string
}

// NewResolver creates a resolver bound to one wallet context.
func NewResolver(ctx *WalletContext) *Resolver {
	return &Resolver{
		ctx:      ctx,
		resolved: make(map[string]string),
	}
}

// Resolve resolves a single parsed placeholder to its string value.
func (r *Resolver) Resolve(p *Placeholder) (string, error) {
	var value string

	switch p.Kind {
	case KindWalletAddress:
		value = common.HexToAddress(r.ctx.WalletAddress).Hex()

	case KindEthBalance:
		value = r.ctx.EthBalance.String()

	case KindTokenBalance:
		value = r.ctx.tokenBalance(p.TokenAddress).String()

	case KindPercentageEth:
		value = percentageOf(r.ctx.EthBalance, p.PercentBps).String()

	case KindPercentageToken:
		value = percentageOf(r.ctx.tokenBalance(p.TokenAddress), p.PercentBps).String()

	case KindBlockTimestamp:
		value = new(big.Int).SetUint64(r.ctx.BlockTimestamp).String()

	case KindDeadline:
		deadline := new(big.Int).Add(
			new(big.Int).SetUint64(r.ctx.BlockTimestamp),
			new(big.Int).SetUint64(p.Seconds),
		)
		value = deadline.String()

	case KindSlippage:
		ref := r.resolveReference(p.Reference)
		value = new(big.Int).Sub(ref, percentageOf(ref, p.PercentBps)).String()

	default:
		return "", fmt.Errorf("unknown placeholder kind: %s", p.Kind)
	}

	r.resolved[p.Raw] = value
	return value, nil
}

// resolveReference resolves a slippage reference. Resolution order matters:
// the ethBalance keyword, then a tokenBalance:<addr> form, then a previously
// resolved placeholder by key, then a raw base-10 integer, else zero.
func (r *Resolver) resolveReference(ref string) *big.Int {
	if ref == "ethBalance" {
		return new(big.Int).Set(r.ctx.EthBalance)
	}

	if addr, ok := strings.CutPrefix(ref, "tokenBalance:"); ok && helpers.IsAddressValid(addr) {
		return new(big.Int).Set(r.ctx.tokenBalance(addr))
	}

	if resolved, ok := r.resolved[ref]; ok {
		if v, ok := new(big.Int).SetString(resolved, 10); ok {
			return v
		}
	}

	if v, ok := new(big.Int).SetString(ref, 10); ok {
		return v
	}

	return big.NewInt(0)
}

// ResolveString substitutes every placeholder occurrence in s. When the whole
// string is exactly one placeholder the raw resolved value is returned, so
// numeric values survive downstream integer parsing; otherwise values are
// substituted textually into the surrounding string.
func (r *Resolver) ResolveString(s string) (string, error) {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	// Whole-string case: the string is exactly one token.
	if len(matches) == 1 && s == matches[0][0] {
		p := Parse(matches[0][1])
		if p == nil {
			return "", fmt.Errorf("invalid placeholder: %q", matches[0][1])
		}
		return r.Resolve(p)
	}

	var resolveErr error
	result := tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		raw := match[2 : len(match)-2]
		p := Parse(raw)
		if p == nil {
			resolveErr = fmt.Errorf("invalid placeholder: %q", raw)
			return match
		}
		value, err := r.Resolve(p)
		if err != nil {
			resolveErr = err
			return match
		}
		return value
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return result, nil
}

// ResolveValue walks an arbitrary JSON-decoded value and resolves every
// string leaf. Non-string leaves pass through unchanged.
func (r *Resolver) ResolveValue(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case string:
		return r.ResolveString(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			resolved, err := r.ResolveValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			resolved, err := r.ResolveValue(item)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

// percentageOf computes floor(value * bps / 10000) in integer math so
// fractional percentages of financial amounts never pick up float drift.
func percentageOf(value *big.Int, bps int64) *big.Int {
	product := new(big.Int).Mul(value, big.NewInt(bps))
	return product.Div(product, big.NewInt(10000))
}
