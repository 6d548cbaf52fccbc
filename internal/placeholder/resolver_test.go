package placeholder_test

import (
	"math/big"
	"testing"

	"github.com/cyphera/swarm-api/internal/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"

func oneEth() *big.Int {
	v, _ := new(big.Int).SetString("1000000000000000000", 10)
	return v
}

func testContext() *placeholder.WalletContext {
	return placeholder.NewWalletContext(
		testWallet,
		oneEth(),
		map[string]*big.Int{testToken: big.NewInt(5000000)},
		1700000000,
	)
}

func resolveRaw(t *testing.T, r *placeholder.Resolver, raw string) string {
	t.Helper()
	p := placeholder.Parse(raw)
	require.NotNil(t, p, "expected %q to parse", raw)
	value, err := r.Resolve(p)
	require.NoError(t, err)
	return value
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "wallet address resolves to checksum form",
			raw:  "walletAddress",
			want: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		},
		{
			name: "eth balance in wei",
			raw:  "ethBalance",
			want: "1000000000000000000",
		},
		{
			name: "known token balance",
			raw:  "tokenBalance:" + testToken,
			want: "5000000",
		},
		{
			name: "unknown token balance defaults to zero",
			raw:  "tokenBalance:0x0000000000000000000000000000000000000001",
			want: "0",
		},
		{
			name: "fractional percentage is exact",
			raw:  "percentage:ethBalance:33.33",
			want: "333300000000000000",
		},
		{
			name: "whole percentage of eth balance",
			raw:  "percentage:ethBalance:100",
			want: "1000000000000000000",
		},
		{
			name: "percentage of token balance",
			raw:  "percentage:tokenBalance:" + testToken + ":50",
			want: "2500000",
		},
		{
			name: "block timestamp",
			raw:  "blockTimestamp",
			want: "1700000000",
		},
		{
			name: "deadline adds seconds to timestamp",
			raw:  "deadline:1800",
			want: "1700001800",
		},
		{
			name: "slippage against eth balance",
			raw:  "slippage:ethBalance:5",
			want: "950000000000000000",
		},
		{
			name: "slippage against token balance reference",
			raw:  "slippage:tokenBalance:" + testToken + ":10",
			want: "4500000",
		},
		{
			name: "slippage against integer literal",
			raw:  "slippage:1000:1",
			want: "990",
		},
		{
			name: "slippage against unknown reference is zero",
			raw:  "slippage:whatever:5",
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placeholder.NewResolver(testContext())
			assert.Equal(t, tt.want, resolveRaw(t, r, tt.raw))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := placeholder.NewResolver(testContext())

	first := resolveRaw(t, r, "percentage:ethBalance:33.33")
	second := resolveRaw(t, r, "percentage:ethBalance:33.33")
	assert.Equal(t, first, second)
}

func TestSlippageAgainstPreviouslyResolvedPlaceholder(t *testing.T) {
	r := placeholder.NewResolver(testContext())

	// Resolve a percentage first, then reference it by its raw token text.
	resolved := resolveRaw(t, r, "percentage:ethBalance:50")
	assert.Equal(t, "500000000000000000", resolved)

	value := resolveRaw(t, r, "slippage:percentage:ethBalance:50:1")
	assert.Equal(t, "495000000000000000", value)
}

func TestResolveString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "whole string placeholder returns raw value",
			input: "{{percentage:ethBalance:100}}",
			want:  "1000000000000000000",
		},
		{
			name:  "embedded placeholders substitute textually",
			input: "send {{percentage:ethBalance:50}} before {{deadline:60}}",
			want:  "send 500000000000000000 before 1700000060",
		},
		{
			name:  "no placeholders passes through",
			input: "0xdeadbeef",
			want:  "0xdeadbeef",
		},
		{
			name:    "invalid placeholder is an error",
			input:   "{{badtype:x}}",
			wantErr: true,
		},
		{
			name:    "invalid embedded placeholder is an error",
			input:   "prefix {{badtype:x}} suffix",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placeholder.NewResolver(testContext())
			got, err := r.ResolveString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveValue(t *testing.T) {
	r := placeholder.NewResolver(testContext())

	resolved, err := r.ResolveValue([]interface{}{
		"{{walletAddress}}",
		"{{ethBalance}}",
		map[string]interface{}{"deadline": "{{deadline:600}}"},
		float64(7),
	})
	require.NoError(t, err)

	list, ok := resolved.([]interface{})
	require.True(t, ok)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", list[0])
	assert.Equal(t, "1000000000000000000", list[1])
	assert.Equal(t, map[string]interface{}{"deadline": "1700000600"}, list[2])
	assert.Equal(t, float64(7), list[3])
}
