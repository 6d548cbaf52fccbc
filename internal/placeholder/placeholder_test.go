package placeholder_test

import (
	"testing"

	"github.com/cyphera/swarm-api/internal/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0x6B175474E89094C44Da98b954EedeAC495271d0F"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *placeholder.Placeholder
	}{
		{
			name: "wallet address",
			raw:  "walletAddress",
			want: &placeholder.Placeholder{Raw: "walletAddress", Kind: placeholder.KindWalletAddress},
		},
		{
			name: "eth balance",
			raw:  "ethBalance",
			want: &placeholder.Placeholder{Raw: "ethBalance", Kind: placeholder.KindEthBalance},
		},
		{
			name: "token balance",
			raw:  "tokenBalance:" + testToken,
			want: &placeholder.Placeholder{
				Raw:          "tokenBalance:" + testToken,
				Kind:         placeholder.KindTokenBalance,
				TokenAddress: testToken,
			},
		},
		{
			name: "percentage of eth balance",
			raw:  "percentage:ethBalance:50",
			want: &placeholder.Placeholder{
				Raw:        "percentage:ethBalance:50",
				Kind:       placeholder.KindPercentageEth,
				PercentBps: 5000,
			},
		},
		{
			name: "fractional percentage converts to basis points",
			raw:  "percentage:ethBalance:33.33",
			want: &placeholder.Placeholder{
				Raw:        "percentage:ethBalance:33.33",
				Kind:       placeholder.KindPercentageEth,
				PercentBps: 3333,
			},
		},
		{
			name: "single fractional digit pads to basis points",
			raw:  "percentage:ethBalance:0.5",
			want: &placeholder.Placeholder{
				Raw:        "percentage:ethBalance:0.5",
				Kind:       placeholder.KindPercentageEth,
				PercentBps: 50,
			},
		},
		{
			name: "percentage of token balance",
			raw:  "percentage:tokenBalance:" + testToken + ":25",
			want: &placeholder.Placeholder{
				Raw:          "percentage:tokenBalance:" + testToken + ":25",
				Kind:         placeholder.KindPercentageToken,
				TokenAddress: testToken,
				PercentBps:   2500,
			},
		},
		{
			name: "block timestamp",
			raw:  "blockTimestamp",
			want: &placeholder.Placeholder{Raw: "blockTimestamp", Kind: placeholder.KindBlockTimestamp},
		},
		{
			name: "deadline",
			raw:  "deadline:1800",
			want: &placeholder.Placeholder{Raw: "deadline:1800", Kind: placeholder.KindDeadline, Seconds: 1800},
		},
		{
			name: "slippage against eth balance",
			raw:  "slippage:ethBalance:5",
			want: &placeholder.Placeholder{
				Raw:        "slippage:ethBalance:5",
				Kind:       placeholder.KindSlippage,
				Reference:  "ethBalance",
				PercentBps: 500,
			},
		},
		{
			name: "slippage against token balance reference",
			raw:  "slippage:tokenBalance:" + testToken + ":1.5",
			want: &placeholder.Placeholder{
				Raw:        "slippage:tokenBalance:" + testToken + ":1.5",
				Kind:       placeholder.KindSlippage,
				Reference:  "tokenBalance:" + testToken,
				PercentBps: 150,
			},
		},
		{name: "unknown type", raw: "badtype:x", want: nil},
		{name: "wallet address with extra parts", raw: "walletAddress:0x1", want: nil},
		{name: "token balance missing address", raw: "tokenBalance", want: nil},
		{name: "token balance malformed address", raw: "tokenBalance:0x123", want: nil},
		{name: "percentage over 100", raw: "percentage:ethBalance:100.01", want: nil},
		{name: "percentage three fractional digits", raw: "percentage:ethBalance:33.333", want: nil},
		{name: "percentage negative", raw: "percentage:ethBalance:-5", want: nil},
		{name: "deadline negative seconds", raw: "deadline:-60", want: nil},
		{name: "deadline non-numeric", raw: "deadline:soon", want: nil},
		{name: "slippage missing percentage", raw: "slippage:ethBalance", want: nil},
		{name: "empty token", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeholder.Parse(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePercentageBoundaries(t *testing.T) {
	p := placeholder.Parse("percentage:ethBalance:100")
	require.NotNil(t, p)
	assert.Equal(t, int64(10000), p.PercentBps)

	p = placeholder.Parse("percentage:ethBalance:0")
	require.NotNil(t, p)
	assert.Equal(t, int64(0), p.PercentBps)
}

func TestFindRawTokens(t *testing.T) {
	tokens := placeholder.FindRawTokens("transfer {{percentage:ethBalance:50}} to {{walletAddress}} by {{deadline:600}}")
	assert.Equal(t, []string{"percentage:ethBalance:50", "walletAddress", "deadline:600"}, tokens)

	assert.Empty(t, placeholder.FindRawTokens("no placeholders here"))
}

func TestExtractFromValue(t *testing.T) {
	value := map[string]interface{}{
		"args": []interface{}{
			"{{walletAddress}}",
			"{{percentage:tokenBalance:" + testToken + ":50}}",
			"{{notaplaceholder}}",
			float64(42),
		},
		"value": "{{ethBalance}}",
	}

	found := placeholder.ExtractFromValue(value)
	// Invalid occurrences are dropped during extraction.
	assert.Len(t, found, 3)

	kinds := make(map[placeholder.Kind]bool)
	for _, p := range found {
		kinds[p.Kind] = true
	}
	assert.True(t, kinds[placeholder.KindWalletAddress])
	assert.True(t, kinds[placeholder.KindPercentageToken])
	assert.True(t, kinds[placeholder.KindEthBalance])
}

func TestTokenAddresses(t *testing.T) {
	placeholders := placeholder.ExtractFromValue([]interface{}{
		"{{tokenBalance:" + testToken + "}}",
		"{{percentage:tokenBalance:" + testToken + ":10}}",
		"{{slippage:tokenBalance:" + testToken + ":2}}",
	})

	addrs := placeholder.TokenAddresses(placeholders)
	assert.Equal(t, []string{testToken}, addrs)
}
