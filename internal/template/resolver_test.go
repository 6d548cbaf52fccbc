package template_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/cyphera/swarm-api/internal/placeholder"
	"github.com/cyphera/swarm-api/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"

func walletContext(ethBalance string) *placeholder.WalletContext {
	balance, _ := new(big.Int).SetString(ethBalance, 10)
	return placeholder.NewWalletContext(
		testWallet,
		balance,
		map[string]*big.Int{testToken: big.NewInt(1000000)},
		1700000000,
	)
}

func TestResolveRawTemplate(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeRaw,
		ContractAddress: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		Value:           "{{percentage:ethBalance:100}}",
		Data:            "0x",
	}

	call, err := template.Resolve(&tmpl, walletContext("2000000000000000000"))
	require.NoError(t, err)

	assert.Equal(t, "0xaAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAa", call.To)
	assert.Equal(t, "0x", call.Data)
	want, _ := new(big.Int).SetString("2000000000000000000", 10)
	assert.Equal(t, 0, call.Value.Cmp(want))
}

func TestResolveABITemplate(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeABI,
		ContractAddress: testToken,
		Value:           "0",
		ABI:             json.RawMessage(erc20TransferABI),
		FunctionName:    "transfer",
		Args:            []interface{}{"{{walletAddress}}", "{{percentage:tokenBalance:" + testToken + ":50}}"},
	}

	call, err := template.Resolve(&tmpl, walletContext("1000000000000000000"))
	require.NoError(t, err)

	// transfer(address,uint256) selector, wallet padded to 32 bytes, then
	// 500000 (50% of the 1000000 token balance) as uint256.
	assert.Equal(t,
		"0xa9059cbb"+
			"000000000000000000000000d8da6bf26964af9d7eed9e03e53415d37aa96045"+
			"000000000000000000000000000000000000000000000000000000000007a120",
		call.Data,
	)
	assert.Equal(t, int64(0), call.Value.Int64())
}

func TestResolveFunctionMissingFromABI(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeABI,
		ContractAddress: testToken,
		Value:           "0",
		ABI:             json.RawMessage(erc20TransferABI),
		FunctionName:    "approve",
		Args:            []interface{}{"{{walletAddress}}", "1"},
	}

	_, err := template.Resolve(&tmpl, walletContext("0"))
	require.Error(t, err)

	// Encoding failures must be distinguishable from validation failures.
	var encodingErr *template.EncodingError
	assert.ErrorAs(t, err, &encodingErr)
	var validationErr *template.ValidationError
	assert.False(t, errors.As(err, &validationErr), "should not be a validation error")
}

func TestResolveArgCountMismatch(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeABI,
		ContractAddress: testToken,
		Value:           "0",
		ABI:             json.RawMessage(erc20TransferABI),
		FunctionName:    "transfer",
		Args:            []interface{}{"{{walletAddress}}"},
	}

	_, err := template.Resolve(&tmpl, walletContext("0"))
	require.Error(t, err)

	var encodingErr *template.EncodingError
	assert.ErrorAs(t, err, &encodingErr)
	assert.Contains(t, err.Error(), "argument count mismatch")
}

func TestResolveArgTypeMismatch(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeABI,
		ContractAddress: testToken,
		Value:           "0",
		ABI:             json.RawMessage(erc20TransferABI),
		FunctionName:    "transfer",
		Args:            []interface{}{"not-an-address", "100"},
	}

	_, err := template.Resolve(&tmpl, walletContext("0"))
	require.Error(t, err)

	var encodingErr *template.EncodingError
	assert.ErrorAs(t, err, &encodingErr)
}

const setLevelABI = `[{"name":"setLevel","type":"function","inputs":[{"name":"level","type":"int8"}],"outputs":[]}]`

func TestResolveSizedIntBounds(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{name: "max int8", arg: "127"},
		{name: "min int8", arg: "-128"},
		{name: "above range", arg: "200", wantErr: true},
		{name: "below range", arg: "-129", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := template.TransactionTemplate{
				Mode:            template.ModeABI,
				ContractAddress: testContract,
				Value:           "0",
				ABI:             json.RawMessage(setLevelABI),
				FunctionName:    "setLevel",
				Args:            []interface{}{tt.arg},
			}

			call, err := template.Resolve(&tmpl, walletContext("0"))
			if tt.wantErr {
				require.Error(t, err)
				var encodingErr *template.EncodingError
				assert.ErrorAs(t, err, &encodingErr)
				assert.Contains(t, err.Error(), "overflows")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, call)
		})
	}
}

func TestResolveValueMustBeNumeric(t *testing.T) {
	tmpl := template.TransactionTemplate{
		Mode:            template.ModeRaw,
		ContractAddress: testContract,
		Value:           "{{walletAddress}}",
		Data:            "0x",
	}

	_, err := template.Resolve(&tmpl, walletContext("0"))
	require.Error(t, err)

	var validationErr *template.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestResolvedCallJSONRoundTrip(t *testing.T) {
	value, _ := new(big.Int).SetString("2000000000000000000", 10)
	call := template.ResolvedCall{To: testContract, Data: "0x", Value: value}

	encoded, err := json.Marshal(call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":"`+testContract+`","data":"0x","value":"2000000000000000000"}`, string(encoded))

	var decoded template.ResolvedCall
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 0, decoded.Value.Cmp(value))
}
