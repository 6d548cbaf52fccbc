package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/cyphera/swarm-api/internal/helpers"
	"github.com/cyphera/swarm-api/internal/placeholder"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var tokenStripPattern = regexp.MustCompile(`\{\{.*?\}\}`)

// ResolvedCall is the concrete per-wallet call a template resolves to.
type ResolvedCall struct {
	To    string   `json:"to"`
	Data  string   `json:"data"`
	Value *big.Int `json:"value"`
}

// MarshalJSON renders the value as a decimal string so wei amounts survive
// JSON round-trips without float truncation.
func (c ResolvedCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		To    string `json:"to"`
		Data  string `json:"data"`
		Value string `json:"value"`
	}{To: c.To, Data: c.Data, Value: c.Value.String()})
}

func (c *ResolvedCall) UnmarshalJSON(data []byte) error {
	var raw struct {
		To    string `json:"to"`
		Data  string `json:"data"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, ok := new(big.Int).SetString(raw.Value, 10)
	if !ok {
		return fmt.Errorf("invalid call value: %q", raw.Value)
	}
	c.To = raw.To
	c.Data = raw.Data
	c.Value = value
	return nil
}

// Resolve turns a template and one wallet's context into a concrete
// (to, data, value) call. Validation failures come back as *ValidationError,
// ABI failures as *EncodingError.
func Resolve(t *TransactionTemplate, ctx *placeholder.WalletContext) (*ResolvedCall, error) {
	if err := ValidateTemplate(t); err != nil {
		return nil, err
	}

	resolver := placeholder.NewResolver(ctx)

	rawValue, err := resolver.ResolveString(t.Value)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	value, ok := new(big.Int).SetString(rawValue, 10)
	if !ok || value.Sign() < 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("value did not resolve to a non-negative integer: %q", rawValue)}
	}

	to := common.HexToAddress(t.ContractAddress).Hex()

	switch t.Mode {
	case ModeRaw:
		data, err := resolver.ResolveString(t.Data)
		if err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		if !helpers.IsHexData(data) {
			return nil, &ValidationError{Reason: fmt.Sprintf("substituted data is not a hex string: %q", data)}
		}
		return &ResolvedCall{To: to, Data: data, Value: value}, nil

	case ModeABI:
		data, err := encodeABICall(t, resolver)
		if err != nil {
			return nil, err
		}
		return &ResolvedCall{To: to, Data: data, Value: value}, nil
	}

	return nil, &ValidationError{Reason: fmt.Sprintf("unknown template mode: %q", t.Mode)}
}

func encodeABICall(t *TransactionTemplate, resolver *placeholder.Resolver) (string, error) {
	parsedABI, err := abi.JSON(bytes.NewReader(t.ABI))
	if err != nil {
		return "", &EncodingError{FunctionName: t.FunctionName, Err: fmt.Errorf("invalid ABI: %w", err)}
	}

	method, ok := parsedABI.Methods[t.FunctionName]
	if !ok {
		return "", &EncodingError{FunctionName: t.FunctionName, Err: fmt.Errorf("function not found in ABI")}
	}
	if len(method.Inputs) != len(t.Args) {
		return "", &EncodingError{
			FunctionName: t.FunctionName,
			Err:          fmt.Errorf("argument count mismatch: want %d, got %d", len(method.Inputs), len(t.Args)),
		}
	}

	goArgs := make([]interface{}, len(t.Args))
	for i, arg := range t.Args {
		resolved, err := resolver.ResolveValue(arg)
		if err != nil {
			return "", &ValidationError{Reason: err.Error()}
		}
		converted, err := convertArg(method.Inputs[i].Type, resolved)
		if err != nil {
			return "", &EncodingError{
				FunctionName: t.FunctionName,
				Err:          fmt.Errorf("argument %d (%s): %w", i, method.Inputs[i].Type.String(), err),
			}
		}
		goArgs[i] = converted
	}

	packed, err := parsedABI.Pack(t.FunctionName, goArgs...)
	if err != nil {
		return "", &EncodingError{FunctionName: t.FunctionName, Err: err}
	}
	return hexutil.Encode(packed), nil
}

// convertArg converts a resolved JSON value (string, bool, number, list)
// into the Go representation go-ethereum's ABI packer expects for the given
// solidity type.
func convertArg(abiType abi.Type, value interface{}) (interface{}, error) {
	switch abiType.T {
	case abi.AddressTy:
		s, ok := value.(string)
		if !ok || !helpers.IsAddressValid(s) {
			return nil, fmt.Errorf("expected address, got %v", value)
		}
		return common.HexToAddress(s), nil

	case abi.UintTy, abi.IntTy:
		bi, err := convertInteger(value)
		if err != nil {
			return nil, err
		}
		return sizeInteger(abiType, bi)

	case abi.BoolTy:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("expected bool, got %q", v)
			}
			return b, nil
		}
		return nil, fmt.Errorf("expected bool, got %v", value)

	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %v", value)
		}
		return s, nil

	case abi.BytesTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex bytes, got %v", value)
		}
		decoded, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		return decoded, nil

	case abi.FixedBytesTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex bytes, got %v", value)
		}
		decoded, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		if len(decoded) != abiType.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", abiType.Size, len(decoded))
		}
		array := reflect.New(abiType.GetType()).Elem()
		reflect.Copy(array, reflect.ValueOf(decoded))
		return array.Interface(), nil

	case abi.SliceTy, abi.ArrayTy:
		items, ok := value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected list, got %v", value)
		}
		if abiType.T == abi.ArrayTy && len(items) != abiType.Size {
			return nil, fmt.Errorf("expected %d elements, got %d", abiType.Size, len(items))
		}
		var out reflect.Value
		if abiType.T == abi.SliceTy {
			out = reflect.MakeSlice(abiType.GetType(), len(items), len(items))
		} else {
			out = reflect.New(abiType.GetType()).Elem()
		}
		for i, item := range items {
			converted, err := convertArg(*abiType.Elem, item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(converted))
		}
		return out.Interface(), nil
	}

	return nil, fmt.Errorf("unsupported solidity type: %s", abiType.String())
}

// sizeInteger bounds-checks a big.Int against the solidity integer type and
// narrows it to the native Go type the ABI packer expects for sized integers
// (uint8..uint64 and signed equivalents); wider types pack as *big.Int.
func sizeInteger(abiType abi.Type, bi *big.Int) (interface{}, error) {
	if abiType.T == abi.UintTy {
		if bi.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for %s", bi, abiType.String())
		}
		if bi.BitLen() > abiType.Size {
			return nil, fmt.Errorf("value %s overflows %s", bi, abiType.String())
		}
		switch abiType.Size {
		case 8:
			return uint8(bi.Uint64()), nil
		case 16:
			return uint16(bi.Uint64()), nil
		case 32:
			return uint32(bi.Uint64()), nil
		case 64:
			return bi.Uint64(), nil
		}
		return bi, nil
	}

	// Signed range is [-2^(size-1), 2^(size-1)-1]; one bit belongs to the
	// sign, so a plain BitLen check would admit values twice the range and
	// truncate them below.
	bound := new(big.Int).Lsh(big.NewInt(1), uint(abiType.Size-1))
	if bi.Cmp(new(big.Int).Neg(bound)) < 0 || bi.Cmp(bound) >= 0 {
		return nil, fmt.Errorf("value %s overflows %s", bi, abiType.String())
	}

	switch abiType.Size {
	case 8:
		return int8(bi.Int64()), nil
	case 16:
		return int16(bi.Int64()), nil
	case 32:
		return int32(bi.Int64()), nil
	case 64:
		return bi.Int64(), nil
	}
	return bi, nil
}

func convertInteger(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case string:
		s := v
		if strings.HasPrefix(s, "0x") {
			parsed, err := hexutil.DecodeBig(s)
			if err != nil {
				return nil, fmt.Errorf("invalid hex integer %q: %w", s, err)
			}
			return parsed, nil
		}
		parsed, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return parsed, nil
	case float64:
		// JSON numbers arrive as float64; only integral values are allowed.
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("non-integral number %v", v)
		}
		return big.NewInt(int64(v)), nil
	case *big.Int:
		return v, nil
	}
	return nil, fmt.Errorf("expected integer, got %v", value)
}
