// Package template defines the declarative transaction templates a manager
// submits and turns them, per wallet, into concrete call data.
package template

import (
	"encoding/json"
	"fmt"

	"github.com/cyphera/swarm-api/internal/constants"
	"github.com/cyphera/swarm-api/internal/helpers"
	"github.com/cyphera/swarm-api/internal/placeholder"
)

// Mode selects how a call template produces its call data.
type Mode string

const (
	ModeABI Mode = "abi"
	ModeRaw Mode = "raw"
)

// TransactionTemplate is a declarative contract call. In abi mode the call
// data is encoded from the given ABI, function name and args; in raw mode the
// data field is used directly. Both value and any string arg may contain
// placeholders.
type TransactionTemplate struct {
	Mode            Mode            `json:"mode"`
	ContractAddress string          `json:"contractAddress"`
	Value           string          `json:"value"`
	ABI             json.RawMessage `json:"abi,omitempty"`
	FunctionName    string          `json:"functionName,omitempty"`
	Args            []interface{}   `json:"args,omitempty"`
	Data            string          `json:"data,omitempty"`
}

// SwapAction describes a batch token swap: each wallet sells a percentage of
// its sellToken balance for buyToken.
type SwapAction struct {
	SellToken          string  `json:"sellToken"`
	BuyToken           string  `json:"buyToken"`
	SellPercentage     float64 `json:"sellPercentage"`
	SlippagePercentage float64 `json:"slippagePercentage"`
}

// ActionType discriminates the action union.
type ActionType string

const (
	ActionTypeCall ActionType = "call"
	ActionTypeSwap ActionType = "swap"
)

// Action is the tagged union stored on a Transaction: either a contract call
// template or a swap descriptor. It is validated once at ingress and matched
// exhaustively wherever it is consumed.
type Action struct {
	Type ActionType           `json:"type"`
	Call *TransactionTemplate `json:"call,omitempty"`
	Swap *SwapAction          `json:"swap,omitempty"`
}

// ValidationError reports a malformed template or placeholder, detected
// before any on-chain action.
type ValidationError struct {
	Reason string
	// Placeholder is the offending token text, when the failure is a
	// placeholder that did not parse.
	Placeholder string
}

func (e *ValidationError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("template validation failed: %s: %q", e.Reason, e.Placeholder)
	}
	return fmt.Sprintf("template validation failed: %s", e.Reason)
}

// EncodingError reports an ABI encoding failure: the resolved args did not
// fit the selected function signature. Distinct from ValidationError so
// callers can tell a bad template shape from a bad encoding.
type EncodingError struct {
	FunctionName string
	Err          error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode call to %q: %v", e.FunctionName, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// DecodeAction parses and validates a stored action blob. This is the single
// ingress point for the template union.
func DecodeAction(raw []byte) (*Action, error) {
	var action Action
	if err := json.Unmarshal(raw, &action); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("malformed action JSON: %v", err)}
	}

	switch action.Type {
	case ActionTypeCall:
		if action.Call == nil {
			return nil, &ValidationError{Reason: "call action is missing its template"}
		}
		if err := ValidateTemplate(action.Call); err != nil {
			return nil, err
		}
	case ActionTypeSwap:
		if action.Swap == nil {
			return nil, &ValidationError{Reason: "swap action is missing its descriptor"}
		}
		if err := validateSwap(action.Swap); err != nil {
			return nil, err
		}
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown action type: %q", action.Type)}
	}

	return &action, nil
}

// ValidateTemplate runs the template shape checks and, independently, checks
// that every {{...}} occurrence anywhere in the serialized template parses.
func ValidateTemplate(t *TransactionTemplate) error {
	if err := validateShape(t); err != nil {
		return err
	}
	return validatePlaceholders(t)
}

func validateShape(t *TransactionTemplate) error {
	if !helpers.IsAddressValid(t.ContractAddress) {
		return &ValidationError{Reason: fmt.Sprintf("invalid contract address: %q", t.ContractAddress)}
	}
	if t.Value == "" {
		return &ValidationError{Reason: "value is required"}
	}
	// A value that is exactly one placeholder must be a numeric kind: an
	// address can never parse as a wei amount, so reject it at ingress
	// instead of once per wallet.
	if raws := placeholder.FindRawTokens(t.Value); len(raws) == 1 && t.Value == "{{"+raws[0]+"}}" {
		if p := placeholder.Parse(raws[0]); p != nil && !p.IsNumeric() {
			return &ValidationError{Reason: "value placeholder is not numeric", Placeholder: raws[0]}
		}
	}

	switch t.Mode {
	case ModeABI:
		var entries []json.RawMessage
		if err := json.Unmarshal(t.ABI, &entries); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("abi is not a JSON array: %v", err)}
		}
		if len(entries) == 0 {
			return &ValidationError{Reason: "abi mode requires at least one ABI entry"}
		}
		if t.FunctionName == "" {
			return &ValidationError{Reason: "abi mode requires a function name"}
		}
	case ModeRaw:
		// Placeholders are substituted before the hex shape is enforced, so
		// strip them for the pre-check.
		stripped := tokenStripPattern.ReplaceAllString(t.Data, "")
		if !helpers.IsHexData(stripped) {
			return &ValidationError{Reason: fmt.Sprintf("raw mode data is not a hex string: %q", t.Data)}
		}
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown template mode: %q", t.Mode)}
	}

	return nil
}

func validatePlaceholders(t *TransactionTemplate) error {
	serialized, err := json.Marshal(t)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("template is not serializable: %v", err)}
	}

	for _, raw := range placeholder.FindRawTokens(string(serialized)) {
		if placeholder.Parse(raw) == nil {
			return &ValidationError{Reason: "invalid placeholder", Placeholder: raw}
		}
	}
	return nil
}

func validateSwap(s *SwapAction) error {
	if !helpers.IsAddressValid(s.SellToken) {
		return &ValidationError{Reason: fmt.Sprintf("invalid sell token: %q", s.SellToken)}
	}
	if !helpers.IsAddressValid(s.BuyToken) {
		return &ValidationError{Reason: fmt.Sprintf("invalid buy token: %q", s.BuyToken)}
	}
	if helpers.NormalizeAddress(s.SellToken) == constants.ZeroAddress || helpers.NormalizeAddress(s.BuyToken) == constants.ZeroAddress {
		return &ValidationError{Reason: "swaps operate on ERC-20 tokens; use the wrapped native asset"}
	}
	if helpers.NormalizeAddress(s.SellToken) == helpers.NormalizeAddress(s.BuyToken) {
		return &ValidationError{Reason: "sell and buy token must differ"}
	}
	if s.SellPercentage < 1 || s.SellPercentage > 100 {
		return &ValidationError{Reason: fmt.Sprintf("sell percentage must be in [1,100], got %v", s.SellPercentage)}
	}
	if s.SlippagePercentage < 0 || s.SlippagePercentage > 100 {
		return &ValidationError{Reason: fmt.Sprintf("slippage percentage must be in [0,100], got %v", s.SlippagePercentage)}
	}
	return nil
}

// RequiredTokenAddresses lists the ERC-20 addresses the wallet context must
// include for this template to resolve.
func RequiredTokenAddresses(t *TransactionTemplate) []string {
	serialized, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	return placeholder.TokenAddresses(placeholder.ExtractFromValue(string(serialized)))
}
