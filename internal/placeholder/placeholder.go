// Package placeholder implements the {{...}} template token language used by
// transaction templates. A token is the literal text between the braces,
// addressed with colon-separated parts, e.g. {{percentage:ethBalance:33.33}}.
package placeholder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cyphera/swarm-api/internal/helpers"
)

// Kind identifies the placeholder token family.
type Kind string

const (
	KindWalletAddress   Kind = "walletAddress"
	KindEthBalance      Kind = "ethBalance"
	KindTokenBalance    Kind = "tokenBalance"
	KindPercentageEth   Kind = "percentageEth"
	KindPercentageToken Kind = "percentageToken"
	KindBlockTimestamp  Kind = "blockTimestamp"
	KindDeadline        Kind = "deadline"
	KindSlippage        Kind = "slippage"
)

// Placeholder is a parsed template token.
type Placeholder struct {
	// Raw is the token text between the braces, used as the resolution key.
	Raw string
	Kind Kind

	// TokenAddress is set for tokenBalance and percentage:tokenBalance tokens.
	TokenAddress string
	// PercentBps is the percentage converted to basis points (33.33% -> 3333).
	PercentBps int64
	// Seconds is set for deadline tokens.
	Seconds uint64
	// Reference is set for slippage tokens.
	Reference string
}

var tokenPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// percentPattern allows up to two fractional digits, converted exactly to
// basis points. Anything finer would be lost in the bps math, so it is
// rejected rather than silently rounded.
var percentPattern = regexp.MustCompile(`^([0-9]{1,3})(?:\.([0-9]{1,2}))?$`)

// Parse parses the text between {{ and }} into a Placeholder. It returns nil
// for anything that does not match a known token shape: callers validating a
// template must treat nil as an error, callers extracting token metadata
// skip it.
func Parse(raw string) *Placeholder {
	parts := strings.Split(raw, ":")

	switch parts[0] {
	case "walletAddress":
		if len(parts) != 1 {
			return nil
		}
		return &Placeholder{Raw: raw, Kind: KindWalletAddress}

	case "ethBalance":
		if len(parts) != 1 {
			return nil
		}
		return &Placeholder{Raw: raw, Kind: KindEthBalance}

	case "tokenBalance":
		if len(parts) != 2 || !helpers.IsAddressValid(parts[1]) {
			return nil
		}
		return &Placeholder{Raw: raw, Kind: KindTokenBalance, TokenAddress: parts[1]}

	case "percentage":
		if len(parts) == 3 && parts[1] == "ethBalance" {
			bps, ok := parsePercentBps(parts[2])
			if !ok {
				return nil
			}
			return &Placeholder{Raw: raw, Kind: KindPercentageEth, PercentBps: bps}
		}
		if len(parts) == 4 && parts[1] == "tokenBalance" {
			if !helpers.IsAddressValid(parts[2]) {
				return nil
			}
			bps, ok := parsePercentBps(parts[3])
			if !ok {
				return nil
			}
			return &Placeholder{Raw: raw, Kind: KindPercentageToken, TokenAddress: parts[2], PercentBps: bps}
		}
		return nil

	case "blockTimestamp":
		if len(parts) != 1 {
			return nil
		}
		return &Placeholder{Raw: raw, Kind: KindBlockTimestamp}

	case "deadline":
		if len(parts) != 2 {
			return nil
		}
		secs, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil
		}
		return &Placeholder{Raw: raw, Kind: KindDeadline, Seconds: secs}

	case "slippage":
		if len(parts) < 3 {
			return nil
		}
		// The reference may itself contain colons (tokenBalance:<addr>), so
		// only the last part is the percentage.
		bps, ok := parsePercentBps(parts[len(parts)-1])
		if !ok {
			return nil
		}
		ref := strings.Join(parts[1:len(parts)-1], ":")
		return &Placeholder{Raw: raw, Kind: KindSlippage, Reference: ref, PercentBps: bps}
	}

	return nil
}

// parsePercentBps converts a percentage string in [0,100] with at most two
// fractional digits into basis points.
func parsePercentBps(s string) (int64, bool) {
	m := percentPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	frac := int64(0)
	if m[2] != "" {
		padded := m[2]
		for len(padded) < 2 {
			padded += "0"
		}
		frac, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, false
		}
	}

	bps := whole*100 + frac
	if bps < 0 || bps > 10000 {
		return 0, false
	}
	return bps, true
}

// IsNumeric reports whether the placeholder resolves to a decimal integer
// string (as opposed to an address).
func (p *Placeholder) IsNumeric() bool {
	return p.Kind != KindWalletAddress
}
