package placeholder

import "github.com/cyphera/swarm-api/internal/helpers"

// FindRawTokens returns the text between every {{ }} pair in s, valid or not.
func FindRawTokens(s string) []string {
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(s, -1) {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// ExtractFromValue recursively scans every string leaf of a JSON-decoded
// value and returns the placeholders found. Occurrences that do not parse are
// dropped: extraction is best-effort discovery, validation is the strict
// pass.
func ExtractFromValue(v interface{}) []*Placeholder {
	var found []*Placeholder

	switch val := v.(type) {
	case string:
		for _, raw := range FindRawTokens(val) {
			if p := Parse(raw); p != nil {
				found = append(found, p)
			}
		}
	case []interface{}:
		for _, item := range val {
			found = append(found, ExtractFromValue(item)...)
		}
	case map[string]interface{}:
		for _, item := range val {
			found = append(found, ExtractFromValue(item)...)
		}
	}

	return found
}

// TokenAddresses collects the distinct ERC-20 addresses referenced by the
// given placeholders, including addresses buried in slippage references.
func TokenAddresses(placeholders []*Placeholder) []string {
	seen := make(map[string]bool)
	var addrs []string

	add := func(addr string) {
		key := helpers.NormalizeAddress(addr)
		if !seen[key] {
			seen[key] = true
			addrs = append(addrs, addr)
		}
	}

	for _, p := range placeholders {
		if p.TokenAddress != "" {
			add(p.TokenAddress)
		}
		if p.Kind == KindSlippage {
			if ref := Parse(p.Reference); ref != nil && ref.TokenAddress != "" {
				add(ref.TokenAddress)
			}
		}
	}

	return addrs
}
