package helpers

import (
	"strings"
)

// Deployment stages recognized by the service
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks whether the provided stage name is one of the
// supported deployment stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}

// IsAddressValid checks if the provided string is a valid Ethereum address
// It verifies:
// 1. The address is exactly 42 characters long (including 0x prefix)
// 2. The address starts with "0x"
// 3. The remaining 40 characters are valid hexadecimal
func IsAddressValid(address string) bool {
	// Check length
	if len(address) != 42 {
		return false
	}

	// Check "0x" prefix
	if !strings.HasPrefix(address, "0x") {
		return false
	}

	// Check if the address contains only hex characters after the 0x prefix
	for _, c := range address[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// IsHexData checks if the provided string is 0x-prefixed hexadecimal call
// data. The empty payload "0x" is valid.
func IsHexData(data string) bool {
	if !strings.HasPrefix(data, "0x") {
		return false
	}

	for _, c := range data[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// NormalizeAddress lowercases an address so it can be used as a map key or
// compared without checksum casing getting in the way.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
