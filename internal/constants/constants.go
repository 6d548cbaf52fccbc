package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"
	TestEnvironment = "test"

	// The zero address. Swap legs are ERC-20 only, so templates naming it
	// as a token are rejected at validation.
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)
