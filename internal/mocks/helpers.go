package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockWalletContextProviderForTest creates a new mock WalletContextProvider for testing
func NewMockWalletContextProviderForTest(t *testing.T) *MockWalletContextProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWalletContextProvider(ctrl)
}

// NewMockSwapAggregatorForTest creates a new mock SwapAggregator for testing
func NewMockSwapAggregatorForTest(t *testing.T) *MockSwapAggregator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSwapAggregator(ctrl)
}

// NewMockSignerProviderForTest creates a new mock SignerProvider for testing
func NewMockSignerProviderForTest(t *testing.T) *MockSignerProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSignerProvider(ctrl)
}

// NewMockExecutorForTest creates a new mock Executor for testing
func NewMockExecutorForTest(t *testing.T) *MockExecutor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockExecutor(ctrl)
}

// NewMockFactoryForTest creates a new mock submission Factory for testing
func NewMockFactoryForTest(t *testing.T) *MockFactory {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFactory(ctrl)
}

// NewMockSubmissionClientForTest creates a new mock SubmissionClient for testing
func NewMockSubmissionClientForTest(t *testing.T) *MockSubmissionClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSubmissionClient(ctrl)
}

// NewMockSignerForTest creates a new mock Signer for testing
func NewMockSignerForTest(t *testing.T) *MockSigner {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSigner(ctrl)
}

// NewMockCheckerForTest creates a new mock attestation Checker for testing
func NewMockCheckerForTest(t *testing.T) *MockChecker {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChecker(ctrl)
}
