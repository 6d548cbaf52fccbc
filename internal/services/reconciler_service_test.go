package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/swarm-api/internal/client/userop"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/mocks"
	"github.com/cyphera/swarm-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type reconcilerFixture struct {
	queries     *mocks.MockQuerier
	signers     *mocks.MockSignerProvider
	submissions *mocks.MockFactory
	service     *services.ReconcilerService
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &reconcilerFixture{
		queries:     mocks.NewMockQuerier(ctrl),
		signers:     mocks.NewMockSignerProvider(ctrl),
		submissions: mocks.NewMockFactory(ctrl),
	}
	f.service = services.NewReconcilerService(f.queries, f.signers, f.submissions, time.Minute, nil)
	return f
}

func submittedRow(transactionID uuid.UUID, walletAddress, userOpHash string) db.ListSubmittedTargetsRow {
	return db.ListSubmittedTargetsRow{
		ID:            uuid.New(),
		TransactionID: transactionID,
		MembershipID:  uuid.New(),
		UserOpHash:    textValue(userOpHash),
		Status:        db.TargetStatusSubmitted,
		WalletAddress: walletAddress,
	}
}

func TestSweepConfirmsLandedOperations(t *testing.T) {
	f := newReconcilerFixture(t)

	transactionID := uuid.New()
	row := submittedRow(transactionID, "0xaaa0000000000000000000000000000000000001", "0xophash")

	f.queries.EXPECT().ListSubmittedTargets(gomock.Any()).Return([]db.ListSubmittedTargetsRow{row}, nil)

	mockSigner := mocks.NewMockSignerForTest(t)
	f.signers.EXPECT().SessionSigner(gomock.Any()).Return(mockSigner, nil)

	submission := mocks.NewMockSubmissionClientForTest(t)
	f.submissions.EXPECT().ForWallet(gomock.Any(), row.WalletAddress, mockSigner).Return(submission, nil)
	submission.EXPECT().
		WaitForReceipt(gomock.Any(), "0xophash", gomock.Any()).
		Return(&userop.Receipt{TransactionHash: "0xtxhash", Success: true}, nil)

	f.queries.EXPECT().
		ConfirmSubmittedTarget(gomock.Any(), db.ConfirmSubmittedTargetParams{
			ID:     row.ID,
			TxHash: textValue("0xtxhash"),
		}).
		Return(db.TransactionTarget{Status: db.TargetStatusConfirmed}, nil)

	f.queries.EXPECT().
		ListTargetsByTransaction(gomock.Any(), transactionID).
		Return([]db.TransactionTarget{{Status: db.TargetStatusConfirmed}}, nil)
	f.queries.EXPECT().
		UpdateTransactionStatus(gomock.Any(), db.UpdateTransactionStatusParams{
			ID:     transactionID,
			Status: db.TransactionStatusCompleted,
		}).
		Return(db.Transaction{}, nil)

	f.service.Sweep(context.Background())
}

func TestSweepFailsRevertedOperations(t *testing.T) {
	f := newReconcilerFixture(t)

	transactionID := uuid.New()
	row := submittedRow(transactionID, "0xaaa0000000000000000000000000000000000001", "0xophash")

	f.queries.EXPECT().ListSubmittedTargets(gomock.Any()).Return([]db.ListSubmittedTargetsRow{row}, nil)

	mockSigner := mocks.NewMockSignerForTest(t)
	f.signers.EXPECT().SessionSigner(gomock.Any()).Return(mockSigner, nil)

	submission := mocks.NewMockSubmissionClientForTest(t)
	f.submissions.EXPECT().ForWallet(gomock.Any(), row.WalletAddress, mockSigner).Return(submission, nil)
	submission.EXPECT().
		WaitForReceipt(gomock.Any(), "0xophash", gomock.Any()).
		Return(&userop.Receipt{TransactionHash: "0xtxhash", Success: false}, nil)

	f.queries.EXPECT().
		UpdateTargetFailed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateTargetFailedParams) (db.TransactionTarget, error) {
			assert.Equal(t, row.ID, arg.ID)
			assert.Contains(t, arg.Error.String, "reverted")
			return db.TransactionTarget{}, nil
		})

	f.queries.EXPECT().
		ListTargetsByTransaction(gomock.Any(), transactionID).
		Return([]db.TransactionTarget{{Status: db.TargetStatusFailed}}, nil)
	f.queries.EXPECT().
		UpdateTransactionStatus(gomock.Any(), db.UpdateTransactionStatusParams{
			ID:     transactionID,
			Status: db.TransactionStatusFailed,
		}).
		Return(db.Transaction{}, nil)

	f.service.Sweep(context.Background())
}

func TestSweepLeavesPendingOperationsAlone(t *testing.T) {
	f := newReconcilerFixture(t)

	row := submittedRow(uuid.New(), "0xaaa0000000000000000000000000000000000001", "0xophash")
	f.queries.EXPECT().ListSubmittedTargets(gomock.Any()).Return([]db.ListSubmittedTargetsRow{row}, nil)

	mockSigner := mocks.NewMockSignerForTest(t)
	f.signers.EXPECT().SessionSigner(gomock.Any()).Return(mockSigner, nil)

	submission := mocks.NewMockSubmissionClientForTest(t)
	f.submissions.EXPECT().ForWallet(gomock.Any(), row.WalletAddress, mockSigner).Return(submission, nil)
	submission.EXPECT().
		WaitForReceipt(gomock.Any(), "0xophash", gomock.Any()).
		Return(nil, userop.ErrReceiptTimeout)

	// Nothing is updated: no confirm, no fail, no status recompute.
	f.service.Sweep(context.Background())
}

func TestSweepSkipsTargetAlreadySettledElsewhere(t *testing.T) {
	f := newReconcilerFixture(t)

	row := submittedRow(uuid.New(), "0xaaa0000000000000000000000000000000000001", "0xophash")
	f.queries.EXPECT().ListSubmittedTargets(gomock.Any()).Return([]db.ListSubmittedTargetsRow{row}, nil)

	mockSigner := mocks.NewMockSignerForTest(t)
	f.signers.EXPECT().SessionSigner(gomock.Any()).Return(mockSigner, nil)

	submission := mocks.NewMockSubmissionClientForTest(t)
	f.submissions.EXPECT().ForWallet(gomock.Any(), row.WalletAddress, mockSigner).Return(submission, nil)
	submission.EXPECT().
		WaitForReceipt(gomock.Any(), "0xophash", gomock.Any()).
		Return(&userop.Receipt{TransactionHash: "0xtxhash", Success: true}, nil)

	// The executor already confirmed this target, so the guarded update
	// matches no rows and the sweep moves on without recomputing.
	f.queries.EXPECT().
		ConfirmSubmittedTarget(gomock.Any(), gomock.Any()).
		Return(db.TransactionTarget{}, pgx.ErrNoRows)

	f.service.Sweep(context.Background())
}

func TestSweepWithNoSubmittedTargets(t *testing.T) {
	f := newReconcilerFixture(t)

	f.queries.EXPECT().ListSubmittedTargets(gomock.Any()).Return(nil, nil)

	// No signer is requested when there is nothing to reconcile.
	f.service.Sweep(context.Background())
}
