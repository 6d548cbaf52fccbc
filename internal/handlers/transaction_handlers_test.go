package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/swarm-api/internal/client/attestation"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/mocks"
	"github.com/cyphera/swarm-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func init() {
	logger.InitLogger("test")
}

type handlerFixture struct {
	queries *mocks.MockQuerier
	checker *mocks.MockChecker
	router  *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	queries := mocks.NewMockQuerier(ctrl)
	contexts := mocks.NewMockWalletContextProvider(ctrl)
	aggregatorMock := mocks.NewMockSwapAggregator(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	checker := mocks.NewMockChecker(ctrl)

	// Background executions may or may not land before assertions run; the
	// handlers under test only cover the synchronous path.
	executor.EXPECT().ExecuteTransaction(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	swapPlans := services.NewSwapPlanService(queries, contexts, aggregatorMock, 0)
	transactions := services.NewTransactionService(queries, executor, swapPlans, checker)

	txnHandler := NewTransactionHandler(transactions)
	swarmHandler := NewSwarmHandler(queries)
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.GET("/health", healthHandler.Health)
	router.GET("/api/v1/swarms/:swarm_id", swarmHandler.GetSwarm)
	router.GET("/api/v1/swarms/:swarm_id/transactions", txnHandler.ListTransactions)
	router.POST("/api/v1/swarms/:swarm_id/transactions", txnHandler.CreateTransaction)
	router.POST("/api/v1/swarms/:swarm_id/transactions/preview", txnHandler.PreviewSwap)
	router.GET("/api/v1/transactions/:transaction_id", txnHandler.GetTransaction)
	router.POST("/api/v1/transactions/:transaction_id/resend", txnHandler.ResendTransaction)

	return &handlerFixture{queries: queries, checker: checker, router: router}
}

func (f *handlerFixture) request(method, path string, body []byte) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(recorder, req)
	return recorder
}

const validCallBody = `{
	"type": "call",
	"call": {
		"mode": "raw",
		"contractAddress": "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
		"value": "0",
		"data": "0xdeadbeef"
	}
}`

func TestCreateTransactionEndpoint(t *testing.T) {
	swarmID := uuid.New()

	tests := []struct {
		name       string
		path       string
		body       string
		setupMocks func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:       "invalid swarm id",
			path:       "/api/v1/swarms/not-a-uuid/transactions",
			body:       validCallBody,
			setupMocks: func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			path:       "/api/v1/swarms/" + swarmID.String() + "/transactions",
			body:       "",
			setupMocks: func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed template",
			path:       "/api/v1/swarms/" + swarmID.String() + "/transactions",
			body:       `{"type":"call","call":{"mode":"raw","contractAddress":"nope","value":"0","data":"0x"}}`,
			setupMocks: func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown swarm",
			path: "/api/v1/swarms/" + swarmID.String() + "/transactions",
			body: validCallBody,
			setupMocks: func(f *handlerFixture) {
				f.queries.EXPECT().GetSwarm(gomock.Any(), swarmID).Return(db.Swarm{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "accepted",
			path: "/api/v1/swarms/" + swarmID.String() + "/transactions",
			body: validCallBody,
			setupMocks: func(f *handlerFixture) {
				f.queries.EXPECT().
					GetSwarm(gomock.Any(), swarmID).
					Return(db.Swarm{ID: swarmID, Name: "test"}, nil)
				f.queries.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(db.Transaction{
						ID:      uuid.New(),
						SwarmID: swarmID,
						Status:  db.TransactionStatusPending,
					}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setupMocks(f)

			recorder := f.request(http.MethodPost, tt.path, []byte(tt.body))
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())

			if tt.wantStatus == http.StatusAccepted {
				var txn db.Transaction
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &txn))
				assert.Equal(t, db.TransactionStatusPending, txn.Status)
			}
		})
	}
}

func TestCreateTransactionSignoffGate(t *testing.T) {
	f := newHandlerFixture(t)
	swarmID := uuid.New()

	f.queries.EXPECT().
		GetSwarm(gomock.Any(), swarmID).
		Return(db.Swarm{ID: swarmID, Name: "gated", RequiresSignoff: true}, nil)
	f.checker.EXPECT().
		IsApproved(gomock.Any(), gomock.Any()).
		Return(&attestation.ApprovalStatus{Approved: false, Confirmations: 1, Threshold: 2}, nil)

	recorder := f.request(http.MethodPost, "/api/v1/swarms/"+swarmID.String()+"/transactions", []byte(validCallBody))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetTransactionEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	txnID := uuid.New()
	txn := db.Transaction{ID: txnID, SwarmID: uuid.New(), Status: db.TransactionStatusCompleted}
	target := db.TransactionTarget{
		ID:            uuid.New(),
		TransactionID: txnID,
		Status:        db.TargetStatusConfirmed,
		TxHash:        pgtype.Text{String: "0xtxhash", Valid: true},
	}

	f.queries.EXPECT().GetTransaction(gomock.Any(), txnID).Return(txn, nil)
	f.queries.EXPECT().ListTargetsByTransaction(gomock.Any(), txnID).Return([]db.TransactionTarget{target}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/transactions/"+txnID.String(), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result services.TransactionWithTargets
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, txnID, result.Transaction.ID)
	require.Len(t, result.Targets, 1)
	assert.Equal(t, "0xtxhash", result.Targets[0].TxHash.String)
}

func TestGetTransactionNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	txnID := uuid.New()
	f.queries.EXPECT().GetTransaction(gomock.Any(), txnID).Return(db.Transaction{}, pgx.ErrNoRows)

	recorder := f.request(http.MethodGet, "/api/v1/transactions/"+txnID.String(), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetSwarmEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	swarmID := uuid.New()
	f.queries.EXPECT().
		GetSwarm(gomock.Any(), swarmID).
		Return(db.Swarm{ID: swarmID, Name: "alpha"}, nil)
	f.queries.EXPECT().
		ListActiveMembershipsBySwarm(gomock.Any(), swarmID).
		Return([]db.Membership{
			{ID: uuid.New(), SwarmID: swarmID, WalletAddress: "0xaaa0000000000000000000000000000000000001", IsActive: true},
		}, nil)

	recorder := f.request(http.MethodGet, "/api/v1/swarms/"+swarmID.String(), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp SwarmResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "alpha", resp.Swarm.Name)
	require.Len(t, resp.Memberships, 1)
}

func TestHealthEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	recorder := f.request(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
