// Package server wires configuration, clients, services, and routes into a
// runnable API server.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cyphera/swarm-api/internal/client/aggregator"
	"github.com/cyphera/swarm-api/internal/client/attestation"
	"github.com/cyphera/swarm-api/internal/client/chain"
	"github.com/cyphera/swarm-api/internal/client/signer"
	"github.com/cyphera/swarm-api/internal/client/userop"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/handlers"
	"github.com/cyphera/swarm-api/internal/helpers"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/services"
)

// Server owns the long-lived resources behind the HTTP API.
type Server struct {
	router     *gin.Engine
	dbPool     *pgxpool.Pool
	chain      *chain.Client
	bundler    *userop.BundlerFactory
	reconciler *services.ReconcilerService
	port       string
}

// New loads configuration from the environment, connects the external
// clients, and wires all services and routes. It fails fast on any missing
// required configuration.
func New(ctx context.Context) (*Server, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing server", zap.String("stage", stage))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	queries := db.New(dbPool)

	chainClient := chain.NewClient(requireEnv("CHAIN_RPC_URL"))
	if err := chainClient.Connect(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to chain RPC: %w", err)
	}

	bundler := userop.NewBundlerFactory(requireEnv("BUNDLER_URL"), requireEnv("ENTRY_POINT_ADDRESS"))
	if err := bundler.Connect(ctx); err != nil {
		chainClient.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to bundler: %w", err)
	}

	aggregatorClient := aggregator.NewClient(requireEnv("AGGREGATOR_URL"), os.Getenv("AGGREGATOR_API_KEY"))
	signerClient := signer.NewClient(requireEnv("SIGNER_URL"), os.Getenv("SIGNER_API_KEY"))
	attestationClient := attestation.NewClient(requireEnv("ATTESTATION_URL"), os.Getenv("ATTESTATION_API_KEY"))

	feeBps := int64(0)
	if raw := os.Getenv("PLATFORM_FEE_BPS"); raw != "" {
		feeBps, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || feeBps < 0 || feeBps > 10000 {
			return nil, fmt.Errorf("invalid PLATFORM_FEE_BPS %q", raw)
		}
	}

	confirmTimeout := services.DefaultConfirmTimeout
	if raw := os.Getenv("CONFIRM_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid CONFIRM_TIMEOUT_SECONDS %q", raw)
		}
		confirmTimeout = time.Duration(seconds) * time.Second
	}

	reconcileInterval := services.DefaultReconcileInterval
	if raw := os.Getenv("RECONCILE_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid RECONCILE_INTERVAL_SECONDS %q", raw)
		}
		reconcileInterval = time.Duration(seconds) * time.Second
	}

	runTx := func(ctx context.Context, fn func(q db.Querier) error) error {
		return helpers.WithTransaction(ctx, dbPool, func(tx pgx.Tx) error {
			return fn(queries.WithTx(tx))
		})
	}

	swapPlans := services.NewSwapPlanService(queries, chainClient, aggregatorClient, feeBps)
	executor := services.NewExecutorService(queries, chainClient, signerClient, bundler, swapPlans, confirmTimeout, runTx)
	transactions := services.NewTransactionService(queries, executor, swapPlans, attestationClient)
	reconciler := services.NewReconcilerService(queries, signerClient, bundler, reconcileInterval, runTx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())

	registerRoutes(router, queries, transactions)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	return &Server{
		router:     router,
		dbPool:     dbPool,
		chain:      chainClient,
		bundler:    bundler,
		reconciler: reconciler,
		port:       port,
	}, nil
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Fatal(key + " environment variable is required")
	}
	return value
}

func registerRoutes(router *gin.Engine, queries db.Querier, transactions *services.TransactionService) {
	healthHandler := handlers.NewHealthHandler()
	swarmHandler := handlers.NewSwarmHandler(queries)
	txnHandler := handlers.NewTransactionHandler(transactions)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/swarms/:swarm_id", swarmHandler.GetSwarm)
		v1.GET("/swarms/:swarm_id/transactions", txnHandler.ListTransactions)
		v1.POST("/swarms/:swarm_id/transactions", txnHandler.CreateTransaction)
		v1.POST("/swarms/:swarm_id/transactions/preview", txnHandler.PreviewSwap)
		v1.GET("/transactions/:transaction_id", txnHandler.GetTransaction)
		v1.POST("/transactions/:transaction_id/resend", txnHandler.ResendTransaction)
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

// Run starts the reconciler and serves HTTP until ctx is cancelled, then
// shuts everything down in order.
func (s *Server) Run(ctx context.Context) error {
	s.reconciler.Start()
	defer s.reconciler.Stop()

	httpServer := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", s.port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.bundler.Close()
	s.chain.Close()
	s.dbPool.Close()
	return nil
}
