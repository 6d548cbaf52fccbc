package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/cyphera/swarm-api/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
