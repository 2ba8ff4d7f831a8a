package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/time/rate"

	"duochat/api"
	"duochat/auth"
	"duochat/observability"
	"duochat/repositories"
	"duochat/runtime"
	"duochat/services"
	"duochat/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanup (database close)
// always executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & services
	users := repositories.NewUserRepository(db)
	threads := repositories.NewThreadDirectory(db)
	friendships := repositories.NewFriendshipRepository(db)
	ledger := repositories.NewMessageLedger(db, log)

	tokens := auth.NewTokenManager(config.JWTSecret, "duochat", config.AuthTokenDuration)
	identity := auth.NewIdentityResolver(tokens, users)

	registry := runtime.NewRegistry(log)
	monitor := observability.NewMonitor(log, config.MetricInterval)
	admission := services.NewAdmissionController(friendships, ledger, config.MessageCap)
	accounts := services.NewAuthService(users, tokens)
	friends := services.NewFriendService(friendships, users)
	threadService := services.NewThreadService(threads, ledger, users)

	// 4. Transport
	socket := ws.NewServer(log, identity, threads, admission, registry,
		config.ConnectionBufferSize, ws.RateLimitConfig{
			MessagesPerSecond: rate.Limit(config.MessagesPerSecond),
			Burst:             config.RateLimitBurst,
			Enabled:           config.RateLimitEnabled,
		}, monitor)
	apiServer := api.NewServer(log, identity, accounts, friends, threadService,
		threads, admission, registry)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           apiServer.Routes(socket),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitor.Run(ctx)

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
