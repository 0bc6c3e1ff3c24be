package main

import (
	"ReceiptLedger/internal/config"
	"ReceiptLedger/pkg/google"
	"ReceiptLedger/pkg/log"
	"ReceiptLedger/pkg/parser"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	validator := config.NewValidator()

	env, err := config.LoadEnv(validator)
	if err != nil {
		log.NewLogger("development").Fatalf("Error loading configuration: %v", err)
	}

	logger := log.NewLogger(env.AppEnv)

	googleProvider, err := google.New(env.GoogleServiceAccount)
	if err != nil {
		logger.Fatalf("Error loading google credentials: %v", err)
	}
	logger.Infof("Loaded google service account for project %s", googleProvider.ProjectID())

	ctx := context.Background()
	fiberApp := config.NewFiber(logger, env.MaxUploadSize())

	server, err := config.NewServer(
		config.WithEnv(env),
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithUtils(),
		config.WithParser(parser.New()),
		config.WithGoogleProvider(googleProvider),
		config.WithTextDetector(ctx),
		config.WithSheets(ctx),
		config.WithDatabase(),
		config.WithRedisServer(),
		config.WithS3Client(),
		config.WithMiddleware(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
