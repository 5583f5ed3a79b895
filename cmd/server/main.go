package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/skustore/skustore/internal/adapter/handler"
	"github.com/skustore/skustore/internal/adapter/handler/pb"
	"github.com/skustore/skustore/internal/adapter/storage"
	"github.com/skustore/skustore/internal/core/service"
	"github.com/skustore/skustore/pkg/config"
	"github.com/skustore/skustore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("starting")

	// Initialize store and service
	store := storage.NewMemoryAdapter(cfg.Store.Shards, cfg.Store.WatchBuffer, log)
	inventoryService := service.NewInventoryService(store)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(inventoryService, log)
	pb.RegisterInventoryServer(grpcServer, grpcHandler)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPC.Addr()).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPC.Addr()).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server error")
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(inventoryService)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/items", httpHandler.Items)
	mux.HandleFunc("/api/items/quantity", httpHandler.UpdateQuantity)
	mux.HandleFunc("/api/items/price", httpHandler.UpdatePrice)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: mux,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info().Msg("HTTP server stopped")

	// GracefulStop waits for open watch streams, which may never end on
	// their own; force-stop after a grace period.
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		grpcServer.Stop()
	}
	log.Info().Msg("gRPC server stopped")
}
