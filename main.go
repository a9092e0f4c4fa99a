// CLABE MCP Server - A Model Context Protocol server for Mexican CLABE account numbers
// Provides tools for validating, decoding and building CLABEs and browsing the bank and plaza catalogs
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/clabe-mcp-server/internal/catalog"
	"github.com/olgasafonova/clabe-mcp-server/internal/clabe"
	"github.com/olgasafonova/clabe-mcp-server/tools"
	"github.com/olgasafonova/clabe-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	ServerName    = "clabe-mcp-server"
	ServerVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

const instructions = `CLABE MCP Server validates and builds Mexican CLABE interbank account numbers (18 digits).

A CLABE is laid out as: 3-digit bank code, 3-digit plaza (city) code, 11-digit account, 1 check digit.

Available tools:
- clabe_validate: Validate one CLABE and decode bank, plaza and account
- clabe_validate_batch: Validate up to 100 CLABEs
- clabe_compute_checksum: Compute the check digit from the first 17 digits
- clabe_calculate: Build a CLABE from bank code, plaza code and account
- clabe_get_bank / clabe_list_banks: Bank catalog
- clabe_get_city / clabe_list_cities: Plaza catalog

Always pass CLABEs as strings; leading zeros are significant.`

// recoverPanic logs a recovered panic with its stack trace
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ServerName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := LoadConfig(args)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout carries the MCP stdio protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceConfig := tracing.DefaultConfig()
	traceConfig.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, traceConfig)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	server := newServer(logger)

	logger.Info("Starting CLABE MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"catalog_version", catalog.DataVersion,
		"transport", transportName(config),
	)

	if config.HTTPAddr == "" {
		defer recoverPanic(logger, "stdio server")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
	return serveHTTP(ctx, server, config, logger)
}

func newServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})

	service := clabe.NewService(clabe.WithLogger(logger))
	tools.NewHandlerRegistry(service, logger).RegisterAll(server)
	return server
}

func transportName(config Config) string {
	if config.HTTPAddr == "" {
		return "stdio"
	}
	return "http"
}

// newRouter mounts the MCP endpoint, metrics and health check behind the
// security middleware.
func newRouter(server *mcp.Server, config Config, logger *slog.Logger) (http.Handler, func()) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	r.Handle("/mcp", mcpHandler)
	r.Handle("/mcp/*", mcpHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", healthHandler)

	sm := NewSecurityMiddleware(r, logger, config.Security)
	return sm, sm.Close
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":          "ok",
		"name":            ServerName,
		"version":         ServerVersion,
		"catalog_version": catalog.DataVersion,
	})
}

func serveHTTP(ctx context.Context, server *mcp.Server, config Config, logger *slog.Logger) error {
	handler, closeHandler := newRouter(server, config, logger)
	defer closeHandler()

	srv := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer recoverPanic(logger, "http server")
		logger.Info("Listening", "addr", config.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
