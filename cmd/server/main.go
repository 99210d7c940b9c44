package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haldis/exa-mcp/config"
	"github.com/haldis/exa-mcp/pkg/mcp/server"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")
	addressFlag := flag.String("address", "", "http listen address")
	transportFlag := flag.String("transport", "", "transport (stdio, http)")

	flag.Parse()

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	defer cfg.Close()

	switch *transportFlag {
	case "":

	case "stdio", "http":
		cfg.Transport = *transportFlag

	default:
		slog.Error("unsupported transport", "transport", *transportFlag)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	srv, err := server.New("exa", version, cfg.Tools)

	if err != nil {
		slog.Error("unable to create server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Transport == "http" {
		if err := serveHTTP(ctx, srv, cfg.Address); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}

		return
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func serveHTTP(ctx context.Context, srv *server.Server, address string) error {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	srv.Attach(r)

	httpServer := &http.Server{
		Addr:    address,
		Handler: r,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "address", address)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
