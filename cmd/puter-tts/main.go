// Puter-tts is an HTTP proxy that forwards text payloads to the Puter
// text-to-speech API and returns playable audio URLs.
//
// Usage:
//
//	puter-tts [flags]
//	puter-tts --config /path/to/puter-tts.yaml
//
// @title        Puter TTS API
// @version      1.0
// @description  HTTP proxy for Puter text-to-speech synthesis.
// @BasePath     /
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/luarmor-v4/puter-tts-api/internal/config"
	"github.com/luarmor-v4/puter-tts-api/internal/gateway"
	"github.com/luarmor-v4/puter-tts-api/internal/health"
	"github.com/luarmor-v4/puter-tts-api/internal/provider"
	"github.com/luarmor-v4/puter-tts-api/internal/provider/puter"
	"github.com/luarmor-v4/puter-tts-api/internal/provider/stub"
	"github.com/luarmor-v4/puter-tts-api/internal/transport"
	httptransport "github.com/luarmor-v4/puter-tts-api/internal/transport/http"
)

const serviceName = "puter-tts-api"

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/puter-tts.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", serviceName, version)
		os.Exit(0)
	}

	// Local development convenience: load .env if present.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("starting", "service", serviceName, "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the provider backend. The client is constructed once here
	// and shared read-only by every request. Initialization failure (e.g., a
	// missing credential) leaves the proxy running but unready: callers get
	// 503 until an operator fixes the environment.
	var client provider.Client
	switch cfg.Provider.Backend {
	case "puter":
		puterClient, err := puter.New(cfg.Provider)
		if err != nil {
			slog.Warn("provider initialization failed, serving unready", "error", err)
		} else {
			client = puterClient
			slog.Info("using puter provider", "base_url_override", cfg.Provider.BaseURL != "")
		}
	case "stub":
		client = stub.New()
		slog.Info("using stub provider (no external calls)")
	default:
		slog.Error("unknown provider backend", "backend", cfg.Provider.Backend)
		os.Exit(1)
	}
	if client != nil {
		defer client.Close()
	}

	// Create the synthesis gateway.
	gw := gateway.New(client, cfg.Synthesis, cfg.Provider.Timeout)

	// Initialize transports.
	transports := []transport.Transport{
		httptransport.New(cfg.Server.Port, httptransport.Info{
			ServiceName:  serviceName,
			DefaultVoice: gw.DefaultVoice(),
			Ready:        gw.Ready,
		}),
	}

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start all transports.
	var wg sync.WaitGroup
	for _, t := range transports {
		wg.Add(1)
		go func(t transport.Transport) {
			defer wg.Done()
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(ctx, gw.Synthesize); err != nil {
				slog.Error("transport failed", "name", t.Name(), "error", err)
			}
		}(t)
	}

	// Readiness tracks the provider handle, not the listeners: an unready
	// proxy still serves status and docs.
	healthServer.SetReady(gw.Ready())
	slog.Info("ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort,
		"backend_ready", gw.Ready())

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")

	// Close all transports gracefully.
	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	wg.Wait()
	slog.Info("stopped")
}
