package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/nanobanana/mcp/config"
	"github.com/nanobanana/mcp/pkg/otel"
	servermcp "github.com/nanobanana/mcp/server/mcp"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	transportFlag := flag.String("transport", "http", "transport (http or stdio)")
	mcpFlag := flag.String("mcp", "nanobanana", "mcp server id for stdio transport")

	flag.Parse()

	godotenv.Load()

	otel.ReadEnv()

	ctx := context.Background()

	if otel.EnableDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if otel.EnableTelemetry {
		if err := otel.Setup(ctx, "nanobanana", version); err != nil {
			slog.Error("failed to setup telemetry", "error", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	if *transportFlag == "stdio" {
		if err := runStdio(ctx, cfg, *mcpFlag); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}

		return
	}

	if err := runHTTP(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runStdio(ctx context.Context, cfg *config.Config, id string) error {
	p, err := cfg.MCP(id)

	if err != nil {
		return err
	}

	server, err := p.Server(ctx)

	if err != nil {
		return err
	}

	slog.Info("starting mcp server", "transport", "stdio", "id", id)

	return server.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(cfg *config.Config) error {
	handler, err := servermcp.New(cfg)

	if err != nil {
		return err
	}

	r := chi.NewRouter()
	handler.Attach(r)

	slog.Info("starting mcp server", "transport", "http", "address", cfg.Address)

	return http.ListenAndServe(cfg.Address, otelhttp.NewHandler(r, "server"))
}
