package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gricha/obsidian-gym-tracker/internal/config"
	"github.com/gricha/obsidian-gym-tracker/internal/mcp"
	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	v := vault.NewDir(cfg.Vault.Dir)
	tr := tracker.New(v, cfg.Settings(), log)
	srv := mcp.New(tr, Version, log)

	log.Info("MCP server starting on stdio", "vault", cfg.Vault.Dir, "version", Version)
	if err := server.ServeStdio(srv); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
