package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gricha/obsidian-gym-tracker/internal/config"
	"github.com/gricha/obsidian-gym-tracker/internal/importer"
	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to directory of CSV exports (required)")
	dryRun := flag.Bool("dry-run", false, "parse and convert but don't write to the vault")
	noState := flag.Bool("no-state", false, "skip the imported-files ledger and reprocess everything")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: gymtracker-import -config config.yaml -path /path/to/exports [-dry-run] [-no-state]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export path does not exist or is not a directory", "path", *exportPath)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	settings := cfg.Settings()
	v := vault.NewDir(cfg.Vault.Dir)

	ctx := context.Background()
	if err := v.CreateFolder(ctx, settings.WorkoutsFolder); err != nil {
		log.Error("failed to create vault folder", "folder", settings.WorkoutsFolder, "error", err)
		os.Exit(1)
	}

	var state *importer.StateDB
	if !*noState {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		state, err = importer.OpenStateDB(filepath.Join(homeDir, ".gymtracker-import"))
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()
	}

	if *dryRun {
		log.Info("DRY RUN mode — no documents will be written to the vault")
	}

	imp := importer.New(v, settings, state, log, *dryRun)
	stats, err := imp.Import(ctx, *exportPath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)

	// Loading the tracker after import surfaces parse problems right away.
	tr := tracker.New(v, settings, log)
	if history, err := tr.History(ctx); err == nil {
		log.Info("vault now holds", "workouts", len(history))
	}

	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"sessions_imported", stats.SessionsImported,
		"sessions_skipped", stats.SessionsSkipped,
		"sets_imported", stats.SetsImported,
	)
}
