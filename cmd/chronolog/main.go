package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chronolog/internal/cli"
	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/service"
	"github.com/alexanderramin/chronolog/internal/storage"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for development overrides; a missing file is fine.
	_ = godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	// Wire repositories over the document store.
	entryRepo := repository.NewStoreEntryRepo(store)
	activityRepo := repository.NewStoreActivityRepo(store)
	reflectionRepo := repository.NewStoreReflectionRepo(store)

	// Wire services.
	entrySvc := service.NewEntryService(entryRepo, activityRepo, logger)

	app := &cli.App{
		Activities:  service.NewActivityService(activityRepo, logger),
		Timer:       service.NewTimerService(entrySvc),
		Entries:     entrySvc,
		Summaries:   service.NewSummaryService(entryRepo, logger),
		Reflections: service.NewReflectionService(reflectionRepo),
		Export:      service.NewExportService(entryRepo, activityRepo, reflectionRepo, logger),
		Log:         logger,
	}

	// Detect interactive terminal for the timer TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openStore picks the storage backend from the environment: SQLite by
// default, bbolt with CHRONOLOG_STORE=bolt. CHRONOLOG_DB overrides the
// default path under ~/.chronolog.
func openStore() (storage.Store, error) {
	backend := os.Getenv("CHRONOLOG_STORE")
	path := os.Getenv("CHRONOLOG_DB")

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		name := "chronolog.db"
		if backend == "bolt" {
			name = "chronolog.bolt"
		}
		path = filepath.Join(home, ".chronolog", name)
	}

	switch backend {
	case "", "sqlite":
		return storage.OpenSQLite(path)
	case "bolt":
		return storage.OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown CHRONOLOG_STORE backend %q", backend)
	}
}

// newLogger builds a production logger writing to stderr, or a development
// logger when CHRONOLOG_DEBUG is set.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("CHRONOLOG_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
