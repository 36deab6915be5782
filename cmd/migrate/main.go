package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cosmo/backend/internal/infrastructure/config"
	"github.com/cosmo/backend/internal/infrastructure/logger"
	"github.com/cosmo/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath = flag.String("path", "migrations", "Path to migration files")
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	log, err := logger.New(&logger.Config{
		Level:      *logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	absPath, err := filepath.Abs(*migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}

	migrator, err := migration.NewFromURL(cfg.Database.DSN(), absPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}

	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}

	case "step":
		if flag.NArg() < 2 {
			log.Fatal("step requires a number of migrations (positive = up, negative = down)")
		}
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", flag.Arg(1)))
		}
		if err := migrator.Steps(n); err != nil {
			log.Fatal("Migration steps failed", zap.Error(err))
		}

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get migration version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)

	case "force":
		if flag.NArg() < 2 {
			log.Fatal("force requires a version number")
		}
		v, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", flag.Arg(1)))
		}
		if err := migrator.Force(v); err != nil {
			log.Fatal("Failed to force migration version", zap.Error(err))
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Database migration tool

Usage:
  migrate [flags] <command> [args]

Commands:
  up            Apply all pending migrations
  down          Roll back all migrations
  step <n>      Apply n migrations (negative rolls back)
  version       Show current migration version
  force <v>     Force the migration version without running migrations

Flags:
`)
	flag.PrintDefaults()
}
