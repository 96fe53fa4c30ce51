package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/cli"
	"github.com/keygate/keygate/internal/config"
	"github.com/keygate/keygate/internal/iocli"
	"github.com/keygate/keygate/internal/ledger"
	"github.com/keygate/keygate/internal/storage"
	"github.com/keygate/keygate/internal/storage/boltdb"
	"github.com/keygate/keygate/internal/storage/sqlitekv"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	driver := flag.String("driver", "", "Storage driver: bolt or sqlite (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *driver != "" {
		cfg.Driver = *driver
	}

	io := iocli.NewStdio()
	cat := catalog.Default()

	ctx := context.Background()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	accounts := storage.NewAccountStore(kv)
	sessions := storage.NewSessionStore(kv)
	keyLedger := ledger.New(accounts, cat)
	authService := auth.NewService(accounts, sessions, keyLedger, cat)

	c := cli.New(io, authService, cat)

	args := flag.Args()
	if len(args) == 0 {
		c.PrintUsage()
		os.Exit(1)
	}

	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KVStore, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlitekv.New(ctx, cfg.DBPath)
	default:
		return boltdb.New(ctx, cfg.DBPath)
	}
}

func printVersion() {
	fmt.Printf("Keygate\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
