// Command tester runs a solver over a seed range and judges every output.
//
//	tester -config tester.yml [-seed-from A] [-seed-to B] [-workers W] [-db results.db]
//
// Flags override the config file. Results print to stdout, one line per
// seed plus a summary, and are stored in SQLite when a database is set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/tourvar/rng"
	"github.com/katalvlaran/tourvar/store"
	"github.com/katalvlaran/tourvar/tester"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks command-line mistakes, which exit with exitUsage.
var errUsage = errors.New("usage")

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tester", ReportTimestamp: true})

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitUsage)
		}
		logger.Error("invalid invocation", "err", err)
		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Error("invalid log level", "level", cfg.LogLevel)
		os.Exit(exitUsage)
	}
	logger.SetLevel(level)

	runner, err := tester.NewRunner(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx)
	if err != nil {
		logger.Error("sweep aborted", "err", err)
		os.Exit(exitFailure)
	}

	if _, err := report.WriteTo(os.Stdout); err != nil {
		logger.Error("failed to write report", "err", err)
		os.Exit(exitFailure)
	}

	if cfg.Database != "" {
		if err := save(ctx, cfg.Database, report, logger); err != nil {
			logger.Error("failed to store results", "db", cfg.Database, "err", err)
			os.Exit(exitFailure)
		}
	}
}

// parseConfig loads the config file named by -config, if any, and applies
// the remaining flags on top of it. Flags left unset keep the file's value.
func parseConfig(args []string, stderr io.Writer) (tester.Config, error) {
	fs := flag.NewFlagSet("tester", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to the YAML config file")
	command := fs.String("command", "", "Solver command line; overrides the config")
	seedFrom := fs.String("seed-from", "", "First seed; overrides the config")
	seedTo := fs.String("seed-to", "", "Last seed (inclusive); overrides the config")
	workers := fs.Int("workers", 0, "Parallel solver runs; overrides the config")
	dbPath := fs.String("db", "", "SQLite file to store results in; overrides the config")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error); overrides the config")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return tester.Config{}, err
		}
		return tester.Config{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return tester.Config{}, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	cfg := tester.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = tester.LoadConfig(*configPath); err != nil {
			return tester.Config{}, err
		}
	}

	if *command != "" {
		cfg.Command = strings.Fields(*command)
	}
	if *seedFrom != "" {
		seed, err := rng.ParseSeed(*seedFrom)
		if err != nil {
			return tester.Config{}, fmt.Errorf("%w: -seed-from: %w", errUsage, err)
		}
		cfg.Seeds.From = seed
	}
	if *seedTo != "" {
		seed, err := rng.ParseSeed(*seedTo)
		if err != nil {
			return tester.Config{}, fmt.Errorf("%w: -seed-to: %w", errUsage, err)
		}
		cfg.Seeds.To = seed
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	return cfg, nil
}

func save(ctx context.Context, path string, report *tester.Report, logger *log.Logger) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(); err != nil {
		return err
	}
	id, err := report.Save(ctx, st)
	if err != nil {
		return err
	}
	logger.Info("results stored", "db", path, "run", id)
	return nil
}
