package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/leengari/constrec/internal/catalog"
	"github.com/leengari/constrec/internal/config"
	"github.com/leengari/constrec/internal/engine"
	"github.com/leengari/constrec/internal/logging"
	"github.com/leengari/constrec/internal/repl"
)

func main() {
	command := flag.String("e", "", "Run a single command and exit")
	logLevel := flag.String("log-level", "", "Override CONSTREC_LOG_LEVEL (debug, info, warn, error)")
	flag.Parse()

	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		level, err := logging.ParseLevel(*logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
			os.Exit(1)
		}
		cfg.LogLevel = level
	}

	logger, closeFn := logging.SetupLogger(cfg.LoggingOptions())
	defer closeFn()

	slog.SetDefault(logger)

	registry, err := catalog.Builtin(logger)
	if err != nil {
		slog.Error("failed to load builtin tables", "error", err)
		closeFn()
		os.Exit(1)
	}

	eng := engine.New(registry)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	if *command != "" {
		result, err := eng.Execute(*command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeFn()
			os.Exit(1)
		}
		repl.PrintResult(os.Stdout, result)
		return
	}

	slog.Debug("Starting REPL mode...", "tables", registry.List())
	repl.Start(eng, os.Stdin, os.Stdout, cfg.Prompt)
}
