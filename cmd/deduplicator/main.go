package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/kestrelsec/accountdedup/internal/config"
	"github.com/kestrelsec/accountdedup/internal/dedup"
	"github.com/kestrelsec/accountdedup/internal/reader"
	"github.com/kestrelsec/accountdedup/internal/version"
	"github.com/kestrelsec/accountdedup/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "", "input file (default: stdin)")
	outputPath := flag.String("output", "", "output file (default: stdout)")
	pretty := flag.Bool("pretty", false, "indent the output envelope")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging. Diagnostics go to stderr; stdout carries
	// only the result envelope.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration; flags override the file.
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if flagWasSet("pretty") {
		cfg.Output.Pretty = *pretty
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	logger.Info("starting deduplicator",
		"version", version.Version,
		"commit", version.Commit,
		"run_id", runID,
	)

	in, closeIn, err := openInput(cfg.Input.Path)
	if err != nil {
		logger.Error("failed to open input", "error", err, "run_id", runID)
		os.Exit(1)
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.Output.Path)
	if err != nil {
		logger.Error("failed to open output", "error", err, "run_id", runID)
		os.Exit(1)
	}

	accounts, err := reader.Decode(in)
	if err != nil {
		reportFailure(logger, runID, err)
		os.Exit(1)
	}

	result := dedup.Process(accounts, dedup.Options{KeyWorkers: cfg.Engine.KeyWorkers})

	logger.Info("deduplication complete",
		"original_count", result.OriginalCount,
		"cleaned_count", result.CleanedCount,
		"run_id", runID,
	)

	if err := writer.WriteResult(out, result, cfg.Output.Pretty); err != nil {
		reportFailure(logger, runID, err)
		os.Exit(1)
	}
	if err := closeOut(); err != nil {
		reportFailure(logger, runID, fmt.Errorf("close output: %w", err))
		os.Exit(1)
	}
}

// reportFailure logs the error and writes the failure envelope to stderr.
// Parse errors and processing errors keep their distinct message prefixes.
func reportFailure(logger *slog.Logger, runID string, err error) {
	var msg string
	var parseErr *reader.ParseError
	if errors.As(err, &parseErr) {
		msg = "Invalid JSON input: " + parseErr.Err.Error()
	} else {
		msg = "Error processing accounts: " + err.Error()
	}

	logger.Error("run failed", "error", err, "run_id", runID)
	if werr := writer.WriteError(os.Stderr, msg); werr != nil {
		logger.Error("failed to write error envelope", "error", werr, "run_id", runID)
	}
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
