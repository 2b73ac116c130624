package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/tape-runtime/config"
	"github.com/wippyai/tape-runtime/console"
	"github.com/wippyai/tape-runtime/engine"
	"github.com/wippyai/tape-runtime/errors"
	"github.com/wippyai/tape-runtime/source"
	"github.com/wippyai/tape-runtime/tape"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to a TOML config file")
		tapeSize    = flag.Int("size", engine.DefaultTapeSize, "Number of tape cells")
		check       = flag.Bool("check", false, "Check brackets before running")
		dump        = flag.Bool("dump", true, "Print the first tape cells after the run")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "error: no filepath provided.")
		fmt.Fprintln(os.Stderr, "Usage: run [-config file.toml] [-size n] [-check] [-dump=false] [-v] <program>")
		fmt.Fprintln(os.Stderr, "       run -i <program>  (interactive mode)")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Tape.Size = *tapeSize
		case "dump":
			cfg.Dump.Enabled = *dump
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	engine.SetLogger(log)

	if *interactive {
		if err := runInteractive(path, cfg, *check); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, path, cfg, *check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		log.Sync()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func run(ctx context.Context, log *zap.Logger, path string, cfg *config.Config, check bool) error {
	program, err := source.Read(path)
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}

	if check {
		if err := engine.Check(program); err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	eng, err := engine.New(program,
		engine.WithTapeSize(cfg.Tape.Size),
		engine.WithInput(console.Stdin(cfg.Input.Prompt)),
		engine.WithOutput(console.NewWriter(os.Stdout)),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	err = runWithRetry(ctx, eng, cfg.Input.Retry, os.Stderr)

	if cfg.Dump.Enabled {
		fmt.Println(tape.FormatBlock(eng.Cells(cfg.Dump.Start, cfg.Dump.End)))
	}

	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}

	log.Debug("program finished",
		zap.String("path", path),
		zap.Uint64("steps", eng.Steps()))
	return nil
}

// runWithRetry runs eng, prompting again after each line that is not a
// cell value when retry is set.
func runWithRetry(ctx context.Context, eng *engine.Engine, retry bool, stderr io.Writer) error {
	for {
		err := eng.Run(ctx)
		if !retryable(err, retry) {
			return err
		}
		fmt.Fprintf(stderr, "invalid input: %v\n", err)
	}
}

// retryable reports whether a failed ',' should be prompted again.
// Only malformed lines are retried; a reader that fails or runs dry would
// fail the same way on every attempt.
func retryable(err error, retry bool) bool {
	return retry && (stderrors.Is(err, errors.ErrNotANumber) || stderrors.Is(err, errors.ErrOutOfRange))
}
