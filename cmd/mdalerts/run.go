package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	mdalerts "github.com/jquenard/go-mdalerts"
	"github.com/jquenard/go-mdalerts/internal/config"
)

// ErrBatchFailed aggregates per-file failures for the exit code.
var ErrBatchFailed = errors.New("one or more files failed")

// run orchestrates the whole CLI invocation.
func run(flags *cliFlags, positional []string, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.noStyle {
		cfg.Style.Name = ""
	}
	if flags.full {
		cfg.Document.Full = true
	}

	transformer, err := newTransformer(cfg)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	params := processParams{includeDrafts: flags.drafts}
	workers := resolveWorkers(flags.workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if flags.watch {
		// Process everything once, then keep watching.
		report(processBatch(ctx, transformer, files, params, workers), flags, env)
		return watchFiles(ctx, transformer, inputPath, cfg.Output.DefaultDir, params, env)
	}

	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown or HTML files under %q", ErrNoInput, inputPath)
	}

	results := processBatch(ctx, transformer, files, params, workers)
	failed := report(results, flags, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(files))
	}
	return nil
}

// newTransformer builds the library transformer from the merged config.
func newTransformer(cfg *config.Config) (*mdalerts.Transformer, error) {
	var opts []mdalerts.Option
	if len(cfg.Labels) > 0 {
		opts = append(opts, mdalerts.WithLabels(cfg.Labels))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, mdalerts.WithStyle(cfg.Style.Name))
	}
	if cfg.Document.Full {
		opts = append(opts, mdalerts.WithFullDocument())
	}
	return mdalerts.NewTransformer(opts...)
}

// resolveInputPath picks the input from positional args or the config default.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass a file or directory, or set input.defaultDir in the config", ErrNoInput)
}

// resolveWorkers maps the --workers flag to an actual count (0 = NumCPU).
func resolveWorkers(n int) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	return n
}

// report prints per-file outcomes and returns the number of failures.
func report(results []ProcessResult, flags *cliFlags, env *Environment) int {
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", res.InputPath, res.Err)
		case res.Skipped:
			if !flags.quiet {
				fmt.Fprintf(env.Stdout, "skip %s (draft)\n", res.InputPath)
			}
		case flags.verbose:
			fmt.Fprintf(env.Stdout, "ok   %s -> %s (%s)\n", res.InputPath, res.OutputPath, res.Duration.Round(time.Millisecond))
		case !flags.quiet:
			fmt.Fprintf(env.Stdout, "ok   %s -> %s\n", res.InputPath, res.OutputPath)
		}
	}
	return failed
}
