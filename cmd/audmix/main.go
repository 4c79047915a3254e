// SPDX-License-Identifier: EPL-2.0

// Command audmix composes audio clips into a 16-bit PCM WAV file.
//
// Usage:
//
//	audmix [-config file] [-o out.wav] concat <src>...
//	audmix [-config file] [-o out.wav] merge <src>...
//	audmix [-config file] [-o out.wav] slice [-offset frames] -duration sec <src>
//	audmix [-config file] [-o out.wav] insert -job job.yaml
//	audmix [-config file] [-o out.wav] notes -job job.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/config"
)

const httpTimeout = 30 * time.Second

var errUsage = errors.New("usage: audmix [-config file] [-o out.wav] concat|merge|slice|insert|notes ...")

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	outPath := flag.String("o", "out.wav", "Output WAV file, - for stdout")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	}

	logger := initLogger(cfg.Logging)

	p, err := newProcessor(cfg, logger)
	if err != nil {
		logger.Error("Failed to create processor", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := execute(ctx, p, flag.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Error("Operation failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := writeOutput(*outPath, data); err != nil {
		logger.Error("Failed to write output", slog.String("path", *outPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Output written", slog.String("path", *outPath), slog.Int("bytes", len(data)))
}

func newProcessor(cfg *config.Config, logger *slog.Logger) (*audmix.Processor, error) {
	actx, err := audio.NewContext(cfg.Audio.SampleRate)
	if err != nil {
		return nil, err
	}

	var loader audmix.Loader = audmix.FileLoader{Root: cfg.Sources.Root}
	if cfg.Sources.BaseURL != "" {
		loader = audmix.HTTPLoader{
			Client:  &http.Client{Timeout: httpTimeout},
			BaseURL: cfg.Sources.BaseURL,
		}
	}

	opts := []audmix.Option{
		audmix.WithContext(actx),
		audmix.WithVolume(cfg.Audio.Volume),
		audmix.WithConcurrency(cfg.Audio.Concurrency),
		audmix.WithLogger(logger),
		audmix.WithSampleBank(audmix.TemplateBank{
			Template: cfg.Bank.Template,
			MinPitch: cfg.Bank.MinPitch,
			MaxPitch: cfg.Bank.MaxPitch,
		}),
	}
	if comp := cfg.Compressor.Compressor(); comp != nil {
		opts = append(opts, audmix.WithCompressor(comp))
	}

	return audmix.New(loader, opts...), nil
}

// execute runs the subcommand named by args[0].
func execute(ctx context.Context, p *audmix.Processor, args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "concat", "merge":
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one source", errUsage, cmd)
		}
		if cmd == "concat" {
			return p.Concat(ctx, rest...)
		}
		return p.Merge(ctx, rest...)

	case "slice":
		fs := flag.NewFlagSet("slice", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		offset := fs.Int("offset", 0, "Destination frame offset")
		duration := fs.Float64("duration", -1, "Duration in seconds")
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
		if *duration < 0 || fs.NArg() != 1 {
			return nil, fmt.Errorf("%w: slice needs -duration and one source", errUsage)
		}
		return p.Slice(ctx, fs.Arg(0), *offset, *duration)

	case "insert", "notes":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		jobPath := fs.String("job", "", "Path to job file")
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
		if *jobPath == "" {
			return nil, fmt.Errorf("%w: %s needs -job", errUsage, cmd)
		}

		job, err := config.LoadJob(*jobPath)
		if err != nil {
			return nil, err
		}

		if cmd == "insert" {
			if job.Backing == "" {
				return nil, fmt.Errorf("job %s: backing cannot be empty", *jobPath)
			}
			effects := make([]audmix.Effect, len(job.Effects))
			for i, e := range job.Effects {
				effects[i] = audmix.Effect{Src: e.Src, Duration: e.Duration, StartTime: e.StartTime}
			}
			return p.InsertEffects(ctx, job.Backing, effects)
		}

		notes := make([]audmix.Note, len(job.Notes))
		for i, n := range job.Notes {
			notes[i] = audmix.Note{Pitch: n.Pitch, Duration: n.Duration}
		}
		return p.MergeNotes(ctx, notes)
	}

	return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func initLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// WAV data may go to stdout, so logs default to stderr.
	var output *os.File
	switch cfg.Output {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v, falling back to stderr\n", cfg.Output, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
