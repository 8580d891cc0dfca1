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

	"github.com/zeusync/colliders/internal/config"
	"github.com/zeusync/colliders/internal/core/authoring"
	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/injector"
	"github.com/zeusync/colliders/internal/pipeline"
	"github.com/zeusync/colliders/internal/watch"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "colliderbake:", err)
		os.Exit(1)
	}
}

// pathList collects a repeatable path flag.
type pathList []string

func (l *pathList) String() string { return strings.Join(*l, ",") }

func (l *pathList) Set(path string) error {
	*l = append(*l, path)
	return nil
}

func run(args []string, stdout io.Writer) error {
	var in pathList
	flags := flag.NewFlagSet("colliderbake", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	flags.Var(&in, "in", "collider document (.yaml, .yml, .json or .toml); repeatable")
	format := flags.String("format", "", "output format: yaml, json or toml (overrides the config)")
	watchMode := flags.Bool("watch", false, "rebake whenever the document changes")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if len(in) == 0 {
		return errors.New("-in is required")
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if *format != "" {
		cfg.Output.Format = *format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	p, cleanup, err := injector.InitializePipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := log.Provide()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bakeErr := bakeOnce(ctx, p, in, cfg.OutputFormat(), stdout)
	if !*watchMode {
		return bakeErr
	}
	if bakeErr != nil {
		logger.Error("bake failed", log.Error(bakeErr))
	}

	w, err := watch.New(logger, cfg.Watch.Debounce, in...)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("watching collider documents", log.String("paths", in.String()))

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping")
			return nil
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			if err := bakeOnce(ctx, p, in, cfg.OutputFormat(), stdout); err != nil {
				logger.Error("bake failed", log.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", log.Error(err))
		}
	}
}

// bakeOnce writes the baked colliders of every document as one document,
// even when some colliders failed.
func bakeOnce(ctx context.Context, p *pipeline.Pipeline, paths []string, format authoring.Format, stdout io.Writer) error {
	docs, err := p.RunFiles(ctx, paths...)
	if len(docs) == 0 {
		return err
	}
	merged := &authoring.Document{}
	for _, doc := range docs {
		merged.Colliders = append(merged.Colliders, doc.Colliders...)
	}
	if encErr := authoring.Encode(stdout, format, merged); encErr != nil {
		return errors.Join(err, encErr)
	}
	return err
}
