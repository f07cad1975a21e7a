// envdump prints the process environment, working directory, and executable
// path through the OS interaction layer, with optional expression-based
// filtering and OpenTelemetry span integration.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hostrt/oslayer/internal/config"
	"github.com/hostrt/oslayer/internal/envfilter"
	"github.com/hostrt/oslayer/internal/envtab"
	"github.com/hostrt/oslayer/internal/pathlist"
	"github.com/hostrt/oslayer/internal/proc"
	"github.com/hostrt/oslayer/internal/rawsys"
	"github.com/hostrt/oslayer/internal/telemetry"
	"github.com/hostrt/oslayer/internal/workdir"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func main() {
	code := 0
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		code = 1
	}
	// Terminate through the layer itself. Everything is flushed by now;
	// exit_group performs no cleanup of its own.
	proc.NewControl(rawsys.New()).Exit(code)
}

// setupOTEL initializes the OTEL provider and returns a tracer and cleanup
// function. When no OTLP endpoint is configured the tracer is a no-op.
func setupOTEL() (trace.Tracer, func(), error) {
	otelCfg, err := config.ParseOTELConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse OTEL config: %w", err)
	}
	if !otelCfg.Enabled() {
		return noop.NewTracerProvider().Tracer("envdump"), func() {}, nil
	}

	tp, err := telemetry.InitProvider(otelCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize OTEL provider: %w", err)
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.ShutdownProvider(tp, shutdownCtx); err != nil {
			log.Printf("Error shutting down OTEL provider: %v", err)
		}
	}
	return tp.Tracer("envdump"), cleanup, nil
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	tun, err := config.ParseTunables()
	if err != nil {
		return err
	}

	var filter *envfilter.Filter
	if cfg.FilterExpr != "" {
		filter, err = envfilter.Compile(cfg.FilterExpr)
		if err != nil {
			return err
		}
	}

	tracer, cleanup, err := setupOTEL()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, span := tracer.Start(context.Background(), "envdump")
	defer span.End()

	sys := rawsys.New()
	table := envtab.NewTable(sys)
	dirs := workdir.NewResolver(sys, tun.CwdBufferSize)
	ctl := proc.NewControl(sys)

	if cfg.Chdir != "" {
		_, chdirSpan := tracer.Start(ctx, "chdir")
		err := dirs.Change(cfg.Chdir)
		chdirSpan.End()
		if err != nil {
			return fmt.Errorf("failed to change directory: %w", err)
		}
	}

	exe, err := ctl.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable: %w", err)
	}

	_, cwdSpan := tracer.Start(ctx, "getcwd")
	cwd, err := dirs.Current()
	cwdSpan.End()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	fmt.Printf("executable: %s\n", exe)
	fmt.Printf("workdir:    %s\n", cwd)
	fmt.Printf("tempdir:    %s\n", table.TempDir())

	if path, ok, _ := table.Get("PATH"); ok {
		fmt.Println("path entries:")
		n := 0
		for entry := range pathlist.Split(path) {
			fmt.Printf("  %s\n", entry)
			n++
		}
		span.SetAttributes(attribute.Int("path.entries", n))
	}

	_, snapSpan := tracer.Start(ctx, "snapshot")
	snap := table.Snapshot()
	snapSpan.End()
	span.SetAttributes(attribute.Int("env.count", snap.Len()))

	fmt.Println("environment:")
	for key, value := range snap.All() {
		if filter != nil {
			match, err := filter.Match(key, value)
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		fmt.Printf("  %s=%s\n", key, value)
	}

	return nil
}
