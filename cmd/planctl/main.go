// Command planctl runs the network transformation pipeline once over a
// manifest: load the catalog, instantiate a root composition, reduce with
// the Network Merge Solver, deploy with the System Network Deployer, and
// print a plain-text summary of the result.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/cli"
	"github.com/oro-core/netplan/internal/ctxlog"
	"github.com/oro-core/netplan/internal/deploy"
	"github.com/oro-core/netplan/internal/dsel"
	"github.com/oro-core/netplan/internal/instantiate"
	"github.com/oro-core/netplan/internal/manifest"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/nms"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/trace"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the whole pipeline for easier testing and error
// handling: cli.Parse indirection keeps flag parsing out of main, and the
// io.Writer parameter keeps the summary output testable.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		slog.SetLogLoggerLevel(logLevel)
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}
	ctx := ctxlog.WithLogger(context.Background(), slog.New(handler))

	var rec *trace.Recorder
	if cfg.TraceSinkURL != "" {
		sink, err := trace.NewSocketSink(ctx, trace.SocketSinkOptions{
			URL:       cfg.TraceSinkURL,
			Namespace: cfg.TraceNamespace,
		})
		if err != nil {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("connecting trace sink: %v", err)}
		}
		defer sink.Close()
		rec = trace.NewRecorder(sink)
	} else {
		rec = trace.NewRecorder(nil)
	}

	cat, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("loading manifest: %v", err)}
	}

	p, err := buildPlan(cat, cfg.Composition)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	if err := nms.MergeIdenticalTasks(cat, p, rec); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("merging plan: %v", err)}
	}

	deployErr := deploy.Deploy(cat, p, rec)
	if err := rec.Flush(ctx); err != nil {
		slog.Warn("flushing trace events failed", "error", err)
	}
	if deployErr != nil {
		fmt.Fprintln(outW, summarize(p))
		return &cli.ExitError{Code: 1, Message: deployErr.Error()}
	}

	fmt.Fprintln(outW, summarize(p))
	return nil
}

func buildPlan(cat *catalog.Catalog, compositionName string) (*plan.Plan, error) {
	comp, ok := cat.Compositions[compositionName]
	if !ok {
		return nil, fmt.Errorf("unknown composition %q", compositionName)
	}

	p := plan.New()
	dir, err := dsel.New(cat).Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving dependency injection: %w", err)
	}

	if _, err := instantiate.Composition(cat, p, dir, comp, model.NewInstanceRequirements()); err != nil {
		return nil, fmt.Errorf("instantiating %q: %w", compositionName, err)
	}
	return p, nil
}

func summarize(p *plan.Plan) string {
	deployed := 0
	for _, t := range p.Tasks() {
		if t.HasExecutionAgent() {
			deployed++
		}
	}
	return fmt.Sprintf("plan: %d task(s), %d deployed", len(p.Tasks()), deployed)
}
