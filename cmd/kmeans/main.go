// Command kmeans clusters the points in a file into k groups.
//
// Usage:
//
//	kmeans [flags] <k> <path>
//
// The input holds one point per line as two whitespace-separated integers.
// path may be a local file, s3://bucket/key or minio://bucket/key.
// Compressed input (gzip, zstd, lz4) is detected automatically.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/racheljewell/kmeans"
	"github.com/racheljewell/kmeans/blobstore"
	"github.com/racheljewell/kmeans/codec"
	"github.com/racheljewell/kmeans/config"
	"github.com/racheljewell/kmeans/plot"
	"github.com/racheljewell/kmeans/pointfile"
	"github.com/racheljewell/kmeans/prommetrics"
	"github.com/racheljewell/kmeans/report"
	"github.com/racheljewell/kmeans/resource"
	"github.com/racheljewell/kmeans/runstore"
)

// Exit codes.
const (
	exitOK           = 0
	exitInvalidK     = 1
	exitFileNotFound = 2
	exitClustering   = 3
	exitConfig       = 4
)

const (
	msgInvalidK     = "Invalid value for k."
	msgFileNotFound = "Invalid file. File not found."
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// deps holds the collaborators that tests replace.
type deps struct {
	openStore func(ctx context.Context, loc blobstore.Location, cfg config.Config) (blobstore.BlobStore, error)
	runStore  func(ctx context.Context, table string) (runstore.Store, error)
	now       func() time.Time
}

func defaultDeps() deps {
	return deps{
		openStore: openStore,
		runStore:  openRunStore,
		now:       time.Now,
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return runWith(ctx, args, stdout, stderr, defaultDeps())
}

func runWith(ctx context.Context, args []string, stdout, stderr io.Writer, d deps) int {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: kmeans [flags] <k> <path>")
		fs.PrintDefaults()
	}
	configPath := config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	// flag stops at the first positional, so anything past <path> is a
	// misplaced flag or a typo.
	if fs.NArg() > 2 {
		fmt.Fprintf(stderr, "kmeans: unexpected argument %q; flags go before <k> <path>\n", fs.Arg(2))
		fs.Usage()
		return exitConfig
	}

	k, err := parseK(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stdout, msgInvalidK)
		return exitInvalidK
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(stdout, msgFileNotFound)
		return exitFileNotFound
	}
	input := fs.Arg(1)

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ApplyFlags(fs)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "kmeans: %v\n", err)
		return exitConfig
	}

	app := &app{cfg: cfg, deps: d, logger: newLogger(cfg, stderr), stdout: stdout, stderr: stderr}
	return app.run(ctx, k, input)
}

// parseK accepts a positive decimal integer.
func parseK(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if k < 1 {
		return 0, kmeans.ErrInvalidK
	}
	return k, nil
}

func newLogger(cfg config.Config, w io.Writer) *kmeans.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(cfg.LogLevel))

	hopts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return kmeans.NewLogger(slog.NewJSONHandler(w, hopts))
	}
	return kmeans.NewLogger(slog.NewTextHandler(w, hopts))
}

type app struct {
	cfg    config.Config
	deps   deps
	logger *kmeans.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) run(ctx context.Context, k int, input string) int {
	started := a.deps.now()

	loc, err := blobstore.ParseLocation(input)
	if err != nil {
		fmt.Fprintln(a.stdout, msgFileNotFound)
		return exitFileNotFound
	}
	store, err := a.deps.openStore(ctx, loc, a.cfg)
	if err != nil {
		fmt.Fprintf(a.stderr, "kmeans: %v\n", err)
		return exitConfig
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   a.cfg.MemoryLimitBytes,
		IOLimitBytesPerSec: a.cfg.IOLimitBytesPerSec,
	})

	points, dec, err := pointfile.Load(ctx, store, loc.Key,
		pointfile.WithResourceController(rc),
		pointfile.WithOnMalformed(func(e *pointfile.LineError) {
			fmt.Fprintf(a.stderr, "Error reading line: %s\n", e.Text)
			a.logger.LogMalformedLine(ctx, e.Line, e.Text, e.Err)
		}),
	)
	if err != nil {
		if errors.Is(err, pointfile.ErrOpen) {
			a.logger.Error("cannot open input", slog.String("input", input), slog.Any("error", err))
			fmt.Fprintln(a.stdout, msgFileNotFound)
			return exitFileNotFound
		}
		fmt.Fprintf(a.stderr, "kmeans: read %s: %v\n", input, err)
		return exitClustering
	}
	defer dec.Release()

	st := dec.Stats()
	a.logger.Info("input loaded",
		slog.String("input", input),
		slog.Int("points", st.Points),
		slog.Int("malformed", st.Malformed),
		slog.String("compression", st.Compression.String()),
	)

	var metrics *prommetrics.Collector
	optFns := a.clustererOptions()
	if a.cfg.MetricsOut != "" {
		metrics = prommetrics.New(prometheus.NewRegistry())
		optFns = append(optFns, kmeans.WithMetricsCollector(metrics))
	}

	c, err := kmeans.New(k, optFns...)
	if err != nil {
		fmt.Fprintf(a.stderr, "kmeans: %v\n", err)
		return exitClustering
	}

	res, runErr := c.Run(ctx, points)

	// Metrics cover failed runs too.
	if metrics != nil {
		if err := metrics.WriteTextfile(a.cfg.MetricsOut); err != nil {
			a.logger.Warn("writing metrics failed", slog.String("path", a.cfg.MetricsOut), slog.Any("error", err))
		}
	}

	if runErr != nil {
		fmt.Fprintf(a.stderr, "kmeans: %v\n", runErr)
		return exitClustering
	}

	if err := report.WriteText(a.stdout, res.Clusters); err != nil {
		fmt.Fprintf(a.stderr, "kmeans: %v\n", err)
		return exitClustering
	}

	a.logger.Info("run summary",
		slog.Int("k", k),
		slog.Int("iterations", res.Iterations),
		slog.Bool("converged", res.Converged),
		slog.Int64("inertia", res.Inertia),
		slog.Duration("duration", res.Duration),
	)

	if err := a.writeOutputs(ctx, res, input); err != nil {
		fmt.Fprintf(a.stderr, "kmeans: %v\n", err)
		return exitClustering
	}

	if a.cfg.RunsTable != "" {
		if err := a.record(ctx, res, input, started); err != nil {
			fmt.Fprintf(a.stderr, "kmeans: %v\n", err)
			return exitClustering
		}
	}

	return exitOK
}

func (a *app) clustererOptions() []kmeans.Option {
	optFns := []kmeans.Option{
		kmeans.WithLogger(a.logger),
		kmeans.WithMaxIterations(a.cfg.MaxIterations),
		kmeans.WithMaxPartitionAttempts(a.cfg.MaxPartitionAttempts),
	}
	switch a.cfg.EmptyClusterPolicy {
	case "keep":
		optFns = append(optFns, kmeans.WithEmptyClusterPolicy(kmeans.KeepPrevious))
	case "reseed":
		optFns = append(optFns, kmeans.WithEmptyClusterPolicy(kmeans.Reseed))
	}
	if a.cfg.Seed != nil {
		optFns = append(optFns, kmeans.WithSeed(*a.cfg.Seed))
	}
	return optFns
}

func (a *app) writeOutputs(ctx context.Context, res *kmeans.Result, input string) error {
	if a.cfg.JSONOut != "" {
		c, ok := codec.ByName(a.cfg.Codec)
		if !ok {
			return fmt.Errorf("unknown codec %q", a.cfg.Codec)
		}
		doc := report.NewDocument(res)
		doc.Seed = a.cfg.Seed
		doc.Input = input

		data, err := report.Encode(doc, c)
		if err != nil {
			return err
		}
		if err := a.put(ctx, a.cfg.JSONOut, data); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	}

	if a.cfg.PlotOut != "" {
		data, err := plot.Render(res.Clusters, res.Centroids, plot.Options{
			Subtitle: fmt.Sprintf("k=%d, %d points, %d iterations", res.Clusters.K(), res.Clusters.Len(), res.Iterations),
		})
		if err != nil {
			return err
		}
		if err := a.put(ctx, a.cfg.PlotOut, data); err != nil {
			return fmt.Errorf("write plot: %w", err)
		}
	}
	return nil
}

func (a *app) put(ctx context.Context, uri string, data []byte) error {
	loc, err := blobstore.ParseLocation(uri)
	if err != nil {
		return err
	}
	store, err := a.deps.openStore(ctx, loc, a.cfg)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, loc.Key, data); err != nil {
		return err
	}
	a.logger.Info("output written", slog.String("location", loc.String()), slog.Int("bytes", len(data)))
	return nil
}

func (a *app) record(ctx context.Context, res *kmeans.Result, input string, started time.Time) error {
	rs, err := a.deps.runStore(ctx, a.cfg.RunsTable)
	if err != nil {
		return err
	}
	rec := runstore.NewRecord(res, input, a.cfg.Seed, started)
	if err := rs.Put(ctx, rec); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	a.logger.Info("run recorded", slog.String("run_id", rec.ID), slog.String("table", a.cfg.RunsTable))
	return nil
}
