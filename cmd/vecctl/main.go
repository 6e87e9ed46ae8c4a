package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/mathobjects/internal/core/observability/log"
	"github.com/zeusync/mathobjects/internal/injector"
	"github.com/zeusync/mathobjects/internal/scenario"
)

func main() {
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	parallel := flag.Int("parallel", 4, "scenario files evaluated at once")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scenario.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	app := injector.InitializeApp(log.ParseLevel(*level))
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := runAll(ctx, app.Runner, flag.Args(), *parallel)
	for _, r := range reports {
		if r == nil {
			continue
		}
		if rerr := r.Render(os.Stdout); rerr != nil {
			app.Logger.Error("render report", log.String("scenario", r.Name), log.Error(rerr))
		}
	}
	if err != nil {
		app.Logger.Error("scenario run failed", log.Error(err))
		_ = app.Logger.Sync()
		os.Exit(1)
	}
}

// runAll evaluates every file, keeping report order equal to path order.
// The first failure cancels the remaining runs.
func runAll(ctx context.Context, runner *scenario.Runner, paths []string, limit int) ([]*scenario.Report, error) {
	reports := make([]*scenario.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			s, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			report, err := runner.Run(ctx, s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	return reports, g.Wait()
}
