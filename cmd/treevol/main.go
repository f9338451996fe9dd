package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jh-206/Tree-Volume/internal/buildinfo"
	"github.com/jh-206/Tree-Volume/internal/config"
	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/logging"
	"github.com/jh-206/Tree-Volume/internal/model/cone"
	"github.com/jh-206/Tree-Volume/internal/nulldist"
	"github.com/jh-206/Tree-Volume/internal/report"
	"github.com/jh-206/Tree-Volume/internal/resample"
	"github.com/jh-206/Tree-Volume/internal/setup"
	"github.com/jh-206/Tree-Volume/internal/shutdown"
	"github.com/jh-206/Tree-Volume/internal/store"
)

func main() {
	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		logger.Fatal(err)
	}
	done()
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "optional TOML config file")
	dataPath := flag.String("data", "", "CSV dataset; empty uses the embedded 31-tree dataset")
	listRuns := flag.Bool("list-runs", false, "list archived runs and exit")
	flag.Parse()

	cfg := config.Config{File: *configPath}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}

	logger := logging.NewLogger(cfg.Debug)
	ctx = logging.WithLogger(ctx, logger)
	logger.Infof("%s %s", buildinfo.Info.Name(), buildinfo.Info.Tag())

	if env.Database() != nil {
		defer env.Database().Close(ctx)
	}

	if *listRuns {
		return printRuns(ctx, env.Database())
	}

	ds, err := loadDataset(ctx, cfg.DataPath)
	if err != nil {
		return err
	}

	a, err := cone.Fit(ds, env.Solver())
	if err != nil {
		return fmt.Errorf("cone.Fit: %w", err)
	}
	alpha, err := cone.Alpha(a)
	if err != nil {
		return fmt.Errorf("cone.Alpha: %w", err)
	}

	resampler, err := resample.New(ds, env.Solver(),
		resample.WithReplications(cfg.Resample.Replications),
		resample.WithTestFraction(cfg.Resample.TestFraction),
		resample.WithWorkers(cfg.Resample.Workers),
		resample.WithSeed(cfg.Seed),
	)
	if err != nil {
		return fmt.Errorf("resample.New: %w", err)
	}
	logger.Infof("running %d cross-validation replications", cfg.Resample.Replications)
	cvResults, err := resampler.Run(ctx)
	if err != nil {
		return fmt.Errorf("resample.Run: %w", err)
	}

	nullRunner, err := nulldist.New(ds,
		nulldist.WithReplications(cfg.NullDist.Replications),
		nulldist.WithLabelProb(cfg.NullDist.LabelProb),
		nulldist.WithWorkers(cfg.NullDist.Workers),
		// separate stream family from the cross-validation loop
		nulldist.WithSeed(cfg.Seed+1),
	)
	if err != nil {
		return fmt.Errorf("nulldist.New: %w", err)
	}
	logger.Infof("running %d species-offset relabelings", cfg.NullDist.Replications)
	nullResults, err := nullRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("nulldist.Run: %w", err)
	}

	rep := &report.Report{
		RunID:    uuid.New(),
		Rows:     ds.Len(),
		A:        a,
		Alpha:    alpha,
		Resample: cvResults,
		NullDist: nullResults,
	}
	if err := rep.Render(os.Stdout, cfg.Report.Bins); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if cfg.Report.PlotDir != "" {
		if err := rep.SavePlots(cfg.Report.PlotDir, cfg.Report.Bins); err != nil {
			return fmt.Errorf("save plots: %w", err)
		}
		logger.Infof("wrote plots to %s", cfg.Report.PlotDir)
	}

	if env.Database() != nil {
		runs := store.New(env.Database())
		if err := runs.Store(ctx, store.Run{
			ID:        rep.RunID,
			CreatedAt: time.Now().UTC(),
			DataPath:  cfg.DataPath,
			Rows:      ds.Len(),
			A:         a,
			Alpha:     alpha,
			Resample:  report.SummarizeResample(cvResults),
			NullDist:  report.SummarizeNullDist(nullResults),
		}); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		logger.Infof("archived run %s", rep.RunID)
	}
	return nil
}

func loadDataset(ctx context.Context, path string) (*dataset.Dataset, error) {
	logger := logging.FromContext(ctx)
	if path == "" {
		logger.Info("no data file given, using embedded trees dataset")
		return dataset.Trees(), nil
	}
	logger.Infof("loading dataset from %s", path)
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	return ds, nil
}

func printRuns(ctx context.Context, db *database.DB) error {
	if db == nil {
		return fmt.Errorf("run archive is not enabled, set TREEVOL_DB_ENABLED=true")
	}
	runs, err := store.New(db).FetchAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("fetch runs: %w", err)
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  rows=%d alpha=%.5f cone_err=%.3f ols_err=%.3f\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Rows, r.Alpha,
			r.Resample.ConeErr.Mean, r.Resample.BaselineErr.Mean)
	}
	return nil
}
