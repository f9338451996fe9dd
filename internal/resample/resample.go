// Package resample runs Monte Carlo cross-validation of the cone model
// against the OLS baseline: repeated random train/test splits, a fresh fit
// per split, held-out error for both models.
package resample

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/model/baseline"
	"github.com/jh-206/Tree-Volume/internal/model/cone"
	"github.com/jh-206/Tree-Volume/internal/randstream"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

// Splits that land every row on one side are redrawn from the next derived
// stream; a small dataset makes them rare but possible.
const maxSplitRetries = 16

// Result is one replication's training estimate and held-out errors.
// Errors are root-sum-of-squared prediction error on the test subset.
type Result struct {
	Alpha       float64 `json:"alpha"`
	A           float64 `json:"a"`
	ConeErr     float64 `json:"coneErr"`
	BaselineErr float64 `json:"baselineErr"`
}

type Option func(*Runner)

func WithReplications(n int) Option {
	return func(r *Runner) {
		r.replications = n
	}
}

func WithTestFraction(p float64) Option {
	return func(r *Runner) {
		r.testFraction = p
	}
}

func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

func WithSeed(seed uint32) Option {
	return func(r *Runner) {
		r.baseSeed = seed
	}
}

type Runner struct {
	ds  *dataset.Dataset
	slv solver.Solver

	replications int
	testFraction float64
	workers      int
	baseSeed     uint32
}

func New(ds *dataset.Dataset, slv solver.Solver, opts ...Option) (*Runner, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	if slv == nil {
		return nil, errors.New("solver must not be nil")
	}
	r := &Runner{ds: ds, slv: slv, replications: 1000, testFraction: 0.2, workers: 1, baseSeed: 1}
	for _, f := range opts {
		f(r)
	}
	if r.replications < 1 {
		return nil, fmt.Errorf("replications must be >= 1, got %d", r.replications)
	}
	if r.testFraction <= 0 || r.testFraction >= 1 {
		return nil, fmt.Errorf("test fraction must be in (0,1), got %v", r.testFraction)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	return r, nil
}

// Run executes all replications and returns their results in replication
// order. Replications share nothing but the read-only dataset, so they run
// on a bounded worker pool; a single worker reproduces sequential behavior.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, r.replications)

	g, gctx := errgroup.WithContext(ctx)
	idxCh := make(chan int)
	go func() {
		defer close(idxCh)
		for i := 0; i < r.replications; i++ {
			select {
			case idxCh <- i:
			case <-gctx.Done():
				return
			}
		}
	}()
	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for i := range idxCh {
				res, err := r.replicate(i)
				if err != nil {
					return fmt.Errorf("replication %d: %w", i, err)
				}
				results[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) replicate(i int) (Result, error) {
	for attempt := 0; attempt < maxSplitRetries; attempt++ {
		rng := randstream.New(r.baseSeed, uint32(i), uint32(attempt))
		train, test, err := r.ds.Split(r.testFraction, rng)
		if errors.Is(err, dataset.ErrEmptySplit) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		return r.fitOnce(train, test)
	}
	return Result{}, fmt.Errorf("no usable split after %d draws: %w", maxSplitRetries, dataset.ErrEmptySplit)
}

func (r *Runner) fitOnce(train, test *dataset.Dataset) (Result, error) {
	var res Result

	a, err := cone.FitArrays(train.ConeCoeffs(), train.Volumes(), r.slv)
	if err != nil {
		return res, err
	}
	alpha, err := cone.Alpha(a)
	if err != nil {
		return res, err
	}
	res.A = a
	res.Alpha = alpha
	res.ConeErr = floats.Distance(cone.Predict(a, test.ConeCoeffs()), test.Volumes(), 2)

	ols := baseline.New()
	if err := ols.Fit(train); err != nil {
		return res, err
	}
	preds, err := ols.Predict(test)
	if err != nil {
		return res, err
	}
	res.BaselineErr = floats.Distance(preds, test.Volumes(), 2)
	return res, nil
}
