// Package nulldist builds the null distribution of the species offset: the
// extended model refitted on the full dataset under many random label draws
// that are independent of volume by construction. Fitted offsets clustering
// around zero is the expected behavior of an estimator with no true effect
// to find.
package nulldist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/model/cone"
	"github.com/jh-206/Tree-Volume/internal/randstream"
	"github.com/jh-206/Tree-Volume/pkg/rworker"
)

// All-zero label draws make the offset unidentifiable and are redrawn from
// the next derived stream.
const maxLabelRetries = 16

// Result is one relabeling's extended-model estimate.
type Result struct {
	A    float64 `json:"a"`
	Beta float64 `json:"beta"`
}

type Option func(*Runner)

func WithReplications(n int) Option {
	return func(r *Runner) {
		r.replications = n
	}
}

func WithLabelProb(p float64) Option {
	return func(r *Runner) {
		r.labelProb = p
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
	ds *dataset.Dataset

	replications int
	labelProb    float64
	workers      int
	baseSeed     uint32
}

func New(ds *dataset.Dataset, opts ...Option) (*Runner, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	r := &Runner{ds: ds, replications: 1000, labelProb: 0.5, workers: 1, baseSeed: 1}
	for _, f := range opts {
		f(r)
	}
	if r.replications < 1 {
		return nil, fmt.Errorf("replications must be >= 1, got %d", r.replications)
	}
	if r.labelProb <= 0 || r.labelProb >= 1 {
		return nil, fmt.Errorf("label probability must be in (0,1), got %v", r.labelProb)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	return r, nil
}

// Run executes all relabelings and returns their results in replication
// order.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, r.replications)

	var wg sync.WaitGroup
	rate := make(chan struct{}, r.workers)
	errCh := make(chan error, 1)
	for i := 0; i < r.replications; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		i := i
		rworker.Job(&wg, func() error {
			res, err := r.replicate(i)
			if err != nil {
				return fmt.Errorf("replication %d: %w", i, err)
			}
			results[i] = res
			return nil
		}, rate, errCh)
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) replicate(i int) (Result, error) {
	for attempt := 0; attempt < maxLabelRetries; attempt++ {
		rng := randstream.New(r.baseSeed, uint32(i), uint32(attempt))
		labels := drawLabels(rng, r.ds.Len(), r.labelProb)
		fit, err := cone.FitSpecies(r.ds, labels)
		if errors.Is(err, cone.ErrDegenerateLabels) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		return Result{A: fit.A, Beta: fit.Beta}, nil
	}
	return Result{}, fmt.Errorf("no identifiable labeling after %d draws: %w", maxLabelRetries, cone.ErrDegenerateLabels)
}

func drawLabels(rng dataset.Rand, n int, p float64) []float64 {
	labels := make([]float64, n)
	for i := range labels {
		if float64(rng.Uint32())/(1<<32) < p {
			labels[i] = 1
		}
	}
	return labels
}
