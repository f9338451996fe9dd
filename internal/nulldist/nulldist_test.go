package nulldist_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/nulldist"
	"github.com/jh-206/Tree-Volume/internal/report"
)

func TestRunnerValidation(t *testing.T) {
	ds := dataset.Trees()

	_, err := nulldist.New(nil)
	require.Error(t, err)

	_, err = nulldist.New(ds, nulldist.WithReplications(0))
	require.Error(t, err)

	_, err = nulldist.New(ds, nulldist.WithLabelProb(1))
	require.Error(t, err)
}

func TestRunDeterministic(t *testing.T) {
	ds := dataset.Trees()

	run := func(workers int) []nulldist.Result {
		r, err := nulldist.New(ds, nulldist.WithReplications(100), nulldist.WithSeed(11), nulldist.WithWorkers(workers))
		require.NoError(t, err)
		results, err := r.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	first := run(1)
	require.Equal(t, first, run(1))
	require.Equal(t, first, run(4))
}

func TestBetaCentersOnZero(t *testing.T) {
	// Labels drawn independently of volume carry no effect, so the fitted
	// offsets must cluster around zero.
	ds := dataset.Trees()
	r, err := nulldist.New(ds, nulldist.WithReplications(1000), nulldist.WithSeed(20))
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1000)

	betas := make([]float64, len(results))
	for i, res := range results {
		betas[i] = res.Beta
	}
	stats := report.Summarize(betas)
	require.Greater(t, stats.StdErr, 0.0)
	require.Less(t, math.Abs(stats.Mean), 4*stats.StdErr,
		"mean beta %f is not indistinguishable from zero (se %f)", stats.Mean, stats.StdErr)
	require.LessOrEqual(t, stats.Lo, 0.0)
	require.GreaterOrEqual(t, stats.Hi, 0.0)
}
