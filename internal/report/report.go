// Package report summarizes fit and resampling output: summary statistics,
// percentile intervals and histograms, printed for a human reader.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/jh-206/Tree-Volume/internal/nulldist"
	"github.com/jh-206/Tree-Volume/internal/resample"
)

// Stats is the empirical summary used throughout the report: mean, standard
// error of the mean and the [2.5th, 97.5th] percentile interval.
type Stats struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdErr float64 `json:"stdErr"`
	Lo     float64 `json:"lo"`
	Hi     float64 `json:"hi"`
}

func Summarize(xs []float64) Stats {
	s := Stats{N: len(xs)}
	if len(xs) == 0 {
		return s
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.StdErr = stat.StdDev(sorted, nil) / math.Sqrt(float64(len(sorted)))
	}
	s.Lo = stat.Quantile(0.025, stat.Empirical, sorted, nil)
	s.Hi = stat.Quantile(0.975, stat.Empirical, sorted, nil)
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("mean %.5f (se %.5f), 95%% interval [%.5f, %.5f], n=%d", s.Mean, s.StdErr, s.Lo, s.Hi, s.N)
}

// ResampleSummary aggregates the Monte Carlo cross-validation columns.
type ResampleSummary struct {
	Alpha       Stats `json:"alpha"`
	ConeErr     Stats `json:"coneErr"`
	BaselineErr Stats `json:"baselineErr"`
}

func SummarizeResample(results []resample.Result) ResampleSummary {
	alphas := make([]float64, len(results))
	coneErrs := make([]float64, len(results))
	baseErrs := make([]float64, len(results))
	for i, r := range results {
		alphas[i] = r.Alpha
		coneErrs[i] = r.ConeErr
		baseErrs[i] = r.BaselineErr
	}
	return ResampleSummary{
		Alpha:       Summarize(alphas),
		ConeErr:     Summarize(coneErrs),
		BaselineErr: Summarize(baseErrs),
	}
}

// NullSummary aggregates the species-offset null distribution.
type NullSummary struct {
	Beta Stats `json:"beta"`
}

func SummarizeNullDist(results []nulldist.Result) NullSummary {
	betas := make([]float64, len(results))
	for i, r := range results {
		betas[i] = r.Beta
	}
	return NullSummary{Beta: Summarize(betas)}
}

// Report is everything one analysis run produces.
type Report struct {
	RunID    uuid.UUID
	Rows     int
	A        float64
	Alpha    float64
	Resample []resample.Result
	NullDist []nulldist.Result
}

// Render prints the full report: the full-dataset fit, resampling summaries
// and text histograms.
func (r *Report) Render(w io.Writer, bins int) error {
	if _, err := fmt.Fprintf(w, "run %s: %d observations\n", r.RunID, r.Rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "cone model fit: a = %.5f, alpha = %.5f\n", r.A, r.Alpha)

	if len(r.Resample) > 0 {
		sum := SummarizeResample(r.Resample)
		fmt.Fprintf(w, "\ncross-validation (%d replications)\n", len(r.Resample))
		fmt.Fprintf(w, "  alpha:           %s\n", sum.Alpha)
		fmt.Fprintf(w, "  cone test err:   %s\n", sum.ConeErr)
		fmt.Fprintf(w, "  OLS test err:    %s\n", sum.BaselineErr)
		Histogram(w, "alpha", column(r.Resample, func(x resample.Result) float64 { return x.Alpha }), bins)
		Histogram(w, "cone test error", column(r.Resample, func(x resample.Result) float64 { return x.ConeErr }), bins)
		Histogram(w, "OLS test error", column(r.Resample, func(x resample.Result) float64 { return x.BaselineErr }), bins)
	}

	if len(r.NullDist) > 0 {
		sum := SummarizeNullDist(r.NullDist)
		fmt.Fprintf(w, "\nspecies offset under random labels (%d replications)\n", len(r.NullDist))
		fmt.Fprintf(w, "  beta: %s\n", sum.Beta)
		betas := make([]float64, len(r.NullDist))
		for i, res := range r.NullDist {
			betas[i] = res.Beta
		}
		Histogram(w, "beta", betas, bins)
	}
	return nil
}

func column(results []resample.Result, f func(resample.Result) float64) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = f(r)
	}
	return out
}

const histWidth = 50

// Histogram prints a text histogram of xs with equal-width bins.
func Histogram(w io.Writer, title string, xs []float64, bins int) {
	if len(xs) == 0 || bins < 1 {
		return
	}
	counts, edges := bin(xs, bins)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	fmt.Fprintf(w, "\n  %s\n", title)
	for i, c := range counts {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("#", c*histWidth/max)
		}
		fmt.Fprintf(w, "  [%10.4f, %10.4f) %5d %s\n", edges[i], edges[i+1], c, bar)
	}
}

func bin(xs []float64, bins int) (counts []int, edges []float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		// all mass in one bin
		return []int{len(xs)}, []float64{lo, lo}
	}
	counts = make([]int, bins)
	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts, edges
}
