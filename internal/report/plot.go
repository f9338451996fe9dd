package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jh-206/Tree-Volume/internal/resample"
)

// SavePlots writes PNG histograms of the resampling distributions to dir,
// one file per column, named after the run ID.
func (r *Report) SavePlots(dir string, bins int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}

	plots := map[string][]float64{}
	if len(r.Resample) > 0 {
		plots["alpha"] = column(r.Resample, func(x resample.Result) float64 { return x.Alpha })
		plots["cone_err"] = column(r.Resample, func(x resample.Result) float64 { return x.ConeErr })
		plots["ols_err"] = column(r.Resample, func(x resample.Result) float64 { return x.BaselineErr })
	}
	if len(r.NullDist) > 0 {
		betas := make([]float64, len(r.NullDist))
		for i, res := range r.NullDist {
			betas[i] = res.Beta
		}
		plots["beta"] = betas
	}

	for name, xs := range plots {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", r.RunID, name))
		if err := saveHist(path, name, xs, bins); err != nil {
			return fmt.Errorf("plot %s: %w", name, err)
		}
	}
	return nil
}

func saveHist(path, title string, xs []float64, bins int) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
