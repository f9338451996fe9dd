package report

type Config struct {
	// Number of histogram bins in the printed report
	Bins int `envconfig:"TREEVOL_REPORT_BINS" default:"12" toml:"bins"`
	// Directory for PNG histogram files; empty writes no files
	PlotDir string `envconfig:"TREEVOL_REPORT_PLOT_DIR" toml:"plot_dir"`
}
