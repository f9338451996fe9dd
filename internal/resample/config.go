package resample

type Config struct {
	// Number of Monte Carlo cross-validation replications
	Replications int `envconfig:"TREEVOL_RESAMPLE_REPLICATIONS" default:"1000" toml:"replications"`
	// Probability that an observation lands in the test subset
	TestFraction float64 `envconfig:"TREEVOL_RESAMPLE_TEST_FRACTION" default:"0.2" toml:"test_fraction"`
	// Number of concurrent replication workers; 1 runs sequentially
	Workers int `envconfig:"TREEVOL_RESAMPLE_WORKERS" default:"1" toml:"workers"`
}
