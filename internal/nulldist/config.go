package nulldist

type Config struct {
	// Number of random relabelings of the dataset
	Replications int `envconfig:"TREEVOL_NULLDIST_REPLICATIONS" default:"1000" toml:"replications"`
	// Probability that an observation is labeled species 1
	LabelProb float64 `envconfig:"TREEVOL_NULLDIST_LABEL_PROB" default:"0.5" toml:"label_prob"`
	// Number of concurrent replication workers; 1 runs sequentially
	Workers int `envconfig:"TREEVOL_NULLDIST_WORKERS" default:"1" toml:"workers"`
}
