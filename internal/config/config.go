package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/nulldist"
	"github.com/jh-206/Tree-Volume/internal/report"
	"github.com/jh-206/Tree-Volume/internal/resample"
	"github.com/jh-206/Tree-Volume/internal/setup"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

var (
	_ setup.FileLoader             = (*Config)(nil)
	_ setup.SolverConfigProvider   = (*Config)(nil)
	_ setup.DatabaseConfigProvider = (*Config)(nil)
)

type Config struct {
	// Optional TOML config file; its values take precedence over env
	File string `envconfig:"TREEVOL_CONFIG" toml:"-"`
	// CSV dataset path; empty runs on the embedded 31-tree dataset
	DataPath string `envconfig:"TREEVOL_DATA" toml:"data"`
	// Base seed for all replication streams
	Seed uint32 `envconfig:"TREEVOL_SEED" default:"20" toml:"seed"`
	// Development-style logging
	Debug bool `envconfig:"TREEVOL_DEBUG" default:"false" toml:"debug"`

	Solver   solver.Config   `toml:"solver"`
	Resample resample.Config `toml:"resample"`
	NullDist nulldist.Config `toml:"nulldist"`
	Report   report.Config   `toml:"report"`
	Database database.Config `toml:"database"`
}

func (c *Config) ConfigFile() string {
	return c.File
}

func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) SolverConfig() *solver.Config {
	return &c.Solver
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) ResampleConfig() *resample.Config {
	return &c.Resample
}

func (c *Config) NullDistConfig() *nulldist.Config {
	return &c.NullDist
}

func (c *Config) ReportConfig() *report.Config {
	return &c.Report
}
