package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/logging"
	"github.com/jh-206/Tree-Volume/internal/runenv"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

// FileLoader lets a config merge an optional file over the processed
// environment; file values win.
type FileLoader interface {
	ConfigFile() string
	LoadFile(path string) error
}

type SolverConfigProvider interface {
	SolverConfig() *solver.Config
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

// Setup processes the environment into config and wires the run
// dependencies it describes.
func Setup(ctx context.Context, config interface{}) (*runenv.RunEnv, error) {
	logger := logging.FromContext(ctx)
	var envOpts []runenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if fl, ok := config.(FileLoader); ok && fl.ConfigFile() != "" {
		logger.Infof("loading config file %s", fl.ConfigFile())
		if err := fl.LoadFile(fl.ConfigFile()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if solverConfigProvider, ok := config.(SolverConfigProvider); ok {
		logger.Info("Configuring solver")
		slv, err := solver.For(solverConfigProvider.SolverConfig().Method)
		if err != nil {
			return nil, fmt.Errorf("unable to create solver: %w", err)
		}
		envOpts = append(envOpts, runenv.WithSolver(slv))
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().Enabled {
		logger.Info("Configuring db")
		db, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		envOpts = append(envOpts, runenv.WithDatabase(db))
	}

	return runenv.New(envOpts...), nil
}
