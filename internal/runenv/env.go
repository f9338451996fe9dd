package runenv

import (
	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

type Option func(*RunEnv) *RunEnv

func New(opts ...Option) *RunEnv {
	env := &RunEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

// RunEnv holds the wired dependencies of one analysis run.
type RunEnv struct {
	database *database.DB
	solver   solver.Solver
}

func (e *RunEnv) Database() *database.DB {
	return e.database
}

func (e *RunEnv) Solver() solver.Solver {
	return e.solver
}

func WithDatabase(db *database.DB) Option {
	return func(e *RunEnv) *RunEnv {
		e.database = db
		return e
	}
}

func WithSolver(s solver.Solver) Option {
	return func(e *RunEnv) *RunEnv {
		e.solver = s
		return e
	}
}
