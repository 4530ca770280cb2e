package app

import (
	"go.uber.org/zap"

	"depot/internal/domain"
	"depot/internal/store"
)

// App bundles the store capabilities and logger for the CLI.
//
// Employees and Remotes are full read+write stores, each backed by its own
// directory. RemoteWriter is the Employees store's write capability narrowed
// to RemoteEmployee, so commands can insert remote staff into the plain
// employee store without holding the combined interface.
type App struct {
	Employees    domain.ReadWriter[domain.Employee]
	Remotes      domain.ReadWriter[domain.RemoteEmployee]
	RemoteWriter domain.Writer[domain.RemoteEmployee]
	Log          *zap.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config, log *zap.Logger) (*App, error) {
	employees, err := store.NewFileStore[domain.Employee](cfg.DataDir)
	if err != nil {
		return nil, err
	}
	remotes, err := store.NewFileStore[domain.RemoteEmployee](cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &App{
		Employees:    employees,
		Remotes:      remotes,
		RemoteWriter: domain.WriteAs(domain.Writer[domain.Employee](employees), domain.RemoteEmployee.AsEmployee),
		Log:          log,
	}, nil
}
