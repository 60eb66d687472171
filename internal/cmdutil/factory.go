package cmdutil

import (
	"context"

	"github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/schmitthub/semanticlogger/pkg/logger"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations. Tests construct &Factory{} directly.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	IOStreams *iostreams.IOStreams

	// Persistent flag values, bound by the root command before any RunE.
	ConfigPath string
	Debug      bool
	Format     string

	// Dependency providers (closures wired by the factory constructor)
	ConfigLoader func() (*config.Loader, error)
	Config       func() (*logger.Config, error)
	Backend      func() *logger.Backend
	CloseBackend func(context.Context) error
}
