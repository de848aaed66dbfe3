//go:build wireinject

package bootstrap

import (
	"github.com/google/wire"

	appconfig "github.com/kodflow/overseerd/internal/application/config"
	domainprocess "github.com/kodflow/overseerd/internal/domain/process"
	infraconfig "github.com/kodflow/overseerd/internal/infrastructure/persistence/config/yaml"
	"github.com/kodflow/overseerd/internal/infrastructure/process/control"
	"github.com/kodflow/overseerd/internal/infrastructure/process/executor"
	infrareaper "github.com/kodflow/overseerd/internal/infrastructure/process/reaper"
)

// InitializeApp creates the application with all dependencies wired.
// This function is the injector that Wire generates code for; the real
// build uses the hand-maintained wire_gen.go, since this tree has no
// `go generate` step.
//
// Params:
//   - configPath: the path to the YAML configuration file.
//
// Returns:
//   - *App: the fully wired application.
//   - error: any error during dependency construction.
func InitializeApp(configPath string) (*App, error) {
	wire.Build(
		// Infrastructure: Configuration loader.
		infraconfig.New,
		wire.Bind(new(appconfig.Loader), new(*infraconfig.Loader)),
		LoadConfig,

		// Infrastructure: Process credentials manager (scratch-aware).
		ProvideCredentialManager,

		// Infrastructure: Process control (process-group management).
		control.New,
		wire.Bind(new(control.ProcessControl), new(*control.Control)),

		// Infrastructure: Process executor and Child Adapter.
		executor.NewWithDeps,
		executor.NewAdapter,
		wire.Bind(new(domainprocess.ChildAdapter), new(*executor.Adapter)),

		// Infrastructure: Zombie reaper (conditional via ProvideReaper).
		infrareaper.New,
		wire.Bind(new(ReaperMinimal), new(*infrareaper.Reaper)),
		ProvideReaper,

		// Providers: logger, event-history store, capture factory, pool, HTTP front-end.
		ProvideLogger,
		ProvideHistoryRecorder,
		ProvideCaptureFactory,
		ProvidePool,
		ProvideServer,

		// Bootstrap: final App struct.
		NewApp,
	)
	return nil, nil
}
