// Hand-written counterpart of the injector Wire would generate from wire.go.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject

package bootstrap

import (
	domainprocess "github.com/kodflow/overseerd/internal/domain/process"
	infraconfig "github.com/kodflow/overseerd/internal/infrastructure/persistence/config/yaml"
	"github.com/kodflow/overseerd/internal/infrastructure/process/control"
	"github.com/kodflow/overseerd/internal/infrastructure/process/executor"
	infrareaper "github.com/kodflow/overseerd/internal/infrastructure/process/reaper"
)

// InitializeApp creates the application with all dependencies wired. It
// mirrors the dependency graph built by wire.go's InitializeApp; this
// copy is hand-maintained because the build does not run `go generate`.
//
// Params:
//   - configPath: the path to the YAML configuration file.
//
// Returns:
//   - *App: the fully wired application.
//   - error: any error during dependency construction.
func InitializeApp(configPath string) (*App, error) {
	loader := infraconfig.New()
	cfg, err := LoadConfig(loader, configPath)
	if err != nil {
		return nil, err
	}

	credentialManager := ProvideCredentialManager()
	processControl := control.New()
	exec := executor.NewWithDeps(credentialManager, processControl)
	var adapter domainprocess.ChildAdapter = executor.NewAdapter(exec)

	reaper := infrareaper.New()
	lifecycleReaper := ProvideReaper(reaper)

	logger := ProvideLogger(cfg)

	recorder, recorderCleanup, err := ProvideHistoryRecorder(cfg)
	if err != nil {
		return nil, err
	}

	captureFactory := ProvideCaptureFactory(cfg)
	pool := ProvidePool(cfg, adapter, logger, recorder, captureFactory)
	server := ProvideServer(cfg, pool, recorder, logger)

	app := NewApp(cfg, pool, server, lifecycleReaper, logger)
	app.Cleanup = func() {
		recorderCleanup()
		_ = logger.Close()
	}
	return app, nil
}
