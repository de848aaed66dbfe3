// Package bootstrap provides Wire dependency injection for the daemon.
// This file contains custom providers that require conditional logic
// beyond a simple constructor call: the reaper is only wired when
// running as PID 1, and the event-history store is only wired when an
// operator opted into persistence.
package bootstrap

import (
	"fmt"

	appconfig "github.com/kodflow/overseerd/internal/application/config"
	"github.com/kodflow/overseerd/internal/application/history"
	appsupervisor "github.com/kodflow/overseerd/internal/application/supervisor"
	domainconfig "github.com/kodflow/overseerd/internal/domain/config"
	"github.com/kodflow/overseerd/internal/domain/lifecycle"
	domainlogging "github.com/kodflow/overseerd/internal/domain/logging"
	domainprocess "github.com/kodflow/overseerd/internal/domain/process"
	obslogging "github.com/kodflow/overseerd/internal/infrastructure/observability/logging"
	daemonlogger "github.com/kodflow/overseerd/internal/infrastructure/observability/logging/daemon"
	"github.com/kodflow/overseerd/internal/infrastructure/persistence/storage/boltdb"
	"github.com/kodflow/overseerd/internal/infrastructure/process/credentials"
	transporthttp "github.com/kodflow/overseerd/internal/infrastructure/transport/http"
)

// ProvideCredentialManager picks the credential manager appropriate to
// the container the daemon is running in: a scratch image has no
// /etc/passwd or /etc/group, so name-based User/Group values in program
// configuration would otherwise fail lookup even though the numeric
// UID/GID path works fine.
//
// Returns:
//   - credentials.CredentialManager: ScratchManager when /etc/passwd is
//     absent, otherwise the regular Unix Manager.
func ProvideCredentialManager() credentials.CredentialManager {
	if credentials.IsScratchEnvironment() {
		return credentials.NewScratch()
	}
	return credentials.New()
}

// ReaperMinimal is the minimal interface ProvideReaper needs from the
// infrastructure reaper: just enough to detect PID 1.
// Exported for testing purposes.
type ReaperMinimal interface {
	lifecycle.Reaper
}

// ProvideReaper returns the zombie reaper only if running as PID 1.
// Zombie reaping only matters for a supervisor acting as a container's
// init process; elsewhere the host's own init reaps orphaned children.
//
// Params:
//   - r: the reaper instance from infrastructure.
//
// Returns:
//   - lifecycle.Reaper: the reaper if PID 1, nil otherwise.
func ProvideReaper(r ReaperMinimal) lifecycle.Reaper {
	if r.IsPID1() {
		return r
	}
	return nil
}

// LoadConfig loads configuration from the given path using the provided loader.
//
// Params:
//   - loader: the configuration loader interface.
//   - configPath: the path to the configuration file.
//
// Returns:
//   - *domainconfig.Config: the loaded configuration.
//   - error: any error during loading.
func LoadConfig(loader appconfig.Loader, configPath string) (*domainconfig.Config, error) {
	return loader.Load(configPath)
}

// ProvideLogger builds the daemon's structured event logger from the
// loaded configuration's Logging section. A misconfigured writer falls
// back to a console logger rather than failing startup, since daemon
// logging is diagnostic, not load-bearing.
//
// Params:
//   - cfg: the loaded domain configuration.
//
// Returns:
//   - domainlogging.Logger: the daemon's structured logger.
func ProvideLogger(cfg *domainconfig.Config) domainlogging.Logger {
	logger, err := daemonlogger.BuildLogger(cfg.Logging.Daemon, cfg.Logging.BaseDir)
	if err != nil {
		return daemonlogger.DefaultLogger()
	}
	return logger
}

// ProvideHistoryRecorder opens the BoltDB-backed event-history store when
// the operator configured AdminAPI.HistoryPath, or returns a nil
// Recorder (safe at every call site) when history persistence is
// disabled. The returned cleanup closes the store, if one was opened.
//
// Params:
//   - cfg: the loaded domain configuration.
//
// Returns:
//   - history.Recorder: the recorder, or nil if disabled.
//   - func(): closes the underlying store; a no-op when disabled.
//   - error: any error opening the BoltDB file.
func ProvideHistoryRecorder(cfg *domainconfig.Config) (history.Recorder, func(), error) {
	if cfg.AdminAPI.HistoryPath == "" {
		return nil, func() {}, nil
	}

	store, err := boltdb.Open(cfg.AdminAPI.HistoryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening event history store: %w", err)
	}

	cleanup := func() {
		_ = store.Close()
	}
	return store, cleanup, nil
}

// ProvideCaptureFactory builds the CaptureFactory every worker uses to
// open per-program stdout/stderr capture when a program's Logging is
// enabled. cfg itself satisfies logging.ProgramLogPather, since
// GetProgramLogPath already resolves a program/log-file pair to a path
// under cfg.Logging.BaseDir.
//
// Params:
//   - cfg: the loaded domain configuration.
//
// Returns:
//   - appsupervisor.CaptureFactory: builds an OutputCapture per spawn.
func ProvideCaptureFactory(cfg *domainconfig.Config) appsupervisor.CaptureFactory {
	return func(programName string, logCfg domainconfig.ProgramLogging) (appsupervisor.OutputCapture, error) {
		return obslogging.NewCapture(programName, cfg, logCfg)
	}
}

// ProvidePool builds the Supervisor Pool for every configured
// program, sharing one Child Adapter, logger, history recorder, and
// capture factory across all of them.
//
// Params:
//   - cfg: the loaded domain configuration.
//   - adapter: the Child Adapter shared by every worker.
//   - logger: the daemon's structured logger.
//   - recorder: the optional event-history recorder.
//   - captureFactory: builds per-program stdout/stderr capture on spawn.
//
// Returns:
//   - *appsupervisor.Pool: the constructed supervisor pool.
func ProvidePool(cfg *domainconfig.Config, adapter domainprocess.ChildAdapter, logger domainlogging.Logger, recorder history.Recorder, captureFactory appsupervisor.CaptureFactory) *appsupervisor.Pool {
	return appsupervisor.NewPool(cfg.Programs, adapter, logger, recorder, captureFactory)
}

// ProvideServer builds the admin HTTP front-end, bound to the
// configured host and port and wired to the pool's Status Registry and
// Command Gateway.
//
// Params:
//   - cfg: the loaded domain configuration.
//   - pool: the supervisor pool exposing the registry and gateway.
//   - recorder: the optional event-history recorder embedded in
//     GET /programs/{name} responses.
//   - logger: the daemon's structured logger.
//
// Returns:
//   - *transporthttp.Server: the constructed admin HTTP server.
func ProvideServer(cfg *domainconfig.Config, pool *appsupervisor.Pool, recorder history.Recorder, logger domainlogging.Logger) *transporthttp.Server {
	return transporthttp.NewServer(cfg.AdminAPI.Host, cfg.AdminAPI.Port, pool.Registry(), pool.Gateway(), recorder, logger)
}

// NewApp assembles the final App container. This is the last provider
// in the dependency graph.
//
// Params:
//   - cfg: the loaded domain configuration.
//   - pool: the supervisor pool.
//   - server: the admin HTTP server.
//   - reaper: the zombie reaper, nil when not running as PID 1.
//   - logger: the daemon's structured logger.
//
// Returns:
//   - *App: the application container with all dependencies wired.
func NewApp(cfg *domainconfig.Config, pool *appsupervisor.Pool, server *transporthttp.Server, reaper lifecycle.Reaper, logger domainlogging.Logger) *App {
	return &App{
		Config: cfg,
		Pool:   pool,
		Server: server,
		Reaper: reaper,
		Logger: logger,
	}
}
