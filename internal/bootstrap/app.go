// Package bootstrap provides dependency injection wiring using Google Wire.
// It isolates all dependency construction from the main entry point,
// allowing for a minimal main.go and better testability.
package bootstrap

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appsupervisor "github.com/kodflow/overseerd/internal/application/supervisor"
	domainconfig "github.com/kodflow/overseerd/internal/domain/config"
	"github.com/kodflow/overseerd/internal/domain/lifecycle"
	domainlogging "github.com/kodflow/overseerd/internal/domain/logging"
	transporthttp "github.com/kodflow/overseerd/internal/infrastructure/transport/http"
)

// shutdownTimeout bounds how long Run waits for in-flight HTTP requests
// to drain once a shutdown signal arrives.
const shutdownTimeout time.Duration = 5 * time.Second

var (
	// version is the application version, set at build time via ldflags.
	version string = "dev"
	// configPath is the path to the YAML configuration file.
	configPath string = "/etc/overseerd/config.yaml"
)

// App holds all application dependencies injected by Wire. It is the
// root object of the dependency graph built by InitializeApp.
type App struct {
	// Config is the loaded, validated configuration.
	Config *domainconfig.Config
	// Pool is the Supervisor Pool: one worker per configured program.
	Pool *appsupervisor.Pool
	// Server is the admin HTTP front-end.
	Server *transporthttp.Server
	// Reaper reaps zombie children when running as PID 1; nil otherwise.
	Reaper lifecycle.Reaper
	// Logger is the daemon's structured event logger.
	Logger domainlogging.Logger
	// Cleanup releases resources acquired during construction (the
	// event-history store, the logger's writers) regardless of how Run exits.
	Cleanup func()
}

// Run is the main entry point called from cmd/overseerd/main.go. It
// parses flags, initializes the application via Wire, and runs the
// supervision loop until a termination signal arrives.
//
// Returns:
//   - int: exit code (0 for success, 1 for error).
func Run() int {
	flag.StringVar(&configPath, "config", configPath, "path to configuration file")
	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("overseerd %s\n", version)
		return 0
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// run wires the application and drives it until shutdown.
//
// Params:
//   - cfgPath: the path to the configuration file.
//
// Returns:
//   - error: nil on a clean shutdown, otherwise the error that ended the run.
func run(cfgPath string) error {
	app, err := InitializeApp(cfgPath)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	if app.Cleanup != nil {
		defer app.Cleanup()
	}
	defer func() { _ = app.Logger.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	if app.Reaper != nil {
		app.Reaper.Start()
		defer app.Reaper.Stop()
	}

	app.Pool.Start(ctx)
	app.Logger.Info("", "daemon_started", "supervisor started", map[string]any{
		"version":  version,
		"programs": len(app.Config.Programs),
	})

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- app.Server.Serve()
	}()

	select {
	case sig := <-sigCh:
		app.Logger.Info("", "daemon_signal", "received shutdown signal", map[string]any{"signal": sig.String()})
	case err := <-serveErrCh:
		if err != nil {
			app.Logger.Error("", "daemon_server_failed", err.Error(), nil)
		}
	}

	return shutdown(app)
}

// shutdown gracefully stops the HTTP front-end and the supervisor pool,
// in that order: closing the front-end first stops new commands from
// arriving while workers are winding down their children.
//
// Params:
//   - app: the running application to stop.
//
// Returns:
//   - error: any error returned by the HTTP server's Shutdown.
func shutdown(app *App) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := app.Server.Shutdown(shutdownCtx)
	app.Pool.Stop()
	app.Logger.Info("", "daemon_stopped", "supervisor stopped", nil)
	return err
}
