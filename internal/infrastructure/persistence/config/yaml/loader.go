// Package yaml provides YAML configuration loading infrastructure.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kodflow/overseerd/internal/domain/config"
)

// Default configuration values, applied to any field the operator left
// unset in the YAML document.
const (
	defaultVersion         string = "1"
	defaultBaseDir         string = "/var/log/overseerd"
	defaultTimestampFormat string = "iso8601"
	defaultMaxSize         string = "100MB"
	defaultMaxFiles        int    = 10
	defaultRestartPolicy   string = string(config.RestartOnError)
)

// ErrNoConfigurationLoaded is returned when Reload is called without a prior Load.
var ErrNoConfigurationLoaded error = errors.New("no configuration loaded")

// Loader loads configuration from YAML files.
// It remembers the last loaded path so Reload can re-read it.
type Loader struct {
	lastPath string
}

// New creates a new YAML configuration loader.
//
// Returns:
//   - *Loader: a new loader instance ready to load configurations.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a configuration file from the given path.
//
// Params:
//   - path: absolute or relative path to the YAML configuration file.
//
// Returns:
//   - *config.Config: parsed and validated configuration.
//   - error: any error during reading, parsing, or validation.
func (l *Loader) Load(path string) (*config.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is trusted input
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.ConfigPath = path
	l.lastPath = path
	return cfg, nil
}

// Parse parses configuration from YAML bytes.
//
// Params:
//   - data: raw YAML configuration bytes.
//
// Returns:
//   - *config.Config: parsed and validated configuration.
//   - error: any error during parsing or validation.
func (l *Loader) Parse(data []byte) (*config.Config, error) {
	var dto ConfigDTO

	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&dto)
	cfg := dto.ToDomain("")

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Reload reloads configuration from the last loaded path.
//
// Returns:
//   - *config.Config: reloaded and validated configuration.
//   - error: error if no configuration was previously loaded, or reload fails.
func (l *Loader) Reload() (*config.Config, error) {
	if l.lastPath == "" {
		return nil, fmt.Errorf("%w", ErrNoConfigurationLoaded)
	}
	return l.Load(l.lastPath)
}

// applyDefaults fills in unset configuration fields with sensible
// defaults before conversion to the domain model.
//
// Params:
//   - cfg: the configuration DTO to apply defaults to.
func applyDefaults(cfg *ConfigDTO) {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	if cfg.Logging.BaseDir == "" {
		cfg.Logging.BaseDir = defaultBaseDir
	}
	if cfg.Logging.Defaults.TimestampFormat == "" {
		cfg.Logging.Defaults.TimestampFormat = defaultTimestampFormat
	}
	if cfg.Logging.Defaults.Rotation.MaxSize == "" {
		cfg.Logging.Defaults.Rotation.MaxSize = defaultMaxSize
	}
	if cfg.Logging.Defaults.Rotation.MaxFiles == 0 {
		cfg.Logging.Defaults.Rotation.MaxFiles = defaultMaxFiles
	}
	if len(cfg.Logging.Daemon.Writers) == 0 {
		cfg.Logging.Daemon.Writers = []WriterConfigDTO{{Type: "console", Level: "info"}}
	}

	for i := range cfg.Programs {
		applyProgramDefaults(&cfg.Programs[i], &cfg.Logging)
	}
}

// applyProgramDefaults fills in unset fields for one program, inheriting
// stream-capture defaults from the global logging configuration.
//
// Params:
//   - prg: the program DTO to apply defaults to.
//   - logging: the global logging configuration to inherit from.
func applyProgramDefaults(prg *ProgramConfigDTO, logging *LoggingConfigDTO) {
	if prg.Restart.Policy == "" {
		prg.Restart.Policy = defaultRestartPolicy
	}

	if prg.Logging.Stdout.File != "" {
		applyStreamDefaults(&prg.Logging.Stdout, logging)
	}
	if prg.Logging.Stderr.File != "" {
		applyStreamDefaults(&prg.Logging.Stderr, logging)
	}
}

// applyStreamDefaults inherits timestamp format and rotation settings
// for a single captured stdio stream from the global logging defaults.
//
// Params:
//   - stream: the stream DTO to apply defaults to.
//   - logging: the global logging configuration to inherit from.
func applyStreamDefaults(stream *LogStreamDTO, logging *LoggingConfigDTO) {
	if stream.TimestampFormat == "" {
		stream.TimestampFormat = logging.Defaults.TimestampFormat
	}
	if stream.Rotation.MaxSize == "" {
		stream.Rotation = logging.Defaults.Rotation
	}
}
