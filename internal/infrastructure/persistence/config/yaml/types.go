// Package yaml provides YAML configuration loading infrastructure.
// It handles parsing and conversion of YAML configuration files to domain objects.
package yaml

import "github.com/kodflow/overseerd/internal/domain/config"

// ConfigDTO is the YAML representation of the root configuration.
// It serves as the data transfer object for parsing the main configuration file.
type ConfigDTO struct {
	Version  string             `yaml:"version"`
	Logging  LoggingConfigDTO   `yaml:"logging"`
	Programs []ProgramConfigDTO `yaml:"programs"`
}

// LoggingConfigDTO is the YAML representation of the global logging defaults.
type LoggingConfigDTO struct {
	BaseDir  string          `yaml:"base_dir,omitempty"`
	Defaults LogDefaultsDTO  `yaml:"defaults,omitempty"`
	Daemon   DaemonLogingDTO `yaml:"daemon,omitempty"`
}

// LogDefaultsDTO is the YAML representation of default logging settings
// inherited by every program's optional stdio capture.
type LogDefaultsDTO struct {
	TimestampFormat string          `yaml:"timestamp_format,omitempty"`
	Rotation        RotationDTO     `yaml:"rotation,omitempty"`
}

// DaemonLogingDTO is the YAML representation of daemon-level event logging.
type DaemonLogingDTO struct {
	Writers []WriterConfigDTO `yaml:"writers,omitempty"`
}

// WriterConfigDTO is the YAML representation of a single daemon log writer.
type WriterConfigDTO struct {
	Type  string         `yaml:"type"`
	Level string         `yaml:"level,omitempty"`
	File  FileWriterDTO  `yaml:"file,omitempty"`
	JSON  JSONWriterDTO  `yaml:"json,omitempty"`
}

// FileWriterDTO is the YAML representation of a plain-text file writer.
type FileWriterDTO struct {
	Path     string      `yaml:"path,omitempty"`
	Rotation RotationDTO `yaml:"rotation,omitempty"`
}

// JSONWriterDTO is the YAML representation of a structured JSON file writer.
type JSONWriterDTO struct {
	Path     string      `yaml:"path,omitempty"`
	Rotation RotationDTO `yaml:"rotation,omitempty"`
}

// RotationDTO is the YAML representation of log rotation settings.
type RotationDTO struct {
	MaxSize  string `yaml:"max_size,omitempty"`
	MaxAge   string `yaml:"max_age,omitempty"`
	MaxFiles int    `yaml:"max_files,omitempty"`
	Compress bool   `yaml:"compress,omitempty"`
}

// ProgramConfigDTO is the YAML representation of a supervised program.
type ProgramConfigDTO struct {
	Name             string            `yaml:"name"`
	Command          string            `yaml:"command"`
	Args             []string          `yaml:"args,omitempty"`
	User             string            `yaml:"user,omitempty"`
	Group            string            `yaml:"group,omitempty"`
	WorkingDirectory string            `yaml:"working_dir,omitempty"`
	Environment      map[string]string `yaml:"environment,omitempty"`
	Restart          RestartConfigDTO  `yaml:"restart,omitempty"`
	Logging          ProgramLoggingDTO `yaml:"logging,omitempty"`
}

// RestartConfigDTO is the YAML representation of a program's restart policy.
type RestartConfigDTO struct {
	Policy string `yaml:"policy,omitempty"`
}

// ProgramLoggingDTO is the YAML representation of optional stdout/stderr capture.
type ProgramLoggingDTO struct {
	Stdout LogStreamDTO `yaml:"stdout,omitempty"`
	Stderr LogStreamDTO `yaml:"stderr,omitempty"`
}

// LogStreamDTO is the YAML representation of a single captured stdio stream.
type LogStreamDTO struct {
	File            string      `yaml:"file,omitempty"`
	TimestampFormat string      `yaml:"timestamp_format,omitempty"`
	Rotation        RotationDTO `yaml:"rotation,omitempty"`
}

// ToDomain converts the root DTO into the immutable domain configuration.
// The caller must have already applied defaults and will validate the
// result separately; ToDomain performs no validation of its own.
//
// Params:
//   - path: the filesystem path this configuration was loaded from.
//
// Returns:
//   - *config.Config: the converted domain configuration.
func (c *ConfigDTO) ToDomain(path string) *config.Config {
	programs := make([]config.ProgramConfig, 0, len(c.Programs))
	for i := range c.Programs {
		programs = append(programs, c.Programs[i].toDomain())
	}

	return &config.Config{
		Version:    c.Version,
		Logging:    c.Logging.toDomain(),
		Programs:   programs,
		ConfigPath: path,
	}
}

func (l *LoggingConfigDTO) toDomain() config.LoggingConfig {
	return config.LoggingConfig{
		BaseDir:  l.BaseDir,
		Defaults: l.Defaults.toDomain(),
		Daemon:   l.Daemon.toDomain(),
	}
}

func (d *LogDefaultsDTO) toDomain() config.LogDefaults {
	return config.LogDefaults{
		TimestampFormat: d.TimestampFormat,
		Rotation:        d.Rotation.toDomain(),
	}
}

func (d *DaemonLogingDTO) toDomain() config.DaemonLogging {
	writers := make([]config.WriterConfig, 0, len(d.Writers))
	for i := range d.Writers {
		writers = append(writers, d.Writers[i].toDomain())
	}
	return config.DaemonLogging{Writers: writers}
}

func (w *WriterConfigDTO) toDomain() config.WriterConfig {
	return config.WriterConfig{
		Type:  w.Type,
		Level: w.Level,
		File:  config.FileWriterConfig{Path: w.File.Path, Rotation: w.File.Rotation.toDomain()},
		JSON:  config.JSONWriterConfig{Path: w.JSON.Path, Rotation: w.JSON.Rotation.toDomain()},
	}
}

func (r *RotationDTO) toDomain() config.RotationConfig {
	return config.RotationConfig{
		MaxSize:  r.MaxSize,
		MaxAge:   r.MaxAge,
		MaxFiles: r.MaxFiles,
		Compress: r.Compress,
	}
}

func (p *ProgramConfigDTO) toDomain() config.ProgramConfig {
	return config.ProgramConfig{
		Name:             p.Name,
		Command:          p.Command,
		Args:             p.Args,
		Environment:      p.Environment,
		Restart:          config.RestartConfig{Policy: config.RestartPolicy(p.Restart.Policy)},
		User:             p.User,
		Group:            p.Group,
		WorkingDirectory: p.WorkingDirectory,
		Logging:          p.Logging.toDomain(),
	}
}

func (l *ProgramLoggingDTO) toDomain() config.ProgramLogging {
	return config.ProgramLogging{
		Stdout: l.Stdout.toDomain(),
		Stderr: l.Stderr.toDomain(),
	}
}

func (s *LogStreamDTO) toDomain() config.LogStreamConfig {
	return config.LogStreamConfig{
		FilePath:       s.File,
		Format:         s.TimestampFormat,
		RotationConfig: s.Rotation.toDomain(),
	}
}
