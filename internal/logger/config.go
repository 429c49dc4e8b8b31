package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ytget/ytinfo/internal/filesystem"
)

// AllComponents is the components value that enables every component.
const AllComponents = "all"

// LogConfig represents the user-facing logging configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	Components string `mapstructure:"components"`
	ShowCaller bool   `mapstructure:"show_caller"`
	Timestamp  bool   `mapstructure:"timestamp"`
}

// DefaultLogConfig returns default logging configuration
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "stderr",
		Components: "app,format",
		ShowCaller: false,
		Timestamp:  false,
	}
}

// ToLoggerConfig converts LogConfig to logger.Config
func (c *LogConfig) ToLoggerConfig() (*Config, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	format, err := parseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("parse format: %w", err)
	}

	output, err := parseOutput(c.Output)
	if err != nil {
		return nil, fmt.Errorf("parse output: %w", err)
	}

	return &Config{
		Level:      level,
		Format:     format,
		Output:     output,
		Components: parseComponents(c.Components),
		ShowCaller: c.ShowCaller,
		Timestamp:  c.Timestamp,
	}, nil
}

// ValidateConfig validates the configuration without opening any output
func (c *LogConfig) ValidateConfig() error {
	if _, err := parseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	if _, err := parseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	switch out := strings.ToLower(strings.TrimSpace(c.Output)); {
	case out == "stdout", out == "stderr", out == "null", out == "none", out == "":
	case strings.HasPrefix(out, "file:"):
	default:
		return fmt.Errorf("invalid output: %s", c.Output)
	}
	return nil
}

// CreateLoggerFromConfig creates a logger from LogConfig
func CreateLoggerFromConfig(config *LogConfig) (*Logger, error) {
	loggerConfig, err := config.ToLoggerConfig()
	if err != nil {
		return nil, fmt.Errorf("convert config: %w", err)
	}

	return New(loggerConfig), nil
}

func parseLevel(levelStr string) (Level, error) {
	if strings.TrimSpace(levelStr) == "" {
		return INFO, nil
	}
	return logrus.ParseLevel(levelStr)
}

func parseFormat(formatStr string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(formatStr)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "color", "colored":
		return FormatColor, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", formatStr)
	}
}

func parseOutput(outputStr string) (io.Writer, error) {
	trimmed := strings.TrimSpace(outputStr)
	switch strings.ToLower(trimmed) {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "null", "none":
		return io.Discard, nil
	}
	if !strings.HasPrefix(strings.ToLower(trimmed), "file:") {
		return nil, fmt.Errorf("unknown output: %s", outputStr)
	}

	path := trimmed[len("file:"):]
	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// parseComponents turns "app,format" into an enable map; "all" enables every component.
func parseComponents(list string) map[Component]bool {
	components := make(map[Component]bool, len(Components))
	for _, c := range Components {
		components[c] = false
	}
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
		case AllComponents:
			for _, c := range Components {
				components[c] = true
			}
		default:
			components[Component(name)] = true
		}
	}
	return components
}
