// Package config manages ytinfo settings: registered defaults, YTINFO_* environment
// variables and an optional ytinfo.toml in the config directory, all through viper.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ytget/ytinfo/internal/filesystem"
	"github.com/ytget/ytinfo/internal/logger"
	"github.com/ytget/ytinfo/internal/where"
)

// EnvPrefix prefixes every environment variable read by ytinfo.
const EnvPrefix = "YTINFO"

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is one registered configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
}

func init() {
	defaultLog := logger.DefaultLogConfig()

	register(FetchEndpoint, "https://www.youtube.com/get_video_info", "Metadata endpoint queried with ?video_id=<id>")
	register(FormatsTable, "", "Path to an encoding table file (yaml, json or toml).\nEmpty uses the built-in table")
	register(CipherPlayerScript, "", "Path to a player script defining decipher(sig).\nEmpty disables signature deciphering")
	register(HTTPTimeout, 30*time.Second, "HTTP request timeout")
	register(HTTPMaxAttempts, 1, "Maximum attempts per HTTP request, 1 disables retries")
	register(HTTPUserAgent, "", "User-Agent header, empty uses the built-in one")
	register(HTTPProxy, "", "HTTP proxy URL")
	register(LogLevel, defaultLog.Level, "Available options are: trace, debug, info, warn, error")
	register(LogFormat, defaultLog.Format, "Available options are: text, json, color")
	register(LogOutput, defaultLog.Output, "stderr, stdout, none or file:<path>")
	register(LogComponents, defaultLog.Components, "Comma separated components to log, or all")
	register(LogShowCaller, defaultLog.ShowCaller, "Include the caller in log entries")
	register(LogTimestamp, defaultLog.Timestamp, "Include timestamps in log entries")
	register(CliColored, true, "Enable colored CLI output")
	register(DownloadOutput, ".", "Directory or file path downloads are written to")
	register(DownloadProgress, true, "Show download progress")
}

// Keys returns every registered key, sorted.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

// Setup loads defaults, binds the environment and reads ytinfo.toml when present.
func Setup() error {
	viper.SetConfigName(where.AppName)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// LogConfig returns the logging section of the active configuration.
func LogConfig() *logger.LogConfig {
	return &logger.LogConfig{
		Level:      viper.GetString(LogLevel),
		Format:     viper.GetString(LogFormat),
		Output:     viper.GetString(LogOutput),
		Components: viper.GetString(LogComponents),
		ShowCaller: viper.GetBool(LogShowCaller),
		Timestamp:  viper.GetBool(LogTimestamp),
	}
}

// SetupLogger installs the global logger described by the active configuration.
func SetupLogger() error {
	cfg := LogConfig()
	if err := cfg.ValidateConfig(); err != nil {
		return err
	}
	l, err := logger.CreateLoggerFromConfig(cfg)
	if err != nil {
		return err
	}
	logger.SetGlobalLogger(l)
	return nil
}
