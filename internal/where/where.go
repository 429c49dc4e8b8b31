// Package where resolves the directories ytinfo reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/ytget/ytinfo/internal/filesystem"
)

// AppName names the per-user config directory and the config file.
const AppName = "ytinfo"

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "YTINFO_CONFIG_PATH"

func ensureDir(path string) string {
	_ = filesystem.API().MkdirAll(path, os.ModePerm)
	return path
}

// Config returns the configuration directory, creating it if needed.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return ensureDir(filepath.Join(base, AppName))
}

// Logs returns the directory for log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
