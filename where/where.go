// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/dynstack-cli/dynstack/constant"
	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/samber/lo"
)

// Environment variable identifiers used to override the default directory resolution.
const (
	EnvConfigPath = "DYNSTACK_CONFIG_PATH"
	EnvLogsPath   = "DYNSTACK_LOGS_PATH"
	EnvCachePath  = "DYNSTACK_CACHE_PATH"
)

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the DYNSTACK_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Dynstack))
}

// Cache resolves the absolute path to the application's persistent cache directory.
// Compliance: Adheres to the XDG_CACHE_HOME specification or platform-specific equivalent.
// Direct override: The path resolution can be explicitly specified via the DYNSTACK_CACHE_PATH environment variable.
func Cache() string {
	if custom, ok := os.LookupEnv(EnvCachePath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: Revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Dynstack))
}

// Logs resolves the absolute path to the directory used for application diagnostic and audit logs.
// Direct override: The path resolution can be explicitly specified via the DYNSTACK_LOGS_PATH environment variable.
func Logs() string {
	if custom, ok := os.LookupEnv(EnvLogsPath); ok {
		return ensureDir(custom)
	}

	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts resolves the absolute path to the directory holding user Lua script files.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// Snapshots resolves the absolute path to the named stack snapshot registry file.
func Snapshots() string {
	return filepath.Join(Config(), "snapshots.json")
}

// Recall resolves the absolute path to the pushed payload recall registry file.
func Recall() string {
	return filepath.Join(Cache(), "recall.json")
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Dynstack))
}
