// Package where resolves the application's configuration, cache and log locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "JELLYTV_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring JELLYTV_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory, falling back to ./cache.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory holding rotated log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Session returns the file the login session is persisted to.
func Session() string {
	return filepath.Join(Config(), "session.json")
}

// ConfigFile returns the path of jellytv.toml.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}
