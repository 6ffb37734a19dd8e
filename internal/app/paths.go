package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "lifelog"
	dbFileName     = "lifelog.db"
	configFileName = "config.yaml"
)

func DefaultDBPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// DefaultConfigPath is where the optional YAML config file is looked up when
// no --config flag is given.
func DefaultConfigPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func appDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
