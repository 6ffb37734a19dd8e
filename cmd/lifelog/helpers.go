package lifelog

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/logger"
)

// resolveConfig layers the persistent flags over the file and environment
// configuration. Stored app_config values are applied once the database is
// open, see withDB.
func resolveConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return app.Config{}, err
	}
	if err := applyFlags(&cfg); err != nil {
		return app.Config{}, err
	}
	if cfg.DBPath == "" {
		path, err := app.DefaultDBPath()
		if err != nil {
			return app.Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}

func applyFlags(cfg *app.Config) error {
	if strings.TrimSpace(dbPath) != "" {
		cfg.DBPath = dbPath
	}
	if strings.TrimSpace(logLevel) != "" {
		if _, err := logger.ParseLevel(logLevel); err != nil {
			return err
		}
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(logLevel))
	}
	return nil
}

func withDB(run func(*sql.DB, app.Config) error) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	sqldb, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := cfg.ApplyStored(sqldb); err != nil {
		return err
	}
	if err := applyFlags(&cfg); err != nil {
		return err
	}
	return run(sqldb, cfg)
}

// withState opens the database, loads the ledgers and runs fn. A failed
// document write during fn is reported as the command's error.
func withState(run func(*app.State) error) error {
	return withDB(func(sqldb *sql.DB, cfg app.Config) error {
		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		state := app.NewStateFromDB(sqldb, cfg, log)
		if err := run(state); err != nil {
			log.Debug("command failed", zap.Error(err))
			return err
		}
		if err := state.PersistErr(); err != nil {
			return fmt.Errorf("save changes: %w", err)
		}
		return nil
	})
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func parsePositiveIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func shortDate(value string) string {
	if len(value) >= 16 && value[10] == 'T' {
		return value[:10] + " " + value[11:16]
	}
	return value
}
