package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Profile is configuration to start the application.
type Profile struct {
	// Mode can be "prod", "dev" or "demo". Demo mode seeds sample habits on first run.
	Mode string
	// Data is the directory that holds the database file (sqlite driver only).
	Data string
	// Driver is the database driver: sqlite (default) or postgres.
	Driver string
	// DSN is the database source name.
	DSN string
	// Version is the current application version.
	Version string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsDemo returns true when running against the seeded demo database.
func (p *Profile) IsDemo() bool {
	return p.Mode == "demo"
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables. Values already set
// from flags are kept unless the environment overrides them.
func (p *Profile) FromEnv() {
	if v := getEnvOrDefault("HABITKEEPER_MODE", ""); v != "" {
		p.Mode = v
	}
	if v := getEnvOrDefault("HABITKEEPER_DATA", ""); v != "" {
		p.Data = v
	}
	if v := getEnvOrDefault("HABITKEEPER_DRIVER", ""); v != "" {
		p.Driver = v
	}
	if v := getEnvOrDefault("HABITKEEPER_DSN", ""); v != "" {
		p.DSN = v
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver != "sqlite" && p.Driver != "postgres" {
		return errors.Errorf("unsupported driver %q, expected sqlite or postgres", p.Driver)
	}

	if p.Mode == "prod" && p.Data == "" {
		if runtime.GOOS == "windows" {
			p.Data = filepath.Join(os.Getenv("ProgramData"), "habitkeeper")
			if _, err := os.Stat(p.Data); os.IsNotExist(err) {
				if err := os.MkdirAll(p.Data, 0770); err != nil {
					slog.Error("failed to create data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
					return err
				}
			}
		} else {
			p.Data = "/var/opt/habitkeeper"
		}
	}

	if p.Driver == "sqlite" {
		dataDir, err := checkDataDir(p.Data)
		if err != nil {
			slog.Error("failed to check data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
			return err
		}
		p.Data = dataDir

		if p.DSN == "" {
			dbFile := fmt.Sprintf("habitkeeper_%s.db", p.Mode)
			p.DSN = filepath.Join(dataDir, dbFile)
		}
	} else if p.DSN == "" {
		return errors.New("dsn required for postgres driver")
	}

	return nil
}
