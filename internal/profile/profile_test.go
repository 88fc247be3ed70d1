package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	dataDir := t.TempDir()

	tests := []struct {
		name    string
		profile Profile
		wantErr bool
		check   func(t *testing.T, p *Profile)
	}{
		{
			name:    "unknown mode falls back to demo",
			profile: Profile{Mode: "staging", Driver: "sqlite", Data: dataDir},
			check: func(t *testing.T, p *Profile) {
				if p.Mode != "demo" {
					t.Errorf("expected mode demo, got %q", p.Mode)
				}
			},
		},
		{
			name:    "sqlite dsn defaults to mode-specific file",
			profile: Profile{Mode: "dev", Driver: "sqlite", Data: dataDir},
			check: func(t *testing.T, p *Profile) {
				expected := filepath.Join(dataDir, "habitkeeper_dev.db")
				if p.DSN != expected {
					t.Errorf("expected DSN %q, got %q", expected, p.DSN)
				}
			},
		},
		{
			name:    "explicit sqlite dsn preserved",
			profile: Profile{Mode: "dev", Driver: "sqlite", Data: dataDir, DSN: "/tmp/custom.db"},
			check: func(t *testing.T, p *Profile) {
				if p.DSN != "/tmp/custom.db" {
					t.Errorf("expected DSN preserved, got %q", p.DSN)
				}
			},
		},
		{
			name:    "unsupported driver rejected",
			profile: Profile{Mode: "dev", Driver: "mysql", Data: dataDir},
			wantErr: true,
		},
		{
			name:    "postgres requires dsn",
			profile: Profile{Mode: "dev", Driver: "postgres"},
			wantErr: true,
		},
		{
			name:    "postgres with dsn needs no data dir",
			profile: Profile{Mode: "dev", Driver: "postgres", DSN: "postgres://localhost/habits"},
		},
		{
			name:    "missing data dir rejected for sqlite",
			profile: Profile{Mode: "dev", Driver: "sqlite", Data: filepath.Join(dataDir, "does-not-exist")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			err := p.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, &p)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	envVars := []string{"HABITKEEPER_MODE", "HABITKEEPER_DATA", "HABITKEEPER_DRIVER", "HABITKEEPER_DSN"}
	for _, key := range envVars {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envVars {
			os.Unsetenv(key)
		}
	})

	p := &Profile{Mode: "dev", Driver: "sqlite"}
	p.FromEnv()
	if p.Mode != "dev" || p.Driver != "sqlite" {
		t.Errorf("flag values must survive empty environment, got %+v", p)
	}

	os.Setenv("HABITKEEPER_MODE", "prod")
	os.Setenv("HABITKEEPER_DRIVER", "postgres")
	os.Setenv("HABITKEEPER_DSN", "postgres://localhost/habits?sslmode=disable")
	p.FromEnv()
	if p.Mode != "prod" {
		t.Errorf("expected environment to override mode, got %q", p.Mode)
	}
	if p.Driver != "postgres" {
		t.Errorf("expected environment to override driver, got %q", p.Driver)
	}
	if !strings.HasPrefix(p.DSN, "postgres://") {
		t.Errorf("expected environment to set DSN, got %q", p.DSN)
	}
}

func TestIsDev(t *testing.T) {
	for mode, expected := range map[string]bool{"dev": true, "demo": true, "prod": false} {
		p := &Profile{Mode: mode}
		if p.IsDev() != expected {
			t.Errorf("IsDev() for mode %q: expected %v", mode, expected)
		}
	}
}
