package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFiles(t *testing.T) {
	tests := map[string]struct {
		dbURL    string
		port     string
		wantPort int
		wantErr  bool
	}{
		"defaults":     {dbURL: "postgres://localhost/teams", wantPort: 3000},
		"custom port":  {dbURL: "postgres://localhost/teams", port: "8080", wantPort: 8080},
		"missing db":   {port: "8080", wantErr: true},
		"bad port":     {dbURL: "postgres://localhost/teams", port: "eighty", wantErr: true},
		"port too big": {dbURL: "postgres://localhost/teams", port: "70000", wantErr: true},
		"zero port":    {dbURL: "postgres://localhost/teams", port: "0", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tc.dbURL)
			t.Setenv("PORT", tc.port)

			cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error, got config: %v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.DatabaseURL != tc.dbURL {
				t.Errorf("database url incorrect, wanted: '%s', got: '%s'", tc.dbURL, cfg.DatabaseURL)
			}
			if cfg.Port != tc.wantPort {
				t.Errorf("port incorrect, wanted: %d, got: %d", tc.wantPort, cfg.Port)
			}
		})
	}
}

func TestLoadFiles_envFile(t *testing.T) {
	// godotenv only sets variables that are not already present.
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("PORT", "9000")

	f := filepath.Join(t.TempDir(), ".env")
	contents := "DATABASE_URL=postgres://db.example.com/teams\nPORT=4000\n"
	if err := os.WriteFile(f, []byte(contents), 0o600); err != nil {
		t.Fatalf("error writing env file: %v", err)
	}

	cfg, err := LoadFiles(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://db.example.com/teams" {
		t.Errorf("database url not read from file: '%s'", cfg.DatabaseURL)
	}
	if cfg.Port != 9000 {
		t.Errorf("expected environment to win over the file, got port %d", cfg.Port)
	}
}
