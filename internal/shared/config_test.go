package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("defaults come from the embedded template", func(t *testing.T) {
		config := DefaultConfig()

		if config.Backend.BaseURL != "http://localhost:8080" {
			t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
		}
		if config.Backend.TimeoutSeconds != 15 {
			t.Errorf("unexpected timeout %d", config.Backend.TimeoutSeconds)
		}
		if config.Database.Path == "" {
			t.Error("expected a default database path")
		}
		if config.Server.Port == 0 {
			t.Error("expected a default callback port")
		}
		if config.UI.Theme != "light" {
			t.Errorf("expected light theme default, got %q", config.UI.Theme)
		}
	})

	t.Run("save and load roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Backend.BaseURL = "https://zenith.example"
		config.UI.Theme = "dark"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Backend.BaseURL != "https://zenith.example" {
			t.Errorf("unexpected base URL %q", loaded.Backend.BaseURL)
		}
		if loaded.UI.Theme != "dark" {
			t.Errorf("unexpected theme %q", loaded.UI.Theme)
		}
	})

	t.Run("load fails for a missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("CreateConfigFile writes the template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected config file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if config.Backend.BaseURL == "" {
			t.Error("expected template defaults in created file")
		}
	})
}
