package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"log", ".log"},
		{".log", ".log"},
		{".LOG", ".log"},
		{"TXT", ".txt"},
		{" .Md ", ".md"},
		{"", ""},
		{".", ""},
	}

	for _, tt := range tests {
		if got := NormalizeExtension(tt.in); got != tt.want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExclusionRoundTrip(t *testing.T) {
	cfg := &Config{}

	if !cfg.AddExclusion("log") {
		t.Fatal("AddExclusion(log) = false, want true")
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != ".log" {
		t.Fatalf("Exclude = %v, want [.log]", cfg.Exclude)
	}

	// Re-adding in any casing must not duplicate
	if cfg.AddExclusion(".LOG") {
		t.Error("AddExclusion(.LOG) on present entry = true, want false")
	}
	if len(cfg.Exclude) != 1 {
		t.Fatalf("Exclude has %d entries after duplicate add, want 1", len(cfg.Exclude))
	}

	if !cfg.IsExcluded(".Log") {
		t.Error("IsExcluded(.Log) = false, want true")
	}

	if !cfg.RemoveExclusion("LOG") {
		t.Error("RemoveExclusion(LOG) = false, want true")
	}
	if len(cfg.Exclude) != 0 {
		t.Fatalf("Exclude = %v after removal, want empty", cfg.Exclude)
	}

	// Removal of an absent entry is a no-op
	if cfg.RemoveExclusion(".log") {
		t.Error("RemoveExclusion on absent entry = true, want false")
	}
}

func TestResetExclusions(t *testing.T) {
	cfg := &Config{Exclude: []string{".weird"}}
	cfg.ResetExclusions()

	if len(cfg.Exclude) != len(DefaultExclusions) {
		t.Fatalf("Exclude has %d entries, want %d", len(cfg.Exclude), len(DefaultExclusions))
	}
	if cfg.IsExcluded(".weird") {
		t.Error("IsExcluded(.weird) = true after reset, want false")
	}
	if !cfg.IsExcluded(".exe") {
		t.Error("IsExcluded(.exe) = false after reset, want true")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
	if cfg.Convert.WhitelistExtensionless {
		t.Error("default WhitelistExtensionless = true, want false")
	}
	if cfg.Convert.KeepBOM {
		t.Error("default KeepBOM = true, want false")
	}
	if len(cfg.Exclude) == 0 {
		t.Error("default exclusion list is empty")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "yaml" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"empty exclusion entry", func(c *Config) { c.Exclude = append(c.Exclude, ".") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Convert.KeepBOM = true
	cfg.Convert.WhitelistExtensionless = true
	cfg.AddExclusion(".custom")

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() = %v", err)
	}

	if !loaded.Convert.KeepBOM {
		t.Error("loaded KeepBOM = false, want true")
	}
	if !loaded.Convert.WhitelistExtensionless {
		t.Error("loaded WhitelistExtensionless = false, want true")
	}
	if !loaded.IsExcluded(".custom") {
		t.Error("loaded config lost .custom exclusion")
	}
}

func TestLoadFromFileCorrupt(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatalf("failed to write corrupt config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile on corrupt file = nil error, want error")
	}
}

func TestLoadDefaultMissingStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() with no store = %v, want nil error", err)
	}
	if cfg == nil || len(cfg.Exclude) == 0 {
		t.Fatal("LoadDefault() with no store did not return the defaults")
	}
}

func TestLoadDefaultRecoversCorruptStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path := filepath.Join(home, ".config", "bomsweep", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("exclude: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write corrupt config: %v", err)
	}

	cfg, err := LoadDefault()
	if err == nil {
		t.Error("LoadDefault() on corrupt store = nil error, want load failure for the caller to warn about")
	}
	if cfg == nil {
		t.Fatal("LoadDefault() on corrupt store = nil config, want defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("recovered config does not validate: %v", err)
	}
	if !cfg.IsExcluded(".exe") {
		t.Error("recovered config is not default-seeded")
	}
}
