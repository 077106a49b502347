package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Player != "mpv" {
		t.Errorf("default player = %q, want mpv", cfg.Player)
	}
	if cfg.HomePage != "https://www.google.com" {
		t.Errorf("default home page = %q", cfg.HomePage)
	}
	if !cfg.MagicURLs {
		t.Error("default magic_urls should be true")
	}
	if !cfg.OnTop {
		t.Error("default on_top should be true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"invalid player", func(c *Config) { c.Player = "notepad" }, true},
		{"empty home page", func(c *Config) { c.HomePage = "" }, true},
		{"blank home page", func(c *Config) { c.HomePage = "   " }, true},
		{"valid vlc", func(c *Config) { c.Player = "vlc" }, false},
		{"valid browser", func(c *Config) { c.Player = "browser" }, false},
		{"player case insensitive", func(c *Config) { c.Player = "IINA" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	heliumDir := filepath.Join(tmpDir, "helium")
	if err := os.MkdirAll(heliumDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `
home_page = "https://example.com"
player = "vlc"
magic_urls = false
`
	if err := os.WriteFile(filepath.Join(heliumDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := &Config{
		HomePage:  "https://example.com",
		Player:    "vlc",
		MagicURLs: false,
		OnTop:     true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.MkdirAll(filepath.Join(tmpDir, "helium"), 0755)

	path := filepath.Join(tmpDir, "helium", "config.toml")
	if err := os.WriteFile(path, []byte(`player = "notepad"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() should reject unsupported player")
	}

	if err := os.WriteFile(path, []byte(`player = `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() should reject malformed TOML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("missing file should return defaults (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.HomePage = "http://example.org/start"
	cfg.MagicURLs = false
	cfg.Player = "celluloid"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}

	leftovers, _ := filepath.Glob(filepath.Join(tmpDir, "helium", "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.HomePage = ""
	if err := cfg.Save(); err == nil {
		t.Fatal("Save() should reject an empty home page")
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "helium", "config.toml")); !os.IsNotExist(err) {
		t.Errorf("config file should not exist, stat err = %v", err)
	}
}
