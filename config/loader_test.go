package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("embedded yaml and Default disagree: %+v vs %+v", cfg, Default())
	}
}

func TestLoadLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, LocalPath), []byte("window:\n  title: LOCAL\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Title != "LOCAL" {
		t.Fatalf("expected local title, got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 {
		t.Fatalf("expected default width to survive partial file, got %d", cfg.Window.Width)
	}
}

func TestLoadCustomPath(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "full",
			body: "window:\n  width: 1024\n  height: 768\n  title: X\nresources: assets\nlog_level: debug\nwatch: true\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 || cfg.Window.Title != "X" {
					t.Fatalf("unexpected window %+v", cfg.Window)
				}
				if cfg.Resources != "assets" || cfg.LogLevel != "debug" || !cfg.Watch {
					t.Fatalf("unexpected config %+v", cfg)
				}
			},
		},
		{name: "zero_width", body: "window:\n  width: 0\n", wantErr: true},
		{name: "bad_level", body: "log_level: loud\n", wantErr: true},
		{name: "bad_yaml", body: "window: [\n", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, c.body))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadUnreadableLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// A directory in place of the file fails to read with something other
	// than not-exist.
	if err := os.Mkdir(filepath.Join(dir, LocalPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if cfg, err := Load(""); err == nil {
		t.Fatalf("expected read error for %s, got %+v", LocalPath, cfg)
	}
}

func TestLoadBrokenEmbeddedDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	saved := defaultYAML
	defer func() { defaultYAML = saved }()

	defaultYAML = []byte("window: [\n")
	if cfg, err := Load(""); err == nil {
		t.Fatalf("expected parse error for embedded default, got %+v", cfg)
	}
}
