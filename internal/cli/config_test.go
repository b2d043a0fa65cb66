package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/netfile"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}

	if _, err := LoadConfig(path, true); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(required) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[files]
layout = "net.txt"
save_to = "arranged.txt"
prefix = "box"

[export]
format = "bmp"
output_dir = "out"
no_cache = true

[editor]
rotate_speed = 1.5
zoom = 2

[serve]
addr = ":9090"
`)

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"layout", cfg.Files.Layout, "net.txt"},
		{"prefix", cfg.Files.Prefix, "box"},
		{"format", cfg.Export.Format, "bmp"},
		{"output_dir", cfg.Export.OutputDir, "out"},
		{"no_cache", cfg.Export.NoCache, true},
		{"rotate_speed", cfg.Editor.RotateSpeed, 1.5},
		{"zoom", cfg.Editor.Zoom, 2},
		{"addr", cfg.Serve.Addr, ":9090"},
		// Keys not in the file keep their defaults.
		{"scale_speed", cfg.Editor.ScaleSpeed, DefaultConfig().Editor.ScaleSpeed},
		{"tps", cfg.Editor.TPS, 60},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := cfg.saveTo("net.txt"); got != "arranged.txt" {
		t.Errorf("saveTo() = %q, want %q", got, "arranged.txt")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", "[files\nlayout = 1", errors.ErrCodeInvalidFormat},
		{"unknown key", "[export]\nformats = \"png\"", errors.ErrCodeInvalidInput},
		{"bad format", "[export]\nformat = \"pdf\"", errors.ErrCodeInvalidFormat},
		{"bad prefix", "[files]\nprefix = \"a/b\"", errors.ErrCodeInvalidPath},
		{"bad speed", "[editor]\nrotate_speed = 0", errors.ErrCodeInvalidInput},
		{"bad addr", "[serve]\naddr = \"nowhere\"", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), true)
			if err == nil {
				t.Fatal("LoadConfig() succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("LoadConfig() code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadConfigUnknownKeyNamed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[editor]\nspeed = 2"), true)
	if err == nil || !strings.Contains(err.Error(), "editor.speed") {
		t.Errorf("LoadConfig() error = %v, want it to name editor.speed", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}
	if cfg.Files.Layout != netfile.DefaultPath {
		t.Errorf("Files.Layout = %q, want %q", cfg.Files.Layout, netfile.DefaultPath)
	}
	if got := cfg.saveTo("in.txt"); got != "in.txt" {
		t.Errorf("saveTo() = %q, want the loaded path", got)
	}
}
