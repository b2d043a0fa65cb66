package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := defaultConfigPath()
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(path, home) {
		t.Errorf("defaultConfigPath() = %q, should be under home %q", path, home)
	}
	if want := filepath.Join(".config", appName, configFile); !strings.HasSuffix(path, want) {
		t.Errorf("defaultConfigPath() = %q, should end with %q", path, want)
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	want := filepath.Join("/tmp/custom-config", appName, configFile)
	if got := defaultConfigPath(); got != want {
		t.Errorf("defaultConfigPath() = %q, want %q", got, want)
	}
}

func TestOutputTarget(t *testing.T) {
	tests := []struct {
		output   string
		wantDir  string
		wantStem string
	}{
		{"", ".", "papermodel-scope"},
		{"disc.png", ".", "disc"},
		{"out/disc.png", "out/", "disc"},
		{"out/disc", "out/", "disc"},
	}

	for _, tt := range tests {
		dir, stem := outputTarget(tt.output, "papermodel-scope", ".png")
		if dir != tt.wantDir || stem != tt.wantStem {
			t.Errorf("outputTarget(%q) = %q, %q, want %q, %q", tt.output, dir, stem, tt.wantDir, tt.wantStem)
		}
	}
}
