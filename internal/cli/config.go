package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/editor"
	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/pipeline"
	"github.com/matzehuels/papernet/pkg/render/flat/sink"
)

// configFile is the file name looked up in the config directory.
const configFile = "config.toml"

// Config holds the defaults every command starts from. It is read from a
// TOML file such as:
//
//	[files]
//	layout = "papermodeldata.txt"
//	prefix = "papermodel"
//
//	[export]
//	format = "png"
//	output_dir = "out"
//
//	[editor]
//	rotate_speed = 3.0
//	zoom = 2
//
//	[serve]
//	addr = "127.0.0.1:8080"
type Config struct {
	Files  FilesConfig  `toml:"files"`
	Export ExportConfig `toml:"export"`
	Editor EditorConfig `toml:"editor"`
	Serve  ServeConfig  `toml:"serve"`
}

// FilesConfig names the files commands read and write.
type FilesConfig struct {
	Layout string `toml:"layout"`  // Layout file to load
	SaveTo string `toml:"save_to"` // Where the editor saves; empty means Layout
	Prefix string `toml:"prefix"`  // Stem of exported images
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format     string `toml:"format"`
	OutputDir  string `toml:"output_dir"`
	Source     string `toml:"source"` // Image file replacing the scope render
	SourceSize int    `toml:"source_size"`
	Detail     int    `toml:"detail"`
	NoCache    bool   `toml:"no_cache"`
}

// EditorConfig holds interactive editor settings.
type EditorConfig struct {
	RotateSpeed float64 `toml:"rotate_speed"` // Radians per second
	ScaleSpeed  float64 `toml:"scale_speed"`  // Edge units per second
	TPS         int     `toml:"tps"`
	Zoom        int     `toml:"zoom"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Files: FilesConfig{
			Layout: netfile.DefaultPath,
			Prefix: pipeline.DefaultPrefix,
		},
		Export: ExportConfig{
			Format:    string(pipeline.DefaultFormat),
			OutputDir: ".",
			Detail:    pipeline.DefaultDetail,
		},
		Editor: EditorConfig{
			RotateSpeed: editor.DefaultRotateSpeed,
			ScaleSpeed:  editor.DefaultScaleSpeed,
			TPS:         60,
			Zoom:        1,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unless required is set, which is the case when the user named
// the file with --config. Unknown keys are rejected so that typos do not
// pass silently.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	if c.Files.Layout == "" {
		return errors.New(errors.ErrCodeInvalidInput, "files.layout cannot be empty")
	}
	if err := errors.ValidatePrefix(c.Files.Prefix); err != nil {
		return err
	}
	if _, err := sink.ParseFormat(c.Export.Format); err != nil {
		return err
	}
	if c.Editor.RotateSpeed <= 0 || c.Editor.ScaleSpeed <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "editor speeds must be positive")
	}
	if c.Editor.TPS <= 0 || c.Editor.Zoom <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "editor tps and zoom must be positive")
	}
	return errors.ValidateListenAddr(c.Serve.Addr)
}

// saveTo returns where the editor writes the layout.
func (c Config) saveTo(loaded string) string {
	if c.Files.SaveTo != "" {
		return c.Files.SaveTo
	}
	return loaded
}

// defaultConfigPath returns the config file in the XDG config directory,
// or "" when no home directory is known.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFile)
}

// =============================================================================
// Flag Overrides
// =============================================================================

// stringFlag returns the flag value when the user set it, else fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
