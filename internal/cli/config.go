package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/site"
)

// Output formats for the solve command.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

// Config is the contents of config.toml. Flags override every field.
type Config struct {
	// Method is the default tree algorithm ("prim" or "kruskal").
	Method string `toml:"method"`

	// AreaSize is the side length of the square probes are expected in.
	AreaSize int `toml:"area_size"`

	// MinProbes and MaxProbes bound the expected probe count per site.
	MinProbes int `toml:"min_probes"`
	MaxProbes int `toml:"max_probes"`

	// Format is the default solve output format.
	Format string `toml:"format"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		Method:    "prim",
		AreaSize:  10000,
		MinProbes: 3,
		MaxProbes: 250,
		Format:    formatText,
		Serve:     ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the config file at path, or at the default location when
// path is empty. A missing default file is not an error; a missing explicit
// one is. Keys absent from the file keep their default values. The returned
// path is the file actually read, or "" if none was.
func LoadConfig(path string) (Config, string, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, "", nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", fmt.Errorf("read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, "", ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, "", ferrors.New(ferrors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := ferrors.ValidateMethod(c.Method); err != nil {
		return err
	}
	return ferrors.ValidateFormat(c.Format, formatText, formatJSON, formatTable)
}

// configPath returns the default config location using the XDG standard
// (~/.config/fibernet/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// domainWarnings reports sites whose probe counts or coordinates fall outside
// the configured domain. These never stop a run.
func (c Config) domainWarnings(col *site.Collection) []string {
	var warnings []string
	for i, s := range col.Sites() {
		n := s.ProbeCount()
		if n < c.MinProbes || n > c.MaxProbes {
			warnings = append(warnings, fmt.Sprintf("site %d has %d probes (expected %d-%d)", i+1, n, c.MinProbes, c.MaxProbes))
		}
		for j, p := range s.Points() {
			if p.X < 0 || p.Y < 0 || p.X > c.AreaSize || p.Y > c.AreaSize {
				warnings = append(warnings, fmt.Sprintf("site %d probe %d at %s is outside the %dx%d area", i+1, j+1, p, c.AreaSize, c.AreaSize))
				break
			}
		}
	}
	return warnings
}
