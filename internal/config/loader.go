package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/danmichaelo/statusindicator/internal/model"
)

// File mirrors IndicatorConfig for file-based initial defaults. Zero values
// mean "unspecified" and keep the built-in default.
type File struct {
	Timestep float64 `json:"timestep" yaml:"timestep" toml:"timestep"`
	Header   string  `json:"header" yaml:"header" toml:"header"`
	Unit     string  `json:"unit" yaml:"unit" toml:"unit"`
	Enabled  bool    `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// Load reads an indicator configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (model.IndicatorConfig, error) {
	cfg := model.DefaultConfig()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &f); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &f); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &f); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}

	if f.Timestep != 0 {
		cfg.Timestep = f.Timestep
	}
	if f.Header != "" {
		cfg.Header = f.Header
	}
	if f.Unit != "" {
		u := model.TimeUnit(f.Unit)
		if !u.IsValid() {
			return cfg, fmt.Errorf("unsupported time unit: %q", f.Unit)
		}
		cfg.Unit = u
	}
	cfg.Enabled = f.Enabled
	return cfg, nil
}
