package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/CamRed25/Fluorine-Manager/internal/safefile"
)

// FileName is the settings file inside Dir().
const FileName = "config.yaml"

// Config holds user settings for the fluorine CLI.
type Config struct {
	// StrictHome makes commands fail instead of falling back to /tmp when
	// HOME is unset.
	StrictHome bool `yaml:"strict_home"`

	// LegacyDir overrides the pre-migration data directory.
	LegacyDir string `yaml:"legacy_dir,omitempty"`

	// ExtraStylesheetDirs are scanned after the built-in theme locations.
	ExtraStylesheetDirs []string `yaml:"extra_stylesheet_dirs,omitempty" validate:"dive,required"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path returns the settings file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads config.yaml from dir.
// Returns a zero-value Config (no error) if dir is empty or the file doesn't exist.
func Load(dir string) (*Config, error) {
	if dir == "" {
		return &Config{}, nil
	}
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save validates cfg and writes it to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	if dir == "" {
		return errors.New("no config directory")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return safefile.Write(Path(dir), data, 0o600)
}
