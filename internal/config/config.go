// Package config loads the applet.yaml manifest that tells the host runtime
// which applet to run and how.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/applet/internal/logging"
)

// FileName is the manifest file looked up by LoadOptional.
const FileName = "applet.yaml"

// Default values for Config.
const (
	DefaultName         = "keyecho"
	DefaultID           = "org.example.keyecho"
	DefaultVersion      = "v0.1.0"
	DefaultScreenWidth  = 720
	DefaultScreenHeight = 576
	DefaultAssetTimeout = 2 * time.Second
	DefaultLogLevel     = "warn"
)

// Config represents the applet.yaml manifest.
type Config struct {
	Applet    AppletConfig    `yaml:"applet"`
	Screen    ScreenConfig    `yaml:"screen"`
	Assets    AssetsConfig    `yaml:"assets"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Log       LogConfig       `yaml:"log"`
}

// AppletConfig contains applet metadata.
type AppletConfig struct {
	Name    string `yaml:"name,omitempty"`
	ID      string `yaml:"id,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// ScreenConfig is the resolution of the full-area surface.
type ScreenConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// AssetsConfig locates the assets preloaded during load.
type AssetsConfig struct {
	// Dir is resolved relative to the manifest directory.
	Dir string `yaml:"dir,omitempty"`
	// Logo is preloaded during load. Empty skips preloading.
	Logo    string        `yaml:"logo,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LifecycleConfig controls destroy negotiation.
type LifecycleConfig struct {
	// RefuseUnforcedDestroy makes the applet decline destroy(false).
	RefuseUnforcedDestroy bool `yaml:"refuseUnforcedDestroy"`
	// RetryForcedDestroy makes the host retry a refused destroy with force.
	RetryForcedDestroy bool `yaml:"retryForcedDestroy"`
}

// LogConfig sets the host log level.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// ValidationError represents a manifest validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Default returns a Config with every default applied.
func Default() Config {
	return Config{
		Applet: AppletConfig{Name: DefaultName, ID: DefaultID, Version: DefaultVersion},
		Screen: ScreenConfig{Width: DefaultScreenWidth, Height: DefaultScreenHeight},
		Assets: AssetsConfig{Timeout: DefaultAssetTimeout},
		Lifecycle: LifecycleConfig{
			RetryForcedDestroy: true,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// LoadOptional reads applet.yaml from dir if present. A missing file yields
// the defaults with Assets.Dir set to dir.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		d := Default()
		d.Assets.Dir = dir
		return &d, nil
	}
	return cfg, err
}

// Load reads and validates the manifest at path. Missing fields take their
// defaults; a relative assets.dir is resolved against the manifest directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	base := filepath.Dir(path)
	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = base
	} else if !filepath.IsAbs(cfg.Assets.Dir) {
		cfg.Assets.Dir = filepath.Join(base, cfg.Assets.Dir)
	}
	return cfg, nil
}

// Parse decodes manifest bytes over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	d := Default()
	c.Applet.Name = strings.TrimSpace(c.Applet.Name)
	if c.Applet.Name == "" {
		c.Applet.Name = d.Applet.Name
	}
	c.Applet.ID = strings.TrimSpace(c.Applet.ID)
	if c.Applet.ID == "" {
		c.Applet.ID = defaultID(c.Applet.Name)
	}
	c.Applet.Version = strings.TrimSpace(c.Applet.Version)
	if c.Applet.Version == "" {
		c.Applet.Version = d.Applet.Version
	} else if !strings.HasPrefix(c.Applet.Version, "v") {
		c.Applet.Version = "v" + c.Applet.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate checks the manifest for values the host cannot run with.
func (c *Config) Validate() error {
	if err := validateAppletID(c.Applet.ID); err != nil {
		return ValidationError{Field: "applet.id", Message: err.Error()}
	}
	if !semver.IsValid(c.Applet.Version) {
		return ValidationError{Field: "applet.version", Message: fmt.Sprintf("%q is not a semantic version", c.Applet.Version)}
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return ValidationError{Field: "screen", Message: fmt.Sprintf("size %dx%d must be positive", c.Screen.Width, c.Screen.Height)}
	}
	if c.Assets.Timeout < 0 {
		return ValidationError{Field: "assets.timeout", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// MajorVersion returns the major component of the applet version ("v1").
func (c *Config) MajorVersion() string {
	return semver.Major(c.Applet.Version)
}

func defaultID(name string) string {
	return "org.example." + sanitizeSegment(name)
}

func sanitizeSegment(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		return "applet"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppletID(id string) error {
	if !strings.Contains(id, ".") {
		return fmt.Errorf("must contain at least one '.' (got %q)", id)
	}
	for _, segment := range strings.Split(id, ".") {
		if segment == "" {
			return fmt.Errorf("contains an empty segment (%q)", id)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("segments cannot start with a digit (%q)", id)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("invalid character %q in %q", r, id)
			}
		}
	}
	return nil
}
