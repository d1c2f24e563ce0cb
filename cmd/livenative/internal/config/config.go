// Package config loads the optional livenative.yaml of a project.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/markup"
)

// FileName is the name of the configuration file.
const FileName = "livenative.yaml"

// Config represents the optional livenative.yaml configuration.
type Config struct {
	Events   EventsConfig   `yaml:"events"`
	Protocol ProtocolConfig `yaml:"protocol"`
	Log      LogConfig      `yaml:"log"`
	// Placeholder substitutes placeholders for failed subtrees. False omits
	// them instead.
	Placeholder *bool `yaml:"placeholder,omitempty"`
}

// EventsConfig holds the fallback timing windows of value-change events.
type EventsConfig struct {
	Debounce string `yaml:"debounce,omitempty"`
	Throttle string `yaml:"throttle,omitempty"`
}

// ProtocolConfig selects the document protocol version accepted.
type ProtocolConfig struct {
	Version string `yaml:"version,omitempty"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	Defaults        core.Defaults
	ProtocolVersion string
	Policy          core.FailurePolicy
	LogLevel        slog.Level
	LogFormat       string
}

// LoadOptional reads livenative.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads livenative.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve validates cfg and fills defaults.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	debounce, err := window("events.debounce", cfg.Events.Debounce, core.DefaultDefaults.Debounce)
	if err != nil {
		return nil, err
	}
	throttle, err := window("events.throttle", cfg.Events.Throttle, core.DefaultDefaults.Throttle)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Protocol.Version)
	if version == "" {
		version = markup.ProtocolVersion
	}
	if !semver.IsValid("v" + strings.TrimPrefix(version, "v")) {
		return nil, fmt.Errorf("protocol.version %q is not a semantic version", version)
	}

	var level slog.Level
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("log.format %q must be text or json", cfg.Log.Format)
	}

	policy := core.PolicyPlaceholder
	if cfg.Placeholder != nil && !*cfg.Placeholder {
		policy = core.PolicyOmit
	}

	return &Resolved{
		Root:            dir,
		Defaults:        core.Defaults{Debounce: debounce, Throttle: throttle},
		ProtocolVersion: version,
		Policy:          policy,
		LogLevel:        level,
		LogFormat:       format,
	}, nil
}

func window(name, s string, def time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}

// Logger returns a logger writing to w in the configured format and level.
func (r *Resolved) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: r.LogLevel}
	if r.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FindProjectRoot walks up from the current directory to find livenative.yaml.
// It returns the current directory when none is found.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}
