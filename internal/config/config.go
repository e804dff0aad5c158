// Package config loads the optional .brane YAML file that tunes how
// the package binaries run their commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomwassing/brane/internal/record"
	"gopkg.in/yaml.v3"
)

// DefaultMaxOutput caps each captured stream when no cap is configured.
const DefaultMaxOutput = 1 << 20 // 1 MB

// FileName is the optional config file read from the working directory.
const FileName = ".brane"

// Config holds the parsed .brane configuration.
// All fields are optional; zero values select the defaults.
type Config struct {
	Version      int        `yaml:"version"`
	RawTimeout   string     `yaml:"timeout"`    // e.g. "30s"; empty means no limit
	RawMaxOutput int        `yaml:"max_output"` // bytes
	RawCapture   string     `yaml:"capture"`    // complete, marked, or prefixed
	Workdir      string     `yaml:"workdir"`    // working directory for commands
	Copy         CopyConfig `yaml:"cp"`
	List         ListConfig `yaml:"ls"`
	Read         ReadConfig `yaml:"cat"`
}

// Timeout returns the configured command timeout. Zero means commands
// run without a limit.
func (c *Config) Timeout() time.Duration {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return 0
}

// MaxOutputBytes returns the configured per-stream cap or the default.
func (c *Config) MaxOutputBytes() int {
	if c.RawMaxOutput > 0 {
		return c.RawMaxOutput
	}
	return DefaultMaxOutput
}

// Capture returns the configured record capture mode. Unset and
// unrecognised values select record.CaptureComplete.
func (c *Config) Capture() record.CaptureMode {
	mode, err := record.ParseMode(c.RawCapture)
	if err != nil {
		return record.CaptureComplete
	}
	return mode
}

// CopyConfig tunes the cp operation.
type CopyConfig struct {
	Args []string `yaml:"args"` // extra flags appended to cp (e.g. -r)
}

// ListConfig tunes the ls operation.
type ListConfig struct {
	Args []string `yaml:"args"` // extra flags appended to ls (e.g. -la)
}

// ReadConfig tunes the cat operation.
type ReadConfig struct {
	Args []string `yaml:"args"` // extra flags appended to cat
}

// Load reads the .brane file from dir. A missing file yields the
// default Config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return cfg, nil
}
