// SPDX-License-Identifier: EPL-2.0

// Package config loads the txac command line settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ik5/txac/gain"
	"github.com/ik5/txac/playback"
	"github.com/ik5/txac/transcode"
)

const (
	// DefaultDir is the configuration directory under the user's home.
	DefaultDir = ".txac"
	// DefaultFile is the configuration file name.
	DefaultFile = "config.yaml"
	// DefaultSampleRate is assumed for raw files when nothing else is given.
	DefaultSampleRate = 44100
	// DefaultChannels is assumed for raw files when nothing else is given.
	DefaultChannels = 2
)

// Duration is a time.Duration read from either a Go duration string
// ("5s", "1m30s") or a number of seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			// bare numbers written as strings still mean seconds
			secs, ferr := strconv.ParseFloat(v, 64)
			if ferr != nil {
				return fmt.Errorf("invalid duration %q: %w", v, err)
			}
			return d.setSeconds(secs)
		}
		*d = Duration(parsed)
	case uint64:
		return d.setSeconds(float64(v))
	case int64:
		return d.setSeconds(float64(v))
	case int:
		return d.setSeconds(float64(v))
	case float64:
		return d.setSeconds(v)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d *Duration) setSeconds(secs float64) error {
	if math.IsNaN(secs) || math.IsInf(secs, 0) || math.Abs(secs) > math.MaxInt64/float64(time.Second) {
		return fmt.Errorf("invalid duration %v", secs)
	}
	*d = Duration(secs * float64(time.Second))
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the settings shared by the txac commands. Command line
// flags take precedence over these values.
type Config struct {
	// GainDB is the codec attenuation in decibels.
	GainDB float64 `yaml:"gain_db"`
	// SampleRate and Channels describe raw files, which carry neither.
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
	// SeekStep is how far one seek key press moves during playback.
	SeekStep Duration `yaml:"seek_step"`
	// BufferFrames sizes the speaker buffer.
	BufferFrames int `yaml:"buffer_frames"`
	// Header makes encode write a stream header.
	Header bool `yaml:"header"`
	// FFmpeg is the converter used for formats without a native decoder.
	FFmpeg string `yaml:"ffmpeg"`
	// ResampleRate converts input to this rate before encoding; 0 keeps it.
	ResampleRate int `yaml:"resample_rate"`
	// Mono folds input to a single channel before encoding.
	Mono bool `yaml:"mono"`

	path string
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		GainDB:       gain.DefaultDB,
		SampleRate:   DefaultSampleRate,
		Channels:     DefaultChannels,
		SeekStep:     Duration(playback.DefaultSeekStep),
		BufferFrames: playback.DefaultBufferFrames,
		Header:       true,
		FFmpeg:       transcode.DefaultFFmpeg,
	}
}

// DefaultPath returns ~/.txac/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, DefaultDir, DefaultFile), nil
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// Validate reports settings no command could use.
func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.GainDB) || math.IsInf(c.GainDB, 0):
		return fmt.Errorf("gain_db must be finite, got %v", c.GainDB)
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	case c.Channels <= 0:
		return fmt.Errorf("channels must be positive, got %d", c.Channels)
	case c.SeekStep <= 0:
		return fmt.Errorf("seek_step must be positive, got %v", time.Duration(c.SeekStep))
	case c.BufferFrames <= 0:
		return fmt.Errorf("buffer_frames must be positive, got %d", c.BufferFrames)
	case c.ResampleRate < 0:
		return fmt.Errorf("resample_rate must not be negative, got %d", c.ResampleRate)
	case c.FFmpeg == "":
		return errors.New("ffmpeg must not be empty")
	}
	return nil
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
