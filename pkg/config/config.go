package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

// ErrInvalid is returned for config values that cannot be used.
var ErrInvalid = errors.New("invalid config value")

const (
	defaultWidth         = 50
	defaultFallbackExtra = 20
	defaultWheel         = `/-\|`
)

// ReadOnly defines the read-only interface for Config.
// Immutable
type ReadOnly interface {
	GetWidth() int
	GetFallbackExtra() int
	GetWheel() string
	GetAutoFit() bool
	GetStream() Stream
	GetConfigFile() string
	Freeze()
	Checkout() Writable
}

// Writable defines the writable interface for Config.
// Mutable
type Writable interface {
	ReadOnly
	SetWidth(int)
	SetFallbackExtra(int)
	SetWheel(string)
	SetAutoFit(bool)
	SetStream(Stream)
}

// Config holds indicator defaults.
// Mutable
type Config struct {
	width         int
	fallbackExtra int
	wheel         string
	autoFit       bool
	stream        Stream
	configFile    string

	frozen bool
	edited bool
}

var _ ReadOnly = (*Config)(nil)
var _ Writable = (*Config)(nil)

func (c *Config) GetWidth() int         { return c.width }
func (c *Config) GetFallbackExtra() int { return c.fallbackExtra }
func (c *Config) GetWheel() string      { return c.wheel }
func (c *Config) GetAutoFit() bool      { return c.autoFit }
func (c *Config) GetStream() Stream     { return c.stream }
func (c *Config) GetConfigFile() string { return c.configFile }

func (c *Config) SetWidth(n int) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.width = n
}

func (c *Config) SetFallbackExtra(n int) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.fallbackExtra = n
}

func (c *Config) SetWheel(s string) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.wheel = s
}

func (c *Config) SetAutoFit(b bool) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.autoFit = b
}

func (c *Config) SetStream(s Stream) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.stream = s
}

func (c *Config) Freeze() {
	c.frozen = true
}

func (c *Config) Checkout() Writable {
	if c.frozen {
		panic("cannot checkout from frozen config")
	}
	if c.edited {
		panic("config already checked out")
	}
	c.edited = true
	return c
}

// fileConfig is the on-disk form. Absent fields keep their defaults.
type fileConfig struct {
	Width         *int    `json:"width,omitempty"`
	FallbackExtra *int    `json:"fallback_extra,omitempty"`
	Wheel         *string `json:"wheel,omitempty"`
	AutoFit       *bool   `json:"auto_fit,omitempty"`
	Stream        *string `json:"stream,omitempty"`
}

// Defaults returns a Config with built-in values only.
func Defaults() *Config {
	return &Config{
		width:         defaultWidth,
		fallbackExtra: defaultFallbackExtra,
		wheel:         defaultWheel,
		stream:        StreamStdout,
	}
}

// Init loads the configuration from the XDG config directory and the
// environment.
func Init() (ReadOnly, error) {
	return Load(filepath.Join(xdg.ConfigHome, "termbar", "config.json"))
}

// Load builds a Config from defaults, the JSON file at path if it exists,
// and the environment.
func Load(path string) (*Config, error) {
	c := Defaults()
	c.configFile = path

	if err := c.loadFile(path); err != nil {
		return nil, err
	}
	if err := c.loadEnv(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("No config file", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if fc.Width != nil {
		c.width = *fc.Width
	}
	if fc.FallbackExtra != nil {
		c.fallbackExtra = *fc.FallbackExtra
	}
	if fc.Wheel != nil {
		c.wheel = *fc.Wheel
	}
	if fc.AutoFit != nil {
		c.autoFit = *fc.AutoFit
	}
	if fc.Stream != nil {
		s, err := ParseStream(*fc.Stream)
		if err != nil {
			return err
		}
		c.stream = s
	}
	slog.Debug("Loaded config file", "path", path)
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv("TERMBAR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TERMBAR_WIDTH=%q", ErrInvalid, v)
		}
		c.width = n
	}
	if v := os.Getenv("TERMBAR_FALLBACK_EXTRA"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TERMBAR_FALLBACK_EXTRA=%q", ErrInvalid, v)
		}
		c.fallbackExtra = n
	}
	if v := os.Getenv("TERMBAR_WHEEL"); v != "" {
		c.wheel = v
	}
	if v := os.Getenv("TERMBAR_AUTOFIT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TERMBAR_AUTOFIT=%q", ErrInvalid, v)
		}
		c.autoFit = b
	}
	if v := os.Getenv("TERMBAR_STREAM"); v != "" {
		s, err := ParseStream(v)
		if err != nil {
			return err
		}
		c.stream = s
	}
	return nil
}

func (c *Config) validate() error {
	if c.width < 1 {
		return fmt.Errorf("%w: width %d must be at least 1", ErrInvalid, c.width)
	}
	if c.fallbackExtra < 1 {
		return fmt.Errorf("%w: fallback extra %d must be at least 1", ErrInvalid, c.fallbackExtra)
	}
	if c.wheel == "" {
		return fmt.Errorf("%w: wheel must not be empty", ErrInvalid)
	}
	return nil
}
