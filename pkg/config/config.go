// Package config loads hydrodraw settings from a TOML file.
//
// Values missing from the file keep their defaults, and keys the file sets
// that no setting knows are rejected so typos do not go unnoticed. A few
// environment variables override the file for container deployments:
//
//	CORS_ORIGINS    comma separated list of allowed origins
//	HYDRODRAW_ADDR  listen address of the API server
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/store"
)

// Environment variables that override file settings.
const (
	EnvCORSOrigins = "CORS_ORIGINS"
	EnvAddr        = "HYDRODRAW_ADDR"
)

// DefaultPolarIncrement is the polar tracking step in degrees.
const DefaultPolarIncrement = 15.0

// Config is the complete application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  store.Config `toml:"store"`
	Snap   SnapConfig   `toml:"snap"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	CORSOrigins  []string      `toml:"cors_origins"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// SnapConfig configures the snap resolver.
type SnapConfig struct {
	Tolerance      float64  `toml:"tolerance"`
	GridSize       float64  `toml:"grid_size"`
	Disabled       []string `toml:"disabled"`
	PolarIncrement float64  `toml:"polar_increment"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8001",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Store: store.DefaultConfig(),
		Snap: SnapConfig{
			Tolerance:      snap.DefaultTolerance,
			GridSize:       snap.DefaultGridSize,
			PolarIncrement: DefaultPolarIncrement,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hydrodraw/config.toml, falling back
// to the platform's user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "hydrodraw", "config.toml")
}

// Load reads the file at path over the defaults and applies environment
// overrides. An empty path loads DefaultPath when that file exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(string(data)); err != nil {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
			}
		case os.IsNotExist(err) && !explicit:
		case os.IsNotExist(err):
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
		default:
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults without consulting the
// environment.
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Snap.Tolerance <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.tolerance must be positive, got %v", c.Snap.Tolerance)
	}
	if c.Snap.GridSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.grid_size must be positive, got %v", c.Snap.GridSize)
	}
	if c.Snap.PolarIncrement <= 0 || c.Snap.PolarIncrement > 360 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.polar_increment must be in (0, 360], got %v", c.Snap.PolarIncrement)
	}
	for _, k := range c.Snap.Disabled {
		if _, err := snap.ParseKind(k); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "snap.disabled")
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	switch c.Store.Backend {
	case store.BackendFile, store.BackendMemory, store.BackendSQLite, store.BackendRedis, store.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// SnapOptions returns the resolver options for the snap section.
func (c Config) SnapOptions() []snap.Option {
	opts := []snap.Option{
		snap.WithTolerance(c.Snap.Tolerance),
		snap.WithGridSize(c.Snap.GridSize),
	}
	if len(c.Snap.Disabled) > 0 {
		kinds := make([]snap.Kind, 0, len(c.Snap.Disabled))
		for _, k := range c.Snap.Disabled {
			if kind, err := snap.ParseKind(k); err == nil {
				kinds = append(kinds, kind)
			}
		}
		opts = append(opts, snap.Disable(kinds...))
	}
	return opts
}

// Resolver builds a snap resolver from the snap section.
func (c Config) Resolver() *snap.Resolver {
	return snap.New(c.SnapOptions()...)
}

// Polar applies polar tracking with the configured increment.
func (c Config) Polar(origin, p geom.Point) geom.Point {
	return geom.ApplyPolar(origin, p, c.Snap.PolarIncrement)
}

// LogLevel returns the parsed log level, info when unset or invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
