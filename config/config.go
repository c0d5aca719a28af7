package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"syscall"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Profiles map[string]Profile `toml:"profiles"`

	path   string
	logger *slog.Logger
}

func defaultConfig(path string) *Config {
	return &Config{
		Profiles: make(map[string]Profile),
		path:     path,
	}
}

func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	return Load(path)
}

// Load reads the profile file at path. A missing file, or a path whose parent
// is a regular file, yields an empty store bound to that path; the first
// mutation creates the file or reports what blocks it.
func Load(path string) (*Config, error) {
	cfg := defaultConfig(path)

	data, err := readConfigFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return cfg, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}

	return cfg, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *Config) Save() error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	if err := writeConfigFile(c.path, data); err != nil {
		return err
	}

	if c.logger != nil {
		c.logger.Debug("profiles saved", "path", c.path, "count", len(c.Profiles))
	}

	return nil
}
