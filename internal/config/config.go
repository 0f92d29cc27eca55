// Package config loads the xtables configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v2"
)

// Config holds the xtables configuration.
type Config struct {
	// Nameserver queried for hostnames in address rules instead of the system resolver.
	Nameserver string `yaml:"nameserver,omitempty"`

	// LogLevel is the logrus level name ("info", "debug", ...).
	LogLevel string `yaml:"log_level,omitempty"`

	// DryRun resolves the persistence command without running it.
	DryRun bool `yaml:"dry_run,omitempty"`

	// Facts overrides the detected system facts.
	Facts map[string]string `yaml:"facts,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warning",
		Facts:    map[string]string{},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() (string, error) {
	if os.Getenv("XTABLES_CONF") != "" {
		return os.Getenv("XTABLES_CONF"), nil
	}

	home := os.Getenv("HOME")
	if home != "" {
		_, err := os.Stat(home)
		if err == nil {
			return filepath.Join(home, ".config", "xtables", "config.yml"), nil
		}
	}

	usr, err := user.Current()
	if err != nil {
		return "", err
	}

	return filepath.Join(usr.HomeDir, ".config", "xtables", "config.yml"), nil
}

// LoadConfig reads the configuration from path; if the path does not exist, it
// returns the default configuration. An empty path loads the default location.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error

		path, err = ConfigPath()
		if err != nil {
			return nil, err
		}
	}

	c := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, fmt.Errorf("Unable to read the configuration file: %w", err)
	}

	err = yaml.Unmarshal(content, c)
	if err != nil {
		return nil, fmt.Errorf("Unable to decode the configuration: %w", err)
	}

	if c.Facts == nil {
		c.Facts = map[string]string{}
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every configuration key, reporting all invalid ones.
func (c *Config) Validate() error {
	errs := &ErrorList{}

	err := LogLevelValidator(c.LogLevel)
	if err != nil {
		errs.add("log_level", c.LogLevel, err.Error())
	}

	err = NameserverValidator(c.Nameserver)
	if err != nil {
		errs.add("nameserver", c.Nameserver, err.Error())
	}

	for name := range c.Facts {
		err = FactValidator(name)
		if err != nil {
			errs.add("facts."+name, nil, err.Error())
		}
	}

	if errs.Len() > 0 {
		errs.sort()
		return errs
	}

	return nil
}

// FactNames returns the sorted names of the overridden facts.
func (c *Config) FactNames() []string {
	names := make([]string, 0, len(c.Facts))
	for name := range c.Facts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
