// Package project loads the bares.yaml settings of the command line driver.
package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = "bares.yaml"

var Formats = []string{"text", "yaml", "json"}

type Config struct {
	Format string `yaml:"format"`
	Tokens bool   `yaml:"tokens"`
	Color  bool   `yaml:"color"`
}

func Default() Config {
	var c Config
	c.CreateDefault()
	return c
}

func (c *Config) CreateDefault() {
	c.Format = "text"
	c.Tokens = false
	c.Color = true
}

func (c Config) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want one of %v)", c.Format, Formats)
}

// Save writes the config to path. An existing file is only replaced when
// overwrite is set.
func (c Config) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists", path)
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, yml, 0644)
}

// Load reads bares.yaml from dir, falling back to the defaults when the
// file does not exist.
func Load(dir string) (Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

func LoadFile(path string) (Config, error) {
	conf := Default()

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return conf, nil
}
