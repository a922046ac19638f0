package heredity

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the heredity command. It can be read from a
// YAML file and then overridden by flags.
type Config struct {
	Workers       int    `yaml:"workers" validate:"gte=0,lte=1024"`
	MaxPopulation int    `yaml:"max_population" validate:"gte=0,lte=24"`
	Decimals      int    `yaml:"decimals" validate:"gte=0,lte=17"`
	Format        string `yaml:"format" validate:"oneof=text tsv"`
	Database      string `yaml:"database"`
	Verbose       bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when neither a file nor a flag says
// otherwise.
func DefaultConfig() Config {
	return Config{
		Workers:       1,
		MaxPopulation: DefaultMaxPopulation,
		Decimals:      4,
		Format:        "text",
	}
}

// LoadConfig reads YAML settings from path on top of DefaultConfig. Keys
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return Config{}, pfx.Err(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pfx.Err(err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, pfx.Err(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, pfx.Err(err)
	}

	return cfg, nil
}

// Validate checks every setting is in range.
func (c Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// Options returns the inference options described by c.
func (c Config) Options() Options {
	return Options{
		Workers:       c.Workers,
		MaxPopulation: c.MaxPopulation,
	}
}
