package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	httpfrontend "github.com/chihaya/pcgrand/frontend/http"
	"github.com/chihaya/pcgrand/pkg/log"
	"github.com/chihaya/pcgrand/pkg/pcg"
	"github.com/chihaya/pcgrand/pkg/seed"
)

// Config represents the configuration used for executing pcgrand.
type Config struct {
	MetricsAddr string              `yaml:"metrics_addr"`
	Seed        *uint64             `yaml:"seed"`
	SeedName    string              `yaml:"seed_name"`
	Generator   pcg.Config          `yaml:"generator"`
	HTTPConfig  httpfrontend.Config `yaml:"http"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	fields := log.Fields{
		"metricsAddr": cfg.MetricsAddr,
		"seedName":    cfg.SeedName,
		"multiplier":  cfg.Generator.Multiplier,
		"increment":   cfg.Generator.Increment,
	}
	if cfg.Seed != nil {
		fields["seed"] = *cfg.Seed
	}
	return fields
}

// Validate checks the parts of the config that cannot be defaulted and
// applies the defaults of the generator constants.
func (cfg Config) Validate() (Config, error) {
	if cfg.Seed != nil && cfg.SeedName != "" {
		return cfg, errors.New("config: seed and seed_name are mutually exclusive")
	}

	validcfg := cfg
	validcfg.Generator = cfg.Generator.Validate()
	if validcfg.HTTPConfig.Generator == (pcg.Config{}) {
		validcfg.HTTPConfig.Generator = validcfg.Generator
	}

	return validcfg, nil
}

// NewGenerator creates the generator described by the config: seeded by
// Seed or SeedName when either is set, at the default state otherwise.
func (cfg Config) NewGenerator() *pcg.Generator {
	g := pcg.NewWithConfig(cfg.Generator)

	switch {
	case cfg.Seed != nil:
		g.Seed(*cfg.Seed)
	case cfg.SeedName != "":
		g.Seed(seed.FromString(cfg.SeedName))
	}

	return g
}

// ConfigFile represents a namespaced YAML configation file.
type ConfigFile struct {
	PCGRand Config `yaml:"pcgrand"`
}

// ParseConfigFile returns a new ConfigFile given the path to a YAML
// configuration file.
//
// It supports relative and absolute paths and environment variables.
func ParseConfigFile(path string) (*ConfigFile, error) {
	if path == "" {
		return nil, errors.New("no config path specified")
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	contents, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	var cfgFile ConfigFile
	err = yaml.Unmarshal(contents, &cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	return &cfgFile, nil
}
