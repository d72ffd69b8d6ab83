// Package appconf holds the server configuration: defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package appconf

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"nexttrain.org/internal/clock"
)

// TimetableConfig says where the timetable lives and how to read it.
type TimetableConfig struct {
	Location     string        `yaml:"location" validate:"required"`
	Format       string        `yaml:"format" validate:"oneof=auto json gtfs"`
	FetchTimeout time.Duration `yaml:"fetchTimeout" validate:"gte=0"`
}

// Config holds all the configuration settings for the server.
type Config struct {
	Port      int             `yaml:"port" validate:"gt=0,lte=65535"`
	Env       string          `yaml:"env" validate:"oneof=development test production"`
	LogLevel  string          `yaml:"logLevel" validate:"oneof=debug info warn error"`
	Timezone  string          `yaml:"timezone" validate:"required,timezone"`
	RateLimit int             `yaml:"rateLimit" validate:"gte=0"`
	Timetable TimetableConfig `yaml:"timetable"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:      4000,
		Env:       "development",
		LogLevel:  "info",
		Timezone:  clock.DefaultTimezone,
		RateLimit: 100,
		Timetable: TimetableConfig{
			Location:     "tren_lunes_viernes_ida.json",
			Format:       "auto",
			FetchTimeout: 60 * time.Second,
		},
	}
}

// Environment returns the parsed Env value.
func (c Config) Environment() Environment {
	return EnvFlagToEnvironment(c.Env)
}

// Location loads the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("error loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks every field against its validate tag.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

// Parse builds the configuration from command-line arguments. When -config is
// given the file is applied first and explicitly set flags override it.
func Parse(args []string) (Config, error) {
	cfg := Default()
	var configPath string

	fs := flag.NewFlagSet("nexttrain", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|test|production)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA timezone used as the reference clock")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per client, 0 disables limiting")
	fs.StringVar(&cfg.Timetable.Location, "timetable", cfg.Timetable.Location, "Timetable file path, http(s) URL or s3://bucket/key")
	fs.StringVar(&cfg.Timetable.Format, "timetable-format", cfg.Timetable.Format, "Timetable format (auto|json|gtfs)")
	fs.DurationVar(&cfg.Timetable.FetchTimeout, "timetable-timeout", cfg.Timetable.FetchTimeout, "Timeout for fetching a remote timetable")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath != "" {
		fromFlags := cfg
		cfg = Default()
		if err := LoadFile(configPath, &cfg); err != nil {
			return Config{}, err
		}
		fs.Visit(func(f *flag.Flag) {
			overrideFromFlag(&cfg, fromFlags, f.Name)
		})
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overrideFromFlag(cfg *Config, flags Config, name string) {
	switch name {
	case "port":
		cfg.Port = flags.Port
	case "env":
		cfg.Env = flags.Env
	case "log-level":
		cfg.LogLevel = flags.LogLevel
	case "timezone":
		cfg.Timezone = flags.Timezone
	case "rate-limit":
		cfg.RateLimit = flags.RateLimit
	case "timetable":
		cfg.Timetable.Location = flags.Timetable.Location
	case "timetable-format":
		cfg.Timetable.Format = flags.Timetable.Format
	case "timetable-timeout":
		cfg.Timetable.FetchTimeout = flags.Timetable.FetchTimeout
	}
}
