// Package config resolves the run configuration of the pricer.
//
// Values are layered with viper: built-in defaults (the reference example),
// an optional YAML file, an optional .env file plus PRICER_* environment
// variables, and finally the command-line flags that were set explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/contactkeval/option-pricing/internal/pricing"
	"github.com/contactkeval/option-pricing/internal/report"
)

// DefaultEnvFile is loaded when present and no other env file is given.
const DefaultEnvFile = ".env"

// EnvPrefix is prepended to every key to form its environment variable,
// e.g. PRICER_VOLATILITY.
const EnvPrefix = "PRICER"

const (
	EnvStrict    = "PRICER_STRICT"
	EnvVerbosity = "PRICER_VERBOSITY"
	EnvFormat    = "PRICER_FORMAT"
	EnvAddr      = "PRICER_ADDR"
)

// Config is the resolved run configuration: pricing inputs plus output and
// server settings.
type Config struct {
	pricing.Inputs `mapstructure:",squash"`

	Strict    bool   `mapstructure:"strict"`    // reject out-of-domain inputs instead of returning NaN/Inf
	Verbosity int    `mapstructure:"verbosity"` // 0=errors,1=info,2=debug,3=trace
	Format    string `mapstructure:"format"`    // text, table, yaml, json or csv
	Addr      string `mapstructure:"addr"`      // listen address for serve
}

// Default returns the reference example: S=100, K=105, T=1, r=5%, sigma=20%.
func Default() Config {
	return Config{
		Inputs: pricing.Inputs{
			Spot:       100,
			Strike:     105,
			Expiry:     1,
			Rate:       0.05,
			Volatility: 0.20,
		},
		Strict:    false,
		Verbosity: 1,
		Format:    string(report.FormatText),
		Addr:      ":8080",
	}
}

// flagKeys maps flag names to config keys where the two differ.
var flagKeys = map[string]string{
	"vol": "volatility",
}

// Loader accumulates configuration sources in precedence order.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("spot", d.Spot)
	v.SetDefault("strike", d.Strike)
	v.SetDefault("expiry", d.Expiry)
	v.SetDefault("rate", d.Rate)
	v.SetDefault("volatility", d.Volatility)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("format", d.Format)
	v.SetDefault("addr", d.Addr)

	return &Loader{v: v}
}

// ReadFile overlays the YAML file at path. Keys that are not part of Config
// are rejected. An empty path is a no-op.
func (l *Loader) ReadFile(path string) error {
	if path == "" {
		return nil
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		return fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := l.v.UnmarshalExact(&cfg); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// ReadEnvFile loads envFile into the process environment, from where the
// PRICER_* variables are picked up. A missing DefaultEnvFile is ignored; any
// other missing file is an error.
func (l *Loader) ReadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if envFile == DefaultEnvFile && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s file: %w", envFile, err)
	}
	return nil
}

// BindFlags lets flags that were set on the command line override every
// other source. Unchanged flags never shadow the file or the environment.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	if err := l.v.BindPFlags(flags); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := l.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Config decodes the layered values and validates them.
func (l *Loader) Config() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path and the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	l := NewLoader()
	if err := l.ReadFile(path); err != nil {
		return Default(), err
	}
	return l.Config()
}

// Resolve layers, in increasing precedence, the defaults, the YAML file at
// configPath, envFile and the PRICER_* environment, and the flags that were
// set explicitly.
func Resolve(configPath, envFile string, flags *pflag.FlagSet) (Config, error) {
	l := NewLoader()
	if err := l.ReadFile(configPath); err != nil {
		return Default(), err
	}
	if err := l.ReadEnvFile(envFile); err != nil {
		return Default(), err
	}
	if flags != nil {
		if err := l.BindFlags(flags); err != nil {
			return Default(), err
		}
	}
	return l.Config()
}

// Validate checks the settings that are not pricing inputs. Pricing inputs
// are validated by a strict pricing.Pricer, when enabled.
func (c Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 3 {
		return fmt.Errorf("verbosity must be between 0 and 3, got %d", c.Verbosity)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Pricer builds the pricer selected by the configuration.
func (c Config) Pricer() *pricing.Pricer {
	return pricing.NewPricer(pricing.WithStrict(c.Strict))
}
