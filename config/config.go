// Package config resolves the settings of the inv tool from flags, the
// environment, an optional config file and defaults, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. INV_FILE.
const EnvPrefix = "INV"

// EnvConfigFile names an explicit config file.
const EnvConfigFile = "INV_CONFIG"

// Setting keys, also used as global flag names.
const (
	KeyFile      = "file"
	KeyCurrency  = "currency"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Defaults.
const (
	DefaultFile      = "my-inventory.json"
	DefaultCurrency  = "USD"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Config holds the resolved settings.
type Config struct {
	File      string `mapstructure:"file"`       // inventory file
	Currency  string `mapstructure:"currency"`   // currency used to display values
	LogLevel  string `mapstructure:"log-level"`  // trace, debug, info, warn, error
	LogFormat string `mapstructure:"log-format"` // console or json
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{File: DefaultFile, Currency: DefaultCurrency, LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat}
}

// Env returns the environment variable name for a key.
func Env(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Load resolves the configuration. Flags of fs that were set on the command
// line win over everything else; fs may be nil.
func Load(fs *flag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyFile, def.File)
	v.SetDefault(KeyCurrency, def.Currency)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("inv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/inv")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(bridge(fs)); err != nil {
			return Config{}, fmt.Errorf("cannot bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bridge exposes the settings flags of a standard flag set to viper. Only
// flags set on the command line are marked as changed, the others fall back
// to env, file and defaults.
func bridge(fs *flag.FlagSet) *pflag.FlagSet {
	pfs := pflag.NewFlagSet(fs.Name(), pflag.ContinueOnError)
	for _, key := range []string{KeyFile, KeyCurrency, KeyLogLevel, KeyLogFormat} {
		if f := fs.Lookup(key); f != nil {
			pfs.AddGoFlag(f)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if pf := pfs.Lookup(f.Name); pf != nil {
			pf.Changed = true
		}
	})
	return pfs
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("inventory file path is empty")
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	return nil
}
