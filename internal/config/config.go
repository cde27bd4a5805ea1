// Package config loads simulator settings with viper: defaults, then an
// optional YAML file, then RENTACAR_* environment variables, then flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendBolt = "bolt"
	BackendJSON = "json"
)

type Config struct {
	ContractID string `mapstructure:"contract_id"`
	Sender     string `mapstructure:"sender"`
	// Account names an entry of Accounts; when set it decides Sender.
	Account      string            `mapstructure:"account"`
	Accounts     map[string]string `mapstructure:"accounts"`
	AccountsFile string            `mapstructure:"accounts_file"`
	State        State             `mapstructure:"state"`
	Log          Log               `mapstructure:"log"`
}

type State struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
	// Path is a directory; empty means stderr.
	Path string `mapstructure:"path"`
}

// flagKeys maps cobra flag names onto config keys.
var flagKeys = map[string]string{
	"contract-id":   "contract_id",
	"sender":        "sender",
	"as":            "account",
	"accounts-file": "accounts_file",
	"state-backend": "state.backend",
	"state-path":    "state.path",
	"log-level":     "log.level",
	"log-path":      "log.path",
}

// Load builds a Config. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetDefault("contract_id", "rentacar")
	v.SetDefault("sender", "hive:local")
	v.SetDefault("account", "")
	v.SetDefault("accounts_file", "")
	v.SetDefault("state.backend", BackendBolt)
	v.SetDefault("state.path", "./data/state.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")

	// RENTACAR_STATE_BACKEND etc.
	v.SetEnvPrefix("RENTACAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolveSender(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.State.Backend {
	case BackendBolt, BackendJSON:
	default:
		return fmt.Errorf("unknown state backend %q (want %s or %s)", c.State.Backend, BackendBolt, BackendJSON)
	}
	if c.State.Path == "" {
		return fmt.Errorf("state path is empty")
	}
	if c.ContractID == "" {
		return fmt.Errorf("contract id is empty")
	}
	return nil
}
