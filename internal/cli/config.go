package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TwigBush/hexvec/internal/hexblock"
	"github.com/TwigBush/hexvec/internal/operand"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Bits     int   `yaml:"bits"      mapstructure:"bits"`
	LineBits int   `yaml:"line_bits" mapstructure:"line_bits"`
	Indent   int   `yaml:"indent"    mapstructure:"indent"`
	Seed     int64 `yaml:"seed"      mapstructure:"seed"` // 0 picks a random seed
	Count    int   `yaml:"count"     mapstructure:"count"`
}

const (
	defaultBits  = 1020
	defaultCount = 1
)

// flag name -> config key
var flagKeys = map[string]string{
	"bits":      "bits",
	"line-bits": "line_bits",
	"indent":    "indent",
	"seed":      "seed",
	"count":     "count",
}

func (c *Config) Layout() hexblock.Layout {
	return hexblock.Layout{LineBits: c.LineBits, Indent: c.Indent}
}

func (c *Config) Validate() error {
	if c.Bits < 1 {
		return fmt.Errorf("config: %w, got %d", operand.ErrInvalidBits, c.Bits)
	}
	if c.Count < 1 {
		return fmt.Errorf("config: count must be at least 1, got %d", c.Count)
	}
	return c.Layout().Validate()
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hexvec"), nil
}

func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return filepath.Join(".hexvec", "config.yaml")
	}
	return filepath.Join(dir, "config.yaml")
}

// loadConfig layers flags set on the command line over HEXVEC_* env vars,
// then the YAML file at path, then defaults.
func loadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("bits", defaultBits)
	v.SetDefault("line_bits", hexblock.DefaultLayout.LineBits)
	v.SetDefault("indent", hexblock.DefaultLayout.Indent)
	v.SetDefault("seed", 0)
	v.SetDefault("count", defaultCount)

	// Env overrides: HEXVEC_BITS, HEXVEC_LINE_BITS, etc.
	v.SetEnvPrefix("HEXVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	// Read file if it exists, otherwise keep going with defaults
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
