package cli

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"

	"github.com/tychoish/chain/ers"
)

// Config holds the settings shared by every command. Values come
// from flags, CHAIN_ prefixed environment variables, and an optional
// YAML config file, in that order of precedence.
type Config struct {
	ConfigFile string `yaml:"config"`
	LogLevel   string `yaml:"log-level"`
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
}

var configKeys = []string{"config", "log-level", "input", "output"}

func (s *session) loadConfig(cmd *cobra.Command) error {
	v := s.viper
	v.SetEnvPrefix("chain")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %q, %w", key, err)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	decoderOpt := func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
		cfg.TagName = "yaml"
		cfg.WeaklyTypedInput = true
	}

	conf := Config{}
	if err := v.Unmarshal(&conf, decoderOpt); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	s.conf = conf
	return nil
}

// Validate checks the output format, and fills in defaults for empty
// values.
func (c *Config) Validate() error {
	if c.Input == "" {
		c.Input = "-"
	}

	switch c.Output {
	case "":
		c.Output = outputText
	case outputText, outputJSON, outputYAML:
	default:
		return ers.Wrapf(ers.ErrInvalidInput, "output format %q is not one of text, json, yaml", c.Output)
	}

	return nil
}
