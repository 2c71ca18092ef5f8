package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config is the resolved command configuration. Precedence, lowest to highest:
// defaults, .figma2css.yaml (or --config), environment, flags.
type config struct {
	Token       string `mapstructure:"token"`
	File        string `mapstructure:"file"`
	Cache       bool   `mapstructure:"cache"`
	CacheFile   string `mapstructure:"cache-file"`
	Output      string `mapstructure:"output"`
	Report      string `mapstructure:"report"`
	LogFormat   string `mapstructure:"log-format"`
	Verbose     bool   `mapstructure:"verbose"`
	Concurrency int    `mapstructure:"concurrency"`
}

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

func loadConfig(flags *pflag.FlagSet, args []string) (*config, error) {
	v := viper.New()

	v.SetEnvPrefix("FIGMA2CSS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The token also answers to the variable the Figma docs use.
	if err := v.BindEnv("token", "FIGMA2CSS_TOKEN", "FIGMA_TOKEN"); err != nil {
		return nil, errors.Wrap(err, "bind token")
	}
	if err := v.BindEnv("file"); err != nil {
		return nil, errors.Wrap(err, "bind file")
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else {
		v.SetConfigName(".figma2css")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read .figma2css.yaml")
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if len(args) > 0 {
		cfg.File = args[0]
	}

	return &cfg, cfg.validate()
}

func (c *config) validate() error {
	if c.LogFormat != logFormatPretty && c.LogFormat != logFormatJSON {
		return errors.Newf("unknown log format %q (must be %s or %s)", c.LogFormat, logFormatPretty, logFormatJSON)
	}

	if c.Cache {
		return nil
	}
	if c.File == "" {
		return errors.WithHint(errors.New("a Figma file URL or key is required"),
			"pass it as the first argument or use --cache to read the cached file")
	}
	if c.Token == "" {
		return errors.WithHint(errors.New("a Figma access token is required"),
			"set FIGMA_TOKEN or pass --token")
	}
	return nil
}
