package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mkadit/vietqr"
)

// QuickLinkConfig configuration for the image link builder
type QuickLinkConfig struct {
	Template string `mapstructure:"template"`
}

// Config data structure that represents a valid configuration file
type Config struct {
	DefaultBank string            `mapstructure:"default_bank"`
	Banks       map[string]string `mapstructure:"banks"`
	LogLevel    string            `mapstructure:"log_level"`
	LogFormat   string            `mapstructure:"log_format"`
	Concurrency int               `mapstructure:"concurrency"`
	Strict      bool              `mapstructure:"strict"`
	QuickLink   QuickLinkConfig   `mapstructure:"quicklink"`
}

func setDefaults(conf *viper.Viper) {
	conf.SetDefault("default_bank", vietqr.DefaultBankCode)
	conf.SetDefault("log_level", "info")
	conf.SetDefault("log_format", "text")
	conf.SetDefault("concurrency", 4)
	conf.SetDefault("strict", false)
	conf.SetDefault("quicklink.template", vietqr.DefaultQuickLinkTemplate)
}

// Load reads the configuration from configFile, or from known places on the
// disk when configFile is empty, then overlays VIETQR_* environment
// variables. A missing config file is not an error.
func Load(configFile string) (*Config, error) {
	conf := viper.New()
	setDefaults(conf)

	if configFile != "" {
		conf.SetConfigFile(configFile)
	} else {
		conf.SetConfigName("vietqr")
		conf.AddConfigPath("/etc/vietqr/")
		if home, err := os.UserHomeDir(); err == nil {
			conf.AddConfigPath(filepath.Join(home, ".vietqr"))
		}
		conf.AddConfigPath("./")
	}

	conf.SetEnvPrefix("vietqr")
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	if err := conf.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := conf.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensure we have some basic validation of the configuration
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if _, err := c.RoutingTable(); err != nil {
		return err
	}
	return nil
}

// RoutingTable returns the built-in table overlaid with the configured
// banks, using DefaultBank as fallback.
func (c *Config) RoutingTable() (*vietqr.RoutingTable, error) {
	codes := make([]string, 0, len(c.Banks))
	for code := range c.Banks {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]vietqr.RoutingEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, vietqr.RoutingEntry{Code: code, BIN: c.Banks[code]})
	}

	rt, err := vietqr.DefaultRoutingTable.Merge(entries...)
	if err != nil {
		return nil, fmt.Errorf("banks: %w", err)
	}
	if c.DefaultBank != "" {
		if rt, err = rt.WithDefault(c.DefaultBank); err != nil {
			return nil, fmt.Errorf("default_bank: %w", err)
		}
	}
	return rt, nil
}

// Logger builds a logger from the configured level and format.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}

// EncoderOptions returns the encoder options the configuration implies.
func (c *Config) EncoderOptions(log logrus.FieldLogger) ([]vietqr.EncoderOption, error) {
	rt, err := c.RoutingTable()
	if err != nil {
		return nil, err
	}
	opts := []vietqr.EncoderOption{
		vietqr.WithRoutingTable(rt),
		vietqr.WithLogger(log),
	}
	if c.Strict {
		opts = append(opts, vietqr.WithStrictValidation())
	}
	return opts, nil
}
