package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipperhouse/hifi"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override settings, e.g.
// HIFI_SCALE or HIFI_EOP_BASE_URL.
const EnvPrefix = "HIFI"

// FileName is the config file name looked up without an explicit path.
const FileName = "hifi.toml"

// LogConfig configures the log output of the CLI.
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format" comment:"console or json"`
}

// EOPConfig configures where UT1 data comes from.
type EOPConfig struct {
	Files    []string      `mapstructure:"files" toml:"files" comment:"local EOP2 files, merged in order"`
	BaseURL  string        `mapstructure:"base_url" toml:"base_url"`
	File     string        `mapstructure:"file" toml:"file" comment:"file fetched under base_url when files is empty"`
	CacheTTL hifi.Duration `mapstructure:"cache_ttl" toml:"cache_ttl"`
	Timeout  hifi.Duration `mapstructure:"timeout" toml:"timeout"`

	MinInterval hifi.Duration `mapstructure:"min_interval" toml:"min_interval" comment:"minimum time between downloads once burst is spent, 0 s for no limit"`
	Burst       int           `mapstructure:"burst" toml:"burst"`
}

// Config holds all runtime configuration of the hifi CLI.
// Values are populated from hifi.toml, HIFI_* env vars, and CLI flags.
type Config struct {
	Scale           hifi.TimeScale `mapstructure:"scale" toml:"scale" comment:"time scale epochs are printed in"`
	LeapSecondsFile string         `mapstructure:"leap_seconds_file" toml:"leap_seconds_file" comment:"IERS leap-seconds.list, built-in table when empty"`
	Log             LogConfig      `mapstructure:"log" toml:"log"`
	EOP             EOPConfig      `mapstructure:"eop" toml:"eop"`
}

var defaults = map[string]any{
	"scale":             "UTC",
	"leap_seconds_file": "",
	"log.level":         "info",
	"log.format":        "console",
	"eop.files":         []string{},
	"eop.base_url":      "https://eop2-external.jpl.nasa.gov/eop2",
	"eop.file":          "latest_eop2.short",
	"eop.cache_ttl":     "1 day",
	"eop.timeout":       "30 s",
	"eop.min_interval":  "1 min",
	"eop.burst":         4,
}

// Init points viper at the config file and the environment. An empty
// cfgFile looks for hifi.toml in the working directory, then in the user
// config directory. A missing config file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "hifi"))
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scale: hifi.UTC,
		Log: LogConfig{
			Level:  defaults["log.level"].(string),
			Format: defaults["log.format"].(string),
		},
		EOP: EOPConfig{
			Files:    []string{},
			BaseURL:  defaults["eop.base_url"].(string),
			File:     defaults["eop.file"].(string),
			CacheTTL: hifi.Day.Duration(),
			Timeout:  hifi.Second.Times(30),

			MinInterval: hifi.Minute.Duration(),
			Burst:       defaults["eop.burst"].(int),
		},
	}
}

// Validate reports settings no command can work with.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	if c.EOP.CacheTTL.IsNegative() {
		return fmt.Errorf("config: eop.cache_ttl must not be negative, got %s", c.EOP.CacheTTL)
	}
	if c.EOP.Timeout.IsNegative() || c.EOP.Timeout.IsZero() {
		return fmt.Errorf("config: eop.timeout must be positive, got %s", c.EOP.Timeout)
	}
	if c.EOP.MinInterval.IsNegative() {
		return fmt.Errorf("config: eop.min_interval must not be negative, got %s", c.EOP.MinInterval)
	}
	if c.EOP.Burst < 1 {
		return fmt.Errorf("config: eop.burst must be at least 1, got %d", c.EOP.Burst)
	}
	return nil
}

// WriteTOML encodes cfg as a TOML config file.
func WriteTOML(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}
