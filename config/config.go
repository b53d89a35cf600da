// Package config loads pageurl settings from flags, environment and file.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PAGEURL_SERVER_ADDRESS.
const EnvPrefix = "PAGEURL"

const (
	KeyServerAddress = "server.address"
	KeyLogLevel      = "log.level"
	KeyLogJSON       = "log.json"
	KeyOutput        = "output"
)

// Config contains all the settings of the CLI and inspector server.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	// Output is the CLI report format: "text" or "json"
	Output string `mapstructure:"output"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Address: ":8181"},
		Log:    LogConfig{Level: "info"},
		Output: "text",
	}
}

// SetDefaults registers Default() on v so every key resolves even without a file.
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault(KeyServerAddress, def.Server.Address)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogJSON, def.Log.JSON)
	v.SetDefault(KeyOutput, def.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
