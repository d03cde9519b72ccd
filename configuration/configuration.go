// Package configuration defines a configuration engine for the commands.
//
// The configuration features:
//   - automatically loads the environment variables files.
//   - reads the parameters from the environment variables.
//   - allows setting default variables if user didn't define them.
package configuration

import (
	"fmt"
	"time"

	"github.com/blocklords/contract-caller/configuration/env"
	"github.com/blocklords/contract-caller/log"
	"github.com/spf13/viper"
)

// Config Configuration Engine based on viper.Viper
type Config struct {
	viper  *viper.Viper // used to keep default values
	logger *log.Logger  // debug purpose only
}

// New creates a configuration for the command.
//
// The env_paths are the .env files passed to the command.
// They are loaded into the environment variables first.
func New(logger *log.Logger, env_paths []string) (*Config, error) {
	config_logger := logger.Child("configuration")

	if len(env_paths) > 0 {
		config_logger.Info("Loading environment files passed as command arguments", "paths", env_paths)
	}
	err := env.LoadAnyEnv(env_paths)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	conf := Config{
		viper:  viper.New(),
		logger: config_logger,
	}
	conf.viper.AutomaticEnv()

	conf.SetDefaults(CommonConfigurations)

	return &conf, nil
}

// SetDefaults sets the default configuration parameters.
// The values that user already set are not overwritten.
func (config *Config) SetDefaults(default_config DefaultConfig) {
	for name, value := range default_config.Parameters {
		if value == nil {
			continue
		}
		// already set, don't use the default
		if config.viper.IsSet(name) {
			continue
		}
		config.logger.Debug("Set default for "+default_config.Title, name, value)
		config.SetDefault(name, value)
	}
}

// SetDefault sets the default configuration name to the value
func (config *Config) SetDefault(name string, value interface{}) {
	config.viper.SetDefault(name, value)
}

// Exist Checks whether the configuration variable exists or not
// If the configuration exists or its default value exists, then returns true.
func (config *Config) Exist(name string) bool {
	value := config.viper.GetString(name)
	return len(value) > 0
}

// GetString Returns the configuration parameter as a string
func (config *Config) GetString(name string) string {
	value := config.viper.GetString(name)
	return value
}

// GetUint64 Returns the configuration parameter as an unsigned 64-bit number
func (config *Config) GetUint64(name string) uint64 {
	value := config.viper.GetUint64(name)
	return value
}

// GetBool Returns the configuration parameter as a boolean
func (config *Config) GetBool(name string) bool {
	value := config.viper.GetBool(name)
	return value
}

// RequestTimeout returns the deadline for the network phase of the command.
// Zero means the transport default is used.
func (config *Config) RequestTimeout() time.Duration {
	return time.Duration(config.GetUint64(RequestTimeout)) * time.Second
}
