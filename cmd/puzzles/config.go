package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/puzzles/braces"
)

// Config the application's configuration structure
type Config struct {
	Input       string `mapstructure:"input"`
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	Profiling   bool   `mapstructure:"profiling"`
	ProfilePath string `mapstructure:"profile-path"`

	// catvsdog
	Exact bool `mapstructure:"exact"`

	// braces
	Path         string `mapstructure:"path"`
	Quiet        bool   `mapstructure:"quiet"`
	NonRecursive bool   `mapstructure:"nonrecursive"`
	Extensions   string `mapstructure:"extensions"`
	Limit        int    `mapstructure:"limit"`
}

// LoadConfig loads the config from a file if specified, then the environment,
// then the command's flags
func LoadConfig(cmd *cobra.Command, envPrefix string) (*Config, error) {
	v := viper.New()

	// Setting defaults for this application
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("profiling", false)
	v.SetDefault("profile-path", ".")
	v.SetDefault("exact", false)
	v.SetDefault("path", "")
	v.SetDefault("quiet", false)
	v.SetDefault("nonrecursive", false)
	v.SetDefault("extensions", strings.Join(braces.DefaultExtensions, ","))
	v.SetDefault("limit", braces.DefaultLimit)

	// Read Config from ENV
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Read Config from Flags
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// Read Config from file
	if configFile, err := cmd.Flags().GetString("config-file"); err == nil && configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config

	err = v.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
