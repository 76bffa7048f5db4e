// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the people-api CLI. It pulls program
// managers, studio managers and chairs from the Portal people directory and
// writes them as a sheet.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/people-api/internal/directory"
	"github.com/pdiddy/people-api/internal/secrets"
	"github.com/pdiddy/people-api/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultUserAgent  = "people-api/0.1"
)

var (
	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets secrets.Secrets

	logger *zap.Logger
)

// rootCmd is the base command for the people-api CLI.
var rootCmd = &cobra.Command{
	Use:   "people-api",
	Short: "Pull program chairs, program managers, and studio managers from the Portal directory",
	Long: `people-api searches the Portal people directory for staff with program or
project manager titles, Studio Operations staff, and faculty with chair titles.
It parses each person's free-text positions into a role and a program and
writes one row per person: Name, Email, Role, Program(s) or Department.

Output replaces the previous sheet entirely; tab-separated text goes to stdout
by default.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./people-api.yaml or ~/.config/people-api/people-api.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("url", directory.DefaultURL, "people search endpoint")
	rootCmd.PersistentFlags().Int("size", directory.DefaultSize, "maximum hits per query")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP request timeout")

	_ = viper.BindPFlag("directory.url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("directory.size", rootCmd.PersistentFlags().Lookup("size"))
	_ = viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("http.max_retries", defaultMaxRetries)
	viper.SetDefault("output.format", string(types.FormatTSV))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("people-api")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "people-api"))
		}
	}

	viper.SetEnvPrefix("PEOPLE_API")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// directoryConfig assembles directory settings from config, env and flags.
func directoryConfig() types.DirectoryConfig {
	return types.DirectoryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("http.timeout"),
			UserAgent:  viper.GetString("http.user_agent"),
			MaxRetries: viper.GetInt("http.max_retries"),
		},
		URL:   viper.GetString("directory.url"),
		Size:  viper.GetInt("directory.size"),
		Token: loadedSecrets.Get(secrets.DirectoryToken, viper.GetString("directory.token")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
