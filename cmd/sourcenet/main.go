// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sourcenet CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/logging"
	"github.com/pdiddy/sourcenet/internal/store"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appConfig is the resolved configuration for the running command.
	appConfig = types.DefaultConfig()

	logger = zap.NewNop()
)

// rootCmd is the base command for the sourcenet CLI.
var rootCmd = &cobra.Command{
	Use:   "sourcenet",
	Short: "Locate quotations and resolve people in newspaper articles",
	Long: `sourcenet codes newspaper articles. It finds quotations and names inside
article text, even when they cross a paragraph break, and resolves person
names against a local people database.

Article body text and people live in a SQLite database under the data
directory. Subcommands: locate, person, article, code.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&appConfig); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		if err := appConfig.Validate(); err != nil {
			return err
		}
		log, err := logging.New(appConfig.Log)
		if err != nil {
			return err
		}
		logger = log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./sourcenet.yaml or ~/.config/sourcenet/sourcenet.yaml)")
	flags.String("data-dir", appConfig.Store.DataDir, "directory holding sourcenet.db")
	flags.String("log-level", appConfig.Log.Level, "log level: debug, info, warn, error")
	flags.String("log-format", appConfig.Log.Format, "log format: console or json")
	flags.Bool("ignore-case", appConfig.Locator.IgnoreCase, "match text case-insensitively")
	flags.Bool("strip-periods", appConfig.Matcher.StripPeriods, "remove periods from name parts")

	bind := map[string]string{
		"store.data_dir":        "data-dir",
		"log.level":             "log-level",
		"log.format":            "log-format",
		"locator.ignore_case":   "ignore-case",
		"matcher.strip_periods": "strip-periods",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	defaults := types.DefaultConfig()
	viper.SetDefault("locator.punctuation_fallback", defaults.Locator.PunctuationFallback)
	viper.SetDefault("locator.reconcile", defaults.Locator.Reconcile)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sourcenet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sourcenet"))
		}
	}

	viper.SetEnvPrefix("SOURCENET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	return store.Open(appConfig.Store, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
