// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the clipper CLI, which converts
// Raindrop.io CSV exports into Obsidian Web Clipper notes.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/clipper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the clipper CLI.
var rootCmd = &cobra.Command{
	Use:   "clipper",
	Short: "Convert Raindrop.io CSV exports to Obsidian Web Clipper notes",
	Long: `clipper turns a Raindrop.io CSV backup into one Markdown note per
bookmark, with the front matter and section layout produced by the Obsidian
Web Clipper, ready to drop into a vault.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./clipper.yaml or ~/.config/clipper/clipper.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("clipper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "clipper"))
		}
	}

	viper.SetDefault("output_dir", types.DefaultOutputDir)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")

	viper.SetEnvPrefix("CLIPPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitError carries a specific process exit status out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}
