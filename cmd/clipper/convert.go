// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/clipper/internal/batch"
	"github.com/pdiddy/clipper/internal/logging"
	"github.com/pdiddy/clipper/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.csv> [output_dir]",
	Short: "Convert a Raindrop.io CSV export into Markdown notes",
	Long: `Convert reads a Raindrop.io CSV backup and writes one Markdown note per
bookmark into the output directory (default "output"). Rows without a URL
are reported and skipped; the rest of the export is still converted.

Exit status is 0 when every row converted, 1 when the input could not be
read or no row converted, and 2 when only some rows converted.`,
	Example: `  clipper convert bookmarks.csv
  clipper convert bookmarks.csv ~/vault/Clippings
  clipper convert bookmarks.csv --skip-folder Unsorted --slug-tags`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringSlice("skip-folder", nil, "folder name that is not turned into a tag (repeatable)")
	convertCmd.Flags().Bool("slug-tags", false, "lowercase tags and replace spaces with hyphens")
	convertCmd.Flags().String("log-level", "", "log level: debug, info, warn, error (default info)")
	convertCmd.Flags().String("log-format", "", "log format: console or json (default console)")
	convertCmd.Flags().BoolP("quiet", "q", false, "suppress per-record progress lines")

	_ = viper.BindPFlag("skip_folders", convertCmd.Flags().Lookup("skip-folder"))
	_ = viper.BindPFlag("slug_tags", convertCmd.Flags().Lookup("slug-tags"))
	_ = viper.BindPFlag("log_level", convertCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", convertCmd.Flags().Lookup("log-format"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(args)

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := batch.Options{Tags: cfg.TagOptions(), Logger: logger}
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		opts.Progress = out
	}

	fmt.Fprintf(out, "Converting %s into %s\n\n", args[0], cfg.OutputDir)
	result, err := batch.ConvertFile(args[0], cfg.OutputDir, opts)
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	printSummary(out, result, isTerminal(out))

	if code := result.Outcome().ExitCode(); code != 0 {
		return &exitError{
			code: code,
			err:  fmt.Errorf("%d of %d record(s) failed conversion", result.Failed, result.Total()),
		}
	}
	return nil
}

// convertConfig merges config file, environment, and flags; a second
// positional argument overrides the output directory.
func convertConfig(args []string) types.ConvertConfig {
	cfg := types.ConvertConfig{
		OutputDir:   viper.GetString("output_dir"),
		SkipFolders: viper.GetStringSlice("skip_folders"),
		SlugTags:    viper.GetBool("slug_tags"),
		LogLevel:    viper.GetString("log_level"),
		LogFormat:   viper.GetString("log_format"),
	}
	if len(args) > 1 && args[1] != "" {
		cfg.OutputDir = args[1]
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = types.DefaultOutputDir
	}
	return cfg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
