// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "output"

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// OutputDir is the directory notes are written into (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// SkipFolders lists folder names (matched case-insensitively) that are
	// not turned into tags, e.g. "Unsorted".
	SkipFolders []string `json:"skip_folders" yaml:"skip_folders" mapstructure:"skip_folders"`

	// SlugTags lowercases folder and bookmark tags and replaces spaces with
	// hyphens.
	SlugTags bool `json:"slug_tags" yaml:"slug_tags" mapstructure:"slug_tags"`

	// LogLevel is the slog level name: debug, info, warn, or error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// LogFormat selects the log handler: console or json.
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// TagOptions returns the normalization options carried by the config.
func (c ConvertConfig) TagOptions() TagOptions {
	return TagOptions{SkipFolders: c.SkipFolders, Slug: c.SlugTags}
}

// TagOptions controls how folder and bookmark tags are normalized.
type TagOptions struct {
	SkipFolders []string
	Slug        bool
}
