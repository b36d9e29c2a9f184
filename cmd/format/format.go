/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format provides the format command for bibfmt.
package format

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/bibfmt/config"
	"bennypowers.dev/bibfmt/fs"
	formatlib "bennypowers.dev/bibfmt/format"
	"bennypowers.dev/bibfmt/internal/exitcodes"
	"bennypowers.dev/bibfmt/internal/logger"
	"bennypowers.dev/bibfmt/parser"
)

// Cmd is the format cobra command.
var Cmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Format bibliography files",
	Long: `Format BibTeX bibliography files into canonical form.

Files named on the command line are rewritten in place unless --output
or --preview is given. With no files, the files listed in
.config/bibfmt.{yaml,yml,json} are formatted.

Examples:
  # Rewrite a bibliography in place
  bibfmt format refs.bib

  # Preview without writing
  bibfmt format --preview refs.bib

  # Write the result elsewhere
  bibfmt format -o out.bib refs.bib

  # Format everything the config file lists
  bibfmt format`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (single input only; default: in place)")
	Cmd.Flags().BoolP("preview", "p", false, "Print formatted output instead of writing")
	Cmd.Flags().Bool("format-titles", true, "Protect capitalized title words with braces")
	Cmd.Flags().Bool("skip-empty-tags", true, "Omit tags with empty values")
	Cmd.Flags().Bool("sort-entries", true, "Sort entries into canonical order")
	Cmd.Flags().Bool("sort-tags", true, "Sort tags within entries")
}

// options resolves formatter options from config, then lets explicitly
// set flags override.
func options(cmd *cobra.Command, cfg *config.Config) formatlib.Options {
	opts := cfg.Options()
	if cmd.Flags().Changed("format-titles") {
		opts.FormatTitles, _ = cmd.Flags().GetBool("format-titles")
	}
	if cmd.Flags().Changed("skip-empty-tags") {
		opts.SkipEmptyTags, _ = cmd.Flags().GetBool("skip-empty-tags")
	}
	if cmd.Flags().Changed("sort-entries") {
		opts.SortEntries, _ = cmd.Flags().GetBool("sort-entries")
	}
	if cmd.Flags().Changed("sort-tags") {
		opts.SortTags, _ = cmd.Flags().GetBool("sort-tags")
	}
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	preview, _ := cmd.Flags().GetBool("preview")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")
	opts := options(cmd, cfg)

	var targets []config.Target
	for _, arg := range args {
		targets = append(targets, config.Target{Input: arg, Output: arg})
	}
	if len(targets) == 0 {
		resolved, err := cfg.ResolveFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error resolving config files: %w", err)
		}
		targets = resolved
	}

	if len(targets) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}
	if output != "" && len(targets) > 1 {
		return fmt.Errorf("--output requires exactly one input file")
	}
	if output != "" {
		targets[0].Output = output
	}

	formatter := formatlib.New(opts)

	for _, target := range targets {
		if err := formatOne(filesystem, formatter, target, preview); err != nil {
			return err
		}
	}

	return nil
}

// formatOne runs the whole pipeline for a single file. Each failure
// category carries its own exit code for the process wrapper.
func formatOne(filesystem fs.FileSystem, formatter *formatlib.Formatter, target config.Target, preview bool) error {
	data, err := filesystem.ReadFile(target.Input)
	if err != nil {
		return exitcodes.Wrap(fmt.Errorf("error reading %s: %w", target.Input, err), exitcodes.InputReadFailed)
	}

	entries, err := parser.ParseString(string(data), parser.Options{})
	if err != nil {
		return exitcodes.Wrap(fmt.Errorf("%s:%w", target.Input, err), exitcodes.ParseFailed)
	}

	text := formatter.Format(entries) + "\n"

	if preview {
		fmt.Print(text)
		return nil
	}

	if err := filesystem.WriteFile(target.Output, []byte(text), 0644); err != nil {
		return exitcodes.Wrap(fmt.Errorf("error writing %s: %w", target.Output, err), exitcodes.OutputWriteFailed)
	}
	logger.Info("formatted %s", target.Input)
	return nil
}
