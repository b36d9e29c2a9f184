/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for bibfmt.
package check

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/bibfmt/config"
	"bennypowers.dev/bibfmt/fs"
	"bennypowers.dev/bibfmt/internal/exitcodes"
	"bennypowers.dev/bibfmt/parser"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check bibliography files for syntax errors",
	Long: `Parse BibTeX bibliography files and report the first syntax error in
each, with its line and column. Nothing is written.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	files := args
	if len(files) == 0 {
		cfg := config.LoadOrDefault(filesystem, ".")
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	hasErrors := false

	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		entries, err := parser.ParseString(string(data), parser.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%v\n", file, err)
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("%s: %d entries\n", file, len(entries))
		}
	}

	if hasErrors {
		return exitcodes.Wrap(fmt.Errorf("check failed"), exitcodes.ParseFailed)
	}
	return nil
}
