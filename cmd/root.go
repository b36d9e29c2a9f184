/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for bibfmt.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/bibfmt/cmd/check"
	formatcmd "bennypowers.dev/bibfmt/cmd/format"
	"bennypowers.dev/bibfmt/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:           "bibfmt",
	Short:         "Rewrite BibTeX bibliographies into a canonical form",
	Long:          `bibfmt parses BibTeX bibliography files and rewrites them deterministically: entries sorted, tags sorted and cased by fixed rules, whitespace normalized.`,
	SilenceErrors: false,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(formatcmd.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
