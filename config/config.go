/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for bibfmt.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/bibfmt/format"
)

// Config represents the bibfmt configuration.
type Config struct {
	// FormatTitles wraps capitalized title words in braces.
	// Unset means true.
	FormatTitles *bool `yaml:"formatTitles" json:"formatTitles"`

	// SkipEmptyTags omits tags with empty values from output.
	// Unset means true.
	SkipEmptyTags *bool `yaml:"skipEmptyTags" json:"skipEmptyTags"`

	// SortEntries sorts entries into canonical order. Unset means true.
	SortEntries *bool `yaml:"sortEntries" json:"sortEntries"`

	// SortTags sorts tags within reference entries. Unset means true.
	SortTags *bool `yaml:"sortTags" json:"sortTags"`

	// Files specifies bibliography files to format when the command
	// line names none (paths or glob patterns).
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents a bibliography file specification. It can be
// given as a simple string path or as an object with an output
// override.
type FileSpec struct {
	// Path is the file path (glob patterns supported).
	Path string `yaml:"path" json:"path"`

	// Output redirects the formatted result; empty means in place.
	Output string `yaml:"output" json:"output"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Options resolves the config into formatter options. Every switch
// defaults to true; a config file only ever turns switches off.
func (c *Config) Options() format.Options {
	opts := format.DefaultOptions()
	if c.FormatTitles != nil {
		opts.FormatTitles = *c.FormatTitles
	}
	if c.SkipEmptyTags != nil {
		opts.SkipEmptyTags = *c.SkipEmptyTags
	}
	if c.SortEntries != nil {
		opts.SortEntries = *c.SortEntries
	}
	if c.SortTags != nil {
		opts.SortTags = *c.SortTags
	}
	return opts
}
