/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format renders the entry model back into canonical BibTeX
// text. Rendering is deterministic: given the same entries and
// options, the output is byte-for-byte identical, and formatting
// already-canonical text is a fixed point.
package format

import (
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/bibfmt/entry"
)

// Options are the four independent formatting switches.
type Options struct {
	// FormatTitles wraps capitalized title words in braces to protect
	// their casing from BibTeX styles.
	FormatTitles bool

	// SkipEmptyTags omits tags whose value is empty from output. The
	// parsed model is not modified.
	SkipEmptyTags bool

	// SortEntries orders entries by group (preamble, string, comment,
	// reference) and within groups by their natural key.
	SortEntries bool

	// SortTags orders tags title first, author second, the rest
	// alphabetically.
	SortTags bool
}

// DefaultOptions enables every switch; the canonical rewrite.
func DefaultOptions() Options {
	return Options{
		FormatTitles:  true,
		SkipEmptyTags: true,
		SortEntries:   true,
		SortTags:      true,
	}
}

// Formatter renders entries under a fixed set of options.
type Formatter struct {
	opts Options
}

// New returns a formatter using opts.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders the whole collection. Entries of different kinds are
// separated by a blank line, as are consecutive reference entries;
// consecutive entries of the other kinds sit on adjacent lines. The
// input collection is not modified even when sorting is enabled.
func (f *Formatter) Format(entries entry.Entries) string {
	if f.opts.SortEntries {
		entries = slices.Clone(entries)
		entries.Sort()
	}

	var b strings.Builder
	for i, e := range entries {
		b.WriteString(f.FormatEntry(e))
		if i == len(entries)-1 {
			break
		}
		b.WriteByte('\n')
		if blankLineBetween(e, entries[i+1]) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blankLineBetween reports whether a blank line separates two adjacent
// entries: always when the variant kind changes, and between
// consecutive reference entries.
func blankLineBetween(cur, next entry.Entry) bool {
	if _, ref := next.(*entry.RefEntry); ref {
		return true
	}
	return !sameKind(cur, next)
}

func sameKind(a, b entry.Entry) bool {
	switch a.(type) {
	case *entry.RefEntry:
		_, ok := b.(*entry.RefEntry)
		return ok
	case *entry.StringEntry:
		_, ok := b.(*entry.StringEntry)
		return ok
	case *entry.CommentEntry:
		_, ok := b.(*entry.CommentEntry)
		return ok
	default:
		_, ok := b.(*entry.PreambleEntry)
		return ok
	}
}

// FormatEntry renders a single entry without a trailing newline.
func (f *Formatter) FormatEntry(e entry.Entry) string {
	switch e := e.(type) {
	case *entry.RefEntry:
		return f.formatRefEntry(e)
	case *entry.StringEntry:
		return "@STRING{" + e.Tag.Name + " = " + f.formatMacroValue(e.Tag.Value) + "}"
	case *entry.PreambleEntry:
		return "@PREAMBLE{" + f.formatSequence(e.Seq, false) + "}"
	case *entry.CommentEntry:
		return "@COMMENT{" + e.Body + "}"
	}
	return ""
}

// formatRefEntry renders a reference entry. With zero surviving tags
// the short form @kind{key} is used; otherwise one indented
// "name = value," line per tag.
func (f *Formatter) formatRefEntry(e *entry.RefEntry) string {
	tags := e.Tags
	if f.opts.SkipEmptyTags {
		tags = slices.DeleteFunc(slices.Clone(tags), func(t entry.Tag) bool {
			return t.Value.IsEmpty()
		})
	}
	if f.opts.SortTags {
		if !f.opts.SkipEmptyTags {
			tags = slices.Clone(tags)
		}
		slices.SortStableFunc(tags, entry.Tag.Compare)
	}

	if len(tags) == 0 {
		return "@" + e.Kind + "{" + e.Key + "}"
	}

	var b strings.Builder
	b.WriteString("@" + e.Kind + "{" + e.Key + ",\n")
	for _, tag := range tags {
		b.WriteString("    " + tag.Name + " = " + f.formatTagValue(tag) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

// formatTagValue renders a tag's value for a reference entry. Single
// values render brace-delimited, converting quoted input to braces;
// integers render bare; sequences keep their # joins.
func (f *Formatter) formatTagValue(tag entry.Tag) string {
	title := f.opts.FormatTitles && tag.Name == "title"
	switch v := tag.Value.(type) {
	case entry.Single:
		text := string(v)
		if title {
			text = Title(text)
		}
		return "{" + text + "}"
	case entry.Integer:
		return strconv.FormatUint(uint64(v), 10)
	case entry.Sequence:
		return f.formatSequence(v, title)
	}
	return ""
}

// formatMacroValue renders a @string definition's value. Delimited
// content renders quoted, so a later tag can concatenate it.
func (f *Formatter) formatMacroValue(v entry.Value) string {
	switch v := v.(type) {
	case entry.Single:
		return "\"" + string(v) + "\""
	case entry.Integer:
		return "\"" + strconv.FormatUint(uint64(v), 10) + "\""
	case entry.Sequence:
		return f.formatSequence(v, false)
	}
	return ""
}

// formatSequence joins parts with " # ". Quoted parts keep their
// quotes (title-protected in title context); bare parts are macro
// references and render lowercase.
func (f *Formatter) formatSequence(seq entry.Sequence, title bool) string {
	parts := make([]string, len(seq))
	for i, p := range seq {
		switch p.Kind {
		case entry.Quoted:
			text := p.Text
			if title {
				text = Title(text)
			}
			parts[i] = "\"" + text + "\""
		case entry.Bare:
			parts[i] = strings.ToLower(p.Text)
		}
	}
	return strings.Join(parts, " # ")
}
