/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format_test

import (
	"testing"

	"bennypowers.dev/bibfmt/entry"
	"bennypowers.dev/bibfmt/format"
	"bennypowers.dev/bibfmt/parser"
)

func mustParse(t *testing.T, input string) entry.Entries {
	t.Helper()
	entries, err := parser.ParseString(input, parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return entries
}

func TestFormat_RefEntry(t *testing.T) {
	entries := mustParse(t, `@misc{citekey, author="foo", title = { bar }}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@misc{citekey,\n" +
		"    title = {bar},\n" +
		"    author = {foo},\n" +
		"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_RefEntry_NoTags(t *testing.T) {
	entries := mustParse(t, `@misc{citekey}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	if got != "@misc{citekey}" {
		t.Errorf("Format = %q, want %q", got, "@misc{citekey}")
	}
}

func TestFormat_TagOrder(t *testing.T) {
	entries := mustParse(t, `@article{k, year = {2001}, author = {A}, note = {n}, title = {T}}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@article{k,\n" +
		"    title = {T},\n" +
		"    author = {A},\n" +
		"    note = {n},\n" +
		"    year = {2001},\n" +
		"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_SortTagsDisabled(t *testing.T) {
	entries := mustParse(t, `@article{k, year = {2001}, title = {T}}`)

	opts := format.DefaultOptions()
	opts.SortTags = false
	got := format.New(opts).Format(entries)
	want := "@article{k,\n" +
		"    year = {2001},\n" +
		"    title = {T},\n" +
		"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_EmptyTagPolicy(t *testing.T) {
	input := `@misc{k, author = "", title = {T}}`
	entries := mustParse(t, input)

	skipped := format.New(format.Options{SkipEmptyTags: true, SortTags: true}).Format(entries)
	want := "@misc{k,\n    title = {T},\n}"
	if skipped != want {
		t.Errorf("skip: Format =\n%s\nwant\n%s", skipped, want)
	}

	kept := format.New(format.Options{SortTags: true}).Format(entries)
	want = "@misc{k,\n    title = {T},\n    author = {},\n}"
	if kept != want {
		t.Errorf("keep: Format =\n%s\nwant\n%s", kept, want)
	}

	// Rendering must not mutate the parsed model.
	ref := entries[0].(*entry.RefEntry)
	if len(ref.Tags) != 2 {
		t.Errorf("model mutated: %d tags", len(ref.Tags))
	}
}

func TestFormat_IntegerAndMacroValues(t *testing.T) {
	entries := mustParse(t, "@article{k, year = 1984, month = JUN}")

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@article{k,\n" +
		"    month = jun,\n" +
		"    year = 1984,\n" +
		"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_Sequence(t *testing.T) {
	entries := mustParse(t, `@misc{k, publisher = PUB # " and Sons"}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@misc{k,\n" +
		"    publisher = pub # \" and Sons\",\n" +
		"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_StringEntries(t *testing.T) {
	entries := mustParse(t, `@STRING{ieee = "IEEE"}
@string{acm = "ACM"}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@STRING{acm = \"ACM\"}\n@STRING{ieee = \"IEEE\"}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_GroupSeparation(t *testing.T) {
	entries := mustParse(t, `@misc{b, title = {x}}
@comment{note}
@string{acm = "ACM"}
@preamble{"p"}
@misc{a, title = {y}}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@PREAMBLE{\"p\"}\n" +
		"\n" +
		"@STRING{acm = \"ACM\"}\n" +
		"\n" +
		"@COMMENT{note}\n" +
		"\n" +
		"@misc{a,\n    title = {y},\n}\n" +
		"\n" +
		"@misc{b,\n    title = {x},\n}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_TitleProtection(t *testing.T) {
	entries := mustParse(t, `@misc{k, title = {The BibTeX Book}}`)

	got := format.New(format.DefaultOptions()).Format(entries)
	want := "@misc{k,\n    title = {The {BibTeX} {Book}},\n}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}

	opts := format.DefaultOptions()
	opts.FormatTitles = false
	got = format.New(opts).Format(entries)
	want = "@misc{k,\n    title = {The BibTeX Book},\n}"
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_DoesNotMutateEntryOrder(t *testing.T) {
	entries := mustParse(t, "@misc{b, title = {x}}\n@misc{a, title = {y}}")

	format.New(format.DefaultOptions()).Format(entries)

	if entries[0].(*entry.RefEntry).Key != "b" {
		t.Error("Format reordered the caller's collection")
	}
}

// Formatting a canonically formatted file again yields the same text.
func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		`@misc{citekey, author="foo", title = { bar }}`,
		"@string{acm = \"ACM\"}\n@preamble{\"p\" # macro}\n@comment{c}",
		"@article{k, year = 1984, month = jun, title = {A Tale of BibTeX}}",
	}
	formatter := format.New(format.DefaultOptions())

	for _, input := range inputs {
		once := formatter.Format(mustParse(t, input))
		twice := formatter.Format(mustParse(t, once))
		if once != twice {
			t.Errorf("not a fixed point for %q:\nfirst:\n%s\nsecond:\n%s", input, once, twice)
		}
	}
}
