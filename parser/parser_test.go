/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/bibfmt/entry"
	"bennypowers.dev/bibfmt/parser"
	"bennypowers.dev/bibfmt/token"
)

func parseOne(t *testing.T, input string, opts parser.Options) entry.Entry {
	t.Helper()
	entries, err := parser.ParseString(input, opts)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	return entries[0]
}

func TestParse_Empty(t *testing.T) {
	entries, err := parser.ParseString("", parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_WhitespaceOnly(t *testing.T) {
	entries, err := parser.ParseString("  \n\t \r\n ", parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_RefEntry(t *testing.T) {
	e := parseOne(t, `@misc{citekey, author="foo", title = { bar }}`, parser.Options{})

	ref, ok := e.(*entry.RefEntry)
	require.True(t, ok, "expected *entry.RefEntry, got %T", e)
	assert.Equal(t, "misc", ref.Kind)
	assert.Equal(t, "citekey", ref.Key)
	require.Len(t, ref.Tags, 2)
	assert.Equal(t, entry.NewTag("author", entry.Single("foo")), ref.Tags[0])
	assert.Equal(t, entry.NewTag("title", entry.Single("bar")), ref.Tags[1])
}

func TestParse_RefEntry_UppercaseKindAndKey(t *testing.T) {
	e := parseOne(t, `@MISC{CiteKey}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	assert.Equal(t, "misc", ref.Kind)
	assert.Equal(t, "citekey", ref.Key)
	assert.Empty(t, ref.Tags)
}

func TestParse_RefEntry_TrailingComma(t *testing.T) {
	e := parseOne(t, "@misc{citekey,\n  title = {x},\n}", parser.Options{})

	ref := e.(*entry.RefEntry)
	require.Len(t, ref.Tags, 1)
	assert.Equal(t, entry.NewTag("title", entry.Single("x")), ref.Tags[0])
}

func TestParse_NestedBraces(t *testing.T) {
	e := parseOne(t, `@misc{k, title = {{value}}}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	require.Len(t, ref.Tags, 1)
	// Outer delimiters stripped, inner braces retained.
	assert.Equal(t, entry.Single("{value}"), ref.Tags[0].Value)
}

func TestParse_BracesInsideQuotes(t *testing.T) {
	e := parseOne(t, `@misc{k, title = "a {b} c"}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	assert.Equal(t, entry.Single("a {b} c"), ref.Tags[0].Value)
}

func TestParse_MultilineContentCoalesced(t *testing.T) {
	e := parseOne(t, "@misc{k, title = {An\n   extremely\t long title}}", parser.Options{})

	ref := e.(*entry.RefEntry)
	assert.Equal(t, entry.Single("An extremely long title"), ref.Tags[0].Value)
}

func TestParse_IntegerValue(t *testing.T) {
	e := parseOne(t, `@article{k, year = 1984}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	assert.Equal(t, entry.Integer(1984), ref.Tags[0].Value)
}

func TestParse_BareValueStaysSequence(t *testing.T) {
	e := parseOne(t, `@article{k, month = jun}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	// A bare identifier is a macro reference, not a string.
	assert.Equal(t, entry.Sequence{entry.BarePart("jun")}, ref.Tags[0].Value)
}

func TestParse_Sequence(t *testing.T) {
	e := parseOne(t, `@misc{k, publisher = pub # " and Sons"}`, parser.Options{})

	ref := e.(*entry.RefEntry)
	want := entry.Sequence{
		entry.BarePart("pub"),
		entry.QuotedPart(" and Sons"),
	}
	assert.Equal(t, want, ref.Tags[0].Value)
}

func TestParse_StringEntry(t *testing.T) {
	input := `@string{acm = "Association for Computing Machinery"}
@STRING{ieee = "Institute of Electrical and Electronics Engineers"}`

	entries, err := parser.ParseString(input, parser.Options{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	acm, ok := entries[0].(*entry.StringEntry)
	require.True(t, ok)
	assert.Equal(t, "acm", acm.Tag.Name)
	assert.Equal(t, entry.Single("Association for Computing Machinery"), acm.Tag.Value)

	ieee, ok := entries[1].(*entry.StringEntry)
	require.True(t, ok)
	assert.Equal(t, "ieee", ieee.Tag.Name)
}

func TestParse_StringEntry_TrailingComma(t *testing.T) {
	e := parseOne(t, `@string{acm = "ACM",}`, parser.Options{})

	s := e.(*entry.StringEntry)
	assert.Equal(t, "acm", s.Tag.Name)
}

func TestParse_CommentEntry(t *testing.T) {
	e := parseOne(t, `@comment{ kept verbatim, = # " }`, parser.Options{})

	c, ok := e.(*entry.CommentEntry)
	require.True(t, ok)
	assert.Equal(t, ` kept verbatim, = # " `, c.Body)
}

func TestParse_CommentEntry_StopsAtFirstBrace(t *testing.T) {
	// Comment bodies do not track nested braces.
	input := `@comment{outer {inner} trailing}`

	entries, err := parser.ParseString(input, parser.Options{})
	require.Error(t, err)
	require.Empty(t, entries)

	c := parseOne(t, `@comment{outer {inner}`, parser.Options{})
	assert.Equal(t, "outer {inner", c.(*entry.CommentEntry).Body)
}

func TestParse_PreambleEntry(t *testing.T) {
	e := parseOne(t, `@preamble{"test string" # value}`, parser.Options{})

	p, ok := e.(*entry.PreambleEntry)
	require.True(t, ok)
	want := entry.Sequence{
		entry.QuotedPart("test string"),
		entry.BarePart("value"),
	}
	assert.Equal(t, want, p.Seq)
}

func TestParse_RemoveEmptyTags(t *testing.T) {
	input := `@misc{k, author = "", title = {kept}}`

	e := parseOne(t, input, parser.Options{RemoveEmptyTags: true})
	ref := e.(*entry.RefEntry)
	require.Len(t, ref.Tags, 1)
	assert.Equal(t, "title", ref.Tags[0].Name)

	e = parseOne(t, input, parser.Options{})
	ref = e.(*entry.RefEntry)
	require.Len(t, ref.Tags, 2)
	assert.Equal(t, entry.NewTag("author", entry.Single("")), ref.Tags[0])
}

func TestParse_MissingEntryType(t *testing.T) {
	_, err := parser.ParseString(`@{k}`, parser.Options{})

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrMissingEntryType, perr.Kind)
	assert.Equal(t, token.BraceLeft, perr.Found.Token.Kind)
}

func TestParse_MissingCiteKey(t *testing.T) {
	_, err := parser.ParseString(`@misc{}`, parser.Options{})

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrMissingCiteKey, perr.Kind)
}

func TestParse_MissingTagName(t *testing.T) {
	_, err := parser.ParseString(`@misc{k, = {x}}`, parser.Options{})

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrMissingTagName, perr.Kind)
}

// A tag without '=' reports the token found where '=' was required,
// at its exact position.
func TestParse_MissingEquals(t *testing.T) {
	_, err := parser.ParseString(`@misc{citekey, author}`, parser.Options{})

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrUnexpectedToken, perr.Kind)
	assert.Equal(t, token.Equals, perr.Expected)
	assert.Equal(t, token.BraceRight, perr.Found.Token.Kind)
	assert.Equal(t, token.Position{Line: 1, Column: 22}, perr.Found.Position)
}

func TestParse_JunkBeforeEntry(t *testing.T) {
	_, err := parser.ParseString(`junk @misc{k}`, parser.Options{})

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrUnexpectedToken, perr.Kind)
	assert.Equal(t, token.At, perr.Expected)
}

func TestParse_EndOfTokenStream(t *testing.T) {
	inputs := []string{
		`@misc{k, title = {unterminated`,
		`@misc{k, title = "unterminated`,
		`@misc{k, title = `,
		`@misc{k,`,
		`@comment{never closed`,
		`@`,
	}
	for _, input := range inputs {
		_, err := parser.ParseString(input, parser.Options{})

		var perr *parser.Error
		require.ErrorAs(t, err, &perr, "input %q", input)
		assert.Equal(t, parser.ErrEndOfTokenStream, perr.Kind, "input %q", input)
	}
}

func TestParse_FailFast(t *testing.T) {
	// The first error halts parsing; the valid second entry is not
	// reached.
	_, err := parser.ParseString("@misc{k, author}\n@misc{ok, title = {x}}", parser.Options{})
	require.Error(t, err)

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, token.Position{Line: 1, Column: 16}, perr.Found.Position)
}

func TestParse_NeverInternal(t *testing.T) {
	// Assorted malformed inputs must report grammar errors, never the
	// internal assertion kind.
	inputs := []string{
		"", "@", "@@", "@misc", "@misc{", "@misc{,}", "@misc{k,,}",
		"}", "{", "=", "#", "\"", "@misc{k, a = # }", "@misc{k, a = b c}",
		"@string{}", "@preamble{}", "@string{a}", "@preamble{#}",
	}
	for _, input := range inputs {
		_, err := parser.ParseString(input, parser.Options{})
		if err == nil {
			continue
		}
		var perr *parser.Error
		if errors.As(err, &perr) {
			assert.NotEqual(t, parser.ErrInternal, perr.Kind, "input %q", input)
		}
	}
}
