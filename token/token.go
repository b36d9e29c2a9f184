/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the BibTeX token model and tokenizer.
//
// The tokenizer splits raw input into a flat sequence of positioned
// tokens: the seven special characters BibTeX gives structural meaning
// to, whitespace (newline, space and tab, one token per character), and
// maximal runs of everything else. It never fails; grammar enforcement
// is entirely the parser's concern.
package token

import "strings"

// Kind identifies a token variant. The set is closed: seven specials,
// Value, and three whitespace kinds.
type Kind uint8

const (
	At Kind = iota // @
	BraceLeft
	BraceRight
	Comma
	Equals
	Pound
	Quote
	Value // a run of non-special, non-whitespace characters
	NewLine
	Space
	Tab
)

// kindNames are the human-readable names used in error messages.
var kindNames = [...]string{
	At:         "'@'",
	BraceLeft:  "'{'",
	BraceRight: "'}'",
	Comma:      "','",
	Equals:     "'='",
	Pound:      "'#'",
	Quote:      "'\"'",
	Value:      "value",
	NewLine:    "newline",
	Space:      "space",
	Tab:        "tab",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsSpecial returns true for the seven structural characters.
func (k Kind) IsSpecial() bool {
	return k <= Quote
}

// IsWhitespace returns true for the newline, space and tab kinds.
func (k Kind) IsWhitespace() bool {
	return k >= NewLine
}

// Token is a single lexical unit. Text always holds the exact source
// text, so a token sequence can reproduce its input byte for byte.
type Token struct {
	Kind Kind
	Text string
}

// canonicalText maps each fixed kind to its canonical spelling.
var canonicalText = [...]string{
	At:         "@",
	BraceLeft:  "{",
	BraceRight: "}",
	Comma:      ",",
	Equals:     "=",
	Pound:      "#",
	Quote:      "\"",
	NewLine:    "\n",
	Space:      " ",
	Tab:        "\t",
}

// New returns a token of a fixed kind with its canonical text.
// It must not be called with Value; use NewValue instead.
func New(kind Kind) Token {
	return Token{Kind: kind, Text: canonicalText[kind]}
}

// NewValue returns a Value token holding text.
func NewValue(text string) Token {
	return Token{Kind: Value, Text: text}
}

// IsWhitespace reports whether the token is a whitespace token.
func (t Token) IsWhitespace() bool {
	return t.Kind.IsWhitespace()
}

// Literal returns the exact source text of the token.
func (t Token) Literal() string {
	return t.Text
}

// TokenInfo pairs a token with the position of its first character.
// It is the parser's only unit of consumption.
type TokenInfo struct {
	Token    Token
	Position Position
}

// Stringify concatenates the literal text of tokens. Applied to an
// unmodified tokenizer output it reconstructs the original input.
func Stringify(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// specialKinds maps the seven special characters to their kinds.
var specialKinds = map[rune]Kind{
	'@': At,
	'{': BraceLeft,
	'}': BraceRight,
	',': Comma,
	'=': Equals,
	'#': Pound,
	'"': Quote,
}

// IsSpecialRune reports whether r is one of the seven structural characters.
func IsSpecialRune(r rune) bool {
	_, ok := specialKinds[r]
	return ok
}
