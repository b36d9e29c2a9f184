/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"
	"unicode"
)

// Tokenizer converts a character stream into positioned tokens. It
// holds a single-rune cursor over the whole input and materializes its
// output in one pass; it cannot fail.
type Tokenizer struct {
	input []rune
	index int
	loc   Position
}

// NewTokenizer returns a tokenizer over input, positioned at 1:1.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input: []rune(input),
		loc:   Position{Line: 1, Column: 1},
	}
}

// Tokenize is a convenience wrapper that tokenizes input in one call.
func Tokenize(input string) []TokenInfo {
	return NewTokenizer(input).Tokenize()
}

// next consumes and returns the rune under the cursor, advancing the
// position. Consuming '\n' or '\r' moves the position to the start of
// the next line.
func (t *Tokenizer) next() (rune, bool) {
	if t.index >= len(t.input) {
		return 0, false
	}
	r := t.input[t.index]
	t.index++
	if r == '\n' || r == '\r' {
		t.loc.Line++
		t.loc.Column = 1
	} else {
		t.loc.Column++
	}
	return r, true
}

// peek returns the rune under the cursor without consuming it.
func (t *Tokenizer) peek() (rune, bool) {
	if t.index >= len(t.input) {
		return 0, false
	}
	return t.input[t.index], true
}

// Tokenize consumes the entire input and returns its token sequence.
// Every input character lands in exactly one token, so stringifying
// the result reproduces the input exactly.
func (t *Tokenizer) Tokenize() []TokenInfo {
	var tokens []TokenInfo

	for {
		start := t.loc
		r, ok := t.next()
		if !ok {
			return tokens
		}

		var tok Token
		switch {
		case r == '\n' || r == '\r':
			tok = Token{Kind: NewLine, Text: string(r)}
		case r == '\t':
			tok = Token{Kind: Tab, Text: string(r)}
		case unicode.IsSpace(r):
			tok = Token{Kind: Space, Text: string(r)}
		default:
			if kind, special := specialKinds[r]; special {
				tok = Token{Kind: kind, Text: string(r)}
				break
			}
			// A value run extends until the next special or
			// whitespace character, which stays unconsumed.
			var b strings.Builder
			b.WriteRune(r)
			for {
				c, ok := t.peek()
				if !ok || IsSpecialRune(c) || unicode.IsSpace(c) {
					break
				}
				t.next()
				b.WriteRune(c)
			}
			tok = NewValue(b.String())
		}

		tokens = append(tokens, TokenInfo{Token: tok, Position: start})
	}
}
