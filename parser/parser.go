/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides BibTeX parsing over a token sequence.
//
// The parser is a recursive-descent consumer with single-token
// lookahead: an owned token slice plus a cursor. Whitespace tokens are
// transparent to grammar-level lookups; inside delimited string bodies
// they coalesce into single spaces instead. Parsing is fail-fast and
// returns the first located error.
package parser

import (
	"strconv"
	"strings"

	"bennypowers.dev/bibfmt/entry"
	"bennypowers.dev/bibfmt/token"
)

// Options configures parsing policy.
type Options struct {
	// RemoveEmptyTags discards reference entry tags whose value is
	// empty, once, at parse time. Callers that want empty tags out of
	// the model entirely set this instead of the formatter's
	// render-time skip.
	RemoveEmptyTags bool
}

// Parser consumes a token sequence and builds the entry model.
type Parser struct {
	tokens []token.TokenInfo
	cursor int
	pos    token.Position
	opts   Options
}

// New returns a parser over tokens.
func New(tokens []token.TokenInfo, opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// ParseString tokenizes input and parses it in one call.
func ParseString(input string, opts Options) (entry.Entries, error) {
	return New(token.Tokenize(input), opts).Parse()
}

// next consumes the token under the cursor, recording its position as
// the parser's current position.
func (p *Parser) next() (token.TokenInfo, bool) {
	if p.cursor >= len(p.tokens) {
		return token.TokenInfo{}, false
	}
	info := p.tokens[p.cursor]
	p.cursor++
	p.pos = info.Position
	return info, true
}

// peek returns the token under the cursor without consuming it.
func (p *Parser) peek() (token.TokenInfo, bool) {
	if p.cursor >= len(p.tokens) {
		return token.TokenInfo{}, false
	}
	return p.tokens[p.cursor], true
}

// nextNonWhitespace consumes tokens until it can return a
// non-whitespace token.
func (p *Parser) nextNonWhitespace() (token.TokenInfo, bool) {
	for {
		info, ok := p.next()
		if !ok {
			return token.TokenInfo{}, false
		}
		if !info.Token.IsWhitespace() {
			return info, true
		}
	}
}

// peekNonWhitespace consumes any whitespace under the cursor and
// returns the next non-whitespace token without consuming it.
func (p *Parser) peekNonWhitespace() (token.TokenInfo, bool) {
	for {
		info, ok := p.peek()
		if !ok {
			return token.TokenInfo{}, false
		}
		if !info.Token.IsWhitespace() {
			return info, true
		}
		p.next()
	}
}

// expect consumes the next non-whitespace token and requires it to be
// of the given kind.
func (p *Parser) expect(kind token.Kind) error {
	info, ok := p.nextNonWhitespace()
	if !ok {
		return errEndOfTokenStream(p.pos)
	}
	if info.Token.Kind != kind {
		return errUnexpectedToken(kind, info)
	}
	return nil
}

// Parse consumes the whole token sequence and returns the parsed
// entries, or the first error encountered.
func (p *Parser) Parse() (entry.Entries, error) {
	var entries entry.Entries

	for {
		info, ok := p.peekNonWhitespace()
		if !ok {
			return entries, nil
		}
		if info.Token.Kind != token.At {
			found, ok := p.next()
			if !ok {
				return nil, errInternal("peeked token vanished before next")
			}
			return nil, errUnexpectedToken(token.At, found)
		}
		e, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}

// parseEntry parses one @kind{...} block, dispatching on the
// lowercased kind.
func (p *Parser) parseEntry() (entry.Entry, error) {
	if err := p.expect(token.At); err != nil {
		return nil, err
	}

	info, ok := p.nextNonWhitespace()
	if !ok {
		return nil, errEndOfTokenStream(p.pos)
	}
	if info.Token.Kind != token.Value {
		return nil, errMissing(ErrMissingEntryType, info)
	}
	kind := info.Token.Text

	switch strings.ToLower(kind) {
	case "comment":
		return p.parseCommentEntry()
	case "preamble":
		return p.parsePreambleEntry()
	case "string":
		return p.parseStringEntry()
	default:
		return p.parseRefEntry(kind)
	}
}

// parseCommentEntry consumes raw tokens verbatim up to the first '}'.
// Comment bodies do not respect nested braces.
func (p *Parser) parseCommentEntry() (*entry.CommentEntry, error) {
	if err := p.expect(token.BraceLeft); err != nil {
		return nil, err
	}

	var body []token.Token
	for {
		info, ok := p.next()
		if !ok {
			return nil, errEndOfTokenStream(p.pos)
		}
		if info.Token.Kind == token.BraceRight {
			break
		}
		body = append(body, info.Token)
	}

	return &entry.CommentEntry{Body: token.Stringify(body)}, nil
}

// parsePreambleEntry parses one value sequence enclosed in braces.
func (p *Parser) parsePreambleEntry() (*entry.PreambleEntry, error) {
	if err := p.expect(token.BraceLeft); err != nil {
		return nil, err
	}
	seq, err := p.parseValueSequence()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.BraceRight); err != nil {
		return nil, err
	}
	return &entry.PreambleEntry{Seq: seq}, nil
}

// parseStringEntry parses exactly one tag, an optional trailing comma,
// and the closing brace.
func (p *Parser) parseStringEntry() (*entry.StringEntry, error) {
	if err := p.expect(token.BraceLeft); err != nil {
		return nil, err
	}

	tag, err := p.parseTag()
	if err != nil {
		return nil, err
	}

	info, ok := p.nextNonWhitespace()
	switch {
	case !ok:
		return nil, errEndOfTokenStream(p.pos)
	case info.Token.Kind == token.BraceRight:
	case info.Token.Kind == token.Comma:
		if err := p.expect(token.BraceRight); err != nil {
			return nil, err
		}
	default:
		return nil, errUnexpectedToken(token.BraceRight, info)
	}

	return &entry.StringEntry{Tag: tag}, nil
}

// parseRefEntry parses a cite key followed by zero or more comma
// separated tags, terminated by '}'.
func (p *Parser) parseRefEntry(kind string) (*entry.RefEntry, error) {
	if err := p.expect(token.BraceLeft); err != nil {
		return nil, err
	}

	info, ok := p.nextNonWhitespace()
	if !ok {
		return nil, errEndOfTokenStream(p.pos)
	}
	if info.Token.Kind != token.Value {
		return nil, errMissing(ErrMissingCiteKey, info)
	}
	key := info.Token.Text

	var tags []entry.Tag
	for {
		info, ok := p.peekNonWhitespace()
		switch {
		case ok && info.Token.Kind == token.BraceRight:
			p.nextNonWhitespace()
			return entry.NewRefEntry(kind, key, tags), nil
		case ok && info.Token.Kind == token.Comma:
			p.nextNonWhitespace()
		default:
			tag, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			if p.opts.RemoveEmptyTags && tag.Value.IsEmpty() {
				continue
			}
			tags = append(tags, tag)
		}
	}
}

// parseTag parses one name = value pair.
func (p *Parser) parseTag() (entry.Tag, error) {
	info, ok := p.nextNonWhitespace()
	if !ok {
		return entry.Tag{}, errEndOfTokenStream(p.pos)
	}
	if info.Token.Kind != token.Value {
		return entry.Tag{}, errMissing(ErrMissingTagName, info)
	}
	name := info.Token.Text

	if err := p.expect(token.Equals); err != nil {
		return entry.Tag{}, err
	}

	value, err := p.parseTagValue()
	if err != nil {
		return entry.Tag{}, err
	}

	return entry.NewTag(name, value), nil
}

// parseTagValue parses a tag's content. Content starting with '{' is
// always Single. A quote or a bare value begins a sequence parse; a
// one-part sequence collapses: a quoted part becomes Single, a bare
// part becomes Integer if it parses as one, and otherwise stays a
// one-part Sequence so @string macro references survive as references.
func (p *Parser) parseTagValue() (entry.Value, error) {
	info, ok := p.peekNonWhitespace()
	if !ok {
		return nil, errEndOfTokenStream(p.pos)
	}

	switch info.Token.Kind {
	case token.BraceLeft:
		s, err := p.parseDelimitedString(token.BraceLeft, token.BraceRight)
		if err != nil {
			return nil, err
		}
		return entry.Single(strings.TrimSpace(s)), nil

	case token.Quote, token.Value:
		seq, err := p.parseValueSequence()
		if err != nil {
			return nil, err
		}
		if len(seq) != 1 {
			return seq, nil
		}
		part := seq[0]
		if part.Kind == entry.Quoted {
			return entry.Single(strings.TrimSpace(part.Text)), nil
		}
		if n, err := strconv.ParseUint(part.Text, 10, 64); err == nil {
			return entry.Integer(n), nil
		}
		return seq, nil

	default:
		return nil, errMissing(ErrMissingContent, info)
	}
}

// parseValueSequence parses one or more parts joined by '#'.
func (p *Parser) parseValueSequence() (entry.Sequence, error) {
	first, err := p.parseValuePart()
	if err != nil {
		return nil, err
	}
	seq := entry.Sequence{first}

	for {
		info, ok := p.peekNonWhitespace()
		if !ok {
			return nil, errEndOfTokenStream(p.pos)
		}
		switch info.Token.Kind {
		case token.BraceRight, token.Comma:
			return seq, nil
		case token.Pound:
			if err := p.expect(token.Pound); err != nil {
				return nil, err
			}
			part, err := p.parseValuePart()
			if err != nil {
				return nil, err
			}
			seq = append(seq, part)
		default:
			return nil, errUnexpectedToken(token.Comma, info)
		}
	}
}

// parseValuePart parses a single sequence part: a quote-delimited
// string or a bare value.
func (p *Parser) parseValuePart() (entry.Part, error) {
	info, ok := p.peekNonWhitespace()
	if !ok {
		return entry.Part{}, errEndOfTokenStream(p.pos)
	}

	switch info.Token.Kind {
	case token.Quote:
		s, err := p.parseDelimitedString(token.Quote, token.Quote)
		if err != nil {
			return entry.Part{}, err
		}
		return entry.QuotedPart(s), nil
	case token.Value:
		info, ok := p.nextNonWhitespace()
		if !ok {
			return entry.Part{}, errInternal("peeked token vanished before next")
		}
		return entry.BarePart(info.Token.Text), nil
	default:
		return entry.Part{}, errMissing(ErrMissingContent, info)
	}
}

// parseDelimitedString consumes a start delimiter and collects tokens
// until the matching end delimiter. Braces track a nesting counter, so
// {a {b} c} yields "a {b} c"; quotes never nest and close on the next
// quote regardless of braces in between. Consecutive whitespace tokens
// of any kind coalesce into a single space. Reaching the end of the
// stream before the close delimiter is fatal.
func (p *Parser) parseDelimitedString(start, end token.Kind) (string, error) {
	info, ok := p.nextNonWhitespace()
	if !ok {
		return "", errEndOfTokenStream(p.pos)
	}
	if info.Token.Kind != start {
		return "", errUnexpectedToken(start, info)
	}

	nested := 0
	var body []token.Token

	for {
		info, ok := p.next()
		if !ok {
			return "", errEndOfTokenStream(p.pos)
		}
		kind := info.Token.Kind
		switch {
		case start == end && kind == end:
			return token.Stringify(body), nil
		case kind == start:
			nested++
		case kind == end && nested == 0:
			return token.Stringify(body), nil
		case kind == end:
			nested--
		}
		if info.Token.IsWhitespace() {
			if len(body) > 0 && body[len(body)-1].IsWhitespace() {
				continue
			}
			body = append(body, token.New(token.Space))
			continue
		}
		body = append(body, info.Token)
	}
}
