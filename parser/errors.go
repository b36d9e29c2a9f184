/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"

	"bennypowers.dev/bibfmt/token"
)

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// ErrEndOfTokenStream means the grammar required more input.
	ErrEndOfTokenStream ErrorKind = iota
	// ErrUnexpectedToken means a specific token was required but a
	// different one was found.
	ErrUnexpectedToken
	// ErrMissingEntryType means the token after '@' was not an entry type.
	ErrMissingEntryType
	// ErrMissingCiteKey means a reference entry had no cite key.
	ErrMissingCiteKey
	// ErrMissingTagName means a tag started with something other than a name.
	ErrMissingTagName
	// ErrMissingContent means a tag value did not start with an
	// opening delimiter, a bare value, or a quote.
	ErrMissingContent
	// ErrInternal marks conditions the parser believes unreachable.
	ErrInternal
)

// Error is a located parse failure. Parsing is fail-fast: the first
// Error halts the parse, there is no recovery or aggregation.
type Error struct {
	Kind ErrorKind

	// Expected is the token kind the grammar required. Set for
	// ErrUnexpectedToken only.
	Expected token.Kind

	// Found is the offending token. Set for every kind except
	// ErrEndOfTokenStream and ErrInternal.
	Found token.TokenInfo

	// Pos is where detection occurred. For token-carrying kinds it
	// equals Found.Position; for ErrEndOfTokenStream it is the
	// position of the last consumed token.
	Pos token.Position

	// Msg carries detail for ErrInternal.
	Msg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrEndOfTokenStream:
		return fmt.Sprintf("%s: unexpected end of input", e.Pos)
	case ErrUnexpectedToken:
		return fmt.Sprintf("%s: expected %s but found %q",
			e.Pos, e.Expected, e.Found.Token.Literal())
	case ErrMissingEntryType:
		return fmt.Sprintf("%s: missing entry type after '@', found %q",
			e.Pos, e.Found.Token.Literal())
	case ErrMissingCiteKey:
		return fmt.Sprintf("%s: missing cite key, found %q",
			e.Pos, e.Found.Token.Literal())
	case ErrMissingTagName:
		return fmt.Sprintf("%s: missing tag name, found %q",
			e.Pos, e.Found.Token.Literal())
	case ErrMissingContent:
		return fmt.Sprintf("%s: expected tag content, found %q",
			e.Pos, e.Found.Token.Literal())
	case ErrInternal:
		return fmt.Sprintf("internal parser error: %s", e.Msg)
	}
	return "unknown parse error"
}

func errEndOfTokenStream(pos token.Position) *Error {
	return &Error{Kind: ErrEndOfTokenStream, Pos: pos}
}

func errUnexpectedToken(expected token.Kind, found token.TokenInfo) *Error {
	return &Error{
		Kind:     ErrUnexpectedToken,
		Expected: expected,
		Found:    found,
		Pos:      found.Position,
	}
}

func errMissing(kind ErrorKind, found token.TokenInfo) *Error {
	return &Error{Kind: kind, Found: found, Pos: found.Position}
}

func errInternal(msg string) *Error {
	return &Error{Kind: ErrInternal, Msg: msg}
}
