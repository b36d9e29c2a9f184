/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package entry provides the typed model for parsed BibTeX content:
// entries, tags, and tag values. Values are constructed by the parser
// and are immutable afterwards; the only mutations the package offers
// are the explicit Entries.Sort.
package entry

import "strings"

// Value is the content of a tag. It is a closed union: Single,
// Integer, or Sequence.
type Value interface {
	// IsEmpty reports whether the value has no meaningful content.
	IsEmpty() bool

	isValue()
}

// Single is content that was delimited by one pair of braces or
// quotes. Braces may nest inside; the outer delimiters are stripped.
type Single string

func (Single) isValue() {}

// IsEmpty reports whether the content is blank.
func (s Single) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Integer is a bare, comma- or brace-terminated numeral.
type Integer uint64

func (Integer) isValue() {}

// IsEmpty always returns false; a numeral is never empty.
func (Integer) IsEmpty() bool {
	return false
}

// Sequence is one or more parts joined by '#', BibTeX's string
// concatenation operator. A Sequence never has zero parts; an empty
// tag value degenerates to Single("") instead.
type Sequence []Part

func (Sequence) isValue() {}

// IsEmpty reports whether every part of the sequence is empty.
func (s Sequence) IsEmpty() bool {
	for _, p := range s {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// PartKind distinguishes the two sequence part variants.
type PartKind uint8

const (
	// Quoted is content between quote delimiters, case-transformable.
	Quoted PartKind = iota
	// Bare is an undelimited identifier, typically a @string macro
	// reference, rendered lowercase.
	Bare
)

// Part is one element of a Sequence.
type Part struct {
	Kind PartKind
	Text string
}

// QuotedPart returns a quote-delimited part holding text.
func QuotedPart(text string) Part {
	return Part{Kind: Quoted, Text: text}
}

// BarePart returns an undelimited part holding text.
func BarePart(text string) Part {
	return Part{Kind: Bare, Text: text}
}

// IsEmpty reports whether the part holds no text.
func (p Part) IsEmpty() bool {
	return p.Text == ""
}

// Tag is a name = value pair inside a reference or string entry.
type Tag struct {
	Name  string
	Value Value
}

// NewTag returns a tag with its name folded to lowercase.
func NewTag(name string, value Value) Tag {
	return Tag{Name: strings.ToLower(name), Value: value}
}

// Compare orders tags for formatted output. The order is a citation
// style convention, not plain lexicographic: title sorts first, author
// second, and everything else alphabetically after. Equal names
// compare equal.
func (t Tag) Compare(other Tag) int {
	a, b := t.Name, other.Name
	if a == b {
		return 0
	}
	switch {
	case a == "title":
		return -1
	case b == "title":
		return 1
	case a == "author":
		return -1
	case b == "author":
		return 1
	}
	return strings.Compare(a, b)
}
