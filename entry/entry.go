/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"slices"
	"strings"
)

// Entry is one @kind{...} block of a BibTeX file. The variant set is
// closed: RefEntry, StringEntry, CommentEntry and PreambleEntry.
type Entry interface {
	isEntry()
}

// RefEntry is a bibliographic record such as @article{...}. Kind and
// Key are folded to lowercase at construction and stay that way.
type RefEntry struct {
	Kind string
	Key  string
	Tags []Tag
}

func (*RefEntry) isEntry() {}

// NewRefEntry returns a reference entry with kind and key folded to
// lowercase. Tags keep their source order; sorting is a formatting
// decision.
func NewRefEntry(kind, key string, tags []Tag) *RefEntry {
	return &RefEntry{
		Kind: strings.ToLower(kind),
		Key:  strings.ToLower(key),
		Tags: tags,
	}
}

// StringEntry is a @string{name = value} macro definition. It holds
// exactly one tag.
type StringEntry struct {
	Tag Tag
}

func (*StringEntry) isEntry() {}

// CommentEntry is an opaque @comment{...} payload. The body is kept
// verbatim and never re-parsed.
type CommentEntry struct {
	Body string
}

func (*CommentEntry) isEntry() {}

// PreambleEntry is a @preamble{...} block. Its body shares the value
// sequence grammar of tag values.
type PreambleEntry struct {
	Seq Sequence
}

func (*PreambleEntry) isEntry() {}

// Entries is the ordered top-level collection of parsed entries, in
// source order until Sort is called.
type Entries []Entry

// groupRank assigns each variant its output group. The order matches
// the canonical file layout: preambles, strings, comments, references.
func groupRank(e Entry) int {
	switch e.(type) {
	case *PreambleEntry:
		return 0
	case *StringEntry:
		return 1
	case *CommentEntry:
		return 2
	default:
		return 3
	}
}

// Compare orders two entries: by group first, then references by cite
// key, strings by macro name, comments by body. Preambles always
// compare equal so a stable sort retains their file order.
func Compare(a, b Entry) int {
	if r := groupRank(a) - groupRank(b); r != 0 {
		return r
	}
	switch a := a.(type) {
	case *RefEntry:
		return strings.Compare(a.Key, b.(*RefEntry).Key)
	case *StringEntry:
		return strings.Compare(a.Tag.Name, b.(*StringEntry).Tag.Name)
	case *CommentEntry:
		return strings.Compare(a.Body, b.(*CommentEntry).Body)
	default:
		return 0
	}
}

// Sort reorders the collection into canonical order. The sort is
// stable: entries that compare equal, such as two preambles or two
// records with the same key, keep their relative input order.
func (e Entries) Sort() {
	slices.SortStableFunc(e, Compare)
}
