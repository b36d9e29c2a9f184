/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format

import (
	"strings"
	"unicode"
)

// RemoveBraces strips every brace from text, undoing any existing
// case protection before it is reapplied.
func RemoveBraces(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '{' || r == '}' {
			return -1
		}
		return r
	}, text)
}

// wrapWord wraps a word in braces. A trailing colon attaches outside
// the wrap: "FOO:" becomes "{FOO}:".
func wrapWord(word string) string {
	if stripped, ok := strings.CutSuffix(word, ":"); ok {
		return "{" + stripped + "}:"
	}
	return "{" + word + "}"
}

func containsUpper(word string) bool {
	return strings.ContainsFunc(word, unicode.IsUpper)
}

// onlyInitialUpper reports whether the word's first rune is its only
// uppercase letter.
func onlyInitialUpper(word string) bool {
	for i, r := range word {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return word != ""
}

// Title rewrites a title so BibTeX cannot downcase its capitalized
// words: existing brace protection is stripped, the text is split on
// whitespace, and every word containing an uppercase letter is wrapped
// in braces. The very first word is exempt when only its initial is
// capitalized, since BibTeX capitalizes the first word on its own.
func Title(text string) string {
	words := strings.Fields(RemoveBraces(text))
	for i, word := range words {
		if !containsUpper(word) {
			continue
		}
		if i == 0 && onlyInitialUpper(word) {
			continue
		}
		words[i] = wrapWord(word)
	}
	return strings.Join(words, " ")
}
