/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Position is a location in the source text, 1-indexed on both axes.
// A newline ('\n' or '\r') increments Line and resets Column to 1.
// The zero value means "no position" (for example, an error raised
// before any token was consumed).
type Position struct {
	Line   uint32
	Column uint32
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position points into the source.
func (p Position) IsValid() bool {
	return p.Line > 0
}
