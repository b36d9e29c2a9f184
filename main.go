/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command bibfmt rewrites BibTeX bibliographies into a canonical form.
package main

import (
	"os"

	"bennypowers.dev/bibfmt/cmd"
	"bennypowers.dev/bibfmt/internal/exitcodes"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(int(exitcodes.From(err)))
	}
}
