// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addbanner adds a copyright banner to the top of source files.

The banner is a C-style block comment with the project name, a short
description and the license text, wrapped to a fixed width (80 columns
unless -width says otherwise).

The first line of the banner ends with a marker. When a file already starts
with a banner carrying the marker, the old banner is replaced, so running
addbanner again is safe. Other files get the banner inserted above their
existing content.

Files are found in the directories given with -s or as arguments. Only files
with C and C++ extensions are changed unless the project configuration says
otherwise. Use -r to descend into sub-directories and -dry to see what would
be changed without changing anything.

The license is the MIT license unless -license points to a file with
license text.

Project defaults are read from a .banner.txtar file in the current directory
(or the file given with -config). It is a txtar archive that can contain the
following files:

  - config.toml: project, description, author, width, extensions (a list of
    file extensions with the leading dot) and exclusions (a list of path
    suffixes to skip).
  - license.txt: license text to use instead of the MIT license.

Flags override the project configuration.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/banner/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
