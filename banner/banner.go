// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package banner renders copyright banners and stitches them into the top
// of source files.
//
// A banner is a C-style block comment:
//
//	/***************************************************************************//**
//	* Project
//	*
//	* Description
//	*
//	*
//	* License text, wrapped to the banner width.
//	*
//	*******************************************************************************/
//
// The start line ends with [Marker], which is how a banner inserted by an
// earlier run is recognized and replaced.
package banner

import (
	_ "embed"
	"fmt"
	"strings"

	"go.astrophena.name/banner/wrap"
)

const (
	// Marker ends the start line of every banner.
	Marker = "//**"
	// Border is the character that draws the banner's borders.
	Border = '*'
	// MinWidth is the narrowest banner that will be rendered.
	MinWidth = 10
	// DefaultWidth is used when Params.Width is zero.
	DefaultWidth = 80
)

// prefix starts every line of the banner body.
const prefix = "* "

// Params describe a banner.
type Params struct {
	Project     string
	Description string
	License     string
	// Width is the width of the banner in columns, including the comment
	// delimiters. Zero means DefaultWidth. Widths below MinWidth are
	// raised to MinWidth.
	Width int
}

// Format renders the banner described by p. The result ends with a newline.
func Format(p Params) string {
	width := p.Width
	if width == 0 {
		width = DefaultWidth
	}
	width = max(width, MinWidth)

	border := strings.Repeat(string(Border), width-1)

	var sb strings.Builder
	sb.WriteString("/" + border[:width-1-len(Marker)] + Marker + "\n")

	content := p.Project + "\n\n" + p.Description + "\n\n\n" + p.License + "\n"
	for _, line := range wrap.Wrap(content, width-len(prefix)) {
		sb.WriteString(prefix + line)
	}

	sb.WriteString(prefix + "\n")
	sb.WriteString(border + "/\n")
	return sb.String()
}

//go:embed mit.txt
var mitLicense string

// MIT returns the text of the MIT license with a copyright line for author.
func MIT(year int, author string) string {
	return fmt.Sprintf("Copyright (c) %d %s\n\n", year, author) + mitLicense
}
