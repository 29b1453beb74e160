// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package wrap reflows text into lines of a fixed logical width.
//
// Logical width counts a tab as a configurable number of columns and every
// other rune as one column. Embedded newlines are hard breaks and are always
// honored. Leading tabs and spaces of each line are dropped.
package wrap

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the number of columns a tab counts as when
// [Wrapper.TabWidth] is zero.
const DefaultTabWidth = 4

// Wrapper holds wrapping options. The zero value wraps at word boundaries
// with tabs counted as [DefaultTabWidth] columns.
type Wrapper struct {
	// TabWidth is the number of columns a tab counts as.
	TabWidth int
	// SplitWords allows breaks in the middle of a word. When false, a word
	// that would cross the width is moved to the next line, and a word
	// longer than the width is emitted whole.
	SplitWords bool
	// CellWidth measures runes by their terminal cell width (so that East
	// Asian wide runes count as two columns) instead of one column each.
	CellWidth bool
}

// Wrap wraps text to width using the zero [Wrapper].
func Wrap(text string, width int) []string {
	return Wrapper{}.Wrap(text, width)
}

// Wrap splits text into lines whose logical length does not exceed width.
// Every returned line ends with exactly one newline.
//
// If width is less than 1, Wrap returns nil.
func (w Wrapper) Wrap(text string, width int) []string {
	if width < 1 {
		return nil
	}

	var (
		lines []string
		start int // first byte of the current line
	)
	for start < len(text) {
		for start < len(text) && isBlank(text[start]) {
			start++
		}

		var (
			end       = start
			lineLen   int
			lastBlank = -1 // byte offset of the last blank on this line
			inWord    bool // previous rune was not blank
			hardBreak bool
		)
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if r == '\n' {
				end += size
				hardBreak = true
				break
			}

			rw := w.runeWidth(r)
			// Always take at least one rune so the scan makes progress.
			if lineLen+rw > width && end > start {
				// A blank at the overflow point ends the line there; the
				// word before it is complete and stays.
				if !w.SplitWords && inWord && r != ' ' && r != '\t' {
					if lastBlank >= start {
						end = lastBlank
					} else {
						end = wordEnd(text, end)
					}
				}
				break
			}

			if r == ' ' || r == '\t' {
				lastBlank = end
				inWord = false
			} else {
				inWord = true
			}
			lineLen += rw
			end += size
		}

		line := text[start:end]
		if !hardBreak {
			line += "\n"
		}
		lines = append(lines, line)
		start = end
	}
	return lines
}

func (w Wrapper) runeWidth(r rune) int {
	switch {
	case r == '\t':
		return w.tabWidth()
	case w.CellWidth:
		return runewidth.RuneWidth(r)
	default:
		return 1
	}
}

func (w Wrapper) tabWidth() int {
	if w.TabWidth == 0 {
		return DefaultTabWidth
	}
	return w.TabWidth
}

// Width returns the logical length of line as measured by w, ignoring
// newlines.
func (w Wrapper) Width(line string) int {
	var n int
	for _, r := range line {
		if r != '\n' {
			n += w.runeWidth(r)
		}
	}
	return n
}

// wordEnd returns the offset of the first blank or newline at or after i.
func wordEnd(text string, i int) int {
	for i < len(text) && !isBlank(text[i]) && text[i] != '\n' {
		i++
	}
	return i
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
