// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package banner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrNotRegular is returned by [StitchFile] for paths that are not regular
// files.
var ErrNotRegular = errors.New("not a regular file")

// Lines splits content into lines. Line terminators are kept, so joining
// the result gives back content.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Detect reports whether lines start with a banner and how many lines it
// spans.
//
// A banner is present if the first line ends with [Marker]. It continues
// over every line that is blank or contains [Border], up to and including
// its end line and one blank line after it.
func Detect(lines []string) (n int, ok bool) {
	if len(lines) == 0 || !strings.HasSuffix(strings.TrimRight(lines[0], "\r\n"), Marker) {
		return 0, false
	}
	for n < len(lines) {
		line := lines[n]
		if isEndLine(line) {
			n++
			if n < len(lines) && isBlank(lines[n]) {
				n++
			}
			return n, true
		}
		if !isBlank(line) && !strings.ContainsRune(line, Border) {
			break
		}
		n++
	}
	return n, true
}

// Stitch returns lines with banner at the top, replacing a banner that is
// already there. The banner is separated from the rest by an empty line.
func Stitch(lines []string, banner string) []string {
	n, _ := Detect(lines)
	if !strings.HasSuffix(banner, "\n") {
		banner += "\n"
	}
	rest := lines[n:]
	out := make([]string, 0, strings.Count(banner, "\n")+1+len(rest))
	out = append(out, Lines(banner)...)
	out = append(out, "\n")
	return append(out, rest...)
}

// Apply is [Stitch] over the whole content of a file.
func Apply(content, banner string) string {
	return strings.Join(Stitch(Lines(content), banner), "")
}

// StitchFile rewrites the file at path in place with banner at the top.
// It reports whether a previous banner was replaced.
func StitchFile(path, banner string) (replaced bool, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !fi.Mode().IsRegular() {
		return false, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return false, err
	}
	lines := Lines(string(b))
	_, replaced = Detect(lines)
	out := strings.Join(Stitch(lines, banner), "")

	if err := f.Truncate(0); err != nil {
		return false, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if _, err := io.WriteString(f, out); err != nil {
		return false, err
	}
	return replaced, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isEndLine reports whether line is a run of border characters closed by
// a slash.
func isEndLine(line string) bool {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	body, ok := strings.CutSuffix(line, "/")
	return ok && body != "" && strings.Trim(body, string(Border)) == ""
}
