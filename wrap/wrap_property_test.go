// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package wrap

import (
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genText generates text made of short and long words separated by spaces,
// tabs and newlines.
func genText() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(
		"a", "to", "the", "word", "banner", "supercalifragilistic",
		" ", "  ", "\t", "\n", "\n\n", "世界",
	)).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestWrapProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	properties := gopter.NewProperties(params)

	var w Wrapper

	properties.Property("lines fit unless a single word is too long", prop.ForAll(
		func(text string, width int) bool {
			for _, line := range w.Wrap(text, width) {
				body := strings.TrimSuffix(line, "\n")
				if w.Width(body) <= width {
					continue
				}
				if strings.ContainsAny(body, " \t") {
					return false
				}
			}
			return true
		},
		genText(),
		gen.IntRange(1, 40),
	))

	properties.Property("non-positive width yields nothing", prop.ForAll(
		func(text string, width int) bool {
			return len(w.Wrap(text, width)) == 0
		},
		genText(),
		gen.IntRange(-10, 0),
	))

	properties.Property("no leading blanks", prop.ForAll(
		func(text string, width int) bool {
			for _, line := range w.Wrap(text, width) {
				if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
					return false
				}
			}
			return true
		},
		genText(),
		gen.IntRange(1, 40),
	))

	properties.Property("each line ends with exactly one newline", prop.ForAll(
		func(text string, width int) bool {
			for _, line := range w.Wrap(text, width) {
				if !strings.HasSuffix(line, "\n") || strings.Count(line, "\n") != 1 {
					return false
				}
			}
			return true
		},
		genText(),
		gen.IntRange(1, 40),
	))

	properties.Property("words are preserved in order", prop.ForAll(
		func(text string, width int) bool {
			got := strings.Fields(strings.Join(w.Wrap(text, width), ""))
			return slices.Equal(got, strings.Fields(text))
		},
		genText(),
		gen.IntRange(1, 40),
	))

	properties.Property("split words keep every rune", prop.ForAll(
		func(text string, width int) bool {
			sw := Wrapper{SplitWords: true}
			got := strings.Join(strings.Fields(strings.Join(sw.Wrap(text, width), "")), "")
			return got == strings.Join(strings.Fields(text), "")
		},
		genText(),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}
