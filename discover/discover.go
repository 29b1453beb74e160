// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package discover finds source files that should carry a banner.
package discover

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go4org/hashtriemap"

	"go.astrophena.name/banner/logger"
)

// DefaultExtensions are the C and C++ source and header file extensions.
var DefaultExtensions = []string{".h", ".hpp", ".c", ".cc", ".cpp", ".cxx"}

// Options control which files are found.
type Options struct {
	// Extensions lists file extensions, with the leading dot, of files to
	// find. Nil means DefaultExtensions.
	Extensions []string
	// Exclusions lists path suffixes of files to skip.
	Exclusions []string
	// Recursive makes Files descend into sub-directories.
	Recursive bool
}

func (o Options) matches(path string) bool {
	exts := o.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}
	if !slices.Contains(exts, filepath.Ext(path)) {
		return false
	}
	slashed := filepath.ToSlash(path)
	for _, ex := range o.Exclusions {
		if strings.HasSuffix(slashed, ex) {
			return false
		}
	}
	return true
}

// Files returns the cleaned paths of matching regular files in the roots
// directories, sorted and without duplicates.
func Files(ctx context.Context, roots []string, opts Options) ([]string, error) {
	w := &walker{opts: opts}
	for _, root := range roots {
		logger.Info(ctx, "scanning directory", slog.String("dir", root))
		if err := w.walk(ctx, root); err != nil {
			return nil, err
		}
	}
	slices.Sort(w.found)
	return w.found, nil
}

type walker struct {
	opts  Options
	seen  hashtriemap.HashTrieMap[string, struct{}]
	found []string
}

func (w *walker) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		mode := e.Type()
		if mode&os.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			if err != nil {
				logger.Warn(ctx, "skipping broken symlink", slog.String("path", path), slog.Any("err", err))
				continue
			}
			if fi.IsDir() {
				// Directory links are not followed.
				continue
			}
			mode = fi.Mode()
		}

		switch {
		case mode.IsDir():
			subdirs = append(subdirs, path)
		case mode.IsRegular() && w.opts.matches(path):
			if _, loaded := w.seen.LoadOrStore(path, struct{}{}); loaded {
				continue
			}
			logger.Debug(ctx, "found source file", slog.String("path", path))
			w.found = append(w.found, path)
		}
	}

	if !w.opts.Recursive {
		return nil
	}
	for _, sub := range subdirs {
		logger.Debug(ctx, "scanning subdirectory", slog.String("dir", sub))
		if err := w.walk(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}
