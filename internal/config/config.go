// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config holds the configuration of a banner run and loads project
// defaults from a txtar archive.
//
// The archive may contain:
//
//   - config.toml: project identity and discovery settings, with the keys
//     project, description, author, width, extensions and exclusions.
//   - license.txt: license text to use instead of the MIT license.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/tools/txtar"

	"go.astrophena.name/banner/banner"
	"go.astrophena.name/banner/discover"
)

// DefaultPath is the project configuration archive looked up in the current
// directory.
const DefaultPath = ".banner.txtar"

// ErrInvalid is wrapped by errors returned from [Config.Validate] and [Load].
var ErrInvalid = errors.New("invalid configuration")

// Config is the configuration of a single run.
type Config struct {
	Verbose   bool
	DryRun    bool
	Recursive bool
	// Sources are the directories to search for files.
	Sources []string
	// LicensePath is a file with license text. It takes precedence over
	// License.
	LicensePath string
	// OutputPath, if set, receives a copy of the rendered banner.
	OutputPath string
	Width      int

	Project     string
	Description string
	Author      string
	Year        int
	// License is license text from the project archive. If both License and
	// LicensePath are empty, the MIT license is used.
	License string

	Extensions []string
	Exclusions []string
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Width:       banner.DefaultWidth,
		Project:     "Untitled",
		Description: "This software is distributed free of charge, under the MIT License.",
		Author:      "$AUTHOR",
		Year:        time.Now().UTC().Year(),
		Extensions:  slices.Clone(discover.DefaultExtensions),
	}
}

// file is the layout of config.toml.
type file struct {
	Project     *string  `toml:"project"`
	Description *string  `toml:"description"`
	Author      *string  `toml:"author"`
	Width       *int     `toml:"width"`
	Extensions  []string `toml:"extensions"`
	Exclusions  []string `toml:"exclusions"`
}

// Load reads the archive at path and applies it on top of [Default].
func Load(path string) (Config, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return Config{}, err
	}
	return parse(path, ar)
}

func parse(path string, ar *txtar.Archive) (Config, error) {
	cfg := Default()
	for _, f := range ar.Files {
		switch f.Name {
		case "config.toml":
			var fc file
			md, err := toml.Decode(string(f.Data), &fc)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %s: %w", path, f.Name, err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, fmt.Errorf("%w: %s: %s: unknown key %q", ErrInvalid, path, f.Name, undecoded[0].String())
			}
			fc.apply(&cfg)
		case "license.txt":
			cfg.License = strings.TrimRight(string(f.Data), "\n")
		default:
			return Config{}, fmt.Errorf("%w: %s: unexpected file %q", ErrInvalid, path, f.Name)
		}
	}
	return cfg, nil
}

func (fc file) apply(cfg *Config) {
	if fc.Project != nil {
		cfg.Project = *fc.Project
	}
	if fc.Description != nil {
		cfg.Description = *fc.Description
	}
	if fc.Author != nil {
		cfg.Author = *fc.Author
	}
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Extensions != nil {
		cfg.Extensions = fc.Extensions
	}
	if fc.Exclusions != nil {
		cfg.Exclusions = fc.Exclusions
	}
}

// LoadDefault loads [DefaultPath] if it exists and returns [Default]
// otherwise.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that the configuration can be run.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: no source directories", ErrInvalid)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q does not start with a dot", ErrInvalid, ext)
		}
	}
	return nil
}

// Discover returns the discovery options described by c.
func (c Config) Discover() discover.Options {
	return discover.Options{
		Extensions: c.Extensions,
		Exclusions: c.Exclusions,
		Recursive:  c.Recursive,
	}
}

// Banner returns the banner parameters described by c with the given
// license text.
func (c Config) Banner(license string) banner.Params {
	return banner.Params{
		Project:     c.Project,
		Description: c.Description,
		License:     license,
		Width:       c.Width,
	}
}
