// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/banner/banner"
	"go.astrophena.name/banner/discover"
	"go.astrophena.name/banner/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	testutil.AssertEqual(t, cfg.Width, banner.DefaultWidth)
	testutil.AssertEqual(t, cfg.Year, time.Now().UTC().Year())
	testutil.AssertEqual(t, cfg.Extensions, discover.DefaultExtensions)

	// Default must not share the package-level slice.
	cfg.Extensions[0] = ".x"
	testutil.AssertEqual(t, discover.DefaultExtensions[0], ".h")
}

func TestParse(t *testing.T) {
	cases := map[string]struct {
		in      string
		check   func(*testing.T, Config)
		wantErr error
	}{
		"empty": {
			in: "",
			check: func(t *testing.T, cfg Config) {
				testutil.AssertEqual(t, cfg.Project, Default().Project)
			},
		},
		"config": {
			in: `-- config.toml --
project = "SSTest: A C++ Testing Library"
description = "A simple C++ testing library."
author = "David Lu"
width = 100
extensions = [".cpp", ".h"]
exclusions = ["third_party/json.hpp"]
`,
			check: func(t *testing.T, cfg Config) {
				testutil.AssertEqual(t, cfg.Project, "SSTest: A C++ Testing Library")
				testutil.AssertEqual(t, cfg.Description, "A simple C++ testing library.")
				testutil.AssertEqual(t, cfg.Author, "David Lu")
				testutil.AssertEqual(t, cfg.Width, 100)
				testutil.AssertEqual(t, cfg.Extensions, []string{".cpp", ".h"})
				testutil.AssertEqual(t, cfg.Exclusions, []string{"third_party/json.hpp"})
				testutil.AssertEqual(t, cfg.License, "")
			},
		},
		"partial config keeps defaults": {
			in: "-- config.toml --\nauthor = \"A\"\n",
			check: func(t *testing.T, cfg Config) {
				testutil.AssertEqual(t, cfg.Author, "A")
				testutil.AssertEqual(t, cfg.Width, banner.DefaultWidth)
				testutil.AssertEqual(t, cfg.Extensions, discover.DefaultExtensions)
			},
		},
		"license": {
			in: "-- license.txt --\nAll rights reserved.\n\n",
			check: func(t *testing.T, cfg Config) {
				testutil.AssertEqual(t, cfg.License, "All rights reserved.")
			},
		},
		"unknown key": {
			in:      "-- config.toml --\nprojcet = \"typo\"\n",
			wantErr: ErrInvalid,
		},
		"unexpected file": {
			in:      "-- exclusions.json --\n[]\n",
			wantErr: ErrInvalid,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := parse("test.txtar", txtar.Parse([]byte(tc.in)))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := parse("test.txtar", txtar.Parse([]byte("-- config.toml --\nwidth = \n")))
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if !strings.Contains(err.Error(), "test.txtar: config.toml:") {
		t.Fatalf("error %q does not name the file", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte("-- config.toml --\nproject = \"P\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, cfg.Project, "P")

	_, err = Load(filepath.Join(t.TempDir(), "missing.txtar"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}
}

func TestLoadDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, cfg.Project, Default().Project)

	if err := os.WriteFile(DefaultPath, []byte("-- config.toml --\nproject = \"Here\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, cfg.Project, "Here")
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mod     func(*Config)
		wantErr error
	}{
		"ok": {
			mod: func(c *Config) { c.Sources = []string{"src"} },
		},
		"no sources": {
			mod:     func(c *Config) {},
			wantErr: ErrInvalid,
		},
		"bad extension": {
			mod: func(c *Config) {
				c.Sources = []string{"src"}
				c.Extensions = []string{"cpp"}
			},
			wantErr: ErrInvalid,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mod(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Recursive = true
	cfg.Exclusions = []string{"x.h"}
	cfg.Project = "P"
	cfg.Width = 42

	testutil.AssertEqual(t, cfg.Discover(), discover.Options{
		Extensions: discover.DefaultExtensions,
		Exclusions: []string{"x.h"},
		Recursive:  true,
	})
	testutil.AssertEqual(t, cfg.Banner("L"), banner.Params{
		Project:     "P",
		Description: cfg.Description,
		License:     "L",
		Width:       42,
	})
}
