// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"go.astrophena.name/banner/banner"
	"go.astrophena.name/banner/cli"
	"go.astrophena.name/banner/discover"
	"go.astrophena.name/banner/internal/config"
	"go.astrophena.name/banner/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	verbose     bool
	dry         bool
	recursive   bool
	sources     []string
	configPath  string
	licensePath string
	outputPath  string
	width       int
	project     string
	description string
	author      string
	year        int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.verbose, "v", false, "Print every action.")
	fs.BoolVar(&a.dry, "dry", false, "Print what would be done without changing any files.")
	fs.BoolVar(&a.recursive, "r", false, "Find files in source directories recursively.")
	fs.Func("s", "Find source files in `dir`. Can be repeated.", func(s string) error {
		a.sources = append(a.sources, s)
		return nil
	})
	fs.StringVar(&a.configPath, "config", "", "Read project configuration from `file` (default "+config.DefaultPath+" if it exists).")
	fs.StringVar(&a.licensePath, "license", "", "Read license text from `file` instead of using the MIT license.")
	fs.StringVar(&a.outputPath, "o", "", "Also write the banner to `file`.")
	fs.IntVar(&a.width, "width", 0, "Banner width in columns (default 80).")
	fs.StringVar(&a.project, "project", "", "Project name.")
	fs.StringVar(&a.description, "description", "", "Project description.")
	fs.StringVar(&a.author, "author", "", "Copyright holder in the MIT license.")
	fs.IntVar(&a.year, "year", 0, "Copyright year in the MIT license (default current year).")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if a.verbose {
		logger.Get(ctx).Level.Set(slog.LevelDebug)
	}

	cfg, err := a.config(env.Args)
	if err != nil {
		return err
	}
	return run(ctx, cfg)
}

// config merges the project configuration with flags and arguments.
func (a *app) config(args []string) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return cfg, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
		return cfg, err
	}

	cfg.Verbose = a.verbose
	cfg.DryRun = a.dry
	cfg.Recursive = a.recursive
	cfg.Sources = append(append([]string(nil), a.sources...), args...)
	cfg.LicensePath = a.licensePath
	cfg.OutputPath = a.outputPath
	setIf(&cfg.Width, a.width)
	setIf(&cfg.Year, a.year)
	setIf(&cfg.Project, a.project)
	setIf(&cfg.Description, a.description)
	setIf(&cfg.Author, a.author)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	return cfg, nil
}

func setIf[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

var errFilesFailed = errors.New("failed to add banner")

// stitchFile is a variable so tests can make it fail.
var stitchFile = banner.StitchFile

func run(ctx context.Context, cfg config.Config) error {
	env := cli.GetEnv(ctx)

	files, err := discover.Files(ctx, cfg.Sources, cfg.Discover())
	if err != nil {
		return err
	}
	logger.Info(ctx, "found source files", slog.Int("count", len(files)))

	license, err := licenseText(ctx, cfg)
	if err != nil {
		return err
	}
	b := banner.Format(cfg.Banner(license))
	if cfg.Verbose {
		fmt.Fprintf(env.Stdout, "%s\n", b)
	}

	if cfg.OutputPath != "" {
		if cfg.DryRun {
			logger.Info(ctx, "would write banner", slog.String("path", cfg.OutputPath))
		} else {
			if err := atomic.WriteFile(cfg.OutputPath, strings.NewReader(b)); err != nil {
				return err
			}
			logger.Info(ctx, "wrote banner", slog.String("path", cfg.OutputPath))
		}
	}

	if cfg.DryRun {
		logger.Info(ctx, "adding banner (dry run)", slog.Int("files", len(files)))
	} else {
		logger.Info(ctx, "adding banner", slog.Int("files", len(files)))
	}

	var failed int
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if cfg.DryRun {
			content, err := os.ReadFile(path)
			if err != nil {
				logger.Error(ctx, "failed to read file", slog.String("path", path), slog.Any("err", err))
				failed++
				continue
			}
			_, replace := banner.Detect(banner.Lines(string(content)))
			logger.Debug(ctx, "would add banner", slog.String("path", path), slog.Bool("replace", replace))
			continue
		}

		replaced, err := stitchFile(path, b)
		if err != nil {
			logger.Error(ctx, "failed to add banner", slog.String("path", path), slog.Any("err", err))
			failed++
			continue
		}
		logger.Debug(ctx, "added banner", slog.String("path", path), slog.Bool("replaced", replaced))
	}

	logger.Info(ctx, "done",
		slog.Int("found", len(files)),
		slog.Int("processed", len(files)-failed),
		slog.Bool("dry_run", cfg.DryRun),
	)
	if failed > 0 {
		return fmt.Errorf("%w to %d of %d files", errFilesFailed, failed, len(files))
	}
	return nil
}

func licenseText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.LicensePath != "":
		b, err := os.ReadFile(cfg.LicensePath)
		if err != nil {
			return "", err
		}
		logger.Info(ctx, "read license", slog.String("path", cfg.LicensePath))
		return strings.TrimRight(string(b), "\n"), nil
	case cfg.License != "":
		return cfg.License, nil
	default:
		return banner.MIT(cfg.Year, cfg.Author), nil
	}
}
