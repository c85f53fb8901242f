// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/raytrace/base/errors"
	"cogentcore.org/raytrace/base/fsx"
	"cogentcore.org/raytrace/base/iox/tomlx"
	"cogentcore.org/raytrace/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// includer is implemented by config types that support
// including other config files through an Includes field.
type includer interface {
	IncludesPtr() *[]string
}

// Open reads the config struct from the given config file,
// looking on [Options.IncludePaths] for the file, and
// processing any Includes it specifies. Files ending in .yaml
// or .yml are read as YAML, and all others as TOML. A leading
// ~ in file is expanded to the home directory.
func Open(opts *Options, cfg any, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	return openWithIncludes(opts, cfg, file)
}

// openFiles reads cfg from each of the given files in order,
// choosing the encoding from the file extension.
func openFiles(cfg any, files ...string) error {
	var errs []error
	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			errs = append(errs, yamlx.Open(cfg, file))
		default:
			errs = append(errs, tomlx.Open(cfg, file))
		}
	}
	return errors.Join(errs...)
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to Open if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("OpenWithIncludes: no files found for %q", file)
	}
	err := openFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return err
	}
	incs, err := includeStack(opts, incfg)
	if err != nil {
		return err
	}
	ni := len(incs)
	if ni == 0 {
		return nil
	}
	for i := ni - 1; i >= 0; i-- {
		inc := incs[i]
		incFiles := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
		if len(incFiles) == 0 {
			return fmt.Errorf("OpenWithIncludes: no files found for include %q", inc)
		}
		err = openFiles(cfg, incFiles...)
		if err != nil {
			slog.Error("opening include file", "file", inc, "err", err)
		}
	}
	// reopen original
	err = openFiles(cfg, files...)
	if err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return err
}

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none). Files should
// then be read in reverse order of the slice. Includes of includes
// are followed, and each file is listed at most once.
func includeStack(opts *Options, cfg includer) ([]string, error) {
	var stack []string
	pending := slices.Clone(*cfg.IncludesPtr())
	for len(pending) > 0 {
		inc := pending[0]
		pending = pending[1:]
		if slices.Contains(stack, inc) {
			continue
		}
		stack = append(stack, inc)
		*cfg.IncludesPtr() = nil
		files := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
		if len(files) == 0 {
			return stack, fmt.Errorf("includeStack: no files found for include %q", inc)
		}
		if err := openFiles(cfg, files...); err != nil {
			return stack, err
		}
		pending = append(pending, *cfg.IncludesPtr()...)
	}
	return stack, nil
}
