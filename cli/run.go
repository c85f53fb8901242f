// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"cogentcore.org/raytrace/base/errors"
	"cogentcore.org/raytrace/base/fsx"
	"cogentcore.org/raytrace/base/reflectx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Run runs an app with the given options, configuration struct,
// and function. The configuration struct is set from its default
// tags, then from a config file, then from the command line
// flags and positional arguments, each overriding the previous one.
// fn is called with the resulting configuration. If [Options.Fatal]
// is set, any error is printed and the program exits with code 1.
func Run[T any](opts *Options, cfg T, fn func(T) error) error {
	cmd, err := Command(opts, cfg, fn)
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil && opts.Fatal {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	return err
}

// Command returns a [cobra.Command] that configures cfg and calls fn
// when executed, as described in [Run]. cfg must be a pointer to a struct.
func Command[T any](opts *Options, cfg T, fn func(T) error) (*cobra.Command, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	posargs, err := positionalArgs(cfg)
	if err != nil {
		return nil, err
	}
	var configFile string
	cmd := &cobra.Command{
		Use:           opts.AppName,
		Short:         opts.AppAbout,
		Version:       opts.Version,
		Args:          cobra.MaximumNArgs(len(posargs)),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			changed := changedFlags(fs)
			if err := openConfig(opts, cfg, configFile); err != nil {
				return err
			}
			if err := changed.apply(fs); err != nil {
				return err
			}
			for i, arg := range args {
				if err := reflectx.SetFromString(posargs[i], arg); err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
			}
			return fn(cfg)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "the config file to read")
	if err := AddFlags(cmd.Flags(), cfg); err != nil {
		return nil, err
	}
	return cmd, nil
}

// openConfig opens the given config file, or the first existing
// default file if file is empty.
func openConfig(opts *Options, cfg any, file string) error {
	if file != "" {
		return Open(opts, cfg, file)
	}
	for _, def := range opts.DefaultFiles {
		ok, err := fsx.FileExists(def)
		if errors.Log(err) != nil || !ok {
			continue
		}
		return Open(opts, cfg, def)
	}
	return nil
}

// positionalArgs returns the fields of cfg tagged `posarg:"i"`,
// ordered by index.
func positionalArgs(cfg any) ([]reflect.Value, error) {
	byIndex := map[int]reflect.Value{}
	var perr error
	err := reflectx.WalkFields(cfg, func(parents []reflect.StructField, field reflect.StructField, value reflect.Value) bool {
		tag, ok := field.Tag.Lookup("posarg")
		if !ok {
			return true
		}
		i, err := strconv.Atoi(tag)
		if err != nil || i < 0 {
			perr = fmt.Errorf("cli: field %s has invalid posarg index %q", field.Name, tag)
			return false
		}
		byIndex[i] = value
		return false
	})
	if err != nil {
		return nil, err
	}
	if perr != nil {
		return nil, perr
	}
	vals := make([]reflect.Value, len(byIndex))
	for i := range vals {
		v, ok := byIndex[i]
		if !ok {
			return nil, fmt.Errorf("cli: missing posarg index %d", i)
		}
		vals[i] = v
	}
	return vals, nil
}

// flagValues records the values of flags set on the command line,
// so that they can be reapplied after a config file is read.
type flagValues map[string]any

func changedFlags(fs *pflag.FlagSet) flagValues {
	fv := flagValues{}
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			fv[f.Name] = sv.GetSlice()
			return
		}
		fv[f.Name] = f.Value.String()
	})
	return fv
}

func (fv flagValues) apply(fs *pflag.FlagSet) error {
	for name, val := range fv {
		f := fs.Lookup(name)
		var err error
		switch v := val.(type) {
		case []string:
			err = f.Value.(pflag.SliceValue).Replace(v)
		case string:
			err = f.Value.Set(v)
		}
		if err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}
