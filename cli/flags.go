// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"cogentcore.org/raytrace/base/reflectx"
	"github.com/spf13/pflag"
)

// AddFlags adds a flag to fs for every settable leaf field of the
// struct pointed to by cfg, bound directly to the field. Flag names
// are the kebab-case field names, joined with "-" for nested structs,
// unless the field has a `flag:"name"` or `flag:"s,name"` tag, where
// s is a one letter shorthand. Fields tagged `flag:"-"` or `posarg`
// are skipped, as are unsupported field types. The `desc` tag gives
// the usage text.
func AddFlags(fs *pflag.FlagSet, cfg any) error {
	var errs []error
	err := reflectx.WalkFields(cfg, func(parents []reflect.StructField, field reflect.StructField, value reflect.Value) bool {
		if field.Tag.Get("flag") == "-" {
			return false
		}
		if _, ok := field.Tag.Lookup("posarg"); ok {
			return false
		}
		if field.Type.Kind() == reflect.Struct {
			return true
		}
		name, short := flagName(parents, field)
		if err := addFlag(fs, name, short, field.Tag.Get("desc"), value); err != nil {
			errs = append(errs, err)
		}
		return false
	})
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("cli.AddFlags: %w", errs[0])
	}
	return nil
}

// flagName returns the long and short flag names for the given field.
func flagName(parents []reflect.StructField, field reflect.StructField) (name, short string) {
	if tag, ok := field.Tag.Lookup("flag"); ok && tag != "" {
		s, l, found := strings.Cut(tag, ",")
		if found {
			return l, s
		}
		if len(tag) == 1 {
			return kebab(field.Name), tag
		}
		return tag, ""
	}
	names := make([]string, 0, len(parents)+1)
	for _, p := range parents {
		names = append(names, kebab(p.Name))
	}
	names = append(names, kebab(field.Name))
	return strings.Join(names, "-"), ""
}

func addFlag(fs *pflag.FlagSet, name, short, usage string, value reflect.Value) error {
	if !value.CanAddr() {
		return fmt.Errorf("field for flag %q is not addressable", name)
	}
	switch p := value.Addr().Interface().(type) {
	case *bool:
		fs.BoolVarP(p, name, short, *p, usage)
	case *string:
		fs.StringVarP(p, name, short, *p, usage)
	case *int:
		fs.IntVarP(p, name, short, *p, usage)
	case *uint8:
		fs.Uint8VarP(p, name, short, *p, usage)
	case *float32:
		fs.Float32VarP(p, name, short, *p, usage)
	case *float64:
		fs.Float64VarP(p, name, short, *p, usage)
	case *[]string:
		fs.StringSliceVarP(p, name, short, *p, usage)
	}
	return nil
}

// kebab converts a Go field name like LowerLeft to lower-left,
// keeping runs of capitals such as HTTPPort together as http-port.
func kebab(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || (unicode.IsUpper(rs[i-1]) && nextLower) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
