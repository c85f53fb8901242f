// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/raytrace/base/errors"
)

// WalkFields calls fn for each exported field of the struct that obj
// points to, in declaration order. parents are the enclosing struct fields
// of a nested field. If fn returns true for a struct-typed field, its
// fields are visited as well.
func WalkFields(obj any, fn func(parents []reflect.StructField, field reflect.StructField, value reflect.Value) bool) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.WalkFields: expected a struct, not %v", v.Kind())
	}
	walkFields(nil, v, fn)
	return nil
}

func walkFields(parents []reflect.StructField, v reflect.Value, fn func(parents []reflect.StructField, field reflect.StructField, value reflect.Value) bool) {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fn(parents, f, fv) && fv.Kind() == reflect.Struct {
			walkFields(append(parents[:len(parents):len(parents)], f), fv, fn)
		}
	}
}

// SetFromDefaultTags sets the values of fields in the given struct pointer
// based on `default:` struct field tag values. Struct fields without a
// default tag are processed recursively. All errors are joined.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	var errs []error
	err := WalkFields(obj, func(parents []reflect.StructField, field reflect.StructField, value reflect.Value) bool {
		def, ok := field.Tag.Lookup("default")
		if !ok {
			return true
		}
		if err := SetFromString(value, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s: %w", field.Name, err))
		}
		return false
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}

// SetFromString sets the settable value v from its string representation.
// Types implementing [encoding.TextUnmarshaler] use that; otherwise strings,
// bools, numbers, and comma separated string slices are supported.
func SetFromString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("reflectx.SetFromString: value of type %v is not settable", v.Type())
	}
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("reflectx.SetFromString: unsupported slice type %v", v.Type())
		}
		var parts []string
		if s != "" {
			parts = strings.Split(s, ",")
		}
		sv := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			sv.Index(i).SetString(strings.TrimSpace(p))
		}
		v.Set(sv)
	default:
		return fmt.Errorf("reflectx.SetFromString: unsupported type %v", v.Type())
	}
	return nil
}
