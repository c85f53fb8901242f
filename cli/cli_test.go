// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X float32
	Y float32
}

type testConfig struct {
	Output   string `posarg:"0" default:"out.ppm"`
	Width    int    `default:"40" desc:"image width"`
	Gamma    bool
	Scale    float64 `default:"1.5"`
	Corner   point
	Verbose  bool     `flag:"v,verbose"`
	Level    uint8    `flag:"lvl"`
	Includes []string `flag:"-"`
	Tags     []string
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "lower-left", kebab("LowerLeft"))
	assert.Equal(t, "x", kebab("X"))
	assert.Equal(t, "http-port", kebab("HTTPPort"))
	assert.Equal(t, "item2-name", kebab("Item2Name"))
}

func TestAddFlags(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, AddFlags(fs, cfg))

	assert.Nil(t, fs.Lookup("output"))
	assert.Nil(t, fs.Lookup("includes"))
	assert.NotNil(t, fs.Lookup("corner-x"))
	assert.Equal(t, "image width", fs.Lookup("width").Usage)
	assert.Equal(t, "40", fs.Lookup("width").DefValue)
	assert.Equal(t, "v", fs.Lookup("verbose").Shorthand)

	err := fs.Parse([]string{"--width=8", "--corner-y", "-2.5", "-v", "--lvl=3", "--tags=a,b", "--gamma"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, float32(-2.5), cfg.Corner.Y)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Gamma)
	assert.Equal(t, uint8(3), cfg.Level)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.Equal(t, 1.5, cfg.Scale)
}

func TestAddFlagsNotStruct(t *testing.T) {
	n := 0
	assert.Error(t, AddFlags(pflag.NewFlagSet("test", pflag.ContinueOnError), &n))
}

func run(t *testing.T, opts *Options, args ...string) (*testConfig, error) {
	t.Helper()
	cfg := &testConfig{}
	var got *testConfig
	cmd, err := Command(opts, cfg, func(c *testConfig) error {
		got = c
		return nil
	})
	require.NoError(t, err)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return got, err
}

func TestCommandDefaults(t *testing.T) {
	opts := DefaultOptions("test", "a test app")
	opts.DefaultFiles = nil
	cfg, err := run(t, opts)
	require.NoError(t, err)
	assert.Equal(t, "out.ppm", cfg.Output)
	assert.Equal(t, 40, cfg.Width)
}

func TestCommandPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "test.toml", "Output = \"cfg.png\"\nWidth = 20\nGamma = true\n[Corner]\nX = 2.0\n")
	opts := DefaultOptions("test", "a test app")
	opts.IncludePaths = []string{dir}

	cfg, err := run(t, opts, "--config", "test.toml", "--width", "10", "arg.ppm")
	require.NoError(t, err)
	assert.Equal(t, "arg.ppm", cfg.Output)
	assert.Equal(t, 10, cfg.Width)
	assert.True(t, cfg.Gamma)
	assert.Equal(t, float32(2), cfg.Corner.X)
	assert.Equal(t, 1.5, cfg.Scale)

	cfg, err = run(t, opts, "--config", "test.toml")
	require.NoError(t, err)
	assert.Equal(t, "cfg.png", cfg.Output)
	assert.Equal(t, 20, cfg.Width)
}

func TestCommandDefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, "test.toml", "Width = 12\n")
	cfg, err := run(t, DefaultOptions("test", "a test app"), "--tags=x")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, []string{"x"}, cfg.Tags)
}

func TestCommandErrors(t *testing.T) {
	opts := DefaultOptions("test", "a test app")
	opts.IncludePaths = []string{t.TempDir()}
	_, err := run(t, opts, "a.ppm", "b.ppm")
	assert.Error(t, err)

	_, err = run(t, opts, "--config", "missing.toml")
	assert.Error(t, err)

	_, err = run(t, opts, "--width", "wide")
	assert.Error(t, err)
}

func TestIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.toml", "Width = 5\nScale = 2.0\n")
	writeFile(t, dir, "mid.toml", "Includes = [\"base.toml\"]\nWidth = 6\nGamma = true\n")
	writeFile(t, dir, "top.toml", "Includes = [\"mid.toml\"]\nWidth = 7\n")
	opts := DefaultOptions("test", "a test app")
	opts.IncludePaths = []string{dir}

	cfg := &testConfig{}
	require.NoError(t, Open(opts, cfg, "top.toml"))
	assert.Equal(t, 7, cfg.Width)
	assert.True(t, cfg.Gamma)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, []string{"mid.toml", "base.toml"}, cfg.Includes)

	writeFile(t, dir, "bad.toml", "Includes = [\"nope.toml\"]\n")
	assert.Error(t, Open(opts, &testConfig{}, "bad.toml"))
}

func TestPositionalArgsInvalid(t *testing.T) {
	type bad struct {
		A string `posarg:"1"`
	}
	_, err := positionalArgs(&bad{})
	assert.Error(t, err)
}

func TestOpenYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.toml", "Scale = 3.0\n")
	writeFile(t, dir, "test.yaml", "includes: [base.toml]\nwidth: 9\ncorner:\n  y: 4\n")
	opts := DefaultOptions("test", "a test app")
	opts.IncludePaths = []string{dir}

	cfg := &testConfig{}
	require.NoError(t, Open(opts, cfg, "test.yaml"))
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, float32(4), cfg.Corner.Y)
	assert.Equal(t, 3.0, cfg.Scale)

	writeFile(t, dir, "bad.yml", "depth: 1\n")
	assert.Error(t, Open(opts, &testConfig{}, "bad.yml"))
}

func TestOpenHomeDir(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, "test.toml", "Width = 11\n")

	cfg := &testConfig{}
	require.NoError(t, Open(DefaultOptions("test", "a test app"), cfg, "~/test.toml"))
	assert.Equal(t, 11, cfg.Width)
}

// chdir changes the working directory to dir for the duration of the
// test, restoring it on cleanup (equivalent to testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}
