// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/raytrace/base/iox/imagex"
	"cogentcore.org/raytrace/cli"
	"cogentcore.org/raytrace/ppm"
	"cogentcore.org/raytrace/render"
	"cogentcore.org/raytrace/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) *Config {
	t.Helper()
	opts := cli.DefaultOptions("raytrace", "test")
	opts.Fatal = false
	opts.IncludePaths = []string{"."}
	var got *Config
	cmd, err := cli.Command(opts, newConfig(), func(c *Config) error {
		got = c
		return run(c)
	})
	require.NoError(t, err)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return got
}

func imageRGBA(t *testing.T, img image.Image) *image.RGBA {
	t.Helper()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	c := execute(t, "-q")
	assert.Equal(t, "image.ppm", c.Output)
	assert.Equal(t, render.DefaultCamera(), c.Camera)

	b, err := os.ReadFile("image.ppm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "P3\n400 300\n255\n"))
	assert.Equal(t, 3+400*300, strings.Count(string(b), "\n"))
}

func TestFlagsAndFormats(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	execute(t, "-q", "--width", "16", "--height", "8", "--gradient-top-z", "0.5", "small.png")

	img, f, err := imagex.Open(filepath.Join(dir, "small.png"))
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	o := render.DefaultOptions()
	o.Width, o.Height = 16, 8
	o.Gradient.Top.Z = 0.5
	want, err := render.Render(o)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, imageRGBA(t, img).Pix)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfg := "Output = \"sky.ppm\"\nWidth = 4\nHeight = 2\nGamma = true\n\n[Camera.Origin]\nX = 0.5\n"
	require.NoError(t, os.WriteFile("raytrace.toml", []byte(cfg), 0666))
	c := execute(t, "-q", "--height", "3")
	assert.Equal(t, 4, c.Width)
	assert.Equal(t, 3, c.Height)
	assert.True(t, c.Gamma)
	assert.Equal(t, vector.Vec3[float32](0.5, 0, 0), c.Camera.Origin)
	assert.Equal(t, render.DefaultCamera().LowerLeft, c.Camera.LowerLeft)

	fh, err := os.Open("sky.ppm")
	require.NoError(t, err)
	defer fh.Close()
	img, err := ppm.Decode(fh)
	require.NoError(t, err)
	want, err := render.Render(c.Options())
	require.NoError(t, err)
	assert.Equal(t, want.Pix, imageRGBA(t, img).Pix)
}

func TestInvalidSize(t *testing.T) {
	chdir(t, t.TempDir())
	c := newConfig()
	c.Output = "bad.ppm"
	c.Quiet = true
	assert.Error(t, run(c))
	_, err := os.Stat("bad.ppm")
	assert.True(t, os.IsNotExist(err))
}

func TestReload(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("base.toml", []byte("Width = 3\nHeight = 5\n"), 0666))
	require.NoError(t, os.WriteFile("sky.toml", []byte("Includes = [\"base.toml\"]\nHeight = 2\n"), 0666))

	c := newConfig()
	c.Width, c.Height = 8, 8
	c.Includes = make([]string, 1, 4)
	c.Includes[0] = "start.toml"

	nc, err := reload(c, "sky.toml")
	require.NoError(t, err)
	assert.Equal(t, 3, nc.Width)
	assert.Equal(t, 2, nc.Height)
	assert.Equal(t, []string{"base.toml"}, nc.Includes)

	assert.Equal(t, 8, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, []string{"start.toml"}, c.Includes)

	_, err = reload(c, "missing.toml")
	assert.Error(t, err)
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
