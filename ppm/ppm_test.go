// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/raytrace/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	b := &bytes.Buffer{}
	e := NewEncoder(b, 2, 1)
	require.NoError(t, e.WritePixel(vector.Color{X: 255, Y: 0, Z: 7}))
	require.NoError(t, e.WritePixel(vector.Color{X: 1, Y: 22, Z: 133}))
	require.NoError(t, e.Close())
	assert.Equal(t, "P3\n2 1\n255\n255 0 7\n1 22 133\n", b.String())

	assert.ErrorIs(t, e.WritePixel(vector.Color{}), ErrPixelCount)
}

func TestEncoderShort(t *testing.T) {
	b := &bytes.Buffer{}
	e := NewEncoder(b, 2, 2)
	require.NoError(t, e.WritePixel(vector.Color{}))
	assert.ErrorIs(t, e.Close(), ErrPixelCount)
	assert.Equal(t, "P3\n2 2\n255\n0 0 0\n", b.String())

	assert.Error(t, NewEncoder(b, -1, 2).Close())
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(2, 0, color.RGBA{10, 20, 30, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})

	b := &bytes.Buffer{}
	require.NoError(t, Encode(b, img))
	want := "P3\n3 2\n255\n" +
		"255 255 255\n0 0 0\n10 20 30\n" +
		"0 0 0\n0 0 255\n0 0 0\n"
	assert.Equal(t, want, b.String())

	got, err := Decode(b)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := img.RGBAAt(x, y)
			c.A = 255
			assert.Equal(t, c, got.(*image.RGBA).RGBAAt(x, y))
		}
	}
}

func TestDecode(t *testing.T) {
	src := "P3 # plain ppm\n# size\n2 1\n15\n15 0 7\t0  15\n  3\n"
	img, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	rgba := img.(*image.RGBA)
	assert.Equal(t, image.Rect(0, 0, 2, 1), rgba.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 119, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 51, 255}, rgba.RGBAAt(1, 0))

	cfg, err := DecodeConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 1, cfg.Height)

	img, format, err := image.Decode(strings.NewReader("P3\n1 1\n255\n1 2 3"))
	require.NoError(t, err)
	assert.Equal(t, "ppm", format)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, img.(*image.RGBA).RGBAAt(0, 0))
}

func TestDecodeErrors(t *testing.T) {
	bad := []string{
		"P6\n1 1\n255\n",
		"P3\n-1 1\n255\n",
		"P3\n1 1\n256\n1 2 3\n",
		"P3\n1 1\n0\n",
		"P3\n1 1\n255\n1 2 300\n",
		"P3\nx 1\n255\n",
	}
	for _, s := range bad {
		_, err := Decode(strings.NewReader(s))
		assert.ErrorIs(t, err, ErrFormat, s)
	}

	_, err := Decode(strings.NewReader("P3\n2 1\n255\n1 2 3\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFormat)
}
