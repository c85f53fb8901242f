// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

func init() {
	image.RegisterFormat("ppm", Magic, Decode, DecodeConfig)
}

// maxPixels bounds the image size accepted by the decoder.
const maxPixels = 1 << 28

type decoder struct {
	r      *bufio.Reader
	width  int
	height int
	maxval int
}

// token returns the next whitespace separated token, skipping
// comments that run from '#' to the end of the line.
func (d *decoder) token() (string, error) {
	var tok []byte
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch {
		case c == '#':
			if _, err := d.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(tok) > 0 {
				return string(tok), nil
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func (d *decoder) number(name string, lo, hi int) (int, error) {
	tok, err := d.token()
	if err != nil {
		return 0, fmt.Errorf("ppm: reading %s: %w", name, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: bad %s %q", ErrFormat, name, tok)
	}
	return v, nil
}

func (d *decoder) header() error {
	magic, err := d.token()
	if err != nil {
		return fmt.Errorf("ppm: reading magic: %w", err)
	}
	if magic != Magic {
		return fmt.Errorf("%w: magic %q is not %q", ErrFormat, magic, Magic)
	}
	if d.width, err = d.number("width", 0, maxPixels); err != nil {
		return err
	}
	if d.height, err = d.number("height", 0, maxPixels); err != nil {
		return err
	}
	if d.width*d.height > maxPixels {
		return fmt.Errorf("%w: image size %dx%d too large", ErrFormat, d.width, d.height)
	}
	d.maxval, err = d.number("max value", 1, MaxValue)
	return err
}

// DecodeConfig returns the color model and dimensions of a plain PPM
// image without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := &decoder{r: bufio.NewReader(r)}
	if err := d.header(); err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: d.width, Height: d.height}, nil
}

// Decode reads a plain PPM image from r and returns it as an [*image.RGBA].
// Samples are rescaled to the 0-255 range when the max value is smaller.
func Decode(r io.Reader) (image.Image, error) {
	d := &decoder{r: bufio.NewReader(r)}
	if err := d.header(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v, err := d.number("sample", 0, d.maxval)
			if err != nil {
				return nil, err
			}
			img.Pix[i+c] = uint8((v*MaxValue + d.maxval/2) / d.maxval)
		}
		img.Pix[i+3] = 0xff
	}
	return img, nil
}
