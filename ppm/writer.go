// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppm implements a plain (ASCII) PPM image encoder and decoder.
//
// The encoded form is the three line header
//
//	P3
//	<width> <height>
//	255
//
// followed by one pixel per line as three decimal channel values
// separated by single spaces, in row-major order from the top row.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"cogentcore.org/raytrace/base/errors"
	"cogentcore.org/raytrace/vector"
)

// Magic is the token identifying the plain PPM format.
const Magic = "P3"

// MaxValue is the maximum channel value written by the encoder.
const MaxValue = 255

var (
	// ErrFormat is returned when decoding data that is not valid plain PPM.
	ErrFormat = errors.New("ppm: invalid format")

	// ErrPixelCount is returned when the number of pixels written
	// to an [Encoder] does not match its dimensions.
	ErrPixelCount = errors.New("ppm: pixel count does not match image size")
)

// Encoder writes a plain PPM image one pixel at a time.
// The header is written before the first pixel.
// [Encoder.Close] must be called to flush buffered output.
type Encoder struct {
	w      *bufio.Writer
	width  int
	height int

	// n is the number of pixels written so far.
	n      int
	header bool
	buf    []byte
}

// NewEncoder returns a new [Encoder] for an image of the given size.
func NewEncoder(w io.Writer, width, height int) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), width: width, height: height}
}

// WriteHeader writes the header if it has not been written yet.
func (e *Encoder) WriteHeader() error {
	if e.header {
		return nil
	}
	if e.width < 0 || e.height < 0 {
		return fmt.Errorf("ppm: negative image size %dx%d", e.width, e.height)
	}
	e.header = true
	_, err := fmt.Fprintf(e.w, "%s\n%d %d\n%d\n", Magic, e.width, e.height, MaxValue)
	return err
}

// WritePixel writes the next pixel.
func (e *Encoder) WritePixel(c vector.Color) error {
	if err := e.WriteHeader(); err != nil {
		return err
	}
	if e.n >= e.width*e.height {
		return fmt.Errorf("%w: more than %d pixels", ErrPixelCount, e.width*e.height)
	}
	e.n++
	b := e.buf[:0]
	b = strconv.AppendUint(b, uint64(c.X), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(c.Y), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(c.Z), 10)
	b = append(b, '\n')
	e.buf = b
	_, err := e.w.Write(b)
	return err
}

// Close flushes the output and returns an error wrapping
// [ErrPixelCount] if fewer pixels than width*height were written.
// It does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.WriteHeader(); err != nil {
		return err
	}
	if err := e.w.Flush(); err != nil {
		return err
	}
	if e.n != e.width*e.height {
		return fmt.Errorf("%w: wrote %d of %d pixels", ErrPixelCount, e.n, e.width*e.height)
	}
	return nil
}

// Encode writes the image m to w in plain PPM format.
// The alpha channel is discarded.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	e := NewEncoder(w, b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if err := e.WritePixel(vector.Color{X: c.R, Y: c.G, Z: c.B}); err != nil {
				return err
			}
		}
	}
	return e.Close()
}
