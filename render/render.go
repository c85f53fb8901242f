// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render maps pixels to camera rays and shades each ray
// with a vertical background gradient.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"cogentcore.org/raytrace/ppm"
	"cogentcore.org/raytrace/ray"
	"cogentcore.org/raytrace/vector"
	"github.com/chewxy/math32"
)

// Camera is a pinhole camera: the image plane is the parallelogram
// spanned by Horizontal and Vertical from LowerLeft, seen from Origin.
type Camera struct {
	Origin     vector.Vector3f
	LowerLeft  vector.Vector3f
	Horizontal vector.Vector3f
	Vertical   vector.Vector3f
}

// DefaultCamera returns a camera at the origin looking at a
// 4x2 image plane with its lower left corner at (-2, -1, 1).
func DefaultCamera() Camera {
	return Camera{
		LowerLeft:  vector.Vec3[float32](-2, -1, 1),
		Horizontal: vector.Vec3[float32](4, 0, 0),
		Vertical:   vector.Vec3[float32](0, 2, 0),
	}
}

// Ray returns the ray through the image plane at normalized
// coordinates (u, v), where (0, 0) is the lower left corner.
func (c Camera) Ray(u, v float32) ray.Ray {
	dir := c.LowerLeft.Add(c.Horizontal.MulScalar(u)).Add(c.Vertical.MulScalar(v)).Sub(c.Origin)
	return ray.New(c.Origin, dir)
}

// Gradient is a background that blends linearly from Bottom
// (rays pointing straight down) to Top (rays pointing straight up).
type Gradient struct {
	Bottom vector.Vector3f
	Top    vector.Vector3f
}

// DefaultGradient returns a white to light blue sky gradient.
func DefaultGradient() Gradient {
	return Gradient{
		Bottom: vector.Vec3[float32](1, 1, 1),
		Top:    vector.Vec3[float32](0.5, 0.7, 1),
	}
}

// Color returns the linear color seen along r. The direction
// of r must be non-zero.
func (g Gradient) Color(r ray.Ray) vector.Vector3f {
	d := r.Dir.Normal()
	t := 0.5 * (d.Y + 1)
	return g.Bottom.MulScalar(1 - t).Add(g.Top.MulScalar(t))
}

// ToColor converts a linear color with components in [0, 1] to a
// display color, optionally applying a gamma 2 correction.
// Components outside of [0, 1] saturate.
func ToColor(c vector.Vector3f, gamma bool) vector.Color {
	if gamma {
		c = vector.Vec3(math32.Sqrt(math32.Max(c.X, 0)), math32.Sqrt(math32.Max(c.Y, 0)), math32.Sqrt(math32.Max(c.Z, 0)))
	}
	return vector.ConvertClamp[uint8](c.MulScalar(255.99))
}

// Options are the parameters of a render.
type Options struct {
	Width    int
	Height   int
	Gamma    bool
	Camera   Camera
	Gradient Gradient
}

// DefaultOptions returns the options for a 400x300 render
// with the default camera and gradient.
func DefaultOptions() Options {
	return Options{Width: 400, Height: 300, Camera: DefaultCamera(), Gradient: DefaultGradient()}
}

// Validate returns an error if the options cannot be rendered.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: image size must be positive, not %dx%d", o.Width, o.Height)
	}
	return nil
}

// Pixels computes every pixel in top to bottom, left to right order,
// calling fn with the image coordinates (row 0 is the top) and color.
// It stops at the first error returned by fn.
func Pixels(o Options, fn func(x, y int, c vector.Color) error) error {
	if err := o.Validate(); err != nil {
		return err
	}
	w, h := float32(o.Width), float32(o.Height)
	for y := o.Height - 1; y >= 0; y-- {
		for x := 0; x < o.Width; x++ {
			r := o.Camera.Ray(float32(x)/w, float32(y)/h)
			c := ToColor(o.Gradient.Color(r), o.Gamma)
			if err := fn(x, o.Height-1-y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render renders the image described by o.
func Render(o Options) (*image.RGBA, error) {
	slog.Debug("rendering", "width", o.Width, "height", o.Height, "gamma", o.Gamma)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	err := Pixels(o, func(x, y int, c vector.Color) error {
		img.SetRGBA(x, y, color.RGBA{c.X, c.Y, c.Z, 0xff})
		return nil
	})
	return img, err
}

// WritePPM renders the image described by o directly to w in
// plain PPM format, without holding the image in memory.
func WritePPM(w io.Writer, o Options) error {
	slog.Debug("rendering ppm", "width", o.Width, "height", o.Height, "gamma", o.Gamma)
	if err := o.Validate(); err != nil {
		return err
	}
	e := ppm.NewEncoder(w, o.Width, o.Height)
	err := Pixels(o, func(x, y int, c vector.Color) error {
		return e.WritePixel(c)
	})
	if err != nil {
		return err
	}
	return e.Close()
}
