// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command raytrace renders a background gradient image
// as seen through a pinhole camera.
package main

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/raytrace/base/errors"
	"cogentcore.org/raytrace/base/iox/imagex"
	"cogentcore.org/raytrace/base/logx"
	"cogentcore.org/raytrace/cli"
	"cogentcore.org/raytrace/render"
	"github.com/mitchellh/go-homedir"
)

// Version is the version of the raytrace command.
var Version = "v0.1.0"

// Config is the configuration of the raytrace command.
type Config struct {

	// Output is the file to write the image to. Its extension
	// selects the format; .ppm output is streamed as it renders.
	Output string `posarg:"0" default:"image.ppm"`

	// Width is the image width in pixels.
	Width int `default:"400" desc:"image width in pixels"`

	// Height is the image height in pixels.
	Height int `default:"300" desc:"image height in pixels"`

	// Gamma applies a gamma 2 correction to the output colors.
	Gamma bool `desc:"apply gamma 2 correction"`

	Camera render.Camera

	Gradient render.Gradient

	// Watch is a config file to watch after rendering. Each time
	// it changes, it is read on top of this config and the image
	// is rendered again, until the program is interrupted.
	Watch string `desc:"config file to watch, re-rendering when it changes"`

	// Includes are other config files to read first.
	Includes []string `flag:"-"`

	// Debug enables debug logging.
	Debug bool `desc:"enable debug logging"`

	// Verbose enables informational logging.
	Verbose bool `flag:"v,verbose" desc:"enable verbose logging"`

	// Quiet only logs errors.
	Quiet bool `flag:"q,quiet" desc:"only log errors"`
}

// IncludesPtr returns a pointer to the Includes field, for [cli.Open].
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// newConfig returns a config with the default camera and gradient,
// which have no default tags of their own.
func newConfig() *Config {
	o := render.DefaultOptions()
	return &Config{Camera: o.Camera, Gradient: o.Gradient}
}

// Options returns the render options for the config.
func (c *Config) Options() render.Options {
	return render.Options{Width: c.Width, Height: c.Height, Gamma: c.Gamma, Camera: c.Camera, Gradient: c.Gradient}
}

func options() *cli.Options {
	opts := cli.DefaultOptions("raytrace", "Raytrace renders a sky gradient image.")
	opts.Version = Version
	return opts
}

func main() {
	cli.Run(options(), newConfig(), run)
}

func run(c *Config) error {
	logx.UserLevel = logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()

	if err := save(c); err != nil {
		return err
	}
	if c.Watch == "" {
		return nil
	}
	file, err := homedir.Expand(c.Watch)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching config", "file", file)
	return watch(ctx, file, func() error {
		nc, err := reload(c, file)
		if err != nil {
			return err
		}
		return save(nc)
	})
}

// reload returns a copy of c with the given config file read on top
// of it. c itself is not modified.
func reload(c *Config, file string) (*Config, error) {
	nc := *c
	nc.Includes = slices.Clone(c.Includes)
	if err := cli.Open(options(), &nc, file); err != nil {
		return nil, err
	}
	return &nc, nil
}

// save renders the image described by c and writes it to c.Output.
func save(c *Config) error {
	o := c.Options()
	if err := o.Validate(); err != nil {
		return err
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(out), ".ppm") {
		if err := writePPM(out, o); err != nil {
			return err
		}
	} else {
		img, err := render.Render(o)
		if err != nil {
			return err
		}
		if err := imagex.Save(img, out); err != nil {
			return err
		}
	}
	slog.Info("wrote image", "file", out, "width", o.Width, "height", o.Height)
	return nil
}

func writePPM(filename string, o render.Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = render.WritePPM(bw, o)
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, f.Close())
}
