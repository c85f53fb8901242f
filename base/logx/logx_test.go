// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	l := NewLogger(b, slog.LevelInfo)

	l.Debug("this is debug")
	assert.Empty(t, b.String())

	l.Info("rendering", "width", 400, "height", 300)
	assert.Equal(t, "INFO rendering width=400 height=300\n", b.String())

	b.Reset()
	l.With("file", "image.ppm").WithGroup("px").Warn("short", "n", 3)
	assert.Equal(t, "WARN short file=image.ppm px.n=3\n", b.String())

	b.Reset()
	l.Error("failed", slog.Group("size", "w", 1, "h", 2))
	assert.Equal(t, "ERROR failed size.w=1 size.h=2\n", b.String())
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
