// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"cogentcore.org/raytrace/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Width  int
	Height int
	Gamma  bool
	Top    vector.Vector3f
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	s := &testStruct{Width: 400, Height: 300, Gamma: true, Top: vector.Vec3[float32](0.5, 0.7, 1)}
	require.NoError(t, Save(s, fn))

	got := &testStruct{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, s, got)

	assert.Error(t, Open(got, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestRead(t *testing.T) {
	got := &testStruct{Height: 7}
	require.NoError(t, ReadBytes(got, []byte("width: 3\ntop:\n  x: 1.5\n")))
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 7, got.Height)
	assert.Equal(t, float32(1.5), got.Top.X)

	require.NoError(t, ReadBytes(got, nil))
	assert.Equal(t, 3, got.Width)

	assert.Error(t, ReadBytes(got, []byte("depth: 3\n")))

	b, err := WriteBytes(&testStruct{Width: 9})
	require.NoError(t, err)
	assert.Contains(t, string(b), "width: 9")
}
