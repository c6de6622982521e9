/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyEmptySizeIsZero(t *testing.T) {
	b := NewBody()
	assert.EqualValues(t, 0, b.Size())
}

func TestBodyStringSizeAndStream(t *testing.T) {
	b := NewBodyString("hello world")
	assert.EqualValues(t, 11, b.Size())
	r, err := b.ReadStream()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
	assert.EqualValues(t, len(data), b.Size())
}

func TestBodyPromotesStringToStreamOnWrite(t *testing.T) {
	b := NewBodyString("abc")
	require.NoError(t, b.Consume([]byte("def")))
	s, err := b.ToString()
	require.NoError(t, err)
	assert.Equal(t, "abcdef", s)
}

func TestBodyWriteStreamAppendsAtEnd(t *testing.T) {
	b := NewBody()
	w, err := b.WriteStream()
	require.NoError(t, err)
	_, err = w.Write([]byte("foo"))
	require.NoError(t, err)
	_, err = w.Write([]byte("bar"))
	require.NoError(t, err)
	s, err := b.ToString()
	require.NoError(t, err)
	assert.Equal(t, "foobar", s)
}

func TestBodyFileBackedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.bin")
	b := NewBodyFile(path)

	require.NoError(t, b.Consume([]byte("file contents")))
	require.NoError(t, b.Flush())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("file contents")), fi.Size())
	assert.Equal(t, fi.Size(), b.Size())

	r, err := b.ReadStream()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(data))
	require.NoError(t, b.Close())
}

func TestBodyAssignReplacesRepresentationAtomically(t *testing.T) {
	b := NewBodyString("first")
	b.Assign("second")
	s, err := b.ToString()
	require.NoError(t, err)
	assert.Equal(t, "second", s)
}
