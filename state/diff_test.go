// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanged(t *testing.T) {
	local := Build(map[string]string{
		"foo": "1.0-1",
		"bar": "2.0-1",
	}, "local")
	archive := Build(map[string]string{
		"foo": "1.1-1",
		"baz": "1.0-1",
	}, "2014-03-01/core")

	diffs, err := Changed(local, archive)
	require.NoError(t, err)
	require.Len(t, diffs, 3)

	assert.Equal(t, "bar", diffs[0].Name)
	assert.Equal(t, AddedLocally, diffs[0].Verdict)
	require.NotNil(t, diffs[0].Local)
	assert.Nil(t, diffs[0].Archive)
	assert.Equal(t, "2.0-1", diffs[0].Local.String())

	assert.Equal(t, "baz", diffs[1].Name)
	assert.Equal(t, RemovedLocally, diffs[1].Verdict)
	assert.Nil(t, diffs[1].Local)
	require.NotNil(t, diffs[1].Archive)

	assert.Equal(t, "foo", diffs[2].Name)
	assert.Equal(t, Upgraded, diffs[2].Verdict)
}

func TestChangedIdentical(t *testing.T) {
	local := Build(map[string]string{"foo": "1.0-1"}, "local")
	archive := Build(map[string]string{"foo": "1.0-1"}, "archive")

	diffs, err := Changed(local, archive)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "foo", diffs[0].Name)
	assert.Equal(t, Unchanged, diffs[0].Verdict)
}

func TestChangedDowngrade(t *testing.T) {
	local := Build(map[string]string{"foo": "2.0-1"}, "local")
	archive := Build(map[string]string{"foo": "1.9-1"}, "archive")

	diffs, err := Changed(local, archive)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, Downgraded, diffs[0].Verdict)
}

func TestChangedNilSet(t *testing.T) {
	set := Build(nil, "local")

	_, err := Changed(nil, set)
	assert.ErrorIs(t, err, ErrNilSet)

	_, err = Changed(set, nil)
	assert.ErrorIs(t, err, ErrNilSet)
}

// The verdict sequence must cover the union of both name sets exactly
// once, sorted by name.
func TestChangedCompleteness(t *testing.T) {
	local := Build(map[string]string{
		"zlib": "1.3-1", "acl": "2.3.1-2", "pacman": "6.0.2-7",
	}, "local")
	archive := Build(map[string]string{
		"zlib": "1.2.13-2", "bash": "5.2.015-1", "pacman": "6.0.2-7",
	}, "archive")

	diffs, err := Changed(local, archive)
	require.NoError(t, err)

	var names []string
	for _, d := range diffs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"acl", "bash", "pacman", "zlib"}, names)
	assert.True(t, local.Names().Union(archive.Names()).Equal(
		archive.Names().Union(local.Names())))
}

func TestSetAccessors(t *testing.T) {
	set := Build(map[string]string{"foo": "1.0-1"}, "local")

	assert.Equal(t, "local", set.Label())
	assert.Equal(t, 1, set.Len())

	key, ok := set.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "1.0-1", key.String())

	_, ok = set.Get("bar")
	assert.False(t, ok)
}
