// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func repoDBTar(t *testing.T, pkgs map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for name, ver := range pkgs {
		dir := fmt.Sprintf("%s-%s", name, ver)
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dir + "/",
			Typeflag: tar.TypeDir,
			Mode:     0o755,
		}))
		desc := fmt.Sprintf("%%FILENAME%%\n%s-x86_64.pkg.tar.xz\n\n%%NAME%%\n%s\n\n%%VERSION%%\n%s\n", dir, name, ver)
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     dir + "/desc",
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(desc)),
		}))
		_, err := tw.Write([]byte(desc))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func TestParseRepoDBGzip(t *testing.T) {
	raw := repoDBTar(t, map[string]string{"zlib": "1:1.2.8-3", "acl": "2.2.52-2"})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	pkgs, err := parseRepoDB(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"zlib": "1:1.2.8-3", "acl": "2.2.52-2"}, pkgs)
}

func TestParseRepoDBXz(t *testing.T) {
	raw := repoDBTar(t, map[string]string{"bash": "5.2.015-1"})

	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = xw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	pkgs, err := parseRepoDB(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bash": "5.2.015-1"}, pkgs)
}

func TestParseRepoDBPlainTar(t *testing.T) {
	raw := repoDBTar(t, map[string]string{"pacman": "6.0.2-7"})

	pkgs, err := parseRepoDB(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pacman": "6.0.2-7"}, pkgs)
}

func TestRepoDB(t *testing.T) {
	raw := repoDBTar(t, map[string]string{"zlib": "1:1.2.8-3"})

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(raw)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	pkgs, err := client.RepoDB(Date{Year: 2014, Month: 3, Day: 1}, "core", "x86_64")
	require.NoError(t, err)
	assert.Equal(t, "/2014/03/01/core/os/x86_64/core.db", gotPath)
	assert.Equal(t, map[string]string{"zlib": "1:1.2.8-3"}, pkgs)
}
