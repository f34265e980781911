// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/DataDrake/waterlog"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/mromel/jakpak/localdb"
)

// RepoDB fetches the snapshot's <repo>.db tarball and reads the
// per-package desc entries. It yields the same name to version mapping
// as Listing; use it against mirrors whose index pages cannot be
// parsed.
func (c *Client) RepoDB(date Date, repo, arch string) (map[string]string, error) {
	url := c.snapshotURL(date, repo, arch) + repo + ".db"
	body, err := c.get(url)
	if err != nil {
		return nil, err
	}
	return parseRepoDB(bytes.NewReader(body))
}

func parseRepoDB(r *bytes.Reader) (map[string]string, error) {
	decompressed, err := decompress(r)
	if err != nil {
		return nil, err
	}

	pkgs := make(map[string]string)
	tr := tar.NewReader(decompressed)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read repo db tarball: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || path.Base(hdr.Name) != "desc" {
			continue
		}

		name, ver, err := localdb.ParseDesc(tr)
		if err != nil {
			waterlog.Warnf("Skipping db entry %s: %s\n", hdr.Name, err)
			continue
		}
		pkgs[name] = ver
	}

	return pkgs, nil
}

// decompress sniffs the magic bytes of a repo db, which mirrors have
// served gzip, xz, or zstd compressed over the years.
func decompress(r *bytes.Reader) (io.Reader, error) {
	magic := make([]byte, 6)
	n, _ := r.Read(magic)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	magic = magic[:n]

	switch {
	case len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("unable to open gzip repo db: %w", err)
		}
		return zr, nil
	case len(magic) >= 6 && bytes.Equal(magic, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}):
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("unable to open xz repo db: %w", err)
		}
		return xr, nil
	case len(magic) >= 4 && bytes.Equal(magic[:4], []byte{0x28, 0xb5, 0x2f, 0xfd}):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("unable to open zstd repo db: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		// Uncompressed tar.
		return r, nil
	}
}
