// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

// Package archive fetches repository snapshots from an Arch Rollback
// Machine style mirror, which exposes daily captures of each
// repository under <base>/<YYYY>/<MM>/<DD>/<repo>/os/<arch>/.
package archive

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/DataDrake/waterlog"
	"github.com/zeebo/blake3"
)

const (
	DefaultBaseURL = "https://archive.archlinux.org/repos"

	defaultTimeout = 60 * time.Second
)

var (
	// ErrSnapshotUnavailable means the mirror has no capture for the
	// requested date and repository.
	ErrSnapshotUnavailable = errors.New("no snapshot for that date and repository")
)

// Date is the calendar day of the requested snapshot.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate validates a DD-MM-YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected DD-MM-YYYY: %w", s, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Client talks to one archive mirror. CacheDir, when set, holds the
// bodies of previous fetches; archived snapshots never change, so
// cached bodies never expire.
type Client struct {
	BaseURL  string
	CacheDir string
	NoCache  bool

	http *http.Client
}

func NewClient(baseURL, cacheDir string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:  baseURL,
		CacheDir: cacheDir,
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) snapshotURL(date Date, repo, arch string) string {
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s/os/%s/",
		c.BaseURL, date.Year, date.Month, date.Day, repo, arch)
}

// get fetches one URL, consulting and filling the body cache.
func (c *Client) get(url string) ([]byte, error) {
	cacheFile := c.cachePath(url)
	if cacheFile != "" && !c.NoCache {
		if body, err := os.ReadFile(cacheFile); err == nil {
			waterlog.Debugf("Cache hit for %s\n", url)
			return body, nil
		}
	}

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to reach archive mirror: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotUnavailable, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive mirror returned %s for %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read archive response: %w", err)
	}

	if cacheFile != "" && !c.NoCache {
		if err := os.MkdirAll(filepath.Dir(cacheFile), 0o755); err == nil {
			if err := os.WriteFile(cacheFile, body, 0o644); err != nil {
				waterlog.Debugf("Unable to cache %s: %s\n", url, err)
			}
		}
	}

	return body, nil
}

func (c *Client) cachePath(url string) string {
	if c.CacheDir == "" {
		return ""
	}
	sum := blake3.Sum256([]byte(url))
	return filepath.Join(c.CacheDir, hex.EncodeToString(sum[:]))
}
