// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// Listing fetches the snapshot's directory index and returns package
// names mapped to their raw version strings (ver-rel, with the epoch
// prefix when present).
func (c *Client) Listing(date Date, repo, arch string) (map[string]string, error) {
	body, err := c.get(c.snapshotURL(date, repo, arch))
	if err != nil {
		return nil, err
	}
	return parseListing(bytes.NewReader(body))
}

func parseListing(r *bytes.Reader) (map[string]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse archive index: %w", err)
	}

	pkgs := make(map[string]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if name, ver, ok := splitFilename(attr.Val); ok {
					pkgs[name] = ver
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return pkgs, nil
}

// splitFilename splits an index entry like
// "zlib-1%3A1.3-2-x86_64.pkg.tar.zst" into the package name and its
// "epoch:ver-rel" version. Signature files, db tarballs, and anything
// else that is not a package file are rejected.
func splitFilename(href string) (name string, ver string, ok bool) {
	if strings.HasSuffix(href, ".sig") {
		return "", "", false
	}

	// Mirrors percent-encode the epoch colon and any plus signs.
	unescaped, err := url.PathUnescape(href)
	if err != nil {
		unescaped = strings.NewReplacer("%3a", ":", "%3A", ":", "%2b", "+", "%2B", "+").Replace(href)
	}

	base := path.Base(unescaped)
	idx := strings.Index(base, ".pkg.tar")
	if idx < 0 {
		return "", "", false
	}

	// name-epoch:ver-rel-arch, where the name itself may contain
	// hyphens. The last three hyphen-separated fields are fixed.
	fields := strings.Split(base[:idx], "-")
	if len(fields) < 4 {
		return "", "", false
	}

	name = strings.Join(fields[:len(fields)-3], "-")
	ver = fields[len(fields)-3] + "-" + fields[len(fields)-2]
	if name == "" {
		return "", "", false
	}
	return name, ver, true
}
