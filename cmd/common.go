// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"path/filepath"
	"runtime"
)

var (
	quiet   bool
	verbose bool
)

// knownRepos is the repository list the archive captures daily.
var knownRepos = []string{
	"community",
	"community-staging",
	"community-testing",
	"core",
	"extra",
	"gnome-unstable",
	"kde-unstable",
	"multilib",
	"multilib-staging",
	"multilib-testing",
	"staging",
	"testing",
}

// hostArch maps the running binary's architecture to the name the
// archive uses in its snapshot paths.
func hostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}

// defaultCacheDir resolves the listing cache location, empty when the
// user cache directory cannot be determined (caching then stays off).
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jakpak")
}
