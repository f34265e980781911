// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

// Package localdb reads the pacman local database: one directory per
// installed package under <dbpath>/local, each holding a desc file
// with %KEY% stanzas.
package localdb

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DataDrake/waterlog"
	"github.com/charlievieth/fastwalk"

	"github.com/mromel/jakpak/utils"
)

const DefaultRoot = "/var/lib/pacman"

// Read walks the local database and returns installed package names
// mapped to their raw version strings.
func Read(root string) (map[string]string, error) {
	localDir := filepath.Join(root, "local")
	if !utils.PathExists(localDir) {
		return nil, fmt.Errorf("no local package database at %s", localDir)
	}

	walkConf := fastwalk.Config{
		Follow: false,
	}
	var mutex sync.Mutex
	pkgs := make(map[string]string)

	err := fastwalk.Walk(&walkConf, localDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			// Files at the top level, e.g. ALPM_DB_VERSION.
			return nil
		}
		if path == localDir {
			return nil
		}

		descFile := filepath.Join(path, "desc")
		if !utils.PathExists(descFile) {
			return filepath.SkipDir
		}

		raw, err := os.Open(descFile)
		if err != nil {
			return err
		}
		defer raw.Close()

		name, ver, err := ParseDesc(raw)
		if err != nil {
			waterlog.Warnf("Skipping %s: %s\n", filepath.Base(path), err)
			return filepath.SkipDir
		}

		mutex.Lock()
		pkgs[name] = ver
		mutex.Unlock()

		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}

	return pkgs, nil
}

// ParseDesc extracts the %NAME% and %VERSION% stanzas from a desc
// file. The same format is used by the local database and by the
// per-package entries of a repository db tarball.
func ParseDesc(r io.Reader) (name string, ver string, err error) {
	scanner := bufio.NewScanner(r)
	var section string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			section = ""
			continue
		}
		if strings.HasPrefix(line, "%") && strings.HasSuffix(line, "%") {
			section = line
			continue
		}

		switch section {
		case "%NAME%":
			name = line
		case "%VERSION%":
			ver = line
		}
		if name != "" && ver != "" {
			return name, ver, nil
		}
	}
	if err = scanner.Err(); err != nil {
		return "", "", err
	}

	if name == "" {
		return "", "", fmt.Errorf("desc entry has no %%NAME%% stanza")
	}
	return "", "", fmt.Errorf("desc entry for %s has no %%VERSION%% stanza", name)
}
