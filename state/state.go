// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

// Package state holds the immutable package sets the diff operates on
// and the diff itself.
package state

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mromel/jakpak/version"
)

// Set is one name to version mapping plus a label identifying where it
// came from ("local", or the archive date/repository). Build parses
// every raw version once; the Set never changes afterwards.
type Set struct {
	label string
	pkgs  map[string]version.Key
}

// Build constructs a Set from a flat name to raw-version listing.
// Version parsing never fails, so neither does Build.
func Build(entries map[string]string, label string) *Set {
	pkgs := make(map[string]version.Key, len(entries))
	for name, raw := range entries {
		pkgs[name] = version.Parse(raw)
	}

	return &Set{
		label: label,
		pkgs:  pkgs,
	}
}

// Get looks up the version for a package name.
func (s *Set) Get(name string) (version.Key, bool) {
	key, ok := s.pkgs[name]
	return key, ok
}

// Names returns the set of package names.
func (s *Set) Names() mapset.Set[string] {
	names := mapset.NewThreadUnsafeSetWithSize[string](len(s.pkgs))
	for name := range s.pkgs {
		names.Add(name)
	}
	return names
}

// Label returns the label the Set was built with.
func (s *Set) Label() string {
	return s.label
}

// Len returns the number of packages in the Set.
func (s *Set) Len() int {
	return len(s.pkgs)
}
