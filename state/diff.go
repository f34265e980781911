// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package state

import (
	"errors"
	"slices"

	"github.com/mromel/jakpak/version"
)

var (
	ErrNilSet = errors.New("both a local and an archive package set are required")
)

// Verdict classifies one package name when the local set is compared
// against an archived snapshot.
type Verdict int

const (
	// Unchanged means both sets carry the same version.
	Unchanged Verdict = iota
	// Upgraded means the archived snapshot carries a newer version
	// than the one installed.
	Upgraded
	// Downgraded means the archived snapshot carries an older version
	// than the one installed.
	Downgraded
	// AddedLocally means the package is installed but absent from the
	// archived snapshot.
	AddedLocally
	// RemovedLocally means the archived snapshot carries the package
	// but it is not installed.
	RemovedLocally
)

func (v Verdict) String() string {
	switch v {
	case Unchanged:
		return "unchanged"
	case Upgraded:
		return "upgraded"
	case Downgraded:
		return "downgraded"
	case AddedLocally:
		return "added locally"
	case RemovedLocally:
		return "removed locally"
	}
	return "unknown"
}

// Diff is one row of the report. Local is nil when the package only
// exists in the archived snapshot, Archive is nil when it only exists
// locally.
type Diff struct {
	Name    string
	Local   *version.Key
	Archive *version.Key
	Verdict Verdict
}

// Changed compares the locally installed set against an archived
// snapshot and returns one row per package name from either set, in
// lexicographic name order.
func Changed(local, archive *Set) ([]Diff, error) {
	if local == nil || archive == nil {
		return nil, ErrNilSet
	}

	names := local.Names().Union(archive.Names()).ToSlice()
	slices.Sort(names)

	res := make([]Diff, 0, len(names))
	for _, name := range names {
		localKey, inLocal := local.Get(name)
		archiveKey, inArchive := archive.Get(name)

		row := Diff{Name: name}
		switch {
		case inLocal && inArchive:
			row.Local = &localKey
			row.Archive = &archiveKey
			switch cmp := version.Compare(archiveKey, localKey); {
			case cmp > 0:
				row.Verdict = Upgraded
			case cmp < 0:
				row.Verdict = Downgraded
			default:
				row.Verdict = Unchanged
			}
		case inLocal:
			row.Local = &localKey
			row.Verdict = AddedLocally
		default:
			row.Archive = &archiveKey
			row.Verdict = RemovedLocally
		}

		res = append(res, row)
	}

	return res, nil
}
