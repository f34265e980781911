// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

// Package version implements parsing and ordering of pacman version
// strings of the form [epoch:]pkgver[-pkgrel], following the alpm
// vercmp segment rules.
package version

import (
	"regexp"
	"strconv"
	"strings"
)

// segmentPattern extracts the comparable runs of a version string:
// digit runs, tilde runs, and runs of anything that is neither a digit
// nor separator punctuation. Separators (`.`, `_`) only delimit
// segments and never compare themselves.
var segmentPattern = regexp.MustCompile(`([0-9]+)|(~+)|([^0-9.~_]+)`)

type segmentKind int

const (
	segText segmentKind = iota
	segNumeric
	segTilde
)

// segment is one comparable token. Numeric segments store their digits
// with leading zeros already trimmed, so integer comparison reduces to
// length-then-lexicographic on the text.
type segment struct {
	kind segmentKind
	text string
}

// Key is one package version decomposed for comparison. Construct it
// with Parse; a Key is never mutated afterwards.
type Key struct {
	raw     string
	epoch   int
	version []segment
	release []segment
	hasRel  bool
}

// Parse decomposes a raw version string. It never fails: a missing
// epoch is 0, a non-numeric epoch degrades to 0, and any other text
// decomposes into comparable segments, so malformed versions still
// take part in the diff.
func Parse(raw string) Key {
	k := Key{raw: raw}

	rest := raw
	if idx := strings.Index(rest, ":"); idx != -1 {
		if n, err := strconv.Atoi(strings.TrimSpace(rest[:idx])); err == nil && n >= 0 {
			k.epoch = n
		}
		rest = rest[idx+1:]
	}

	// The pkgrel is everything after the last hyphen. Hyphens earlier
	// in the string belong to the pkgver.
	if idx := strings.LastIndex(rest, "-"); idx != -1 {
		k.release = segments(rest[idx+1:])
		k.hasRel = true
		rest = rest[:idx]
	}
	k.version = segments(rest)

	return k
}

// String returns the raw string the Key was parsed from.
func (k Key) String() string {
	return k.raw
}

// Epoch reports the parsed epoch, 0 when the raw string had none.
func (k Key) Epoch() int {
	return k.epoch
}

// HasRelease reports whether the raw string carried a pkgrel.
func (k Key) HasRelease() bool {
	return k.hasRel
}

// Compare returns -1, 0, or 1 as a sorts before, equal to, or after b.
// Epochs decide first, then the pkgver segments, then the pkgrel
// segments. A version without a pkgrel sorts before the same version
// with one.
func Compare(a, b Key) int {
	if a.epoch != b.epoch {
		if a.epoch < b.epoch {
			return -1
		}
		return 1
	}

	if res := compareSegments(a.version, b.version); res != 0 {
		return res
	}

	return compareSegments(a.release, b.release)
}

// Compare is the method form of the package-level Compare.
func (k Key) Compare(o Key) int {
	return Compare(k, o)
}

func segments(s string) []segment {
	runs := segmentPattern.FindAllString(s, -1)
	if len(runs) == 0 {
		// Nothing but separator punctuation.
		return nil
	}

	segs := make([]segment, 0, len(runs))
	for _, run := range runs {
		switch {
		case run[0] == '~':
			segs = append(segs, segment{kind: segTilde, text: run})
		case run[0] >= '0' && run[0] <= '9':
			segs = append(segs, segment{kind: segNumeric, text: strings.TrimLeft(run, "0")})
		default:
			segs = append(segs, segment{kind: segText, text: run})
		}
	}

	return segs
}

func compareSegments(a, b []segment) int {
	limit := max(len(a), len(b))

	for i := 0; i < limit; i++ {
		// Exhaustion: the shorter sequence is older, unless the longer
		// side continues with a tilde marker (pre-releases sort before
		// the bare version they qualify).
		if i >= len(a) {
			if b[i].kind == segTilde {
				return 1
			}
			return -1
		}
		if i >= len(b) {
			if a[i].kind == segTilde {
				return -1
			}
			return 1
		}

		sa, sb := a[i], b[i]

		// Tilde sorts before everything else.
		if sa.kind == segTilde || sb.kind == segTilde {
			if sa.kind != segTilde {
				return 1
			}
			if sb.kind != segTilde {
				return -1
			}
			continue
		}

		// Numeric beats alphabetic when the kinds differ.
		if sa.kind == segNumeric || sb.kind == segNumeric {
			if sb.kind != segNumeric {
				return 1
			}
			if sa.kind != segNumeric {
				return -1
			}
			if res := compareNumeric(sa.text, sb.text); res != 0 {
				return res
			}
			continue
		}

		if sa.text != sb.text {
			if sa.text < sb.text {
				return -1
			}
			return 1
		}
	}

	return 0
}

// compareNumeric compares two digit runs as integers. Leading zeros
// were trimmed at parse time, so the longer run is the larger number.
func compareNumeric(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
