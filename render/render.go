// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

// Package render prints the diff report.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jwalton/gchalk"

	"github.com/mromel/jakpak/state"
	"github.com/mromel/jakpak/version"
)

type Options struct {
	// ShowUnchanged includes packages with identical versions.
	ShowUnchanged bool
	// Plain disables all color and attributes.
	Plain bool
}

// Report writes one line per diff row, in the layout of the classic
// tool: name, local version, archive version, verdict. It returns the
// number of rows written.
func Report(w io.Writer, diffs []state.Diff, opts Options) int {
	name := color.New(color.FgMagenta, color.Bold)
	local := color.New(color.FgGreen, color.Bold)
	remote := color.New(color.FgRed, color.Bold)
	heading := color.New(color.Bold)
	if opts.Plain {
		for _, c := range []*color.Color{name, local, remote, heading} {
			c.DisableColor()
		}
	}

	shown := 0
	for _, d := range diffs {
		if d.Verdict == state.Unchanged && !opts.ShowUnchanged {
			continue
		}

		fmt.Fprintf(w, "%s %s%s %s%s %s\n",
			name.Sprintf("%-30s", d.Name),
			heading.Sprint("local version: "),
			local.Sprintf("%-25s", versionOrDash(d.Local)),
			heading.Sprint("repo version: "),
			remote.Sprintf("%-25s", versionOrDash(d.Archive)),
			verdictTag(d.Verdict, opts.Plain),
		)
		shown++
	}

	return shown
}

func versionOrDash(key *version.Key) string {
	if key == nil {
		return "-"
	}
	return key.String()
}

func verdictTag(v state.Verdict, plain bool) string {
	if plain {
		return v.String()
	}
	return gchalk.Gray(v.String())
}
