// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mromel/jakpak/version"
)

var (
	cmdVercmp = &cobra.Command{
		Use:   "vercmp <ver1> <ver2>",
		Short: "Compare two package version strings",
		Long: `Compare two package version strings and print -1, 0, or 1 as the first
sorts before, equal to, or after the second.`,
		Run:  runVercmp,
		Args: cobra.ExactArgs(2),
	}
)

func runVercmp(cmd *cobra.Command, args []string) {
	fmt.Println(version.Compare(version.Parse(args[0]), version.Parse(args[1])))
}
