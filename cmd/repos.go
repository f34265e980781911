// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cmdRepos = &cobra.Command{
		Use:   "repos",
		Short: "List the repositories the archive snapshots daily",
		Run:   runRepos,
		Args:  cobra.NoArgs,
	}
)

func runRepos(cmd *cobra.Command, args []string) {
	for _, repo := range knownRepos {
		fmt.Println(repo)
	}
}
