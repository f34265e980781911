// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"runtime/debug"

	"github.com/DataDrake/waterlog"
	"github.com/DataDrake/waterlog/format"
	"github.com/spf13/cobra"
)

var (
	GitCommit = func() string {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					return setting.Value
				}
			}
		}
		return ""
	}()

	rootCmd = &cobra.Command{
		Use:   "jakpak",
		Short: "Compare installed packages against historical repository snapshots.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			waterlog.SetFormat(format.Min)
			if quiet {
				waterlog.SetLevel(0)
			} else if verbose {
				waterlog.SetLevel(7)
			} else {
				waterlog.SetLevel(6)
			}
		},
		Version: "1.0.0+" + GitCommit,
	}
)

func init() {
	rootCmd.AddCommand(cmdDiff)
	rootCmd.AddCommand(cmdVercmp)
	rootCmd.AddCommand(cmdRepos)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

func Execute() {
	rootCmd.Execute()
}
