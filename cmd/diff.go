// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/DataDrake/waterlog"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mromel/jakpak/archive"
	"github.com/mromel/jakpak/config"
	"github.com/mromel/jakpak/localdb"
	"github.com/mromel/jakpak/render"
	"github.com/mromel/jakpak/state"
	"github.com/mromel/jakpak/utils"
)

var (
	dateFlag   string
	repoFlag   string
	archFlag   string
	mirrorFlag string
	dbPathFlag string
	useRepoDB  bool
	noCache    bool
	showAll    bool
	plain      bool

	cmdDiff = &cobra.Command{
		Use:   "diff",
		Short: "Diff the installed packages against a repository snapshot at a given date",
		Long: `Diff the installed packages against the packages a repository held on
the given date, as captured by the archive.

For example: jakpak diff -d 01-03-2014 -r core`,
		Run: runDiff,
	}
)

func init() {
	cmdDiff.Flags().StringVarP(&dateFlag, "date", "d", "", "date of the snapshot to compare against, DD-MM-YYYY")
	cmdDiff.MarkFlagRequired("date")
	cmdDiff.Flags().StringVarP(&repoFlag, "repository", "r", "", "repository to compare, e.g. core or extra")
	cmdDiff.Flags().StringVar(&archFlag, "arch", "", "architecture of the snapshot (default: detected)")
	cmdDiff.Flags().StringVar(&mirrorFlag, "mirror", "", "base URL of the archive mirror")
	cmdDiff.Flags().StringVar(&dbPathFlag, "dbpath", localdb.DefaultRoot, "path to the pacman database root")
	cmdDiff.Flags().BoolVar(&useRepoDB, "db", false, "read the snapshot's repo db tarball instead of the index page")
	cmdDiff.Flags().BoolVar(&noCache, "no-cache", false, "do not read or write the listing cache")
	cmdDiff.Flags().BoolVarP(&showAll, "all", "a", false, "also show unchanged packages")
	cmdDiff.Flags().BoolVar(&plain, "plain", false, "plain output without color")
}

func runDiff(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadDefault()
	if err != nil {
		waterlog.Warnf("Unable to read config file: %s\n", err)
	}

	repo := utils.FirstNonEmpty(repoFlag, cfg.Repository)
	if repo == "" {
		waterlog.Fatalln("No repository given. Pass one with -r or set it in the config file.")
	}

	date, err := archive.ParseDate(dateFlag)
	if err != nil {
		waterlog.Fatalf("%s\n", err)
	}

	arch := utils.FirstNonEmpty(archFlag, cfg.Arch, hostArch())
	cacheDir := utils.FirstNonEmpty(cfg.CacheDir, defaultCacheDir())

	client := archive.NewClient(utils.FirstNonEmpty(mirrorFlag, cfg.Mirror), cacheDir)
	client.NoCache = noCache

	var spin *spinner.Spinner
	if !quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr), spinner.WithSuffix(" fetching package listings..."))
		spin.Start()
	}

	var (
		wg        sync.WaitGroup
		localPkgs map[string]string
		archPkgs  map[string]string
		localErr  error
		archErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		localPkgs, localErr = localdb.Read(dbPathFlag)
	}()
	go func() {
		defer wg.Done()
		if useRepoDB {
			archPkgs, archErr = client.RepoDB(date, repo, arch)
		} else {
			archPkgs, archErr = client.Listing(date, repo, arch)
		}
	}()
	wg.Wait()

	if spin != nil {
		spin.Stop()
	}

	if localErr != nil {
		waterlog.Fatalf("Failed to read the local package database: %s\n", localErr)
	}
	if archErr != nil {
		if errors.Is(archErr, archive.ErrSnapshotUnavailable) {
			waterlog.Fatalln("Wrong values provided. Check whether the date and the repository are correct!")
		}
		waterlog.Fatalf("Failed to fetch the archived listing: %s\n", archErr)
	}

	localSet := state.Build(localPkgs, "local")
	archSet := state.Build(archPkgs, date.String()+"/"+repo)
	waterlog.Goodf("Loaded %d local and %d archived packages.\n", localSet.Len(), archSet.Len())

	diffs, err := state.Changed(localSet, archSet)
	if err != nil {
		waterlog.Fatalf("Failed to diff package sets: %s\n", err)
	}

	shown := render.Report(os.Stdout, diffs, render.Options{
		ShowUnchanged: showAll,
		Plain:         plain,
	})
	if shown == 0 {
		waterlog.Goodln("No differences found!")
	}
}
