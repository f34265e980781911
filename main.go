// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/mromel/jakpak/cmd"
)

func main() {
	cmd.Execute()
}
