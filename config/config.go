// SPDX-FileCopyrightText: Copyright © 2014-2024 Jakpak Developers
//
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional jakpak.yml. Every field has a flag
// counterpart; flags win over the file.
type Config struct {
	// Mirror is the base URL of the archive mirror.
	Mirror string `yaml:"mirror"`
	// Arch overrides the detected machine architecture.
	Arch string `yaml:"arch"`
	// CacheDir overrides where fetched listings are cached.
	CacheDir string `yaml:"cache"`
	// Repository is the default repository to diff against.
	Repository string `yaml:"repository"`
}

func Load(path string) (cfg Config, err error) {
	raw, err := os.Open(path)
	if err != nil {
		return
	}
	defer raw.Close()
	dec := yaml.NewDecoder(raw)
	err = dec.Decode(&cfg)
	return
}

// LoadDefault reads the user config file if one exists; a missing file
// yields the zero Config without error.
func LoadDefault() (Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Config{}, nil
	}

	path := filepath.Join(dir, "jakpak", "jakpak.yml")
	if _, err := os.Stat(path); err != nil {
		return Config{}, nil
	}

	return Load(path)
}
