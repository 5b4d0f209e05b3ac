// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"github.com/spf13/cobra"
)

// config holds the settings of the host tool. Values come from the optional
// TOML file named by --config; flags that were set explicitly take
// precedence.
type config struct {
	Module         string `toml:"module"`
	Prompt         string `toml:"prompt"`
	Echo           bool   `toml:"echo"`
	NameCompareLen int    `toml:"name_compare_len"`
	MaxDepth       int    `toml:"max_depth"`
	StrictLeaves   bool   `toml:"strict_leaves"`
	Menu           string `toml:"menu"`
}

func defaultConfig() config {
	return config{
		Module: defaultModuleName,
		Prompt: defaultPrompt,
	}
}

// decodeConfig decodes a TOML document over cfg. Keys that are not part of
// the configuration are rejected.
func decodeConfig(r io.Reader, cfg *config) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// resolveConfig builds the configuration for cmd from the config file, if
// any, and the flags.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config")
		}
		defer f.Close()
		if err := decodeConfig(f, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", configPath)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("module") {
		cfg.Module = moduleName
	}
	if flags.Changed("name-compare-len") {
		cfg.NameCompareLen = nameCompareLen
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("strict-leaves") {
		cfg.StrictLeaves = strictLeaves
	}
	if flags.Changed("echo") {
		cfg.Echo = replEcho
	}
	if flags.Changed("prompt") {
		cfg.Prompt = replPrompt
	}
	return cfg, nil
}

// options returns the tree options described by the configuration. Dump
// output goes to stdout.
func (c *config) options(stdout io.Writer) *treemenu.Options {
	return &treemenu.Options{
		NameCompareLen: c.NameCompareLen,
		MaxDepth:       c.MaxDepth,
		StrictLeaves:   c.StrictLeaves,
		Logger:         treemenu.DefaultLogger{},
		Stdout:         stdout,
	}
}
