// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/bstview/session"
	"github.com/cockroachdb/bstview/tool"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bstview [command] (flags)",
	Short: "binary search tree visualization tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	t := tool.New()
	rootCmd.AddCommand(t.Commands...)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log every operation applied to a tree")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			t.SetLogger(session.DefaultLogger)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
