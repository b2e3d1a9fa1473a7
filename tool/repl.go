// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/bstview/session"
	"github.com/cockroachdb/errors"
	"github.com/ghemawat/stream"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// replT implements the interactive tools.
type replT struct {
	Root *cobra.Command
	Run  *cobra.Command

	opts *session.Options

	// Flags.
	prompt bool
}

func newREPL(opts *session.Options) *replT {
	r := &replT{opts: opts}

	r.Root = &cobra.Command{
		Use:   "repl",
		Short: "interactively build and inspect a tree",
		Long: `
Read commands from standard input and apply them to a single session. Type
"help" for the list of commands.
`,
		Args: cobra.NoArgs,
		Run:  r.runREPL,
	}
	r.Run = &cobra.Command{
		Use:   "run <scripts>",
		Short: "run REPL scripts",
		Long: `
Run each script in its own session. Scripts run concurrently; their output is
printed in the order of the arguments, with every command echoed before its
output. Blank lines and lines starting with # are ignored.
`,
		Args: cobra.MinimumNArgs(1),
		Run:  r.runScripts,
	}
	r.Root.Flags().BoolVar(
		&r.prompt, "prompt", true, "print a prompt before reading each command")
	return r
}

func (r *replT) runREPL(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	c, err := newConsole(*r.opts, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if r.prompt {
			fmt.Fprint(stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		if c.exec(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.Wrap(err, "reading commands"))
	}
}

func (r *replT) runScripts(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	outputs := make([]bytes.Buffer, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			return errors.Wrapf(r.runScript(path, &outputs[i]), "%s", path)
		})
	}
	err := g.Wait()
	for i := range args {
		if len(args) > 1 {
			fmt.Fprintf(stdout, "== %s ==\n", args[i])
		}
		_, _ = outputs[i].WriteTo(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
	}
}

func (r *replT) runScript(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines, err := scriptLines(data)
	if err != nil {
		return err
	}
	c, err := newConsole(*r.opts, out)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintf(out, "> %s\n", line)
		if c.exec(line) {
			break
		}
	}
	return nil
}

// scriptLines returns the commands of a script, dropping blank lines and
// comments.
func scriptLines(data []byte) ([]string, error) {
	var lines []string
	err := stream.ForEach(stream.Sequence(
		stream.ReadLines(bytes.NewReader(data)),
		stream.GrepNot(`^\s*#`),
		stream.GrepNot(`^\s*$`),
	), func(line string) {
		lines = append(lines, line)
	})
	return lines, err
}
