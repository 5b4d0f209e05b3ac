// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treemenu"
	"github.com/spf13/cobra"
)

const (
	defaultPrompt = "> "
	// maxLineLen is the maximum number of bytes read as a single line. Longer
	// lines are split.
	maxLineLen = 256
)

var (
	replEcho   bool
	replPrompt string
)

var replCmd = &cobra.Command{
	Use:   "repl [menu-file]",
	Short: "dispatch commands read from stdin",
	Long: `
Reads commands from stdin, one per line. "ls" prints the tree, "exit" ends the
session, and any other line is executed: every leaf with that name is
invoked. The session also ends at the end of the input.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runREPL,
}

func runREPL(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	tree, cfg, err := openTree(cmd, args, stdout)
	if err != nil {
		return err
	}
	defer tree.Close()

	in := cmd.InOrStdin()
	r := repl{tree: tree, in: in, out: stdout, echo: cfg.Echo}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		r.prompt = cfg.Prompt
	}
	return r.run()
}

type repl struct {
	tree   *treemenu.Tree[string]
	in     io.Reader
	out    io.Writer
	prompt string
	echo   bool
}

func (r *repl) run() error {
	br := bufio.NewReaderSize(r.in, maxLineLen)
	for {
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 && r.dispatch(len(chunk), string(bytes.TrimSuffix(chunk, []byte{'\n'}))) {
			return nil
		}
		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
		case errors.Is(err, io.EOF):
			return nil
		default:
			return errors.Wrap(err, "reading input")
		}
	}
}

// dispatch handles a single line of n bytes (including its newline, if any).
// It returns true if the session should end.
func (r *repl) dispatch(n int, line string) bool {
	if r.echo {
		fmt.Fprintf(r.out, "[%d][%s]\n", n, line)
	}
	switch line {
	case "ls":
		r.tree.Dump()
	case "exit":
		return true
	default:
		r.tree.Exec(line)
	}
	return false
}
