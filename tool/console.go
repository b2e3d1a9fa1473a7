// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/bstview/canvas"
	"github.com/cockroachdb/bstview/internal/strparse"
	"github.com/cockroachdb/bstview/metrics"
	"github.com/cockroachdb/bstview/session"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const consoleHelp = `commands:
  insert [value]     insert the value (or the entry)
  delete [value]     delete the value (or the entry)
  classify [value]   describe where the value (or the entry) belongs
  entry <text>       set the entry
  click <x> <y>      select the node drawn at the given position
  show               print the traversals and the drawing
  traverse           print the traversals
  stats              print operation counts and tree shape
  steps <op>         trace insert, delete or classify of the entry
  metrics            print the exported metrics
  help               print this message
  quit               exit
`

// console executes REPL commands against a session. Each console has its own
// session and metrics registry.
type console struct {
	s   *session.Session
	reg *prometheus.Registry
	out io.Writer
}

func newConsole(opts session.Options, out io.Writer) (*console, error) {
	c := &console{
		reg: prometheus.NewRegistry(),
		out: out,
	}
	opts.Metrics = metrics.NewCollectors()
	if err := opts.Metrics.Register(c.reg); err != nil {
		return nil, err
	}
	c.s = session.New(&opts)
	return c, nil
}

// exec runs one command line. It returns true if the console should exit.
// Errors are reported to the output and do not stop the console.
func (c *console) exec(line string) (quit bool) {
	err := strparse.Parse(func() {
		quit = c.execLine(line)
	})
	if err != nil {
		fmt.Fprintf(c.out, "error: %s\n", err)
	}
	return quit
}

func (c *console) execLine(line string) (quit bool) {
	p := strparse.MakeParser("", line)
	switch cmd := p.Next(); cmd {
	case "":

	case "insert", "delete", "classify":
		if !p.Done() {
			c.s.SetEntry(p.Remaining())
		}
		var err error
		switch cmd {
		case "insert":
			err = c.s.Insert()
		case "delete":
			err = c.s.Delete()
		default:
			_, err = c.s.Classify()
		}
		fmt.Fprintf(c.out, "%s\n", c.s.Info())
		if err != nil && !errors.Is(err, session.ErrInvalidInput) {
			fmt.Fprintf(c.out, "error: %s\n", err)
		}

	case "entry":
		c.s.SetEntry(p.Remaining())
		fmt.Fprintf(c.out, "entry: %s\n", c.s.Entry())

	case "click":
		pt := canvas.Point{X: p.Int(), Y: p.Int()}
		if c.s.Click(pt) {
			fmt.Fprintf(c.out, "selected %s\n", c.s.Entry())
		} else {
			fmt.Fprintf(c.out, "no node at %s\n", pt)
		}

	case "show":
		c.writeLabels()
		if d := c.s.Drawing(); d != "" {
			fmt.Fprintf(c.out, "%s\n", d)
		} else {
			fmt.Fprintf(c.out, "<empty>\n")
		}

	case "traverse":
		c.writeLabels()

	case "stats":
		tree := c.s.Tree()
		fmt.Fprintf(c.out, "%s\nnodes: %d, height: %d\n", c.s.Counts(), tree.Len(), tree.Height())

	case "steps":
		steps, err := c.s.Trace(p.Next())
		if err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
			break
		}
		fmt.Fprint(c.out, steps.String())

	case "metrics":
		if err := c.writeMetrics(); err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
		}

	case "help":
		fmt.Fprint(c.out, consoleHelp)

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(c.out, "unknown command %q; try help\n", cmd)
	}
	return false
}

func (c *console) writeLabels() {
	l := c.s.Labels()
	fmt.Fprintf(c.out, "%s\n%s\n%s\n", l.Preorder, l.Inorder, l.Postorder)
}

func (c *console) writeMetrics() error {
	families, err := c.reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName() + formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(c.out, "%s %g\n", name, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(c.out, "%s count=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.GetName() + "=" + l.GetValue()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
