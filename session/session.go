// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package session implements the interactive side of bstview independently of
// any user interface: it owns a tree together with the text of an entry field,
// an info label, the traversal labels and the current drawing, and keeps them
// consistent as the user inserts, deletes, classifies and clicks on nodes.
package session

import (
	"fmt"

	"github.com/cockroachdb/bstview"
	"github.com/cockroachdb/bstview/canvas"
	"github.com/cockroachdb/bstview/internal/treesteps"
	"github.com/cockroachdb/bstview/metrics"
	"github.com/cockroachdb/errors"
)

// WelcomeMessage is the initial content of the info label.
const WelcomeMessage = "enter a value to add a node, click a node to select it"

// Labels are the traversal labels shown below the entry field.
type Labels struct {
	Preorder  string
	Inorder   string
	Postorder string
}

// Session is a tree together with the state of the user interface around it.
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	tree   *bstview.Tree
	entry  string
	info   string
	labels Labels
	layout canvas.Layout
	// drawing is the text rendering of layout.
	drawing string
	index   *canvas.Index
	counts  metrics.OpCounts
}

// New returns a session with an empty tree.
func New(opts *Options) *Session {
	s := &Session{
		opts:  *opts.EnsureDefaults(),
		tree:  bstview.New(),
		info:  WelcomeMessage,
		index: canvas.MakeIndex(),
	}
	s.refresh()
	return s
}

// Tree returns the tree. Mutating it directly leaves the labels and the
// drawing stale until the next operation.
func (s *Session) Tree() *bstview.Tree {
	return s.tree
}

// SetEntry replaces the text of the entry field.
func (s *Session) SetEntry(text string) {
	s.entry = text
}

// Entry returns the text of the entry field.
func (s *Session) Entry() string {
	return s.entry
}

// Info returns the text of the info label.
func (s *Session) Info() string {
	return s.info
}

// Labels returns the traversal labels.
func (s *Session) Labels() Labels {
	return s.labels
}

// Layout returns the positions of the drawn nodes.
func (s *Session) Layout() canvas.Layout {
	return s.layout
}

// Drawing returns the text rendering of the tree; it is empty for an empty
// tree.
func (s *Session) Drawing() string {
	return s.drawing
}

// Counts returns the number of operations applied so far.
func (s *Session) Counts() metrics.OpCounts {
	return s.counts
}

// Insert inserts the value in the entry field. If the entry is not an integer
// the tree is left unchanged, the info label asks for a valid integer and the
// returned error is marked with base.ErrInvalidInput.
func (s *Session) Insert() error {
	v, err := s.parseEntry(metrics.OpInsert)
	if err != nil {
		return err
	}
	s.insert(v)
	return nil
}

// Delete deletes the value in the entry field. Invalid entries are handled as
// in Insert.
func (s *Session) Delete() error {
	v, err := s.parseEntry(metrics.OpDelete)
	if err != nil {
		return err
	}
	s.delete(v)
	return nil
}

// Classify classifies the value in the entry field and describes the result in
// the info label. Invalid entries are handled as in Insert.
func (s *Session) Classify() (bstview.Classification, error) {
	v, err := s.parseEntry(metrics.OpClassify)
	if err != nil {
		return bstview.Classification{}, err
	}
	return s.classify(v), nil
}

// Click selects the node drawn at p, if any, and copies its value into the
// entry field. It returns false if p is not inside any node.
func (s *Session) Click(p canvas.Point) bool {
	v, ok := s.index.Hit(p, s.opts.Canvas.Radius)
	if !ok {
		return false
	}
	s.entry = fmt.Sprint(v)
	return true
}

// Trace runs op ("insert", "delete" or "classify") on the value in the entry
// field while recording how the operation travels through the tree.
func (s *Session) Trace(op string) (treesteps.Steps, error) {
	switch op {
	case metrics.OpInsert, metrics.OpDelete, metrics.OpClassify:
	default:
		return treesteps.Steps{}, errors.Newf("unknown operation %q", op)
	}
	v, err := s.parseEntry(op)
	if err != nil {
		return treesteps.Steps{}, err
	}
	c := s.tree.Classify(v)
	rec := treesteps.StartRecording(s.tree, fmt.Sprintf("%s(%d)", op, v))
	switch op {
	case metrics.OpInsert:
		s.tree.Insert(v)
	case metrics.OpDelete:
		s.tree.Delete(v)
	case metrics.OpClassify:
		s.tree.Classify(v)
	}
	steps := rec.Finish()
	s.applied(op, v, c)
	return steps, nil
}

func (s *Session) parseEntry(op string) (int, error) {
	v, err := ParseValue(s.entry)
	if err != nil {
		s.info = InvalidInputMessage
		s.counts.IncRejected()
		s.opts.Metrics.ObserveOp(op, metrics.OutcomeRejected)
		s.opts.Logger.Infof("%s: rejected %q", op, s.entry)
		return 0, errors.Wrapf(err, "%s", op)
	}
	return v, nil
}

func (s *Session) insert(v int) {
	c := s.tree.Classify(v)
	s.tree.Insert(v)
	s.applied(metrics.OpInsert, v, c)
}

func (s *Session) delete(v int) {
	c := s.tree.Classify(v)
	s.tree.Delete(v)
	s.applied(metrics.OpDelete, v, c)
}

func (s *Session) classify(v int) bstview.Classification {
	c := s.tree.Classify(v)
	s.applied(metrics.OpClassify, v, c)
	return c
}

// applied updates the counters, the info label and the log after op was
// applied to v. The classification c was taken before the operation.
func (s *Session) applied(op string, v int, c bstview.Classification) {
	s.opts.Metrics.ObservePath(len(c.Path))
	present := c.Kind == bstview.Equal
	if op == metrics.OpClassify {
		s.counts.IncClassify()
		s.opts.Metrics.ObserveOp(op, metrics.OutcomeApplied)
		s.info = Describe(v, c)
		s.opts.Logger.Infof("classify(%d): %s", v, c)
		return
	}

	var changed bool
	switch op {
	case metrics.OpInsert:
		changed = !present
		s.counts.IncInsert(changed)
		if changed {
			s.info = fmt.Sprintf("inserted %d", v)
		} else {
			s.info = fmt.Sprintf("%d is already in the tree", v)
		}
	case metrics.OpDelete:
		changed = present
		s.counts.IncDelete(changed)
		if changed {
			s.info = fmt.Sprintf("deleted %d", v)
		} else {
			s.info = fmt.Sprintf("%d is not in the tree", v)
		}
	}
	outcome := metrics.OutcomeApplied
	if !changed {
		outcome = metrics.OutcomeNoop
	}
	s.opts.Metrics.ObserveOp(op, outcome)
	s.opts.Logger.Infof("%s(%d): %s", op, v, outcome)
	s.refresh()
}

// refresh recomputes the labels, the layout, the drawing and the spatial
// index from the tree.
func (s *Session) refresh() {
	s.labels = Labels{
		Preorder:  FormatSequence("preorder", s.tree.PreorderTraversal()),
		Inorder:   FormatSequence("inorder", s.tree.InorderTraversal()),
		Postorder: FormatSequence("postorder", s.tree.PostorderTraversal()),
	}
	s.layout = canvas.ComputeLayout(s.tree.Root(), &s.opts.Canvas)
	s.drawing = canvas.Render(s.layout, &s.opts.Canvas)
	s.index.RecordLayout(s.layout)
}
