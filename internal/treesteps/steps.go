// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cockroachdb/bstview/internal/treeprinter"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zlib"
)

// Steps is the result of a recording.
type Steps struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Step is a snapshot of the whole hierarchy, taken whenever an operation starts,
// changes state or finishes, or when a node is updated.
type Step struct {
	Name string   `json:"name"`
	Root TreeNode `json:"root"`
}

// TreeNode is the state of one node at the time of a step.
type TreeNode struct {
	Name       string      `json:"name"`
	Properties [][2]string `json:"props,omitempty"`
	// Ops are the operations in progress on this node, including their state.
	Ops      []string   `json:"ops,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// String renders all the steps as text. Operations in progress on a node are
// shown after its name, following an arrow.
func (s Steps) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", s.Name)
	for i := range s.Steps {
		fmt.Fprintf(&buf, "step %d/%d: %s\n", i+1, len(s.Steps), s.Steps[i].Name)
		tp := treeprinter.New()
		s.Steps[i].Root.print(tp)
		buf.WriteString(tp.String())
	}
	return buf.String()
}

// String renders the node and its descendants.
func (t *TreeNode) String() string {
	tp := treeprinter.New()
	t.print(tp)
	return tp.String()
}

func (t *TreeNode) print(parent treeprinter.Node) {
	label := t.Name
	if len(t.Ops) > 0 {
		label += " <- " + strings.Join(t.Ops, "; ")
	}
	n := parent.Child(label)
	for _, prop := range t.Properties {
		n.Childf("%s: %s", prop[0], prop[1])
	}
	for i := range t.Children {
		t.Children[i].print(n)
	}
}

// URL returns a URL to an interactive visualization of the steps. The steps are
// JSON-encoded, compressed and stored in the URL fragment.
func (s Steps) URL() url.URL {
	fragment, err := encodeSteps(s)
	if err != nil {
		panic(errors.Wrap(err, "encoding tree steps"))
	}
	return url.URL{
		Scheme:   "https",
		Host:     "raduberinde.github.io",
		Path:     "treesteps/decode.html",
		Fragment: fragment,
	}
}

func encodeSteps(s Steps) (string, error) {
	var jsonBuf bytes.Buffer
	if err := json.NewEncoder(&jsonBuf).Encode(s); err != nil {
		return "", err
	}
	var compressed bytes.Buffer
	encoder := base64.NewEncoder(base64.URLEncoding, &compressed)
	compressor := zlib.NewWriter(encoder)
	if _, err := jsonBuf.WriteTo(compressor); err != nil {
		return "", err
	}
	if err := compressor.Close(); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return compressed.String(), nil
}

// DecodeURL is the inverse of Steps.URL.
func DecodeURL(u url.URL) (Steps, error) {
	r, err := zlib.NewReader(base64.NewDecoder(base64.URLEncoding, strings.NewReader(u.Fragment)))
	if err != nil {
		return Steps{}, errors.Wrap(err, "decompressing tree steps")
	}
	defer r.Close()
	var s Steps
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Steps{}, errors.Wrap(err, "decoding tree steps")
	}
	return s, nil
}
