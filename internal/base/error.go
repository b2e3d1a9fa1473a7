// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrInvalidInput means that text supplied for an insert, delete or classify
// could not be parsed as an integer. Errors returned for bad input are marked
// with it; test for it with errors.Is.
var ErrInvalidInput = errors.New("bstview: invalid input")

// InvalidInputf returns a formatted error marked as ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}

// MarkInvalidInput wraps err with the provided message and marks it as
// ErrInvalidInput. It returns nil if err is nil.
func MarkInvalidInput(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrInvalidInput)
}
