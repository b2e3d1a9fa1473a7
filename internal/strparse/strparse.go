// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests, REPL commands and scripts.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Parser splits a string into tokens. Tokens are separated by whitespace; in
// addition user-specified separators are always separate tokens. For example,
// when passed the separators `,[]` the string `[1,2]` results in the tokens
// `[`, `1`, `,`, `2`, `]`.
//
// All Parser methods throw panics instead of returning errors. Wrap the code
// that uses a Parser in Parse to convert them into errors.
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that treats every rune in separators as a
// token of its own, and consumes the provided input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}
	start := -1
	flush := func(end int) {
		if start >= 0 {
			p.tokens = append(p.tokens, token{tok: input[start:end], offset: start})
			start = -1
		}
	}
	for i, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case strings.ContainsRune(separators, r):
			flush(i)
			p.tokens = append(p.tokens, token{tok: input[i : i+utf8.RuneLen(r)], offset: i})
		case start < 0:
			start = i
		}
	}
	flush(len(input))
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	parts := make([]string, len(p.tokens))
	for i := range p.tokens {
		parts[i] = p.tokens[i].tok
	}
	p.tokens = nil
	return strings.Join(parts, " ")
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Ints parses the remaining tokens as integers, skipping any separator tokens
// listed in skip.
func (p *Parser) Ints(skip ...string) []int {
	var res []int
	for !p.Done() {
		tok := p.Peek()
		skipped := false
		for _, s := range skip {
			if tok == s {
				p.Next()
				skipped = true
				break
			}
		}
		if !skipped {
			res = append(res, p.Int())
		}
	}
	return res
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseError{errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg)})
}

type parseError struct {
	error
}

// Parse runs fn and returns the error of any Parser panic raised inside it.
// Other panics are propagated.
func Parse(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.error
		}
	}()
	fn()
	return nil
}
