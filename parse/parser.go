// This file is part of corvid, a stack-oriented concatenative runtime.
//
// Copyright 2026 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import (
	"fmt"
	"strings"

	"github.com/corvidlang/corvid/vm"
)

// whitespace and delimiters mirror the original token scanner: a small,
// fixed set of characters that can never appear inside a bare symbol or
// number, so a scan can stop on sight without lookahead tables.
const whitespace = " \t\r\n"

var delimiters = map[rune]bool{'}': true, '{': true, ':': true, ';': true, '[': true, ']': true}

// Position is a 1-based line/column pair for diagnostics.
type Position struct {
	Line, Col int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Diagnostic is one parse failure, located at a Position.
type Diagnostic struct {
	Pos     Position
	Message string
}

func (d Diagnostic) String() string { return fmt.Sprintf("%s: %s", d.Pos, d.Message) }

// ErrParse collects every Diagnostic raised while parsing a unit of text,
// the way the teacher's asm.ErrAsm collects assembler diagnostics instead
// of stopping at the first one.
type ErrParse struct {
	Diagnostics []Diagnostic
}

func (e *ErrParse) Error() string {
	var b strings.Builder
	for i, d := range e.Diagnostics {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}

func (e *ErrParse) add(pos Position, format string, args ...interface{}) {
	e.Diagnostics = append(e.Diagnostics, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Cursor is the mutable scan position over one piece of source text, plus
// the alternate/immediate-evaluation toggle state (` and ~ in the surface
// syntax).
type Cursor struct {
	text string
	pos  int
	line int
	col  int

	// Alternate is set by a lone ` (true) or ~ (false) and applies to
	// exactly the next object parsed: a Symbol recalls its value at parse
	// time instead of emitting a Symbol, and a Comment is dropped instead
	// of kept. Every successful parse resets it to false, ` or ~ must
	// precede each object they're meant to affect.
	Alternate bool
}

// NewCursor starts a Cursor at the beginning of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text, line: 1, col: 1}
}

// AtEnd reports whether the cursor has consumed all of the source text.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.text) }

// Peek returns the byte at the cursor without consuming it, or 0 at end.
func (c *Cursor) Peek() byte {
	if c.AtEnd() {
		return 0
	}
	return c.text[c.pos]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past the
// end of the text.
func (c *Cursor) PeekAt(n int) byte {
	if c.pos+n >= len(c.text) {
		return 0
	}
	return c.text[c.pos+n]
}

// Advance consumes and returns the current byte, tracking line/column.
func (c *Cursor) Advance() byte {
	b := c.text[c.pos]
	c.pos++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// Pos returns the cursor's current diagnostic Position.
func (c *Cursor) Pos() Position { return Position{Line: c.line, Col: c.col} }

// SkipWhite consumes whitespace characters.
func (c *Cursor) SkipWhite() {
	for !c.AtEnd() && strings.IndexByte(whitespace, c.Peek()) >= 0 {
		c.Advance()
	}
}

// IsDelimiter reports whether b is one of the fixed structural delimiters.
func IsDelimiter(b byte) bool {
	return delimiters[rune(b)]
}

// ScanBareToken consumes up to the next whitespace or delimiter character,
// the shape a bare symbol, integer, or float literal takes.
func (c *Cursor) ScanBareToken() string {
	start := c.pos
	for !c.AtEnd() && strings.IndexByte(whitespace, c.Peek()) < 0 && !IsDelimiter(c.Peek()) {
		c.Advance()
	}
	return c.text[start:c.pos]
}

// Hook attempts to parse one object starting at the cursor's current
// position. It returns ok=false (cursor unmoved) if this hook's syntax does
// not start here, so the next hook in the Parser's list gets a turn. A
// non-nil error means the hook recognized its syntax but the token is
// malformed (an unterminated string, an unbalanced comment, and so on).
type Hook func(p *Parser, c *Cursor) (val vm.Value, ok bool, err error)

// Parser walks text producing a flat sequence of top-level vm.Value
// objects, trying each registered Hook in order at every token boundary.
type Parser struct {
	RT    *vm.Runtime
	hooks []Hook
}

// New returns an empty Parser bound to rt; package boot registers hooks
// onto it in lock-step with vm.TypeRegistry.Register calls.
func New(rt *vm.Runtime) *Parser {
	return &Parser{RT: rt}
}

// Use prepends a Hook, so that later-registered base types are tried
// before earlier ones — matching spec.md's "registering a base variant
// prepends to the parse list" rule.
func (p *Parser) Use(h Hook) {
	p.hooks = append([]Hook{h}, p.hooks...)
}

// nextobj skips whitespace and the `/~ alternate toggles, then offers the
// cursor to each hook in turn. A hook may return ok=true with a nil value —
// an alternate-mode Comment, parsed but with nothing to emit — which
// callers that build a sequence (Parse, parseDelimitedSeq) must drop.
func (p *Parser) nextobj(c *Cursor, errs *ErrParse) (vm.Value, bool) {
	for {
		c.SkipWhite()
		if c.AtEnd() {
			return nil, false
		}
		if c.Peek() == '`' || c.Peek() == '~' {
			b := c.Advance()
			c.Alternate = b == '`'
			continue
		}
		break
	}

	start := c.Pos()
	for _, h := range p.hooks {
		mark := *c
		v, ok, err := h(p, c)
		if err != nil {
			errs.add(start, "%s", err.Error())
			return nil, false
		}
		if ok {
			c.Alternate = false
			return v, true
		}
		*c = mark
	}

	errs.add(start, "Whatever this is, it isn't")
	c.Advance()
	return nil, false
}

// Parse runs the full hook list over text and returns the flat sequence of
// top-level values parsed, along with an *ErrParse carrying every
// diagnostic encountered (nil if there were none).
func (p *Parser) Parse(text string) ([]vm.Value, error) {
	c := NewCursor(text)
	errs := &ErrParse{}
	var out []vm.Value
	for !c.AtEnd() {
		c.SkipWhite()
		if c.AtEnd() {
			break
		}
		v, ok := p.nextobj(c, errs)
		if ok && v != nil {
			out = append(out, v)
		}
	}
	if len(errs.Diagnostics) > 0 {
		return out, errs
	}
	return out, nil
}

// ParseCode is Parse wrapped in a Return-terminated vm.Code, the shape a
// loaded program or a `:: ... ;` body takes.
func (p *Parser) ParseCode(text string) (*vm.Code, error) {
	items, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	return p.RT.NewCode(items...), nil
}
