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
	"strconv"
	"strings"

	"github.com/corvidlang/corvid/vm"
)

// parseOne parses exactly one object, surfacing any diagnostics raised
// along the way as a single error; used by hooks that need to recurse into
// a sub-object (Quote's operand, a Tag's payload, directory-literal
// values).
func (p *Parser) parseOne(c *Cursor) (vm.Value, error) {
	errs := &ErrParse{}
	v, ok := p.nextobj(c, errs)
	if len(errs.Diagnostics) > 0 {
		return nil, errs
	}
	if !ok {
		return nil, fmt.Errorf("expected an object")
	}
	return v, nil
}

// parseDelimitedSeq reads objects until it sees closer, consuming closer,
// the shape both List ({...}) and Code (::...;) bodies share. An
// alternate-mode "nothing" (a dropped Comment) is silently skipped rather
// than appended; a parse-time recall that finds nothing is an error, not a
// "nothing" (see hookSymbol).
func parseDelimitedSeq(p *Parser, c *Cursor, closer byte) ([]vm.Value, error) {
	var items []vm.Value
	for {
		c.SkipWhite()
		if c.AtEnd() {
			return items, fmt.Errorf("Consider ending this with a %c", closer)
		}
		if c.Peek() == closer {
			c.Advance()
			return items, nil
		}
		v, err := p.parseOne(c)
		if err != nil {
			return items, err
		}
		if v == nil {
			continue
		}
		items = append(items, v)
	}
}

// parseDirectoryBody reads a sequence of Tag objects until ']', building a
// standalone vm.Directory. Directories can only contain tags.
func parseDirectoryBody(p *Parser, c *Cursor) (*vm.Directory, error) {
	var names []string
	var values []vm.Value
	for {
		c.SkipWhite()
		if c.AtEnd() {
			return nil, fmt.Errorf("A directory has failed to ]")
		}
		if c.Peek() == ']' {
			c.Advance()
			break
		}
		v, err := p.parseOne(c)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		tag, ok := v.(*vm.Tag)
		if !ok {
			return nil, fmt.Errorf("Directories can only contain tags")
		}
		names = append(names, tag.Name)
		values = append(values, tag.Obj)
	}
	return p.RT.NewDirectoryFrom(names, values), nil
}

// hookInteger claims #<digits>, e.g. #42 or #-7.
func hookInteger(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '#' {
			return nil, false, nil
		}
		mark := *c
		c.Advance()
		tok := c.ScanBareToken()
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			*c = mark
			return nil, false, nil
		}
		return rt.NewInteger(n), true, nil
	}
}

// hookFloat claims a bare token that parses as a float and contains a
// decimal point or exponent marker — distinguishing it from a plain
// Symbol, which never does.
func hookFloat(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		mark := *c
		tok := c.ScanBareToken()
		if tok == "" || !strings.ContainsAny(tok, ".eE") {
			*c = mark
			return nil, false, nil
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			*c = mark
			return nil, false, nil
		}
		return rt.NewFloat(f), true, nil
	}
}

// hookString claims a "..." literal, with \n \t \r \\ \" backslash escapes.
func hookString(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '"' {
			return nil, false, nil
		}
		c.Advance()
		var b strings.Builder
		for {
			if c.AtEnd() {
				return nil, true, fmt.Errorf(`Consider ending this string with a "`)
			}
			ch := c.Advance()
			if ch == '"' {
				return rt.NewString(b.String()), true, nil
			}
			if ch == '\\' {
				if c.AtEnd() {
					return nil, true, fmt.Errorf(`Consider ending this string with a "`)
				}
				switch esc := c.Advance(); esc {
				case 'n':
					b.WriteByte('\n')
				case 't':
					b.WriteByte('\t')
				case 'r':
					b.WriteByte('\r')
				default:
					b.WriteByte(esc)
				}
				continue
			}
			b.WriteByte(ch)
		}
	}
}

// hookComment claims a balanced (...) span, tracking nested parens so a
// comment can itself contain literal parentheses. Under alternate mode the
// comment is emitted as "nothing" (a nil value) rather than a Comment.
func hookComment(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '(' {
			return nil, false, nil
		}
		alternate := c.Alternate
		c.Advance()
		depth := 1
		var b strings.Builder
		for {
			if c.AtEnd() {
				return nil, true, fmt.Errorf("Consider ending this comment with a )")
			}
			ch := c.Advance()
			if ch == '(' {
				depth++
			} else if ch == ')' {
				depth--
				if depth == 0 {
					break
				}
			}
			b.WriteByte(ch)
		}
		if alternate {
			return nil, true, nil
		}
		return rt.NewComment(b.String()), true, nil
	}
}

// hookQuote claims '<obj>, parsing exactly one following object and
// wrapping it unevaluated. The operand may not be "nothing" (an
// alternate-mode comment).
func hookQuote(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '\'' {
			return nil, false, nil
		}
		c.Advance()
		inner, err := p.parseOne(c)
		if err != nil {
			return nil, true, err
		}
		if inner == nil {
			return nil, true, fmt.Errorf("You should put something corporeal here")
		}
		return rt.NewQuote(inner), true, nil
	}
}

// hookList claims {...}.
func hookList(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '{' {
			return nil, false, nil
		}
		c.Advance()
		items, err := parseDelimitedSeq(p, c, '}')
		if err != nil {
			return nil, true, err
		}
		return rt.NewList(items...), true, nil
	}
}

// hookCode claims :: ... ; — checked ahead of hookTag so a double colon is
// never mistaken for an empty tag name.
func hookCode(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != ':' || c.PeekAt(1) != ':' {
			return nil, false, nil
		}
		c.Advance()
		c.Advance()
		items, err := parseDelimitedSeq(p, c, ';')
		if err != nil {
			return nil, true, err
		}
		return rt.NewCode(items...), true, nil
	}
}

// hookTag claims :name:obj.
func hookTag(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != ':' || c.PeekAt(1) == ':' {
			return nil, false, nil
		}
		c.Advance()
		name := c.ScanBareToken()
		if c.Peek() != ':' {
			return nil, true, fmt.Errorf("Consider ending this tag name with a :")
		}
		c.Advance()
		obj, err := p.parseOne(c)
		if err != nil {
			return nil, true, err
		}
		return rt.NewTag(name, obj), true, nil
	}
}

// hookDirectory claims [dir: :tag:obj :tag:obj ...]. Directories can only
// contain tags.
func hookDirectory(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.Peek() != '[' {
			return nil, false, nil
		}
		if c.text[c.pos:min(c.pos+5, len(c.text))] != "[dir:" {
			return nil, false, nil
		}
		for i := 0; i < 5; i++ {
			c.Advance()
		}
		dir, err := parseDirectoryBody(p, c)
		if err != nil {
			return nil, true, err
		}
		return dir, true, nil
	}
}

// hookSymbol is the catch-all: any bare dotted identifier not claimed by a
// more specific hook. Under alternate mode the name is recalled from the
// named store at parse time and that value is emitted instead of a Symbol.
func hookSymbol(rt *vm.Runtime) Hook {
	return func(p *Parser, c *Cursor) (vm.Value, bool, error) {
		if c.AtEnd() {
			return nil, false, nil
		}
		b := c.Peek()
		if strings.IndexByte(whitespace, b) >= 0 || IsDelimiter(b) {
			return nil, false, nil
		}
		tok := c.ScanBareToken()
		if tok == "" {
			return nil, false, nil
		}
		path := strings.Split(tok, ".")
		if c.Alternate {
			v := rt.Recall(path)
			if v == nil {
				return nil, true, fmt.Errorf("This symbol has to exist at parse time")
			}
			return v, true, nil
		}
		return rt.NewSymbol(path), true, nil
	}
}

// RegisterBaseHooks installs a parse Hook for every base type with surface
// syntax, in the same order vm.NewRuntime registers the underlying base
// types. Parser.Use prepends, so the effective try-order ends up
// newest-registered-first: Quote and Integer (single-character prefixes)
// before Code and List (bracketing pairs) before the bare-token forms
// (Comment, String, Float) with Symbol last as the catch-all.
func RegisterBaseHooks(p *Parser) {
	rt := p.RT
	p.Use(hookSymbol(rt))
	p.Use(hookFloat(rt))
	p.Use(hookString(rt))
	p.Use(hookComment(rt))
	p.Use(hookDirectory(rt))
	p.Use(hookTag(rt))
	p.Use(hookList(rt))
	p.Use(hookCode(rt))
	p.Use(hookInteger(rt))
	p.Use(hookQuote(rt))
}
