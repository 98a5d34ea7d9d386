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
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/corvidlang/corvid/vm"
)

func newParser() *Parser {
	rt := vm.NewRuntime()
	p := New(rt)
	RegisterBaseHooks(p)
	return p
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"integer", "#42"},
		{"negative-integer", "#-7"},
		{"float", "3.14"},
		{"string", `"hello, world"`},
		{"string-escape", `"line\nbreak"`},
		{"comment", "(a remark)"},
		{"nested-comment", "(outer (inner) still outer)"},
		{"quote", "'foo.bar"},
		{"symbol", "foo.bar.baz"},
		{"tag", `:greeting:"hi"`},
		{"list", "{ #1 #2 #3 }"},
		{"code", ":: #1 #2 + ;"},
		{"directory", "[dir: :x:#1 :y:#2 ]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newParser()
			vals, err := p.Parse(c.src)
			if err != nil {
				t.Fatalf("Parse(%q): %v", c.src, err)
			}
			snaps.MatchSnapshot(t, Render(vals))
		})
	}
}

func TestParseUnterminatedString(t *testing.T) {
	p := newParser()
	_, err := p.Parse(`"never closed`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestParseUnterminatedComment(t *testing.T) {
	p := newParser()
	_, err := p.Parse("(never closed")
	if err == nil {
		t.Fatal("expected an error for an unterminated comment")
	}
}

func TestParseGarbageDelimiter(t *testing.T) {
	p := newParser()
	_, err := p.Parse("}")
	if err == nil {
		t.Fatal("expected an error for a stray closing delimiter")
	}
}

func TestAlternateSymbolRecallsAtParseTime(t *testing.T) {
	rt := vm.NewRuntime()
	rt.Store([]string{"greeting"}, rt.NewString("hi"))
	p := New(rt)
	RegisterBaseHooks(p)

	vals, err := p.Parse("`greeting")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("expected one value, got %d", len(vals))
	}
	s, ok := vals[0].(vm.String)
	if !ok || s.S != "hi" {
		t.Fatalf("expected the recalled String \"hi\", got %#v", vals[0])
	}
}

func TestAlternateSymbolMissingAtParseTimeErrors(t *testing.T) {
	p := newParser()
	_, err := p.Parse("`nosuchname")
	if err == nil {
		t.Fatal("expected an error recalling a name that doesn't exist at parse time")
	}
}

func TestTildeDisablesAlternate(t *testing.T) {
	rt := vm.NewRuntime()
	rt.Store([]string{"x"}, rt.NewInteger(1))
	p := New(rt)
	RegisterBaseHooks(p)

	vals, err := p.Parse("`~x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("expected one value, got %d", len(vals))
	}
	if _, ok := vals[0].(vm.Symbol); !ok {
		t.Fatalf("expected a plain Symbol once ~ disabled alternate mode, got %#v", vals[0])
	}
}

func TestAlternateCommentIsDroppedFromList(t *testing.T) {
	p := newParser()
	vals, err := p.Parse("{ #1 `(skip me) #2 }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lst := vals[0].(*vm.List)
	if lst.Len() != 2 {
		t.Fatalf("expected the alternate comment to be dropped, leaving 2 items, got %d", lst.Len())
	}
}

func TestDirectoryLiteralParsesTagSequence(t *testing.T) {
	p := newParser()
	vals, err := p.Parse("[dir: :n:#1 :m:#2 ]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dir, ok := vals[0].(*vm.Directory)
	if !ok {
		t.Fatalf("expected a *vm.Directory, got %T", vals[0])
	}
	n := p.RT.RecallFrom(dir, []string{"n"})
	if n == nil || n.(vm.Integer).Int() != 1 {
		t.Fatalf("expected n to recall #1, got %#v", n)
	}
	m := p.RT.RecallFrom(dir, []string{"m"})
	if m == nil || m.(vm.Integer).Int() != 2 {
		t.Fatalf("expected m to recall #2, got %#v", m)
	}
}

func TestDirectoryLiteralRejectsNonTags(t *testing.T) {
	p := newParser()
	_, err := p.Parse("[dir: #1 ]")
	if err == nil {
		t.Fatal("expected an error for a directory literal entry that isn't a tag")
	}
}

func TestParseCodeAppendsReturn(t *testing.T) {
	p := newParser()
	vals, err := p.Parse(":: #1 ;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("expected one top-level value, got %d", len(vals))
	}
	code, ok := vals[0].(*vm.Code)
	if !ok {
		t.Fatalf("expected *vm.Code, got %T", vals[0])
	}
	if code.Len() != 2 {
		t.Fatalf("expected Return sentinel appended, Len()=%d", code.Len())
	}
	if _, ok := code.Items[code.Len()-1].(*vm.Internal); !ok {
		t.Fatalf("expected last item to be the Return sentinel, got %T", code.Items[code.Len()-1])
	}
}
