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

package prims_test

import (
	"testing"

	"github.com/corvidlang/corvid/parse"
	"github.com/corvidlang/corvid/prims"
	"github.com/corvidlang/corvid/vm"
)

func run(t *testing.T, src string) *vm.Runtime {
	t.Helper()
	rt := vm.NewRuntime()
	prims.Install(rt)
	p := parse.New(rt)
	parse.RegisterBaseHooks(p)
	code, err := p.ParseCode(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	rt.Context = rt.NewContext(code, rt.Context.Names)
	if err := rt.Run(); err != nil {
		t.Fatalf("run %q: %v", src, err)
	}
	return rt
}

func TestArithmetic(t *testing.T) {
	rt := run(t, "#3 #4 +")
	if rt.Stack.Len() != 1 {
		t.Fatalf("expected one result, got %d", rt.Stack.Len())
	}
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 7 {
		t.Fatalf("expected 7, got %d", got.Int())
	}
}

func TestIntegerDivisionTruncatesTowardZero(t *testing.T) {
	rt := run(t, "#-7 #2 /")
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != -3 {
		t.Fatalf("expected -7/2 to truncate to -3, got %d", got.Int())
	}
}

func TestComparisonOperandOrder(t *testing.T) {
	rt := run(t, "#3 #5 <")
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 1 {
		t.Fatalf("expected `3 5 <` (3 < 5) to be true, got %d", got.Int())
	}
}

func TestStackShuffle(t *testing.T) {
	rt := run(t, "#1 #2 swap")
	top := rt.Stack.Top(2)
	if top[0].(vm.Integer).Int() != 2 || top[1].(vm.Integer).Int() != 1 {
		t.Fatalf("swap did not reorder as expected: %v", top)
	}
}

func TestNamedStoreRoundTrip(t *testing.T) {
	rt := run(t, `#42 'x sto x`)
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 42 {
		t.Fatalf("expected 42 recalled back, got %d", got.Int())
	}
}

func TestMissingSymbolSetsReason(t *testing.T) {
	rt := run(t, "doesnotexist")
	reason, ok := rt.Reason.(vm.String)
	if !ok || reason.S == "" {
		t.Fatal("expected a Reason to be set for a missing symbol")
	}
}

func TestIfte(t *testing.T) {
	rt := run(t, `#1 '::  #10 ; '::  #20 ; ifte`)
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 10 {
		t.Fatalf("expected the then-branch result 10, got %d", got.Int())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rt := run(t, `{ #1 #2 #3 } >json json>`)
	lst := rt.Stack.Top(1)[0].(*vm.List)
	if lst.Len() != 3 {
		t.Fatalf("expected 3 elements back, got %d", lst.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		if got := lst.Items[i].(vm.Integer).Int(); got != want {
			t.Fatalf("element %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestTypedIntAddition(t *testing.T) {
	rt := run(t, ":: #3 #4 +int ;")
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 7 {
		t.Fatalf("expected 3+4=7, got %d", got.Int())
	}
}

func TestStringConcatenation(t *testing.T) {
	rt := run(t, `:: "hel" "lo" +str ;`)
	got := rt.Stack.Top(1)[0].(vm.String)
	if got.S != "hello" {
		t.Fatalf(`expected "hello", got %q`, got.S)
	}
}

func TestListGetIsZeroBased(t *testing.T) {
	rt := run(t, `:: { #10 #20 #30 } #1 get ;`)
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 20 {
		t.Fatalf("expected index 1 of {10 20 30} to be 20, got %d", got.Int())
	}
}

func TestListPutIsCopyOnWrite(t *testing.T) {
	rt := run(t, `{ #10 #20 #30 } dup #99 #1 put`)
	top := rt.Stack.Top(2)
	orig := top[0].(*vm.List)
	updated := top[1].(*vm.List)
	if orig.Items[1].(vm.Integer).Int() != 20 {
		t.Fatalf("expected the original list to be untouched by put, got %d", orig.Items[1].(vm.Integer).Int())
	}
	if updated.Items[1].(vm.Integer).Int() != 99 {
		t.Fatalf("expected the updated list to carry the new value, got %d", updated.Items[1].(vm.Integer).Int())
	}
}

func TestListPopIsCopyOnWrite(t *testing.T) {
	rt := run(t, `{ #1 #2 #3 } dup pop`)
	top := rt.Stack.Top(3)
	orig := top[0].(*vm.List)
	rest := top[1].(*vm.List)
	popped := top[2].(vm.Integer)
	if orig.Len() != 3 {
		t.Fatalf("expected the original list to keep all 3 elements, got %d", orig.Len())
	}
	if rest.Len() != 2 {
		t.Fatalf("expected the popped list to have 2 elements, got %d", rest.Len())
	}
	if popped.Int() != 3 {
		t.Fatalf("expected the popped element to be 3, got %d", popped.Int())
	}
}

func TestListLen(t *testing.T) {
	rt := run(t, "{ #1 #2 #3 } len")
	got := rt.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 3 {
		t.Fatalf("expected len 3, got %d", got.Int())
	}
}
