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

package vm

import (
	"strings"
	"testing"
)

func TestRunEvaluatesLiteralsInOrder(t *testing.T) {
	rt := NewRuntime()
	code := rt.NewCode(rt.NewInteger(1), rt.NewInteger(2), rt.NewInteger(3))
	rt.Context = rt.NewContext(code, rt.Context.Names)

	if err := rt.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rt.Stack.Len() != 3 {
		t.Fatalf("expected 3 items on the stack, got %d", rt.Stack.Len())
	}
	top := rt.Stack.Top(3)
	for i, want := range []int64{1, 2, 3} {
		if got := top[i].(Integer).Int(); got != want {
			t.Fatalf("item %d: got %d, want %d", i, got, want)
		}
	}
}

func TestNewCallFoldsTailPositionInPlace(t *testing.T) {
	rt := NewRuntime()
	inner := rt.NewCode(rt.NewInteger(99))
	outer := rt.NewCode(inner)
	names := rt.Context.Names
	root := rt.NewContext(outer, names)
	rt.Context = root
	initialDepth := root.Depth

	next := root.Eval(rt)
	next = next(rt)
	_ = next

	if rt.Context != root {
		t.Fatal("expected the tail call to fold into the same Context, not push a new one")
	}
	if rt.Context.Depth != initialDepth {
		t.Fatalf("expected Depth unchanged across a tail fold, got %d want %d", rt.Context.Depth, initialDepth)
	}
	if rt.Context.Code != inner {
		t.Fatal("expected the folded Context's Code to be the called Code")
	}
}

func TestNewCallPushesNewContextOffTailPosition(t *testing.T) {
	rt := NewRuntime()
	inner := rt.NewCode(rt.NewInteger(1))
	outer := rt.NewCode(inner, rt.NewInteger(2))
	names := rt.Context.Names
	root := rt.NewContext(outer, names)
	rt.Context = root
	initialDepth := root.Depth

	next := root.Eval(rt)
	next(rt)

	if rt.Context == root {
		t.Fatal("expected a non-tail call to push a new Context")
	}
	if rt.Context.Next != root {
		t.Fatal("expected the new Context's Next to be the caller")
	}
	if rt.Context.Depth != initialDepth-1 {
		t.Fatalf("expected Depth to decrease by one, got %d want %d", rt.Context.Depth, initialDepth-1)
	}
}

func TestNewCallRefusesAtZeroDepth(t *testing.T) {
	rt := NewRuntime(WithCallDepth(0))
	inner := rt.NewCode(rt.NewInteger(1))
	outer := rt.NewCode(inner, rt.NewInteger(2))
	rt.Context = rt.NewContext(outer, rt.Context.Names)

	next := rt.Context.Eval(rt)
	next(rt)

	reason, ok := rt.Reason.(String)
	if !ok || !strings.Contains(reason.S, "recursions") {
		t.Fatalf("expected a recursion-depth Ded message, got %#v", rt.Reason)
	}
}

func TestRunEndsWhenRootContextFallsOff(t *testing.T) {
	rt := NewRuntime()
	code := rt.NewCode()
	rt.Context = rt.NewContext(code, rt.Context.Names)

	if err := rt.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rt.Running {
		t.Fatal("expected Running to clear once the root Context falls off its own end")
	}
}

func TestSymbolEvalMissingNameSetsReasonAndCaller(t *testing.T) {
	rt := NewRuntime()
	sym := Symbol{typ: rt.tid.Symbol, Path: []string{"NOWHERE"}}

	// Call Eval directly rather than draining Run(): with no EXCEPT handler
	// installed, letting the trampoline continue would recurse into Ded
	// again recalling EXCEPT, overwriting Reason before we can observe it.
	sym.Eval(rt)

	reason, ok := rt.Reason.(String)
	if !ok || !strings.Contains(reason.S, "NOWHERE") {
		t.Fatalf("expected Reason to name the missing symbol, got %#v", rt.Reason)
	}
	if rt.Caller != rt.callerRuntime {
		t.Fatal("expected Caller to be blamed on the runtime itself")
	}
}

func TestClearErrorStateResetsCallerAndReason(t *testing.T) {
	rt := NewRuntime()
	rt.Caller = rt.callerRuntime
	rt.Reason = rt.NewString("boom")
	rt.Interrupt = true

	rt.ClearErrorState()

	if rt.Interrupt {
		t.Fatal("expected Interrupt cleared")
	}
	if rt.Caller.(String).S != CallerNone {
		t.Fatalf("expected Caller reset to CallerNone, got %#v", rt.Caller)
	}
	if rt.Reason.(String).S != "" {
		t.Fatalf("expected Reason reset to empty, got %#v", rt.Reason)
	}
}
