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

func addRow(rt *Runtime) Dispatch {
	return Dispatch{
		Types: []int{rt.tid.Integer, rt.tid.Integer},
		Func: func(rt *Runtime) Step {
			y := rt.Stack.Pop().(Integer)
			x := rt.Stack.Pop().(Integer)
			rt.Stack.Push(rt.NewInteger(x.Int() + y.Int()))
			return rt.Context.Eval
		},
	}
}

func TestBuiltinDispatchPicksMatchingRow(t *testing.T) {
	rt := NewRuntime()
	b := rt.NewBuiltin("add", addRow(rt))
	rt.Stack.Push(rt.NewInteger(2))
	rt.Stack.Push(rt.NewInteger(3))

	step := b.Eval(rt)
	step(rt)

	top := rt.Stack.Top(1)[0].(Integer)
	if top.Int() != 5 {
		t.Fatalf("got %d, want 5", top.Int())
	}
}

func TestBuiltinDispatchFailureTooShallow(t *testing.T) {
	rt := NewRuntime()
	b := rt.NewBuiltin("add", addRow(rt))
	rt.Stack.Push(rt.NewInteger(1))

	b.Eval(rt)

	reason := rt.Reason.(String).S
	if !strings.Contains(reason, "How about") {
		t.Fatalf("expected an arity complaint, got %q", reason)
	}
}

func TestBuiltinDispatchFailureNoRowMatches(t *testing.T) {
	rt := NewRuntime()
	b := rt.NewBuiltin("add", addRow(rt))
	rt.Stack.Push(rt.NewString("x"))
	rt.Stack.Push(rt.NewString("y"))

	b.Eval(rt)

	reason := rt.Reason.(String).S
	if !strings.Contains(reason, "ways to call add") {
		t.Fatalf("expected a no-matching-row complaint, got %q", reason)
	}
}

func TestInternalEvalReturnsFuncWithoutPushing(t *testing.T) {
	rt := NewRuntime()
	called := false
	in := rt.NewInternal("probe", func(rt *Runtime) Step {
		called = true
		return nil
	})
	depthBefore := rt.Stack.Len()

	step := in.Eval(rt)
	step(rt)

	if !called {
		t.Fatal("expected Internal.Eval's returned Step to be in.Func")
	}
	if rt.Stack.Len() != depthBefore {
		t.Fatal("expected Internal.Eval not to push anything onto the stack")
	}
}
