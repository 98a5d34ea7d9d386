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

// List is an ordered, mutable-by-copy sequence of values. Structural
// mutation (put, etc.) goes through Copy first so that any List value that
// existed before the mutation is unaffected — a new spine, shared leaves.
type List struct {
	typ   int
	Items []Value
}

func (v *List) TypeID() int { return v.typ }

func (v *List) Copy() Value {
	items := make([]Value, len(v.Items))
	copy(items, v.Items)
	return &List{typ: v.typ, Items: items}
}

func (v *List) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// Len returns the number of elements.
func (v *List) Len() int { return len(v.Items) }

// Push appends a value, used to implement the operand stack itself (a List
// used as a stack, per spec.md §3: "The operand stack is a List whose stack
// operations are append/pop at the tail").
func (v *List) Push(x Value) { v.Items = append(v.Items, x) }

// Pop removes and returns the last element, or nil if empty.
func (v *List) Pop() Value {
	n := len(v.Items)
	if n == 0 {
		return nil
	}
	x := v.Items[n-1]
	v.Items = v.Items[:n-1]
	return x
}

// Top returns the top n elements in bottom-to-top order without popping
// them, for Builtin argument inspection. Panics if n > Len(); callers must
// check arity first.
func (v *List) Top(n int) []Value {
	return v.Items[len(v.Items)-n:]
}

// Code is a List whose last element must always be the Return sentinel
// (invariant 1, spec.md §3). Evaluating Code pushes a new call Context over
// it rather than pushing itself onto the operand stack.
type Code struct {
	typ   int
	Items []Value
}

func (v *Code) TypeID() int { return v.typ }

func (v *Code) Copy() Value {
	items := make([]Value, len(v.Items))
	copy(items, v.Items)
	return &Code{typ: v.typ, Items: items}
}

func (v *Code) Eval(rt *Runtime) Step {
	return rt.NewCall(v)
}

// Len returns the number of elements, Return sentinel included.
func (v *Code) Len() int { return len(v.Items) }
