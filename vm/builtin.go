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

import "fmt"

// Dispatch is one row of a Builtin's argument-check table: Types lists the
// expected type id for each argument, bottom-to-top, matching how the
// operand stack is indexed; TypeAny (0) accepts anything in that slot.
// Func runs when the top of the operand stack matches this row.
type Dispatch struct {
	Types []int
	Func  func(rt *Runtime) Step
}

// Builtin is a typed, multiple-dispatch primitive operation: its Rows are
// tried top-to-bottom against the top len(row.Types) operand-stack items,
// and the first matching row's Func runs. A Builtin never pops its own
// arguments implicitly; each Func is responsible for popping what it
// consumed.
type Builtin struct {
	typ  int
	Name string
	Rows []Dispatch
}

func (v *Builtin) TypeID() int { return v.typ }
func (v *Builtin) Copy() Value { return v }

func (v *Builtin) Eval(rt *Runtime) Step {
	for _, row := range v.Rows {
		arity := len(row.Types)
		if rt.Stack.Len() < arity {
			continue
		}
		top := rt.Stack.Top(arity)
		matched := true
		for i, want := range row.Types {
			if want != TypeAny && top[i].TypeID() != want {
				matched = false
				break
			}
		}
		if matched {
			return row.Func
		}
	}
	return rt.builtinDispatchFailure(v)
}

// builtinDispatchFailure reports one of two distinct diagnoses: if the
// widest row needs more operands than are currently on the stack, the stack
// is reported as too shallow ("How about N arguments...", N being that
// widest row's arity), even when a narrower row could have fit; otherwise the
// operands present just don't match any of the typed rows on offer ("There
// are N ways to call...").
func (rt *Runtime) builtinDispatchFailure(v *Builtin) Step {
	widest := 0
	for _, row := range v.Rows {
		if len(row.Types) > widest {
			widest = len(row.Types)
		}
	}
	if rt.Stack.Len() < widest {
		return rt.Ded(fmt.Sprintf("How about %d arguments instead of %d?", widest, rt.Stack.Len()))
	}
	return rt.Ded(fmt.Sprintf("There are %d ways to call %s and you tried way #%d", len(v.Rows), v.Name, len(v.Rows)+1))
}

// Internal is a primitive implemented directly as a bare Go step, with no
// argument dispatch at all — the bridge used for runtime-internal control
// operations, most notably the Return sentinel every Code value ends with.
// Its Eval does not push anything onto the operand stack; it simply hands
// back Func as the next step to run, the same shape Builtin rows use.
type Internal struct {
	typ  int
	Name string
	Func func(rt *Runtime) Step
}

func (v *Internal) TypeID() int { return v.typ }
func (v *Internal) Copy() Value { return v }

func (v *Internal) Eval(rt *Runtime) Step {
	return v.Func
}
