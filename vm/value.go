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

// Step is the continuation returned by a Value's Eval method: whatever the
// trampoline in Runtime.Run should call next. Because Go method values bind
// their receiver, a Step is effectively a function pointer to "the next
// object's Eval", with no extra allocation beyond the method value itself.
type Step func(rt *Runtime) Step

// Value is implemented by every object the VM can push, store, or evaluate.
// TypeID identifies the dynamic type via the owning Runtime's TypeRegistry;
// Copy returns a value safe to mutate independently of the receiver (for
// immutable variants this is the receiver itself); Eval performs this
// value's self-evaluation effect and returns the next Step.
type Value interface {
	TypeID() int
	Copy() Value
	Eval(rt *Runtime) Step
}

// Integer is a signed machine integer.
type Integer struct {
	typ int
	N   int64
}

func (v Integer) TypeID() int   { return v.typ }
func (v Integer) Copy() Value   { return v }
func (v Integer) Int() int64    { return v.N }
func (v Integer) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// Float is an IEEE-754 double.
type Float struct {
	typ int
	F   float64
}

func (v Float) TypeID() int { return v.typ }
func (v Float) Copy() Value { return v }
func (v Float) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// String is immutable text.
type String struct {
	typ int
	S   string
}

func (v String) TypeID() int { return v.typ }
func (v String) Copy() Value { return v }
func (v String) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// Comment carries parsed remark text. It survives inside Lists and Code
// (so programs can be printed back out with their comments intact) but
// evaluating one is a pure no-op: the step continues without touching the
// operand stack.
type Comment struct {
	typ int
	S   string
}

func (v Comment) TypeID() int { return v.typ }
func (v Comment) Copy() Value { return v }
func (v Comment) Eval(rt *Runtime) Step {
	return rt.Context.Eval
}

// Quote wraps one value and, when evaluated, pushes the wrapped value
// instead of self — inhibiting exactly one further evaluation step. This is
// how a Symbol or Code value is pushed as data rather than resolved/run.
type Quote struct {
	typ   int
	Inner Value
}

func (v Quote) TypeID() int { return v.typ }
func (v Quote) Copy() Value { return v }
func (v Quote) Eval(rt *Runtime) Step {
	rt.Stack.Push(v.Inner)
	return rt.Context.Eval
}
