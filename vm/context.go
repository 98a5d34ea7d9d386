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

// Context is one call frame: a Code object paired with an instruction
// pointer and the name chain active at this call depth. The call stack is
// realized purely through the Next chain of Contexts; a new call either
// pushes a new Context (Next pointing at the caller) or, when the current
// instruction is the Return sentinel, overwrites the current Context in
// place — the tail-call fold (see Runtime.NewCall) that keeps Go's own call
// stack flat no matter how deep the RPL-level recursion goes.
type Context struct {
	typ   int
	Code  *Code
	IP    int
	Names *Directory
	Next  *Context
	Depth int
}

func (v *Context) TypeID() int { return v.typ }

func (v *Context) Copy() Value {
	return &Context{typ: v.typ, Code: v.Code, IP: v.IP, Names: v.Names, Next: v.Next, Depth: v.Depth}
}

func (v *Context) Eval(rt *Runtime) Step {
	if rt.Break {
		rt.Interrupt = true
		rt.Break = false
		return rt.Ded("Break")
	}
	if v.IP < v.Code.Len() {
		obj := v.Code.Items[v.IP]
		v.IP++
		return obj.Eval
	}
	return rt.Ret(v)
}

// Ret pops the call stack: the context below (Next) resumes, or, if ctx was
// the root context, the Runtime stops — falling off the end of the root
// context ends the run.
func (rt *Runtime) Ret(ctx *Context) Step {
	if ctx.Next == nil {
		rt.Running = false
		return nil
	}
	rt.Context = ctx.Next
	return rt.Context.Eval
}
