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

// Package vm implements the Corvid interpreter engine: a value-typed,
// stack-oriented, postfix virtual machine in the lineage of RPL.
//
// A program is a Code value — an ordered sequence of self-evaluating
// objects. Evaluating a Code value pushes a new Context over it; the
// Context's Eval method then walks the sequence element by element, each
// element's Eval method returning the next step to run. The outer loop
// (Runtime.Run) is a trampoline: it repeatedly calls whatever Step the
// previous call returned until the Running flag clears. There is no
// recursive Go call for each RPL-level evaluation step; a Step is a Go
// method value (effectively a function pointer) of whichever Value is
// running next, so RPL-level tail calls can be folded into the current
// Context without growing the Go call stack (see Runtime.NewCall).
//
// Named storage (Directory) is a singly linked list of Tags, not a map:
// this preserves insertion order, which matters because local variables
// are introduced by prepending a new directory to the front of the
// current Context's name chain, shadowing by position rather than by
// any notion of scope nesting.
//
// Everything a primitive operation needs — the operand stack, the named
// store, the type registry, the error/interrupt fields — hangs off a
// single *Runtime value. There are no package-level globals; two Runtime
// instances are fully independent interpreters.
package vm
