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

package prims

import "github.com/corvidlang/corvid/vm"

// installFlow wires if/ifte over quoted Code blocks: the branches must
// reach the stack already unevaluated (via a Quote in source), since a bare
// Code value self-evaluates the instant the outer Context steps over it.
func installFlow(rt *vm.Runtime) {
	intID := rt.Types.ID("Integer")
	codeID := rt.Types.ID("Code")

	def(rt, "ifte", vm.Dispatch{Types: []int{intID, codeID, codeID}, Func: func(rt *vm.Runtime) vm.Step {
		elseBranch := rt.Stack.Pop().(*vm.Code)
		thenBranch := rt.Stack.Pop().(*vm.Code)
		cond := rt.Stack.Pop().(vm.Integer)
		if cond.Int() != 0 {
			return rt.NewCall(thenBranch)
		}
		return rt.NewCall(elseBranch)
	}})

	def(rt, "if", vm.Dispatch{Types: []int{intID, codeID}, Func: func(rt *vm.Runtime) vm.Step {
		thenBranch := rt.Stack.Pop().(*vm.Code)
		cond := rt.Stack.Pop().(vm.Integer)
		if cond.Int() == 0 {
			return rt.Context.Eval
		}
		return rt.NewCall(thenBranch)
	}})

	def(rt, "eval", vm.Dispatch{Types: []int{codeID}, Func: func(rt *vm.Runtime) vm.Step {
		code := rt.Stack.Pop().(*vm.Code)
		return rt.NewCall(code)
	}})
}
