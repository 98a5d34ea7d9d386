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

// installNamedStore wires sto/rcl/rm/exists against Symbol operands. A
// Symbol must arrive quoted ('name) — an unquoted one would have already
// recalled itself on the way to the stack.
func installNamedStore(rt *vm.Runtime) {
	symID := rt.Types.ID("Symbol")

	def(rt, "sto", vm.Dispatch{Types: []int{vm.TypeAny, symID}, Func: func(rt *vm.Runtime) vm.Step {
		sym := rt.Stack.Pop().(vm.Symbol)
		val := rt.Stack.Pop()
		if err := rt.StoreChecked(sym.Path, val); err != nil {
			return rt.Ded(err.Error())
		}
		return rt.Context.Eval
	}})

	def(rt, "rcl", vm.Dispatch{Types: []int{symID}, Func: func(rt *vm.Runtime) vm.Step {
		sym := rt.Stack.Pop().(vm.Symbol)
		v := rt.Recall(sym.Path)
		if v == nil {
			name := sym.String()
			return rt.Ded("We seek " + name + " but we cannot always find " + name)
		}
		rt.Stack.Push(v)
		return rt.Context.Eval
	}})

	def(rt, "rm", vm.Dispatch{Types: []int{symID}, Func: func(rt *vm.Runtime) vm.Step {
		sym := rt.Stack.Pop().(vm.Symbol)
		if !rt.Erase(sym.Path) {
			return rt.Ded("There is nothing there called " + sym.String())
		}
		return rt.Context.Eval
	}})

	def(rt, "exists", vm.Dispatch{Types: []int{symID}, Func: func(rt *vm.Runtime) vm.Step {
		sym := rt.Stack.Pop().(vm.Symbol)
		rt.Stack.Push(rt.NewInteger(boolInt(rt.Recall(sym.Path) != nil)))
		return rt.Context.Eval
	}})
}
