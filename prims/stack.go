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

func installStack(rt *vm.Runtime) {
	def(rt, "dup", vm.Dispatch{Types: []int{vm.TypeAny}, Func: func(rt *vm.Runtime) vm.Step {
		top := rt.Stack.Top(1)[0]
		rt.Stack.Push(rt.CopyValue(top))
		return rt.Context.Eval
	}})

	def(rt, "drop", vm.Dispatch{Types: []int{vm.TypeAny}, Func: func(rt *vm.Runtime) vm.Step {
		rt.Stack.Pop()
		return rt.Context.Eval
	}})

	def(rt, "swap", vm.Dispatch{Types: []int{vm.TypeAny, vm.TypeAny}, Func: func(rt *vm.Runtime) vm.Step {
		b := rt.Stack.Pop()
		a := rt.Stack.Pop()
		rt.Stack.Push(b)
		rt.Stack.Push(a)
		return rt.Context.Eval
	}})

	def(rt, "over", vm.Dispatch{Types: []int{vm.TypeAny, vm.TypeAny}, Func: func(rt *vm.Runtime) vm.Step {
		items := rt.Stack.Top(2)
		rt.Stack.Push(rt.CopyValue(items[0]))
		return rt.Context.Eval
	}})

	def(rt, "rot", vm.Dispatch{Types: []int{vm.TypeAny, vm.TypeAny, vm.TypeAny}, Func: func(rt *vm.Runtime) vm.Step {
		c := rt.Stack.Pop()
		b := rt.Stack.Pop()
		a := rt.Stack.Pop()
		rt.Stack.Push(b)
		rt.Stack.Push(c)
		rt.Stack.Push(a)
		return rt.Context.Eval
	}})

	def(rt, "depth", vm.Dispatch{Func: func(rt *vm.Runtime) vm.Step {
		rt.Stack.Push(rt.NewInteger(int64(rt.Stack.Len())))
		return rt.Context.Eval
	}})
}
