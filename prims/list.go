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

// installList wires the 0-based subscript operations over *vm.List: get,
// put (copy-on-write), len, and pop.
func installList(rt *vm.Runtime) {
	intID := rt.Types.ID("Integer")
	listID := rt.Types.ID("List")

	def(rt, "get", vm.Dispatch{Types: []int{listID, intID}, Func: func(rt *vm.Runtime) vm.Step {
		i := rt.Stack.Pop().(vm.Integer).Int()
		lst := rt.Stack.Pop().(*vm.List)
		if i < 0 || i >= int64(lst.Len()) {
			rt.Stack.Push(lst)
			rt.Stack.Push(rt.NewInteger(i))
			return rt.Ded("This List deserves a better subscript")
		}
		rt.Stack.Push(lst.Items[i])
		return rt.Context.Eval
	}})

	def(rt, "put", vm.Dispatch{Types: []int{listID, vm.TypeAny, intID}, Func: func(rt *vm.Runtime) vm.Step {
		i := rt.Stack.Pop().(vm.Integer).Int()
		obj := rt.Stack.Pop()
		lst := rt.Stack.Pop().(*vm.List)
		if i < 0 || i >= int64(lst.Len()) {
			rt.Stack.Push(lst)
			rt.Stack.Push(obj)
			rt.Stack.Push(rt.NewInteger(i))
			return rt.Ded("This List deserves a better subscript")
		}
		cp := lst.Copy().(*vm.List)
		cp.Items[i] = obj
		rt.Stack.Push(cp)
		return rt.Context.Eval
	}})

	def(rt, "len", vm.Dispatch{Types: []int{listID}, Func: func(rt *vm.Runtime) vm.Step {
		lst := rt.Stack.Pop().(*vm.List)
		rt.Stack.Push(rt.NewInteger(int64(lst.Len())))
		return rt.Context.Eval
	}})

	def(rt, "pop", vm.Dispatch{Types: []int{listID}, Func: func(rt *vm.Runtime) vm.Step {
		lst := rt.Stack.Pop().(*vm.List)
		if lst.Len() == 0 {
			rt.Stack.Push(lst)
			return rt.Ded("Once you pop, you must eventually stop")
		}
		cp := lst.Copy().(*vm.List)
		item := cp.Pop()
		rt.Stack.Push(cp)
		rt.Stack.Push(item)
		return rt.Context.Eval
	}})
}
