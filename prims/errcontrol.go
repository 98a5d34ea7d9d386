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

// installErrorControl wires errstate (inspect and clear Caller/Reason/
// Interrupt) and lastcall (re-invoke whatever was last blamed), the
// primitives an EXCEPT handler uses to decide what to do with a Ded.
func installErrorControl(rt *vm.Runtime) {
	def(rt, "errstate", vm.Dispatch{Func: func(rt *vm.Runtime) vm.Step {
		rt.Stack.Push(rt.Caller)
		rt.Stack.Push(rt.Reason)
		interruptFlag := int64(0)
		if rt.Interrupt {
			interruptFlag = 1
		}
		rt.Stack.Push(rt.NewInteger(interruptFlag))
		rt.ClearErrorState()
		return rt.Context.Eval
	}})

	def(rt, "lastcall", vm.Dispatch{Func: func(rt *vm.Runtime) vm.Step {
		return rt.Caller.Eval
	}})

	def(rt, "clrrun", vm.Dispatch{Func: func(rt *vm.Runtime) vm.Step {
		rt.Running = false
		return nil
	}})
}
