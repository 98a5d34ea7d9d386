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

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// cmp defines one comparison word over Integer and Float pairs. Operand
// order is normalized so that `a b <` means a < b, not the reverse — the
// deliberate resolution of this engine's one open comparison question.
func cmp(rt *vm.Runtime, name string, iop func(a, b int64) bool, fop func(a, b float64) bool) {
	intID := rt.Types.ID("Integer")
	floatID := rt.Types.ID("Float")
	def(rt, name,
		vm.Dispatch{Types: []int{intID, intID}, Func: func(rt *vm.Runtime) vm.Step {
			b := rt.Stack.Pop().(vm.Integer)
			a := rt.Stack.Pop().(vm.Integer)
			rt.Stack.Push(rt.NewInteger(boolInt(iop(a.Int(), b.Int()))))
			return rt.Context.Eval
		}},
		vm.Dispatch{Types: []int{floatID, floatID}, Func: func(rt *vm.Runtime) vm.Step {
			b := rt.Stack.Pop().(vm.Float)
			a := rt.Stack.Pop().(vm.Float)
			rt.Stack.Push(rt.NewInteger(boolInt(fop(a.F, b.F))))
			return rt.Context.Eval
		}},
	)
}

func installComparisons(rt *vm.Runtime) {
	cmp(rt, "<", func(a, b int64) bool { return a < b }, func(a, b float64) bool { return a < b })
	cmp(rt, ">", func(a, b int64) bool { return a > b }, func(a, b float64) bool { return a > b })
	cmp(rt, "<=", func(a, b int64) bool { return a <= b }, func(a, b float64) bool { return a <= b })
	cmp(rt, ">=", func(a, b int64) bool { return a >= b }, func(a, b float64) bool { return a >= b })
	cmp(rt, "=", func(a, b int64) bool { return a == b }, func(a, b float64) bool { return a == b })
	cmp(rt, "<>", func(a, b int64) bool { return a != b }, func(a, b float64) bool { return a != b })
}
