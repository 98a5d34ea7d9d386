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

func intBinOp(op func(a, b int64) int64) func(rt *vm.Runtime) vm.Step {
	return func(rt *vm.Runtime) vm.Step {
		b := rt.Stack.Pop().(vm.Integer)
		a := rt.Stack.Pop().(vm.Integer)
		rt.Stack.Push(rt.NewInteger(op(a.Int(), b.Int())))
		return rt.Context.Eval
	}
}

func floatBinOp(op func(a, b float64) float64) func(rt *vm.Runtime) vm.Step {
	return func(rt *vm.Runtime) vm.Step {
		b := rt.Stack.Pop().(vm.Float)
		a := rt.Stack.Pop().(vm.Float)
		rt.Stack.Push(rt.NewFloat(op(a.F, b.F)))
		return rt.Context.Eval
	}
}

// installArithmetic wires +, -, *, / over Integer and Float pairs, plus the
// type-specific +int and +str variants from the primitive catalogue.
// Integer division truncates toward zero — Go's native int64 division
// already does this, so no extra rounding step is needed; that's the
// deliberate resolution of this engine's one open arithmetic question.
func installArithmetic(rt *vm.Runtime) {
	intID := rt.Types.ID("Integer")
	floatID := rt.Types.ID("Float")

	def(rt, "+",
		vm.Dispatch{Types: []int{intID, intID}, Func: intBinOp(func(a, b int64) int64 { return a + b })},
		vm.Dispatch{Types: []int{floatID, floatID}, Func: floatBinOp(func(a, b float64) float64 { return a + b })},
	)
	def(rt, "-",
		vm.Dispatch{Types: []int{intID, intID}, Func: intBinOp(func(a, b int64) int64 { return a - b })},
		vm.Dispatch{Types: []int{floatID, floatID}, Func: floatBinOp(func(a, b float64) float64 { return a - b })},
	)
	def(rt, "*",
		vm.Dispatch{Types: []int{intID, intID}, Func: intBinOp(func(a, b int64) int64 { return a * b })},
		vm.Dispatch{Types: []int{floatID, floatID}, Func: floatBinOp(func(a, b float64) float64 { return a * b })},
	)
	def(rt, "/",
		vm.Dispatch{Types: []int{intID, intID}, Func: func(rt *vm.Runtime) vm.Step {
			b := rt.Stack.Top(1)[0].(vm.Integer)
			if b.Int() == 0 {
				return rt.Ded("Division by zero is a sin")
			}
			rt.Stack.Pop()
			a := rt.Stack.Pop().(vm.Integer)
			rt.Stack.Push(rt.NewInteger(a.Int() / b.Int()))
			return rt.Context.Eval
		}},
		vm.Dispatch{Types: []int{floatID, floatID}, Func: func(rt *vm.Runtime) vm.Step {
			b := rt.Stack.Top(1)[0].(vm.Float)
			if b.F == 0 {
				return rt.Ded("Division by zero is a sin")
			}
			return floatBinOp(func(a, b float64) float64 { return a / b })(rt)
		}},
	)
	strID := rt.Types.ID("String")
	def(rt, "+int", vm.Dispatch{Types: []int{intID, intID}, Func: intBinOp(func(a, b int64) int64 { return a + b })})
	def(rt, "+str", vm.Dispatch{Types: []int{strID, strID}, Func: func(rt *vm.Runtime) vm.Step {
		b := rt.Stack.Pop().(vm.String)
		a := rt.Stack.Pop().(vm.String)
		rt.Stack.Push(rt.NewString(a.S + b.S))
		return rt.Context.Eval
	}})

	def(rt, "neg",
		vm.Dispatch{Types: []int{intID}, Func: func(rt *vm.Runtime) vm.Step {
			a := rt.Stack.Pop().(vm.Integer)
			rt.Stack.Push(rt.NewInteger(-a.Int()))
			return rt.Context.Eval
		}},
		vm.Dispatch{Types: []int{floatID}, Func: func(rt *vm.Runtime) vm.Step {
			a := rt.Stack.Pop().(vm.Float)
			rt.Stack.Push(rt.NewFloat(-a.F))
			return rt.Context.Eval
		}},
	)
}
