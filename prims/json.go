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

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/corvidlang/corvid/vm"
)

// installJSON wires >json and json>, a small demonstration bridge between a
// List of Integers/Floats/Strings and a JSON array — exercising the typed
// Builtin dispatch against a real external wire format.
func installJSON(rt *vm.Runtime) {
	listID := rt.Types.ID("List")
	stringID := rt.Types.ID("String")

	def(rt, ">json", vm.Dispatch{Types: []int{listID}, Func: func(rt *vm.Runtime) vm.Step {
		lst := rt.Stack.Pop().(*vm.List)
		doc := "[]"
		var err error
		for i, item := range lst.Items {
			path := strconv.Itoa(i)
			switch x := item.(type) {
			case vm.Integer:
				doc, err = sjson.Set(doc, path, x.Int())
			case vm.Float:
				doc, err = sjson.Set(doc, path, x.F)
			case vm.String:
				doc, err = sjson.Set(doc, path, x.S)
			default:
				return rt.Ded(">json only knows integers, floats, and strings")
			}
			if err != nil {
				return rt.Ded(err.Error())
			}
		}
		rt.Stack.Push(rt.NewString(doc))
		return rt.Context.Eval
	}})

	def(rt, "json>", vm.Dispatch{Types: []int{stringID}, Func: func(rt *vm.Runtime) vm.Step {
		text := rt.Stack.Pop().(vm.String)
		if !gjson.Valid(text.S) {
			return rt.Ded("That is not valid JSON")
		}
		result := gjson.Parse(text.S)
		if !result.IsArray() {
			return rt.Ded("json> only knows how to unpack a JSON array")
		}
		var items []vm.Value
		for _, elem := range result.Array() {
			switch elem.Type {
			case gjson.Number:
				if elem.Num == float64(int64(elem.Num)) {
					items = append(items, rt.NewInteger(int64(elem.Num)))
				} else {
					items = append(items, rt.NewFloat(elem.Num))
				}
			case gjson.String:
				items = append(items, rt.NewString(elem.Str))
			default:
				items = append(items, rt.NewString(elem.Raw))
			}
		}
		rt.Stack.Push(rt.NewList(items...))
		return rt.Context.Eval
	}})
}
