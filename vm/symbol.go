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

import "strings"

// Symbol is a dotted path that, when evaluated, recalls its target in the
// named store and evaluates that instead.
type Symbol struct {
	typ  int
	Path []string
}

func (v Symbol) TypeID() int { return v.typ }
func (v Symbol) Copy() Value { return v }

// String renders the dotted path back to text, e.g. for "We seek X but we
// cannot always find X" style error messages.
func (v Symbol) String() string {
	return strings.Join(v.Path, ".")
}

func (v Symbol) Eval(rt *Runtime) Step {
	x := rt.Recall(v.Path)
	if x == nil {
		rt.Caller = rt.callerRuntime
		name := v.String()
		return rt.Ded("We seek " + name + " but we cannot always find " + name)
	}
	if rt.Break {
		rt.Interrupt = true
		rt.Break = false
		return rt.Ded("Break")
	}
	return x.Eval
}
