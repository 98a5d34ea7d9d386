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

// Tag is a mutable (name, object) cell: the unit of named binding in a
// Directory chain, and the basis of user-type instances. Its Obj field may
// be replaced in place (stoto); the Tag itself is copied (not its Obj) by
// Copy, so directory copies get fresh cells pointing at shared objects.
type Tag struct {
	typ  int
	Name string
	Obj  Value

	// UserEval, when non-nil, is invoked after a Tag pushes itself on
	// evaluation — the per-tag evaluator a user type installs via regtype.
	// nil means "plain tag", which just continues the current context.
	UserEval func(rt *Runtime) Step
}

func (v *Tag) TypeID() int { return v.typ }

func (v *Tag) Copy() Value {
	return &Tag{typ: v.typ, Name: v.Name, Obj: v.Obj, UserEval: v.UserEval}
}

func (v *Tag) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	if v.UserEval != nil {
		return v.UserEval
	}
	return rt.Context.Eval
}
