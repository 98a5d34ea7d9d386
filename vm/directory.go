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

import "github.com/pkg/errors"

// DefaultCopyDepth is the structural-copy/cycle-detection recursion bound
// (spec.md's CP_DEPTH): DefaultConfig's CopyDepth, and the fixed bound
// Directory.Copy uses whatever the Runtime's Config says.
const DefaultCopyDepth = 64

// Directory is a named-storage node: a singly linked list of Tags
// terminated by the Runtime's self-referential sentinel. The first node of
// every chain is a null-named placeholder; name lookups skip entries whose
// tag name is empty only incidentally, by virtue of no real name ever being
// empty — the placeholder simply never matches a lookup.
type Directory struct {
	typ  int
	Tag  *Tag
	Next *Directory
}

func (v *Directory) TypeID() int { return v.typ }

func (v *Directory) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// Copy performs a bounded structural copy: new spine nodes and new Tags,
// recursing into nested Directories up to DefaultCopyDepth. Beyond that
// depth a nested Directory is shared rather than copied, per spec.md's
// deliberately-bounded cycle/copy policy.
func (v *Directory) Copy() Value {
	return Value(v.copyTo(DefaultCopyDepth))
}

func (v *Directory) copyTo(depth int) *Directory {
	if depth <= 0 {
		return v
	}
	head := &Directory{typ: v.typ, Tag: v.Tag.Copy().(*Tag), Next: v.Next}
	rest := head
	current := v
	for current.Next != current.Next.Next {
		current = current.Next
		rest.Next = &Directory{typ: v.typ, Tag: current.Tag.Copy().(*Tag), Next: current.Next}
		rest = rest.Next
		if nested, ok := rest.Tag.Obj.(*Directory); ok {
			rest.Tag.Obj = Value(nested.copyTo(depth - 1))
		}
	}
	return head
}

// NewDirectory builds a fresh first-directory-entry wrapping next (the
// null-named placeholder head every name chain starts with). If next is
// nil, the new directory terminates at the Runtime's sentinel, making it a
// complete, empty, standalone chain.
func (rt *Runtime) NewDirectory(next *Directory) *Directory {
	if next == nil {
		next = rt.lastObj
	}
	return &Directory{typ: rt.tid.Directory, Tag: rt.NewTag("", rt.NewComment("NIL")), Next: next}
}

// NewDirectoryFrom builds a standalone Directory chain, terminated at the
// Runtime's sentinel, containing one entry per (names[i], values[i]) pair
// in order — the shape a directory-literal parses into.
func (rt *Runtime) NewDirectoryFrom(names []string, values []Value) *Directory {
	head := rt.NewDirectory(nil)
	cur := head
	for i, n := range names {
		entry := &Directory{typ: rt.tid.Directory, Tag: rt.NewTag(n, values[i]), Next: rt.lastObj}
		cur.Next = entry
		cur = entry
	}
	return head
}

// Recall walks path from the current Context's name chain and returns the
// bound value, or nil if any component is missing or an intermediate value
// is not a Directory.
func (rt *Runtime) Recall(path []string) Value {
	var cur Value = rt.Context.Names
	for _, name := range path {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil
		}
		for dir.Tag.Name != name {
			dir = dir.Next
			if dir == rt.lastObj {
				return nil
			}
		}
		cur = dir.Tag.Obj
	}
	return cur
}

// RecallFrom is Recall relative to an explicit starting Directory rather
// than the current Context's name chain (used by dotted access into a
// Directory value already on the stack).
func (rt *Runtime) RecallFrom(start *Directory, path []string) Value {
	var cur Value = start
	for _, name := range path {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil
		}
		for dir.Tag.Name != name {
			dir = dir.Next
			if dir == rt.lastObj {
				return nil
			}
		}
		cur = dir.Tag.Obj
	}
	return cur
}

// Deref is Recall but returns the matching Tag itself, for reference
// semantics (deref, tlocal-style closures over a live cell).
func (rt *Runtime) Deref(path []string) *Tag {
	var cur Value = rt.Context.Names
	for i, name := range path {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil
		}
		for dir.Tag.Name != name {
			dir = dir.Next
			if dir == rt.lastObj {
				return nil
			}
		}
		if i == len(path)-1 {
			return dir.Tag
		}
		cur = dir.Tag.Obj
	}
	return nil
}

// Store walks path; at the final component it replaces an existing Tag's
// object or appends a new entry at the end of the current Directory chain.
// Missing or non-Directory intermediate components fail the whole
// operation (no implicit directory creation). Store does not perform cycle
// detection — see StoreChecked for the checked, rollback-capable version
// primitives should use.
func (rt *Runtime) Store(path []string, value Value) bool {
	if len(path) == 0 {
		return false
	}
	counter := len(path) - 1
	current := rt.Context.Names
	for _, name := range path {
		for current.Tag.Name != name {
			if current.Next == rt.lastObj {
				if counter > 0 {
					return false
				}
				current.Next = &Directory{typ: current.typ, Tag: rt.NewTag(name, value), Next: rt.lastObj}
				return true
			}
			current = current.Next
		}
		if counter > 0 {
			counter--
			next, ok := current.Tag.Obj.(*Directory)
			if !ok {
				return false
			}
			current = next
		}
	}
	current.Tag.Obj = value
	return true
}

// StoreChecked stores value at path and then enforces the no-cycles
// invariant (spec.md §4.3): if the newly stored value is a Directory that
// now transitively contains a circulating Symbol, or is itself a
// circulating Symbol, the store is rolled back (restoring the previous
// value, or erasing the entry if it was newly created) and an error is
// returned.
func (rt *Runtime) StoreChecked(path []string, value Value) error {
	original := rt.Recall(path)
	existed := original != nil

	if !rt.Store(path, value) {
		return errors.New("to store to a directory, first the directory must exist")
	}

	cyclic := false
	switch v := value.(type) {
	case *Directory:
		cyclic = rt.circDir(v)
	case Symbol:
		cyclic = rt.circSym(v.Path)
	}
	if cyclic {
		if existed {
			rt.Store(path, original)
		} else {
			rt.Erase(path)
		}
		return errors.New("circular reference")
	}
	return nil
}

// Erase removes the matching entry by splicing it out of the chain. The
// null-named head placeholder is never reachable for removal (path
// components can never be empty strings from the parser), empty
// directories and missing names fail.
func (rt *Runtime) Erase(path []string) bool {
	if len(path) == 0 {
		return false
	}
	current := rt.Context.Names
	last := current
	for idx, name := range path {
		if current.Next == rt.lastObj {
			return false
		}
		for current.Next.Tag.Name != name {
			current = current.Next
			if current.Next == rt.lastObj {
				return false
			}
		}
		last = current
		if idx < len(path)-1 {
			next, ok := current.Next.Tag.Obj.(*Directory)
			if !ok {
				return false
			}
			current = next
		}
	}
	last.Next = last.Next.Next
	return true
}

// circSym walks the chain Symbol -> Recall(Symbol.Path) -> ... reporting a
// cycle if a previously seen path is revisited; it terminates false as soon
// as a non-Symbol is reached or Recall finds nothing.
func (rt *Runtime) circSym(path []string) bool {
	seen := [][]string{append([]string(nil), path...)}
	cur := rt.Recall(path)
	for {
		if cur == nil {
			return false
		}
		sym, ok := cur.(Symbol)
		if !ok {
			return false
		}
		for _, s := range seen {
			if equalPath(s, sym.Path) {
				return true
			}
		}
		seen = append(seen, append([]string(nil), sym.Path...))
		cur = rt.Recall(sym.Path)
	}
}

// circDir performs a bounded DFS into all Symbols and nested Directories
// reachable from top, reporting a cycle if any Symbol within circulates
// under the stored name prefix.
func (rt *Runtime) circDir(top *Directory) bool {
	var recurse func(prefix []string, dir *Directory, depth int) bool
	recurse = func(prefix []string, dir *Directory, depth int) bool {
		if depth <= 0 {
			return false
		}
		d := dir.Next
		for d != rt.lastObj {
			switch obj := d.Tag.Obj.(type) {
			case Symbol:
				full := append(append([]string(nil), prefix...), obj.Path...)
				if rt.circSym(full) {
					return true
				}
			case *Directory:
				next := append(append([]string(nil), prefix...), d.Tag.Name)
				if recurse(next, obj, depth-1) {
					return true
				}
			}
			d = d.Next
		}
		return false
	}
	return recurse(nil, top, rt.Config.CopyDepth)
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
