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

// TypeAny is the reserved wildcard type id used in dispatch tables and the
// empty top of the registry.
const TypeAny = 0

// TypeRegistry catalogues the VM's value variants: a name-to-id mapping, the
// inverse id-to-name list, and a table of user-registered prototypes. Base
// variants register in boot order; ids are dense and persist for the life
// of the registry. A parser (see package parse) maintains its own ordered
// list of parse hooks in lock-step with registration order, since a parse
// hook needs the freshly assigned id to stamp onto the values it produces.
type TypeRegistry struct {
	id    map[string]int
	names []string
	proto map[string]Value
}

// NewTypeRegistry returns an empty registry with only the reserved "Any"
// entry at id 0.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		id:    map[string]int{"Any": TypeAny},
		names: []string{"Any"},
		proto: make(map[string]Value),
	}
}

// Register assigns the next dense id to a base variant and returns it. The
// caller (typically package boot, in concert with package parse) is
// responsible for prepending the variant's parse hook to the parser's
// dispatch order — the registry itself only tracks name/id/name-list state,
// matching spec.md's "Registering a base variant appends to the end of the
// ordered list but prepends to the parse list": the append happens here, the
// prepend happens in the parser.
func (r *TypeRegistry) Register(name string) int {
	id := len(r.names)
	r.id[name] = id
	r.names = append(r.names, name)
	return id
}

// RegisterUser registers a user-defined type with a prototype value that
// future instantiations clone from (regtype). Unlike Register, user types
// do not participate in the parser's dispatch order.
func (r *TypeRegistry) RegisterUser(name string, proto Value) int {
	id := len(r.names)
	r.id[name] = id
	r.names = append(r.names, name)
	r.proto[name] = proto
	return id
}

// ID returns the type id registered for name, or -1 if name is unknown.
func (r *TypeRegistry) ID(name string) int {
	if id, ok := r.id[name]; ok {
		return id
	}
	return -1
}

// Name returns the type name for id, or "" if id is out of range.
func (r *TypeRegistry) Name(id int) string {
	if id < 0 || id >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// Names returns the id-indexed list of all registered type names (the "n"
// list mirrored into Types.n).
func (r *TypeRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Prototype returns the registered prototype for a user type name, and
// whether one was found.
func (r *TypeRegistry) Prototype(name string) (Value, bool) {
	v, ok := r.proto[name]
	return v, ok
}

// UserTypeNames returns the names of all registered user types, in
// registration order: it walks the id-ordered name list and keeps the names
// that have a prototype, so the order does not depend on the proto map.
func (r *TypeRegistry) UserTypeNames() []string {
	names := make([]string, 0, len(r.proto))
	for _, n := range r.names {
		if _, ok := r.proto[n]; ok {
			names = append(names, n)
		}
	}
	return names
}
