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

package boot

import (
	"github.com/corvidlang/corvid/parse"
	"github.com/corvidlang/corvid/prims"
	"github.com/corvidlang/corvid/vm"
)

// System bundles a Runtime with the Parser and primitive library it needs
// to actually run a program.
type System struct {
	RT     *vm.Runtime
	Parser *parse.Parser
}

// New builds a fully wired System: a Runtime with its base types
// registered, a Parser with a Hook for every one of them, the
// demonstration primitive library installed, and the Types directory
// populated.
func New(opts ...vm.Option) *System {
	rt := vm.NewRuntime(opts...)
	p := parse.New(rt)
	parse.RegisterBaseHooks(p)
	prims.Install(rt)

	s := &System{RT: rt, Parser: p}
	s.SyncTypeDirectory()
	return s
}

// SyncTypeDirectory mirrors the TypeRegistry's name/id table into a "Types"
// directory in the root name chain, so RPL-level code (and the `corvid
// types` command) can introspect it the same way it looks up anything
// else. Each type name maps to its Integer id, and Types.n is a List of the
// names indexed by id.
func (s *System) SyncTypeDirectory() {
	rt := s.RT
	names := rt.Types.Names()
	values := make([]vm.Value, len(names))
	nameList := make([]vm.Value, len(names))
	for i, n := range names {
		values[i] = rt.NewInteger(int64(i))
		nameList[i] = rt.NewString(n)
	}
	dir := rt.NewDirectoryFrom(append(names, "n"), append(values, rt.NewList(nameList...)))
	rt.Store([]string{"Types"}, dir)
}
