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

// Install populates rt's root name chain with the demonstration primitive
// library.
func Install(rt *vm.Runtime) {
	installStack(rt)
	installArithmetic(rt)
	installComparisons(rt)
	installNamedStore(rt)
	installFlow(rt)
	installErrorControl(rt)
	installJSON(rt)
	installIO(rt)
	installList(rt)
}

// def stores a freshly built Builtin at a top-level name.
func def(rt *vm.Runtime, name string, rows ...vm.Dispatch) {
	rt.Store([]string{name}, rt.NewBuiltin(name, rows...))
}
