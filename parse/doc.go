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

// Package parse turns source text into vm.Value objects.
//
// A Parser owns an ordered list of Hooks, one per registered base type; at
// each token boundary it offers the cursor to every hook in order until one
// claims it, mirroring how the type registry's base variants prepend to the
// parse dispatch order as they register (see vm.TypeRegistry.Register).
// RegisterBaseHooks (called by package boot when it wires a System) installs
// the concrete hook list in the same order the runtime registers its base
// types; each hook closes over the Runtime and builds its values through the
// Runtime's constructors, which stamp them with their registered type id.
package parse
