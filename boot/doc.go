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

// Package boot wires a vm.Runtime, a parse.Parser, and the prims
// demonstration library together into one runnable System, and implements
// the on-disk loading path every program goes through: read a file (capped
// at Config.MaxRead bytes), wrap it as a `:: ... ;` body, parse it, and
// hand the resulting Code to the Runtime. Boot additionally mirrors the
// live type registry into a `Types` directory in the named store, for
// introspection, and assembles the BASDIR/boot-file bootstrap sequence.
package boot
