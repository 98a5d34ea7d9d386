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

// Package prims is a deliberately small demonstration primitive library:
// enough stack shuffling, typed arithmetic, comparisons, named-store
// operations, flow control, error-state inspection, and a JSON bridge to
// exercise every component of package vm end to end. It is not a
// reimplementation of the original language's standard library — that
// remains out of scope — it exists so the engine has something real to
// run.
package prims
