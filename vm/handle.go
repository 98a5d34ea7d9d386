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

import "io"

// Handle wraps an external I/O resource (a file, typically) as a first
// class value. EOF latches true once a read comes up short, mirroring the
// original runtime's io type, which exposes end-of-file as a flag on the
// object rather than as a distinguished read error. Handle is shallow-
// copied: duplicating a Handle value shares the underlying resource, it
// does not reopen it.
type Handle struct {
	typ    int
	Name   string
	Reader io.Reader
	Writer io.Writer
	Closer io.Closer
	EOF    bool
}

func (v *Handle) TypeID() int { return v.typ }

func (v *Handle) Copy() Value {
	cp := *v
	return &cp
}

func (v *Handle) Eval(rt *Runtime) Step {
	rt.Stack.Push(v)
	return rt.Context.Eval
}

// Close releases the underlying resource, if it supports closing.
func (v *Handle) Close() error {
	if v.Closer == nil {
		return nil
	}
	return v.Closer.Close()
}
