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

import (
	"bufio"
	"io"
	"os"

	"github.com/corvidlang/corvid/vm"
)

// installIO wires fopen/fread/fwrite/feof/fclose against vm.Handle, the
// value-stack equivalent of the teacher's port-4 file operations (save/
// include/read/write, each a case in ioWait's file-io switch) — here each
// gets its own named primitive instead of a shared port number, since this
// runtime has no port registers to multiplex through.
func installIO(rt *vm.Runtime) {
	strID := rt.Types.ID("String")
	handleID := rt.Types.ID("Handle")

	def(rt, "fopen", vm.Dispatch{Types: []int{strID, strID}, Func: func(rt *vm.Runtime) vm.Step {
		mode := rt.Stack.Pop().(vm.String).S
		name := rt.Stack.Pop().(vm.String).S

		var flag int
		switch mode {
		case "r":
			flag = os.O_RDONLY
		case "w":
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case "a":
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		default:
			return rt.Ded("I don't know how to open a file that way: " + mode)
		}

		f, err := os.OpenFile(name, flag, 0o644)
		if err != nil {
			return rt.Ded("Couldn't open " + name + ": " + err.Error())
		}

		h := rt.NewHandle(name)
		h.Closer = f
		if mode == "r" {
			h.Reader = bufio.NewReader(f)
		} else {
			h.Writer = f
		}
		rt.Stack.Push(h)
		return rt.Context.Eval
	}})

	def(rt, "fread", vm.Dispatch{Types: []int{handleID}, Func: func(rt *vm.Runtime) vm.Step {
		h := rt.Stack.Pop().(*vm.Handle)
		br, ok := h.Reader.(*bufio.Reader)
		if !ok {
			return rt.Ded("That handle isn't open for reading")
		}
		line, err := br.ReadString('\n')
		if err == io.EOF {
			h.EOF = true
		} else if err != nil {
			return rt.Ded("Reading " + h.Name + " went wrong: " + err.Error())
		}
		rt.Stack.Push(h)
		rt.Stack.Push(rt.NewString(line))
		return rt.Context.Eval
	}})

	def(rt, "fwrite", vm.Dispatch{Types: []int{handleID, strID}, Func: func(rt *vm.Runtime) vm.Step {
		text := rt.Stack.Pop().(vm.String).S
		h := rt.Stack.Pop().(*vm.Handle)
		if h.Writer == nil {
			return rt.Ded("That handle isn't open for writing")
		}
		if _, err := io.WriteString(h.Writer, text); err != nil {
			return rt.Ded("Writing to " + h.Name + " went wrong: " + err.Error())
		}
		rt.Stack.Push(h)
		return rt.Context.Eval
	}})

	def(rt, "feof", vm.Dispatch{Types: []int{handleID}, Func: func(rt *vm.Runtime) vm.Step {
		h := rt.Stack.Pop().(*vm.Handle)
		rt.Stack.Push(h)
		rt.Stack.Push(rt.NewInteger(boolInt(h.EOF)))
		return rt.Context.Eval
	}})

	def(rt, "fclose", vm.Dispatch{Types: []int{handleID}, Func: func(rt *vm.Runtime) vm.Step {
		h := rt.Stack.Pop().(*vm.Handle)
		if err := h.Close(); err != nil {
			return rt.Ded("Closing " + h.Name + " went wrong: " + err.Error())
		}
		return rt.Context.Eval
	}})
}
