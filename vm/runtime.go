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

import (
	"fmt"

	"github.com/pkg/errors"
)

// CallerNone is the Caller value a Runtime starts with: nobody has been
// blamed for anything yet.
const CallerNone = ""

// CallerRuntime is the Caller value installed when the Runtime itself
// raises an error (a missing symbol, a blown recursion cap) rather than a
// primitive blaming its own argument.
const CallerRuntime = "a higher power"

// typeIDs caches the dense ids the base variants receive at registration,
// so constructors and the eval loop never pay a map lookup for them.
type typeIDs struct {
	Context, Internal, Symbol, Float, String, Comment, Builtin,
	Directory, Tag, List, Code, Integer, Handle, Quote int
}

// Runtime is one independent interpreter: its operand Stack, its current
// call Context, its TypeRegistry, and all error/interrupt state. Nothing
// here is a package-level global — two Runtimes never share state.
type Runtime struct {
	Types   *TypeRegistry
	Stack   *List
	Context *Context
	Config  Config

	Running   bool
	Break     bool
	Interrupt bool
	DieAnyway bool

	Caller Value
	Reason Value

	lastObj        *Directory
	nullCode       *Code
	returnSentinel *Internal
	callerRuntime  Value

	tid typeIDs
}

// NewRuntime builds a Runtime with the base type registry populated in the
// same order the original implementation's baseregistry() uses, a fresh
// sentinel-terminated empty Directory as the root name chain, and a root
// Context with Depth equal to the configured call depth.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(rt)
	}

	rt.Types = NewTypeRegistry()
	rt.tid.Context = rt.Types.Register("Context")
	rt.tid.Internal = rt.Types.Register("Internal")
	rt.tid.Symbol = rt.Types.Register("Symbol")
	rt.tid.Float = rt.Types.Register("Float")
	rt.tid.String = rt.Types.Register("String")
	rt.tid.Comment = rt.Types.Register("Comment")
	rt.tid.Builtin = rt.Types.Register("Builtin")
	rt.tid.Directory = rt.Types.Register("Directory")
	rt.tid.Tag = rt.Types.Register("Tag")
	rt.tid.List = rt.Types.Register("List")
	rt.tid.Code = rt.Types.Register("Code")
	rt.tid.Integer = rt.Types.Register("Integer")
	rt.tid.Handle = rt.Types.Register("Handle")
	rt.tid.Quote = rt.Types.Register("Quote")

	rt.Stack = &List{typ: rt.tid.List}

	nulTag := &Tag{typ: rt.tid.Tag, Name: "", Obj: rt.NewComment("NIL")}
	rt.lastObj = &Directory{typ: rt.tid.Directory, Tag: nulTag}
	rt.lastObj.Next = rt.lastObj

	names := rt.NewDirectory(nil)

	rt.returnSentinel = &Internal{typ: rt.tid.Internal, Name: "ret", Func: func(rt *Runtime) Step {
		return rt.Ret(rt.Context)
	}}
	rt.nullCode = &Code{typ: rt.tid.Code, Items: []Value{rt.returnSentinel}}

	rt.Context = &Context{
		typ:   rt.tid.Context,
		Code:  rt.nullCode,
		IP:    0,
		Names: names,
		Next:  nil,
		Depth: rt.Config.CallDepth,
	}

	rt.callerRuntime = rt.NewString(CallerRuntime)
	rt.Caller = rt.NewString(CallerNone)
	rt.Reason = rt.NewString("")
	rt.Running = true
	return rt
}

// --- constructors, one per base variant ---

func (rt *Runtime) NewInteger(n int64) Integer       { return Integer{typ: rt.tid.Integer, N: n} }
func (rt *Runtime) NewFloat(f float64) Float         { return Float{typ: rt.tid.Float, F: f} }
func (rt *Runtime) NewString(s string) String        { return String{typ: rt.tid.String, S: s} }
func (rt *Runtime) NewComment(s string) Comment      { return Comment{typ: rt.tid.Comment, S: s} }
func (rt *Runtime) NewQuote(inner Value) Quote        { return Quote{typ: rt.tid.Quote, Inner: inner} }
func (rt *Runtime) NewSymbol(path []string) Symbol {
	return Symbol{typ: rt.tid.Symbol, Path: append([]string(nil), path...)}
}

func (rt *Runtime) NewTag(name string, obj Value) *Tag {
	return &Tag{typ: rt.tid.Tag, Name: name, Obj: obj}
}

func (rt *Runtime) NewList(items ...Value) *List {
	return &List{typ: rt.tid.List, Items: items}
}

// NewCode wraps items with the Return sentinel appended, matching the
// parser's behavior of auto-appending Return at the close of every Code
// literal (invariant: a Code's last element is always Return).
func (rt *Runtime) NewCode(items ...Value) *Code {
	full := make([]Value, 0, len(items)+1)
	full = append(full, items...)
	full = append(full, rt.returnSentinel)
	return &Code{typ: rt.tid.Code, Items: full}
}

func (rt *Runtime) NewHandle(name string) *Handle {
	return &Handle{typ: rt.tid.Handle, Name: name}
}

func (rt *Runtime) NewBuiltin(name string, rows ...Dispatch) *Builtin {
	return &Builtin{typ: rt.tid.Builtin, Name: name, Rows: rows}
}

func (rt *Runtime) NewInternal(name string, fn func(rt *Runtime) Step) *Internal {
	return &Internal{typ: rt.tid.Internal, Name: name, Func: fn}
}

// NewContext is exposed for package boot, which needs to build the very
// first call frame around the bootstrap Code.
func (rt *Runtime) NewContext(code *Code, names *Directory) *Context {
	return &Context{typ: rt.tid.Context, Code: code, IP: 0, Names: names, Depth: rt.Config.CallDepth}
}

// --- the eval loop ---

// Run drains the trampoline until Running clears, recovering any internal
// panic (an out-of-bounds stack access, a nil in a malformed Context chain)
// into a wrapped error carrying the context depth where it happened —
// mirroring the teacher's Instance.Run defer/recover boundary.
func (rt *Runtime) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			rt.Running = false
			err = errors.Errorf("internal fault at context depth %d: %v", rt.Context.Depth, r)
		}
	}()

	next := rt.Context.Eval
	for rt.Running && next != nil {
		next = next(rt)
	}
	return nil
}

// Ded forces an error: it records reason, pushes a fresh Context over the
// null code (same Names, Depth-1), and hands control to whatever is bound
// to the EXCEPT symbol — letting installed handler code decide what
// happens next. A Depth that would drop below -1 here is a double fault:
// the Runtime gives up and stops rather than recursing into its own error
// path forever.
func (rt *Runtime) Ded(reason string) Step {
	rt.Reason = rt.NewString(reason)

	newCtx := &Context{
		typ:   rt.tid.Context,
		Code:  rt.nullCode,
		IP:    0,
		Names: rt.Context.Names,
		Depth: rt.Context.Depth - 1,
	}
	if newCtx.Depth < -1 {
		rt.Running = false
		return nil
	}
	newCtx.Next = rt.Context
	rt.Context = newCtx

	except := Symbol{typ: rt.tid.Symbol, Path: []string{"EXCEPT"}}
	return except.Eval
}

// NewCall folds a tail call into the current Context when the instruction
// about to run next is the Return sentinel (nothing left to do in this
// frame after the call returns), and otherwise pushes a fresh Context —
// refusing to do so once Depth is exhausted, raising a recursion-depth
// error instead.
func (rt *Runtime) NewCall(obj *Code) Step {
	ctx := rt.Context
	if ctx.IP < ctx.Code.Len() && ctx.Code.Items[ctx.IP] == rt.returnSentinel {
		ctx.Code = obj
		ctx.IP = 0
		return ctx.Eval
	}
	if ctx.Depth == 0 {
		rt.Caller = rt.callerRuntime
		return rt.Ded(fmt.Sprintf("You asked for %d recursions and that is what you got", rt.Config.CallDepth))
	}
	rt.Context = &Context{typ: ctx.typ, Code: obj, IP: 0, Names: ctx.Names, Next: ctx, Depth: ctx.Depth - 1}
	return rt.Context.Eval
}

// NewLocall is NewCall but additionally prepends a fresh Directory in front
// of names, establishing a new local scope for this call — used for local
// variables and for user-defined dotted method dispatch.
func (rt *Runtime) NewLocall(obj *Code, names *Directory) Step {
	ctx := rt.Context
	wrapped := rt.NewDirectory(names)
	if ctx.IP < ctx.Code.Len() && ctx.Code.Items[ctx.IP] == rt.returnSentinel {
		ctx.Code = obj
		ctx.IP = 0
		ctx.Names = wrapped
		return ctx.Eval
	}
	if ctx.Depth == 0 {
		rt.Caller = rt.callerRuntime
		return rt.Ded(fmt.Sprintf("You asked for %d recursions and that is what you got", rt.Config.CallDepth))
	}
	rt.Context = &Context{typ: ctx.typ, Code: obj, IP: 0, Names: wrapped, Next: ctx, Depth: ctx.Depth - 1}
	return rt.Context.Eval
}

// CopyValue copies v using the Runtime's configured CopyDepth rather than
// DefaultCopyDepth, for Directory values; every other variant just uses its
// own Copy().
func (rt *Runtime) CopyValue(v Value) Value {
	if dir, ok := v.(*Directory); ok {
		return Value(dir.copyTo(rt.Config.CopyDepth))
	}
	return v.Copy()
}

// ClearErrorState clears Interrupt and resets Caller/Reason to their zero
// values (Break is left as it is), used by the errstate-style primitive that lets a handler
// consume and dismiss the current error.
func (rt *Runtime) ClearErrorState() {
	rt.Interrupt = false
	rt.Caller = rt.NewString(CallerNone)
	rt.Reason = rt.NewString("")
}
