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

package prims_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/corvidlang/corvid/vm"
)

func TestFileWriteThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.txt")

	rt := run(t, fmt.Sprintf(`"%s" "w" fopen "hello\n" fwrite fclose`, path))
	if rt.Stack.Len() != 0 {
		t.Fatalf("expected fclose to leave nothing behind, got %d items", rt.Stack.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back %s: %v", path, err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("got %q, want %q", string(data), "hello\n")
	}

	rt2 := run(t, fmt.Sprintf(`"%s" "r" fopen fread`, path))
	top := rt2.Stack.Top(2)
	h := top[0].(*vm.Handle)
	line := top[1].(vm.String)
	if line.S != "hello\n" {
		t.Fatalf("got %q, want %q", line.S, "hello\n")
	}
	if h.EOF {
		t.Fatal("expected EOF not yet set after reading the only line")
	}
}

func TestFeofLatchesAtEndOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one-line.txt")
	if err := os.WriteFile(path, []byte("only line\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	rt := run(t, fmt.Sprintf(`"%s" "r" fopen fread drop fread drop feof`, path))
	top := rt.Stack.Top(2)
	if top[1].(vm.Integer).Int() != 1 {
		t.Fatal("expected feof to report true after reading past the last line")
	}
}
