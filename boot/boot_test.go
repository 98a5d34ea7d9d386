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
	"os"
	"path/filepath"
	"testing"

	"github.com/corvidlang/corvid/vm"
)

func TestSyncTypeDirectoryExposesIntegerType(t *testing.T) {
	s := New()
	v := s.RT.Recall([]string{"Types", "Integer"})
	if v == nil {
		t.Fatal("expected Types.Integer to resolve")
	}
	if _, ok := v.(vm.Integer); !ok {
		t.Fatalf("expected Types.Integer to be a vm.Integer id, got %T", v)
	}
}

func TestRunFileExecutesAndLeavesResultOnStack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.rpl")
	if err := os.WriteFile(path, []byte("#2 #3 *"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s := New()
	if err := s.RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if s.RT.Stack.Len() != 1 {
		t.Fatalf("expected one result on the stack, got %d", s.RT.Stack.Len())
	}
	got := s.RT.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 6 {
		t.Fatalf("expected 2*3=6, got %d", got.Int())
	}
}

func TestBootRunsConfiguredBootFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "boot.rpl"), []byte("#41 #1 +"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s := New(vm.WithBaseDir(dir))
	if err := s.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	got := s.RT.Stack.Top(1)[0].(vm.Integer)
	if got.Int() != 42 {
		t.Fatalf("expected 42, got %d", got.Int())
	}
}

func TestDumpProducesTokenLines(t *testing.T) {
	out, err := Dump(`#2 #3 +`)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	lines := 0
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines == 0 {
		t.Fatalf("expected at least one token line, got %q", out)
	}
}

func TestReadSourceFileCapsAtMaxRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.rpl")
	big := make([]byte, 100)
	for i := range big {
		big[i] = '#'
	}
	if err := os.WriteFile(path, big, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s := New(vm.WithMaxRead(10))
	text, err := s.ReadSourceFile(path)
	if err != nil {
		t.Fatalf("ReadSourceFile: %v", err)
	}
	if len(text) != 10 {
		t.Fatalf("expected text capped to 10 bytes, got %d", len(text))
	}
}
