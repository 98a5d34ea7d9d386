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
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/corvidlang/corvid/vm"
)

// ReadSourceFile reads path, capped at the Runtime's configured MaxRead
// bytes — spec.md's MAX_READ — silently truncating rather than erroring on
// an oversized file, matching the original implementation's read-and-clip
// behavior.
func (s *System) ReadSourceFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	limit := int64(s.RT.Config.MaxRead)
	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}

// LoadFile reads path and parses it as a single `:: ... ;` body, the
// equivalent of the original dsk> primitive: wrap the raw text in a Code
// literal and parse that, so top-level definitions in the file land as one
// runnable unit rather than a loose sequence evaluated directly against the
// caller's Context.
func (s *System) LoadFile(path string) (*vm.Code, error) {
	text, err := s.ReadSourceFile(path)
	if err != nil {
		return nil, err
	}
	wrapped := ":: " + text + " ;"
	vals, err := s.Parser.Parse(wrapped)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if len(vals) != 1 {
		return nil, errors.Errorf("expected exactly one top-level form in %s, got %d", path, len(vals))
	}
	code, ok := vals[0].(*vm.Code)
	if !ok {
		return nil, errors.Errorf("expected %s to parse as code, got %T", path, vals[0])
	}
	return code, nil
}

// RunFile loads path and runs it as the new root Context.
func (s *System) RunFile(path string) error {
	code, err := s.LoadFile(path)
	if err != nil {
		return err
	}
	s.RT.Context = s.RT.NewContext(code, s.RT.Context.Names)
	return s.RT.Run()
}

// Boot runs the configured BootFile out of BaseDir — the equivalent of the
// original launch sequence `BASDIR "boot.rpl" I*.+str I*.dsk>`: resolve the
// boot file's path from the two configured strings and load-and-run it.
func (s *System) Boot() error {
	path := filepath.Join(s.RT.Config.BaseDir, s.RT.Config.BootFile)
	return s.RunFile(path)
}
