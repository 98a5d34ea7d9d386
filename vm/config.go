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
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config holds the knobs spec.md fixes as constants (CALL_DEPTH, CP_DEPTH,
// MAX_READ) plus the bootstrap paths, as an on-disk-loadable alternative to
// constructing a Runtime purely through functional Options.
type Config struct {
	CallDepth     int    `yaml:"callDepth"`
	CopyDepth     int    `yaml:"copyDepth"`
	MaxRead       int    `yaml:"maxRead"`
	DataStackSize int    `yaml:"dataStackSize"`
	InternalsPath string `yaml:"internalsPath"`
	BootFile      string `yaml:"bootFile"`
	BaseDir       string `yaml:"baseDir"`
}

// DefaultConfig returns the values spec.md names outright.
func DefaultConfig() Config {
	return Config{
		CallDepth:     2048,
		CopyDepth:     DefaultCopyDepth,
		MaxRead:       256000,
		DataStackSize: 0, // 0 means unbounded, grown as needed
		InternalsPath: "I*",
		BootFile:      "boot.rpl",
		BaseDir:       "./",
	}
}

// LoadConfig reads a YAML configuration file, starting from DefaultConfig
// and overriding only the fields present in the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Option mutates a Runtime during construction, in the teacher's functional-
// options style (vm.Option in db47h/ngaro). Options are applied in order
// before the Runtime's base types and bootstrap state are built, so an
// Option that sets Config fields is seen by everything downstream.
type Option func(rt *Runtime)

// WithConfig replaces the Runtime's Config wholesale.
func WithConfig(cfg Config) Option {
	return func(rt *Runtime) { rt.Config = cfg }
}

// WithCallDepth overrides the recursion cap (spec.md's CALL_DEPTH).
func WithCallDepth(depth int) Option {
	return func(rt *Runtime) { rt.Config.CallDepth = depth }
}

// WithCopyDepth overrides the structural-copy/cycle-detection bound
// (spec.md's CP_DEPTH).
func WithCopyDepth(depth int) Option {
	return func(rt *Runtime) { rt.Config.CopyDepth = depth }
}

// WithMaxRead overrides the per-file read cap (spec.md's MAX_READ).
func WithMaxRead(n int) Option {
	return func(rt *Runtime) { rt.Config.MaxRead = n }
}

// WithBaseDir overrides the directory the bootstrap sequence reads
// BootFile from.
func WithBaseDir(dir string) Option {
	return func(rt *Runtime) { rt.Config.BaseDir = dir }
}
