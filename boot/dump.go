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
	"fmt"
	"strings"
	"text/scanner"
)

// Dump produces a token-level trace of src: one "source:line:col kind text"
// entry per lexical token (kind as text/scanner names it, text quoted), in
// source order. It is a diagnostic companion to the
// object Parser, not a substitute for it — the object Parser owns the
// delimiter-driven grammar (#int, "string", ::code;, directory literals)
// that text/scanner's generic tokenization cannot express, but a flat token
// trace is exactly what a reader debugging a malformed program wants before
// reaching for the object parser's diagnostics.
func Dump(src string) (string, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanComments
	s.Filename = "source"

	var errs []string
	s.Error = func(_ *scanner.Scanner, msg string) {
		errs = append(errs, msg)
	}

	var b strings.Builder
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		fmt.Fprintf(&b, "%s %s %q\n", s.Position, scanner.TokenString(tok), s.TokenText())
	}
	if len(errs) > 0 {
		return b.String(), fmt.Errorf("dump: %s", strings.Join(errs, "; "))
	}
	return b.String(), nil
}
