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

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidlang/corvid/vm"
)

// Render produces a stable textual dump of a parsed value sequence, used as
// the golden output for snapshot tests of parser output.
func Render(vals []vm.Value) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		renderValue(&b, v)
	}
	return b.String()
}

func renderValue(b *strings.Builder, v vm.Value) {
	switch x := v.(type) {
	case vm.Integer:
		b.WriteString("#" + strconv.FormatInt(x.Int(), 10))
	case vm.Float:
		b.WriteString(strconv.FormatFloat(x.F, 'g', -1, 64))
	case vm.String:
		b.WriteString(strconv.Quote(x.S))
	case vm.Comment:
		b.WriteString("(" + x.S + ")")
	case vm.Quote:
		b.WriteString("'")
		renderValue(b, x.Inner)
	case vm.Symbol:
		b.WriteString(x.String())
	case *vm.Tag:
		b.WriteString(":" + x.Name + ":")
		renderValue(b, x.Obj)
	case *vm.List:
		b.WriteString("{")
		for i, it := range x.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			renderValue(b, it)
		}
		b.WriteString("}")
	case *vm.Code:
		b.WriteString(":: ")
		for _, it := range x.Items {
			renderValue(b, it)
			b.WriteByte(' ')
		}
		b.WriteString(";")
	case *vm.Internal:
		b.WriteString("RET")
	case *vm.Directory:
		b.WriteString("[dir]")
	default:
		fmt.Fprintf(b, "<%T>", v)
	}
}
