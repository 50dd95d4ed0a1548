// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/katalvlaran/transmission/tree"
)

// Indent renders t sideways: a vertex is "o", its first child follows on the
// same line after "-", every further child starts a new line with "|-"
// under the parent. The output has no trailing newline.
func Indent(t *tree.Tree) string {
	if t == nil || t.Empty() {
		return ""
	}
	var b strings.Builder
	indent(&b, t, t.Root(), "")
	return b.String()
}

func indent(b *strings.Builder, t *tree.Tree, v int, prefix string) {
	b.WriteByte('o')
	kids := t.Children(v)
	if len(kids) == 0 {
		return
	}
	b.WriteByte('-')
	if len(kids) == 1 {
		indent(b, t, kids[0], prefix+"  ")
		return
	}
	indent(b, t, kids[0], prefix+"| ")
	for i, c := range kids[1:] {
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString("|-")
		if i+2 < len(kids) {
			indent(b, t, c, prefix+"| ")
		} else {
			indent(b, t, c, prefix+"  ")
		}
	}
}
