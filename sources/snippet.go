package sources

import (
	"fmt"
	"strings"
)

// Snippet renders "name:line:col", the source line and a caret under the
// column. Tabs in the prefix are preserved so the caret lines up.
func (s *Source) Snippet(line, column int) string {
	var sb strings.Builder
	name := "<input>"
	if s != nil && s.Name != "" {
		name = s.Name
	}
	fmt.Fprintf(&sb, "%s:%d:%d\n", name, line, column)

	text, ok := s.Line(line)
	if !ok {
		return sb.String()
	}
	sb.WriteString(text)
	sb.WriteString("\n")

	col := column - 1
	for i, r := range []rune(text) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
