package transpiler

import (
	"strings"

	"github.com/Pilan-AI/hermes-lang/ast"
)

var braceEscaper = strings.NewReplacer(
	"{", "{{",
	"}", "}}",
)

// fstring keeps the f prefix when some quote character appears in no field.
// Before Python 3.12 a field may not contain the enclosing quote, a
// backslash or '#'. Otherwise the string becomes a str.format call.
func (e *emitter) fstring(expr *ast.FString) string {
	var fields []string
	collectFields(e, expr.Parts, &fields)

	for _, q := range []byte{'"', '\''} {
		usable := true
		for _, field := range fields {
			if strings.ContainsAny(field, string(q)+"\\\n#") {
				usable = false
				break
			}
		}
		if usable {
			next := 0
			return "f" + string(q) + fstringBody(expr.Parts, fields, &next, q) + string(q)
		}
	}

	var format strings.Builder
	formatBody(&format, expr.Parts)
	return quote(format.String()) + ".format(" + strings.Join(fields, ", ") + ")"
}

// collectFields emits field values in the order str.format numbers them:
// a field before the fields nested in its spec.
func collectFields(e *emitter, parts []ast.FStringPart, fields *[]string) {
	for _, part := range parts {
		if part.Value == nil {
			continue
		}
		*fields = append(*fields, e.expr(part.Value))
		collectFields(e, part.Spec, fields)
	}
}

func fstringBody(parts []ast.FStringPart, fields []string, next *int, q byte) string {
	var sb strings.Builder
	for _, part := range parts {
		if part.Value == nil {
			literal := quoteWith(braceEscaper.Replace(part.Text), q)
			sb.WriteString(literal[1 : len(literal)-1])
			continue
		}
		field := fields[*next]
		*next++
		sb.WriteString("{")
		// "{{" would read as an escaped brace
		if strings.HasPrefix(field, "{") {
			sb.WriteString(" ")
		}
		sb.WriteString(field)
		if part.Conversion != "" {
			sb.WriteString("!" + part.Conversion)
		}
		if len(part.Spec) > 0 {
			sb.WriteString(":" + fstringBody(part.Spec, fields, next, q))
		}
		sb.WriteString("}")
	}
	return sb.String()
}

func formatBody(sb *strings.Builder, parts []ast.FStringPart) {
	for _, part := range parts {
		if part.Value == nil {
			sb.WriteString(braceEscaper.Replace(part.Text))
			continue
		}
		sb.WriteString("{")
		if part.Conversion != "" {
			sb.WriteString("!" + part.Conversion)
		}
		if len(part.Spec) > 0 {
			sb.WriteString(":")
			formatBody(sb, part.Spec)
		}
		sb.WriteString("}")
	}
}
