package parser

import (
	"strings"
	"testing"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/lexer"
)

func partsShape(parts []ast.FStringPart) string {
	var out []string
	for _, part := range parts {
		if part.Value == nil {
			out = append(out, `"`+part.Text+`"`)
			continue
		}
		field := "{" + shape(part.Value)
		if part.Conversion != "" {
			field += "!" + part.Conversion
		}
		if len(part.Spec) > 0 {
			field += ":" + partsShape(part.Spec)
		}
		out = append(out, field+"}")
	}
	return strings.Join(out, " ")
}

func TestFString(t *testing.T) {
	tests := []struct {
		input string
		parts string
	}{
		{
			`f"plain"`,
			`"plain"`,
		},
		{
			`f"n={myself.n:>{w}} {{ok}} {x!r} {y = }"`,
			`"n=" {Attribute Name(myself):">" {Name(w)}} " {ok} " {Name(x)!r} " " "y = " {Name(y)!r}`,
		},
		{
			`f"{truth kinship negate done}"`,
			`{BoolOp Literal(true) UnaryOp Name(done)}`,
		},
		{
			`f'{x["k"]}'`,
			`{Subscript Name(x) Literal(k)}`,
		},
		{
			`f"{ {'a': 1} }"`,
			`{Dict Literal(a) Literal(1)}`,
		},
		{
			`f"{a differs_from b} {a != b}"`,
			`{Compare(!=) Name(a) Name(b)} " " {Compare(!=) Name(a) Name(b)}`,
		},
		{
			`f"{listen('? ')}"`,
			`{Call Name(input) Literal(? )}`,
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			program := mustParse(t, test.input+"\n")
			fstring, ok := program.Body[0].(*ast.ExprStmt).X.(*ast.FString)
			if !ok {
				t.Fatalf("got %#v", program.Body[0])
			}
			if got := partsShape(fstring.Parts); got != test.parts {
				t.Fatalf("got %s", got)
			}
		})
	}
}

func TestFStringWalk(t *testing.T) {
	program := mustParse(t, `f"{a}{b:{c}}"`+"\n")
	if n := ast.Count(program); n != 6 {
		t.Fatalf("got %d", n)
	}
	if got := shape(program); got != "Program ExprStmt FString Name(a) Name(b) Name(c)" {
		t.Fatalf("got %s", got)
	}
}

func TestFStringFieldPositions(t *testing.T) {
	program := mustParse(t, "x = f\"ab{ value}\"\n")
	fstring := program.Body[0].(*ast.Assign).Value.(*ast.FString)
	pos := fstring.Parts[1].Value.Position()
	if pos.Line != 1 || pos.Column != 11 {
		t.Fatalf("got %+v", pos)
	}
}

func TestFStringErrors(t *testing.T) {
	tests := []struct {
		input  string
		column int
		msg    string
	}{
		{`x = f"{}"`, 8, "empty expression not allowed in f-string"},
		{`x = f"{a"`, 9, "expecting '}' in f-string"},
		{`x = f"a}"`, 8, "single '}' is not allowed in f-string"},
		{`x = f"{a!z}"`, 10, "invalid conversion character in f-string: expected 's', 'r', or 'a'"},
		{`x = f"{a b}"`, 10, "unexpected IDENTIFIER in f-string"},
		{`x = f"ab{ )}"`, 11, "unexpected token RPAREN"},
		{`x = f"{a $ b}"`, 10, "unexpected character '$' in f-string"},
		{`x = f"{a:{b}"`, 13, "expecting '}' in f-string"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			err := parseError(t, test.input+"\n")
			if err.Line != 1 || err.Column != test.column || err.Msg != test.msg {
				t.Fatalf("got %d:%d %q", err.Line, err.Column, err.Msg)
			}
			if err.Expected != lexer.TokenInvalid {
				t.Fatalf("got expected %s", err.Expected)
			}
		})
	}
}
