package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return program
}

func parseError(t *testing.T, src string) *Error {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	_, err = Parse(tokens)
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("parse %q: expected *Error, got %v", src, err)
	}
	return parseErr
}

// shape renders a tree without positions.
func shape(node ast.Node) string {
	var parts []string
	ast.Walk(node, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Name:
			parts = append(parts, "Name("+n.ID+")")
		case *ast.Literal:
			parts = append(parts, fmt.Sprintf("Literal(%v)", n.Value))
		case *ast.BinaryOp:
			parts = append(parts, "BinaryOp("+n.Op+")")
		case *ast.Compare:
			parts = append(parts, "Compare("+strings.Join(n.Ops, ",")+")")
		default:
			parts = append(parts, strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast."))
		}
		return true
	})
	return strings.Join(parts, " ")
}

func TestChainedComparison(t *testing.T) {
	program := mustParse(t, "a < b <= c\n")
	stmt, ok := program.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T", program.Body[0])
	}
	compare, ok := stmt.X.(*ast.Compare)
	if !ok {
		t.Fatalf("got %T", stmt.X)
	}
	if !slices.Equal(compare.Ops, []string{"<", "<="}) {
		t.Fatalf("got %v", compare.Ops)
	}
	if len(compare.Comparators) != 2 {
		t.Fatalf("got %d comparators", len(compare.Comparators))
	}
	if name := compare.Left.(*ast.Name); name.ID != "a" {
		t.Fatalf("got %v", name.ID)
	}
}

func TestKeywordComparisons(t *testing.T) {
	program := mustParse(t, "x same_as 1 differs_from y within z\n")
	compare := program.Body[0].(*ast.ExprStmt).X.(*ast.Compare)
	if !slices.Equal(compare.Ops, []string{"==", "!=", "in"}) {
		t.Fatalf("got %v", compare.Ops)
	}
}

func TestMultiLineCall(t *testing.T) {
	single := mustParse(t, "f(a, b, key=c)\n")
	multi := mustParse(t, "f(a,\n    b,\n        key=c,\n)\n")
	if got, want := shape(multi), shape(single); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	call := single.Body[0].(*ast.ExprStmt).X.(*ast.Call)
	if len(call.Args) != 2 || len(call.Keywords) != 1 || call.Keywords[0].Name != "key" {
		t.Fatalf("got %+v", call)
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input string
		shape string
	}{
		{
			"1 + 2 * 3\n",
			"ExprStmt BinaryOp(+) Literal(1) BinaryOp(*) Literal(2) Literal(3)",
		},
		{
			"a - b - c\n",
			"ExprStmt BinaryOp(-) BinaryOp(-) Name(a) Name(b) Name(c)",
		},
		{
			"-a ** 2\n",
			"ExprStmt UnaryOp BinaryOp(**) Name(a) Literal(2)",
		},
		{
			"a ** b ** c\n",
			"ExprStmt BinaryOp(**) Name(a) BinaryOp(**) Name(b) Name(c)",
		},
		{
			"2 ** -1\n",
			"ExprStmt BinaryOp(**) Literal(2) UnaryOp Literal(1)",
		},
		{
			"negate a kinship b alternate c\n",
			"ExprStmt BoolOp BoolOp UnaryOp Name(a) Name(b) Name(c)",
		},
		{
			"a.b(c)[d].e\n",
			"ExprStmt Attribute Subscript Call Attribute Name(a) Name(c) Name(d)",
		},
		{
			"x aahaan c thats_it y\n",
			"ExprStmt IfExp Name(x) Name(c) Name(y)",
		},
		{
			"(a + b) * c\n",
			"ExprStmt BinaryOp(*) BinaryOp(+) Name(a) Name(b) Name(c)",
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := shape(mustParse(t, test.input).Body[0]); got != test.shape {
				t.Fatalf("got %s", got)
			}
		})
	}
}

func TestBoolOpFlattened(t *testing.T) {
	program := mustParse(t, "a alternate b alternate c\n")
	boolOp := program.Body[0].(*ast.ExprStmt).X.(*ast.BoolOp)
	if boolOp.Op != "or" || len(boolOp.Values) != 3 {
		t.Fatalf("got %+v", boolOp)
	}
}

func TestLiterals(t *testing.T) {
	program := mustParse(t, `[0x1F, 1_000, 2.5, "s", truth, falsehood, nothing]`+"\n")
	list := program.Body[0].(*ast.ExprStmt).X.(*ast.List)
	want := []ast.LiteralKind{
		ast.LiteralInt, ast.LiteralInt, ast.LiteralFloat, ast.LiteralString,
		ast.LiteralBool, ast.LiteralBool, ast.LiteralNone,
	}
	if len(list.Elts) != len(want) {
		t.Fatalf("got %d elements", len(list.Elts))
	}
	for i, elt := range list.Elts {
		literal, ok := elt.(*ast.Literal)
		if !ok || literal.Kind != want[i] {
			t.Fatalf("element %d: got %#v", i, elt)
		}
	}
	if got := fmt.Sprint(list.Elts[0].(*ast.Literal).Value); got != "31" {
		t.Fatalf("got %s", got)
	}
	if got := fmt.Sprint(list.Elts[1].(*ast.Literal).Value); got != "1000" {
		t.Fatalf("got %s", got)
	}
	if got := list.Elts[4].(*ast.Literal).Value; got != true {
		t.Fatalf("got %v", got)
	}
}

func TestFunctionDef(t *testing.T) {
	program := mustParse(t, `@cache
@route("/x")
scheme initialize(myself, n: int = 0) -> nothing:
    abandon
`)
	def, ok := program.Body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("got %T", program.Body[0])
	}
	if def.Name != "initialize" {
		t.Fatalf("got %s", def.Name)
	}
	if len(def.Decorators) != 2 {
		t.Fatalf("got %d decorators", len(def.Decorators))
	}
	if len(def.Params) != 2 || def.Params[0].Name != "myself" || def.Params[1].Name != "n" {
		t.Fatalf("got %+v", def.Params)
	}
	if def.Params[1].Annotation == nil || def.Params[1].Default == nil {
		t.Fatalf("got %+v", def.Params[1])
	}
	if def.Returns == nil {
		t.Fatal("expected return annotation")
	}
	ret, ok := def.Body[0].(*ast.Return)
	if !ok || ret.Value != nil {
		t.Fatalf("got %#v", def.Body[0])
	}
}

func TestClassDef(t *testing.T) {
	program := mustParse(t, `@dataclass
fortify Dog(Animal, Pet):
    scheme bark(myself):
        announce("woof")
`)
	class := program.Body[0].(*ast.ClassDef)
	if class.Name != "Dog" || len(class.Bases) != 2 || len(class.Decorators) != 1 {
		t.Fatalf("got %+v", class)
	}
	method := class.Body[0].(*ast.FunctionDef)
	call := method.Body[0].(*ast.ExprStmt).X.(*ast.Call)
	if name := call.Func.(*ast.Name); name.ID != "print" {
		t.Fatalf("got %s", name.ID)
	}
}

func TestIfChain(t *testing.T) {
	program := mustParse(t, `aahaan a:
    x = 1
cascade b:
    x = 2
cascade c:
    x = 3
thats_it:
    x = 4
`)
	if len(program.Body) != 1 {
		t.Fatalf("got %d statements", len(program.Body))
	}
	stmt := program.Body[0].(*ast.If)
	if len(stmt.Elifs) != 2 || len(stmt.Else) != 1 {
		t.Fatalf("got %+v", stmt)
	}
	if stmt.Elifs[1].Line != 5 {
		t.Fatalf("got line %d", stmt.Elifs[1].Line)
	}
}

func TestTry(t *testing.T) {
	program := mustParse(t, `attempt:
    risky()
grieve ValueError as e:
    announce(e)
grieve:
    skip
validate:
    cleanup()
`)
	stmt := program.Body[0].(*ast.Try)
	if len(stmt.Handlers) != 2 {
		t.Fatalf("got %d handlers", len(stmt.Handlers))
	}
	if h := stmt.Handlers[0]; h.Type != "ValueError" || h.Name != "e" {
		t.Fatalf("got %+v", h)
	}
	if h := stmt.Handlers[1]; h.Type != "" || h.Name != "" {
		t.Fatalf("got %+v", h)
	}
	if len(stmt.Finally) != 1 {
		t.Fatalf("got %d finally statements", len(stmt.Finally))
	}

	program = mustParse(t, "attempt:\n    a()\nvalidate:\n    b()\n")
	if stmt := program.Body[0].(*ast.Try); len(stmt.Handlers) != 0 || len(stmt.Finally) != 1 {
		t.Fatalf("got %+v", stmt)
	}
}

func TestLoopsAndWith(t *testing.T) {
	program := mustParse(t, `iterate i within range(10):
    aahaan i same_as 3:
        collapse
    skip
repeat truth:
    produce i
context open(p) as f, lock:
    recognize counter, total
`)
	if _, ok := program.Body[0].(*ast.For); !ok {
		t.Fatalf("got %T", program.Body[0])
	}
	if _, ok := program.Body[1].(*ast.While); !ok {
		t.Fatalf("got %T", program.Body[1])
	}
	with := program.Body[2].(*ast.With)
	if len(with.Items) != 2 || with.Items[0].Target != "f" || with.Items[1].Target != "" {
		t.Fatalf("got %+v", with.Items)
	}
	global := with.Body[0].(*ast.Global)
	if !slices.Equal(global.Names, []string{"counter", "total"}) {
		t.Fatalf("got %v", global.Names)
	}
}

func TestImports(t *testing.T) {
	program := mustParse(t, `congregation os.path as p
from collections congregation OrderedDict, defaultdict as dd
`)
	imp := program.Body[0].(*ast.Import)
	if imp.Module != "os.path" || imp.Alias != "p" {
		t.Fatalf("got %+v", imp)
	}
	from := program.Body[1].(*ast.ImportFrom)
	if from.Module != "collections" || len(from.Names) != 2 || from.Names[1].Alias != "dd" {
		t.Fatalf("got %+v", from)
	}
}

func TestAssignments(t *testing.T) {
	program := mustParse(t, `a = b = 1
myself.items[0] += 2
total %= 3
`)
	assign := program.Body[0].(*ast.Assign)
	if len(assign.Targets) != 2 {
		t.Fatalf("got %d targets", len(assign.Targets))
	}
	aug := program.Body[1].(*ast.AugAssign)
	if aug.Op != "+" {
		t.Fatalf("got %s", aug.Op)
	}
	if _, ok := aug.Target.(*ast.Subscript); !ok {
		t.Fatalf("got %T", aug.Target)
	}
	if op := program.Body[2].(*ast.AugAssign).Op; op != "%" {
		t.Fatalf("got %s", op)
	}
}

func TestDisplaysAndLambda(t *testing.T) {
	program := mustParse(t, `d = {"a": 1, "b": desire x, y: x + y,}
`)
	dict := program.Body[0].(*ast.Assign).Value.(*ast.Dict)
	if len(dict.Keys) != 2 || len(dict.Values) != 2 {
		t.Fatalf("got %+v", dict)
	}
	lambda := dict.Values[1].(*ast.Lambda)
	if !slices.Equal(lambda.Params, []string{"x", "y"}) {
		t.Fatalf("got %v", lambda.Params)
	}
}

func TestCommentsIgnored(t *testing.T) {
	program := mustParse(t, "f(a, # first\n  b) # call\nx = 1 # assign\n")
	if len(program.Body) != 2 {
		t.Fatalf("got %d statements", len(program.Body))
	}
}

func TestEmptyProgram(t *testing.T) {
	program := mustParse(t, "\n\n# only a comment\n")
	if len(program.Body) != 0 {
		t.Fatalf("got %d statements", len(program.Body))
	}
	program, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Body) != 0 {
		t.Fatalf("got %d statements", len(program.Body))
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		column   int
		expected lexer.TokenKind
		found    lexer.TokenKind
		msg      string
	}{
		{
			name:     "missing colon",
			input:    "scheme f()\n    abandon\n",
			line:     1,
			column:   11,
			expected: lexer.TokenColon,
			found:    lexer.TokenNewline,
			msg:      "expected COLON, got NEWLINE",
		},
		{
			name:     "missing indent",
			input:    "aahaan a:\nb\n",
			line:     2,
			column:   1,
			expected: lexer.TokenIndent,
			found:    lexer.TokenIdentifier,
			msg:      "expected INDENT, got IDENTIFIER",
		},
		{
			name:   "unexpected primary",
			input:  "x = )\n",
			line:   1,
			column: 5,
			found:  lexer.TokenRParen,
			msg:    "unexpected token RPAREN",
		},
		{
			name:   "decorator without definition",
			input:  "@wrap\nx = 1\n",
			line:   2,
			column: 1,
			found:  lexer.TokenIdentifier,
			msg:    "expected function or class after decorator, got IDENTIFIER",
		},
		{
			name:     "missing comma",
			input:    "f(a b)\n",
			line:     1,
			column:   5,
			expected: lexer.TokenComma,
			found:    lexer.TokenIdentifier,
			msg:      "expected COMMA, got IDENTIFIER",
		},
		{
			name:     "two statements on a line",
			input:    "a b\n",
			line:     1,
			column:   3,
			expected: lexer.TokenNewline,
			found:    lexer.TokenIdentifier,
			msg:      "expected NEWLINE, got IDENTIFIER",
		},
		{
			name:   "try without handler",
			input:  "attempt:\n    a()\nb()\n",
			line:   3,
			column: 1,
			found:  lexer.TokenIdentifier,
			msg:    "expected GRIEVE or VALIDATE after ATTEMPT block, got IDENTIFIER",
		},
		{
			name:   "assign to literal",
			input:  "truth = 1\n",
			line:   1,
			column: 1,
			msg:    "cannot assign to literal",
		},
		{
			name:     "announce without call",
			input:    "announce\n",
			line:     1,
			column:   9,
			expected: lexer.TokenLParen,
			found:    lexer.TokenNewline,
			msg:      "expected LPAREN, got NEWLINE",
		},
		{
			name:     "unclosed call at eof",
			input:    "f(a",
			line:     1,
			column:   4,
			expected: lexer.TokenComma,
			found:    lexer.TokenEOF,
			msg:      "expected COMMA, got EOF",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := parseError(t, test.input)
			if err.Line != test.line || err.Column != test.column {
				t.Fatalf("got %d:%d", err.Line, err.Column)
			}
			if err.Expected != test.expected || err.Found != test.found {
				t.Fatalf("got expected %s found %s", err.Expected, err.Found)
			}
			if err.Msg != test.msg {
				t.Fatalf("got %q", err.Msg)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("at line %d", test.line)) {
				t.Fatalf("got %q", err.Error())
			}
		})
	}
}

func TestNodeCount(t *testing.T) {
	program := mustParse(t, "scheme f(a):\n    abandon a + 1\n")
	// Program FunctionDef Param Return BinaryOp Name Literal
	if n := ast.Count(program); n != 7 {
		t.Fatalf("got %d", n)
	}
}
