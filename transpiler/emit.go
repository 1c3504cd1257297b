package transpiler

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/Pilan-AI/hermes-lang/ast"
)

const indentUnit = "    "

type emitter struct {
	lines []string
	level int
	err   error
}

// Emit renders program as Python source. Lines are joined with "\n" and
// carry no trailing newline. Operator expressions are always parenthesized.
// On error no output is returned.
func Emit(program *ast.Program) (string, error) {
	e := new(emitter)
	e.stmts(program.Body)
	if e.err != nil {
		return "", e.err
	}
	return strings.Join(e.lines, "\n"), nil
}

func (e *emitter) line(parts ...string) {
	e.lines = append(e.lines, strings.Repeat(indentUnit, e.level)+strings.Join(parts, ""))
}

func (e *emitter) fault(node ast.Node) {
	if e.err != nil {
		return
	}
	name := fmt.Sprintf("%T", node)
	fault := &Fault{
		Node: name,
		Msg:  "no emission rule for " + name,
	}
	if node != nil {
		pos := node.Position()
		fault.Line = pos.Line
		fault.Column = pos.Column
	}
	e.err = fault
}

func (e *emitter) stmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		e.stmt(stmt)
		if e.err != nil {
			return
		}
	}
}

// body emits an indented block. Python forbids empty blocks.
func (e *emitter) body(stmts []ast.Stmt) {
	e.level++
	if len(stmts) == 0 {
		e.line("pass")
	} else {
		e.stmts(stmts)
	}
	e.level--
}

func (e *emitter) decorators(decorators []ast.Expr) {
	for _, decorator := range decorators {
		e.line("@", e.expr(decorator))
	}
}

func (e *emitter) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {

	case *ast.FunctionDef:
		e.decorators(stmt.Decorators)
		params := make([]string, 0, len(stmt.Params))
		for _, param := range stmt.Params {
			params = append(params, e.param(param))
		}
		returns := ""
		if stmt.Returns != nil {
			returns = " -> " + e.expr(stmt.Returns)
		}
		e.line("def ", mapName(stmt.Name), "(", strings.Join(params, ", "), ")", returns, ":")
		e.body(stmt.Body)

	case *ast.ClassDef:
		e.decorators(stmt.Decorators)
		if len(stmt.Bases) > 0 {
			e.line("class ", stmt.Name, "(", e.exprs(stmt.Bases), "):")
		} else {
			e.line("class ", stmt.Name, ":")
		}
		e.body(stmt.Body)

	case *ast.If:
		e.line("if ", e.expr(stmt.Cond), ":")
		e.body(stmt.Body)
		for _, elif := range stmt.Elifs {
			e.line("elif ", e.expr(elif.Cond), ":")
			e.body(elif.Body)
		}
		if len(stmt.Else) > 0 {
			e.line("else:")
			e.body(stmt.Else)
		}

	case *ast.For:
		e.line("for ", stmt.Target, " in ", e.expr(stmt.Iter), ":")
		e.body(stmt.Body)

	case *ast.While:
		e.line("while ", e.expr(stmt.Cond), ":")
		e.body(stmt.Body)

	case *ast.Try:
		e.line("try:")
		e.body(stmt.Body)
		for _, handler := range stmt.Handlers {
			switch {
			case handler.Type != "" && handler.Name != "":
				e.line("except ", handler.Type, " as ", handler.Name, ":")
			case handler.Type != "":
				e.line("except ", handler.Type, ":")
			default:
				e.line("except:")
			}
			e.body(handler.Body)
		}
		// a bare try is not valid Python
		if len(stmt.Finally) > 0 || len(stmt.Handlers) == 0 {
			e.line("finally:")
			e.body(stmt.Finally)
		}

	case *ast.With:
		items := make([]string, 0, len(stmt.Items))
		for _, item := range stmt.Items {
			text := e.expr(item.Context)
			if item.Target != "" {
				text += " as " + item.Target
			}
			items = append(items, text)
		}
		e.line("with ", strings.Join(items, ", "), ":")
		e.body(stmt.Body)

	case *ast.Return:
		e.keywordStmt("return", stmt.Value)

	case *ast.Yield:
		e.keywordStmt("yield", stmt.Value)

	case *ast.Raise:
		e.keywordStmt("raise", stmt.Exc)

	case *ast.Break:
		e.line("break")

	case *ast.Continue:
		e.line("continue")

	case *ast.Global:
		e.line("global ", strings.Join(stmt.Names, ", "))

	case *ast.Import:
		if stmt.Alias != "" {
			e.line("import ", stmt.Module, " as ", stmt.Alias)
		} else {
			e.line("import ", stmt.Module)
		}

	case *ast.ImportFrom:
		names := make([]string, 0, len(stmt.Names))
		for _, name := range stmt.Names {
			if name.Alias != "" {
				names = append(names, name.Name+" as "+name.Alias)
			} else {
				names = append(names, name.Name)
			}
		}
		e.line("from ", stmt.Module, " import ", strings.Join(names, ", "))

	case *ast.ExprStmt:
		e.line(e.expr(stmt.X))

	case *ast.Assign:
		parts := make([]string, 0, len(stmt.Targets)+1)
		for _, target := range stmt.Targets {
			parts = append(parts, e.expr(target))
		}
		parts = append(parts, e.expr(stmt.Value))
		e.line(strings.Join(parts, " = "))

	case *ast.AugAssign:
		e.line(e.expr(stmt.Target), " ", stmt.Op, "= ", e.expr(stmt.Value))

	default:
		e.fault(stmt)
	}
}

func (e *emitter) keywordStmt(keyword string, value ast.Expr) {
	if value == nil {
		e.line(keyword)
		return
	}
	e.line(keyword, " ", e.expr(value))
}

func (e *emitter) param(param *ast.Param) string {
	text := mapName(param.Name)
	if param.Annotation != nil {
		text += ": " + e.expr(param.Annotation)
		if param.Default != nil {
			text += " = " + e.expr(param.Default)
		}
		return text
	}
	if param.Default != nil {
		text += "=" + e.expr(param.Default)
	}
	return text
}

func (e *emitter) exprs(exprs []ast.Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, e.expr(expr))
	}
	return strings.Join(parts, ", ")
}

func (e *emitter) expr(expr ast.Expr) string {
	switch expr := expr.(type) {

	case *ast.BinaryOp:
		return "(" + e.expr(expr.Left) + " " + expr.Op + " " + e.expr(expr.Right) + ")"

	case *ast.UnaryOp:
		if expr.Op == "not" {
			return "(not " + e.expr(expr.Operand) + ")"
		}
		return "(" + expr.Op + e.expr(expr.Operand) + ")"

	case *ast.Compare:
		parts := []string{e.expr(expr.Left)}
		for i, op := range expr.Ops {
			parts = append(parts, op, e.expr(expr.Comparators[i]))
		}
		return "(" + strings.Join(parts, " ") + ")"

	case *ast.BoolOp:
		parts := make([]string, 0, len(expr.Values))
		for _, value := range expr.Values {
			parts = append(parts, e.expr(value))
		}
		return "(" + strings.Join(parts, " "+expr.Op+" ") + ")"

	case *ast.Call:
		args := make([]string, 0, len(expr.Args)+len(expr.Keywords))
		for _, arg := range expr.Args {
			args = append(args, e.expr(arg))
		}
		for _, kw := range expr.Keywords {
			args = append(args, kw.Name+"="+e.expr(kw.Value))
		}
		return e.expr(expr.Func) + "(" + strings.Join(args, ", ") + ")"

	case *ast.Attribute:
		return e.expr(expr.Value) + "." + mapName(expr.Attr)

	case *ast.Subscript:
		return e.expr(expr.Value) + "[" + e.expr(expr.Index) + "]"

	case *ast.Name:
		return mapName(expr.ID)

	case *ast.Literal:
		if text, ok := literal(expr); ok {
			return text
		}

	case *ast.FString:
		return e.fstring(expr)

	case *ast.List:
		return "[" + e.exprs(expr.Elts) + "]"

	case *ast.Dict:
		items := make([]string, 0, len(expr.Keys))
		for i, key := range expr.Keys {
			items = append(items, e.expr(key)+": "+e.expr(expr.Values[i]))
		}
		return "{" + strings.Join(items, ", ") + "}"

	case *ast.Lambda:
		params := make([]string, 0, len(expr.Params))
		for _, param := range expr.Params {
			params = append(params, mapName(param))
		}
		if len(params) == 0 {
			return "(lambda: " + e.expr(expr.Body) + ")"
		}
		return "(lambda " + strings.Join(params, ", ") + ": " + e.expr(expr.Body) + ")"

	case *ast.IfExp:
		return "(" + e.expr(expr.Body) + " if " + e.expr(expr.Test) + " else " + e.expr(expr.OrElse) + ")"

	}

	e.fault(expr)
	return ""
}

func literal(lit *ast.Literal) (string, bool) {
	switch lit.Kind {

	case ast.LiteralInt:
		if value, ok := lit.Value.(*big.Int); ok && value != nil {
			return value.String(), true
		}

	case ast.LiteralFloat:
		if value, ok := lit.Value.(float64); ok {
			return formatFloat(value), true
		}

	case ast.LiteralString:
		if value, ok := lit.Value.(string); ok {
			return quote(value), true
		}

	case ast.LiteralBool:
		if value, ok := lit.Value.(bool); ok {
			if value {
				return "True", true
			}
			return "False", true
		}

	case ast.LiteralNone:
		return "None", true

	}
	return "", false
}

var escapers = map[byte]*strings.Replacer{
	'"': strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\t", `\t`,
		"\r", `\r`,
	),
	'\'': strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\t", `\t`,
		"\r", `\r`,
	),
}

func quote(s string) string {
	return quoteWith(s, '"')
}

func quoteWith(s string, q byte) string {
	return string(q) + escapers[q].Replace(s) + string(q)
}

// formatFloat matches Python's repr: shortest round-trip digits, fixed
// notation for decimal exponents -4 through 15, scientific otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return `float("nan")`
	case math.IsInf(f, 1):
		return `float("inf")`
	case math.IsInf(f, -1):
		return `float("-inf")`
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	return text
}
