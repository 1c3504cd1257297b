package parser

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse builds a Program from a token stream in a single forward pass.
// COMMENT tokens are ignored. The first error aborts the parse.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	p := newParser(tokens)
	program := &ast.Program{
		Pos: ast.Pos{Line: 1, Column: 1},
	}
	p.skipNewlines()
	for !p.at(lexer.TokenEOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
		p.skipNewlines()
	}
	return program, nil
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens: make([]lexer.Token, 0, len(tokens)+1),
	}
	for _, token := range tokens {
		if token.Kind == lexer.TokenComment {
			continue
		}
		p.tokens = append(p.tokens, token)
	}
	if n := len(p.tokens); n == 0 || p.tokens[n-1].Kind != lexer.TokenEOF {
		eof := lexer.Token{Kind: lexer.TokenEOF, Line: 1, Column: 1}
		if n > 0 {
			eof.Line = p.tokens[n-1].Line
			eof.Column = p.tokens[n-1].Column
		}
		p.tokens = append(p.tokens, eof)
	}
	return p
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) peek(offset int) lexer.Token {
	if i := p.pos + offset; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(kinds ...lexer.TokenKind) bool {
	kind := p.current().Kind
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func (p *parser) advance() lexer.Token {
	token := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return token
}

func (p *parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if !p.at(kind) {
		return lexer.Token{}, p.expected(kind)
	}
	return p.advance(), nil
}

func (p *parser) expected(kind lexer.TokenKind) error {
	token := p.current()
	return &Error{
		Line:     token.Line,
		Column:   token.Column,
		Expected: kind,
		Found:    token.Kind,
		Msg:      fmt.Sprintf("expected %s, got %s", kind, token.Kind),
	}
}

func (p *parser) errorf(token lexer.Token, format string, args ...any) error {
	return &Error{
		Line:   token.Line,
		Column: token.Column,
		Found:  token.Kind,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) skipNewlines() {
	for p.at(lexer.TokenNewline) {
		p.advance()
	}
}

func posOf(token lexer.Token) ast.Pos {
	return ast.Pos{
		Line:   token.Line,
		Column: token.Column,
	}
}

// statements

func (p *parser) statement() (ast.Stmt, error) {
	switch p.current().Kind {
	case lexer.TokenScheme:
		return p.functionDef(nil)
	case lexer.TokenFortify:
		return p.classDef(nil)
	case lexer.TokenAahaan:
		return p.ifStmt()
	case lexer.TokenIterate:
		return p.forStmt()
	case lexer.TokenRepeat:
		return p.whileStmt()
	case lexer.TokenAttempt:
		return p.tryStmt()
	case lexer.TokenContext:
		return p.withStmt()
	case lexer.TokenAt:
		return p.decorated()
	}

	stmt, err := p.simpleStatement()
	if err != nil {
		return nil, err
	}
	switch p.current().Kind {
	case lexer.TokenNewline:
		p.advance()
	case lexer.TokenDedent, lexer.TokenEOF:
	default:
		return nil, p.expected(lexer.TokenNewline)
	}
	return stmt, nil
}

func (p *parser) simpleStatement() (ast.Stmt, error) {
	token := p.current()
	pos := posOf(token)

	switch token.Kind {

	case lexer.TokenAbandon:
		p.advance()
		value, err := p.optionalExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Pos: pos, Value: value}, nil

	case lexer.TokenProduce:
		p.advance()
		value, err := p.optionalExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Yield{Pos: pos, Value: value}, nil

	case lexer.TokenEscalate:
		p.advance()
		exc, err := p.optionalExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Raise{Pos: pos, Exc: exc}, nil

	case lexer.TokenCollapse:
		p.advance()
		return &ast.Break{Pos: pos}, nil

	case lexer.TokenSkip:
		p.advance()
		return &ast.Continue{Pos: pos}, nil

	case lexer.TokenRecognize:
		p.advance()
		stmt := &ast.Global{Pos: pos}
		for {
			name, err := p.expect(lexer.TokenIdentifier)
			if err != nil {
				return nil, err
			}
			stmt.Names = append(stmt.Names, name.Text)
			if !p.at(lexer.TokenComma) {
				break
			}
			p.advance()
		}
		return stmt, nil

	case lexer.TokenCongregation:
		p.advance()
		module, err := p.dottedName()
		if err != nil {
			return nil, err
		}
		alias, err := p.optionalAlias()
		if err != nil {
			return nil, err
		}
		return &ast.Import{Pos: pos, Module: module, Alias: alias}, nil

	case lexer.TokenFrom:
		p.advance()
		module, err := p.dottedName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenCongregation); err != nil {
			return nil, err
		}
		stmt := &ast.ImportFrom{Pos: pos, Module: module}
		for {
			name, err := p.expect(lexer.TokenIdentifier)
			if err != nil {
				return nil, err
			}
			alias, err := p.optionalAlias()
			if err != nil {
				return nil, err
			}
			stmt.Names = append(stmt.Names, &ast.ImportName{
				Name:  name.Text,
				Alias: alias,
			})
			if !p.at(lexer.TokenComma) {
				break
			}
			p.advance()
		}
		return stmt, nil

	}

	return p.exprOrAssign()
}

var augmentedOps = map[lexer.TokenKind]string{
	lexer.TokenPlusAssign:    "+",
	lexer.TokenMinusAssign:   "-",
	lexer.TokenStarAssign:    "*",
	lexer.TokenSlashAssign:   "/",
	lexer.TokenPercentAssign: "%",
}

func (p *parser) exprOrAssign() (ast.Stmt, error) {
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	pos := first.Position()

	if p.at(lexer.TokenAssign) {
		exprs := []ast.Expr{first}
		for p.at(lexer.TokenAssign) {
			p.advance()
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		targets := exprs[:len(exprs)-1]
		for _, target := range targets {
			if err := checkAssignable(target); err != nil {
				return nil, err
			}
		}
		return &ast.Assign{
			Pos:     pos,
			Targets: targets,
			Value:   exprs[len(exprs)-1],
		}, nil
	}

	if op, ok := augmentedOps[p.current().Kind]; ok {
		if err := checkAssignable(first); err != nil {
			return nil, err
		}
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.AugAssign{
			Pos:    pos,
			Target: first,
			Op:     op,
			Value:  value,
		}, nil
	}

	return &ast.ExprStmt{Pos: pos, X: first}, nil
}

func checkAssignable(expr ast.Expr) error {
	switch expr.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
		return nil
	}
	pos := expr.Position()
	return &Error{
		Line:   pos.Line,
		Column: pos.Column,
		Msg:    fmt.Sprintf("cannot assign to %s", describe(expr)),
	}
}

func describe(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.Literal:
		return "literal"
	case *ast.Call:
		return "function call"
	case *ast.Lambda:
		return "lambda"
	case *ast.List:
		return "list display"
	case *ast.Dict:
		return "dict display"
	}
	return "expression"
}

func (p *parser) optionalExpression() (ast.Expr, error) {
	if p.at(lexer.TokenNewline, lexer.TokenDedent, lexer.TokenEOF) {
		return nil, nil
	}
	return p.expression()
}

func (p *parser) optionalAlias() (string, error) {
	if !p.at(lexer.TokenAs) {
		return "", nil
	}
	p.advance()
	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return "", err
	}
	return name.Text, nil
}

func (p *parser) dottedName() (string, error) {
	var parts []string
	for {
		name, err := p.expect(lexer.TokenIdentifier)
		if err != nil {
			return "", err
		}
		parts = append(parts, name.Text)
		if !p.at(lexer.TokenDot) {
			break
		}
		p.advance()
	}
	return strings.Join(parts, "."), nil
}

// block parses ':' NEWLINE INDENT statements DEDENT. A missing final DEDENT
// at EOF is tolerated.
func (p *parser) block() ([]ast.Stmt, error) {
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.TokenIndent); err != nil {
		return nil, err
	}
	var body []ast.Stmt
	for {
		p.skipNewlines()
		if p.at(lexer.TokenDedent, lexer.TokenEOF) {
			break
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if p.at(lexer.TokenDedent) {
		p.advance()
	}
	return body, nil
}

func (p *parser) decorated() (ast.Stmt, error) {
	var decorators []ast.Expr
	for p.at(lexer.TokenAt) {
		p.advance()
		decorator, err := p.expression()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, decorator)
		if _, err := p.expect(lexer.TokenNewline); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}

	switch p.current().Kind {
	case lexer.TokenScheme:
		return p.functionDef(decorators)
	case lexer.TokenFortify:
		return p.classDef(decorators)
	}
	return nil, p.errorf(p.current(), "expected function or class after decorator, got %s", p.current().Kind)
}

func (p *parser) functionDef(decorators []ast.Expr) (ast.Stmt, error) {
	token, err := p.expect(lexer.TokenScheme)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.TokenIdentifier, lexer.TokenInitialize) {
		return nil, p.expected(lexer.TokenIdentifier)
	}
	def := &ast.FunctionDef{
		Pos:        posOf(token),
		Decorators: decorators,
		Name:       p.advance().Text,
	}

	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	for !p.at(lexer.TokenRParen) {
		param, err := p.param()
		if err != nil {
			return nil, err
		}
		def.Params = append(def.Params, param)
		if !p.at(lexer.TokenRParen) {
			if _, err := p.expect(lexer.TokenComma); err != nil {
				return nil, err
			}
		}
	}
	p.advance()

	if p.at(lexer.TokenArrow) {
		p.advance()
		def.Returns, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	def.Body, err = p.block()
	if err != nil {
		return nil, err
	}
	return def, nil
}

func (p *parser) param() (*ast.Param, error) {
	if !p.at(lexer.TokenIdentifier, lexer.TokenMyself) {
		return nil, p.expected(lexer.TokenIdentifier)
	}
	token := p.advance()
	param := &ast.Param{
		Pos:  posOf(token),
		Name: token.Text,
	}
	var err error
	if p.at(lexer.TokenColon) {
		p.advance()
		param.Annotation, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if p.at(lexer.TokenAssign) {
		p.advance()
		param.Default, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	return param, nil
}

func (p *parser) classDef(decorators []ast.Expr) (ast.Stmt, error) {
	token, err := p.expect(lexer.TokenFortify)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	def := &ast.ClassDef{
		Pos:        posOf(token),
		Decorators: decorators,
		Name:       name.Text,
	}

	if p.at(lexer.TokenLParen) {
		p.advance()
		for !p.at(lexer.TokenRParen) {
			base, err := p.expression()
			if err != nil {
				return nil, err
			}
			def.Bases = append(def.Bases, base)
			if !p.at(lexer.TokenRParen) {
				if _, err := p.expect(lexer.TokenComma); err != nil {
					return nil, err
				}
			}
		}
		p.advance()
	}

	def.Body, err = p.block()
	if err != nil {
		return nil, err
	}
	return def, nil
}

func (p *parser) ifStmt() (ast.Stmt, error) {
	token := p.advance()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{
		Pos:  posOf(token),
		Cond: cond,
		Body: body,
	}

	for p.at(lexer.TokenCascade) {
		token := p.advance()
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.Elifs = append(stmt.Elifs, &ast.Elif{
			Pos:  posOf(token),
			Cond: cond,
			Body: body,
		})
	}

	if p.at(lexer.TokenThatsIt) {
		p.advance()
		stmt.Else, err = p.block()
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *parser) forStmt() (ast.Stmt, error) {
	token := p.advance()
	target, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenWithin); err != nil {
		return nil, err
	}
	iter, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Pos:    posOf(token),
		Target: target.Text,
		Iter:   iter,
		Body:   body,
	}, nil
}

func (p *parser) whileStmt() (ast.Stmt, error) {
	token := p.advance()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{
		Pos:  posOf(token),
		Cond: cond,
		Body: body,
	}, nil
}

func (p *parser) tryStmt() (ast.Stmt, error) {
	token := p.advance()
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Try{
		Pos:  posOf(token),
		Body: body,
	}

	for p.at(lexer.TokenGrieve) {
		handler := &ast.Handler{
			Pos: posOf(p.advance()),
		}
		if !p.at(lexer.TokenColon) {
			handler.Type, err = p.dottedName()
			if err != nil {
				return nil, err
			}
			handler.Name, err = p.optionalAlias()
			if err != nil {
				return nil, err
			}
		}
		handler.Body, err = p.block()
		if err != nil {
			return nil, err
		}
		stmt.Handlers = append(stmt.Handlers, handler)
	}

	if p.at(lexer.TokenValidate) {
		p.advance()
		stmt.Finally, err = p.block()
		if err != nil {
			return nil, err
		}
	} else if len(stmt.Handlers) == 0 {
		return nil, p.errorf(p.current(), "expected GRIEVE or VALIDATE after ATTEMPT block, got %s", p.current().Kind)
	}

	return stmt, nil
}

func (p *parser) withStmt() (ast.Stmt, error) {
	token := p.advance()
	stmt := &ast.With{
		Pos: posOf(token),
	}
	for {
		context, err := p.expression()
		if err != nil {
			return nil, err
		}
		target, err := p.optionalAlias()
		if err != nil {
			return nil, err
		}
		stmt.Items = append(stmt.Items, &ast.WithItem{
			Context: context,
			Target:  target,
		})
		if !p.at(lexer.TokenComma) {
			break
		}
		p.advance()
	}
	var err error
	stmt.Body, err = p.block()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// expressions

func (p *parser) expression() (ast.Expr, error) {
	body, err := p.or()
	if err != nil || !p.at(lexer.TokenAahaan) {
		return body, err
	}
	p.advance()
	test, err := p.or()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenThatsIt); err != nil {
		return nil, err
	}
	orElse, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.IfExp{
		Pos:    body.Position(),
		Test:   test,
		Body:   body,
		OrElse: orElse,
	}, nil
}

func (p *parser) or() (ast.Expr, error) {
	return p.boolOp(lexer.TokenAlternate, "or", p.and)
}

func (p *parser) and() (ast.Expr, error) {
	return p.boolOp(lexer.TokenKinship, "and", p.not)
}

func (p *parser) boolOp(kind lexer.TokenKind, op string, operand func() (ast.Expr, error)) (ast.Expr, error) {
	first, err := operand()
	if err != nil || !p.at(kind) {
		return first, err
	}
	values := []ast.Expr{first}
	for p.at(kind) {
		p.advance()
		value, err := operand()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return &ast.BoolOp{
		Pos:    first.Position(),
		Op:     op,
		Values: values,
	}, nil
}

func (p *parser) not() (ast.Expr, error) {
	if !p.at(lexer.TokenNegate) {
		return p.comparison()
	}
	token := p.advance()
	operand, err := p.not()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{
		Pos:     posOf(token),
		Op:      "not",
		Operand: operand,
	}, nil
}

var compareOps = map[lexer.TokenKind]string{
	lexer.TokenSameAs:      "==",
	lexer.TokenDiffersFrom: "!=",
	lexer.TokenGreaterThan: ">",
	lexer.TokenLesserThan:  "<",
	lexer.TokenAtLeast:     ">=",
	lexer.TokenAtMost:      "<=",
	lexer.TokenEq:          "==",
	lexer.TokenNe:          "!=",
	lexer.TokenLt:          "<",
	lexer.TokenGt:          ">",
	lexer.TokenLe:          "<=",
	lexer.TokenGe:          ">=",
	lexer.TokenWithin:      "in",
}

func (p *parser) comparison() (ast.Expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	var compare *ast.Compare
	for {
		op, ok := compareOps[p.current().Kind]
		if !ok {
			break
		}
		p.advance()
		comparator, err := p.additive()
		if err != nil {
			return nil, err
		}
		if compare == nil {
			compare = &ast.Compare{
				Pos:  left.Position(),
				Left: left,
			}
		}
		compare.Ops = append(compare.Ops, op)
		compare.Comparators = append(compare.Comparators, comparator)
	}
	if compare == nil {
		return left, nil
	}
	return compare, nil
}

var additiveOps = map[lexer.TokenKind]string{
	lexer.TokenPlus:  "+",
	lexer.TokenMinus: "-",
}

var multiplicativeOps = map[lexer.TokenKind]string{
	lexer.TokenStar:        "*",
	lexer.TokenSlash:       "/",
	lexer.TokenDoubleSlash: "//",
	lexer.TokenPercent:     "%",
}

func (p *parser) additive() (ast.Expr, error) {
	return p.binary(additiveOps, p.multiplicative)
}

func (p *parser) multiplicative() (ast.Expr, error) {
	return p.binary(multiplicativeOps, p.unary)
}

// binary parses a left-associative chain of operators from ops.
func (p *parser) binary(ops map[lexer.TokenKind]string, operand func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.current().Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{
			Pos:   left.Position(),
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
}

func (p *parser) unary() (ast.Expr, error) {
	if !p.at(lexer.TokenMinus) {
		return p.power()
	}
	token := p.advance()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{
		Pos:     posOf(token),
		Op:      "-",
		Operand: operand,
	}, nil
}

// power is right-associative and takes a unary operand on its right.
func (p *parser) power() (ast.Expr, error) {
	left, err := p.postfix()
	if err != nil || !p.at(lexer.TokenDoubleStar) {
		return left, err
	}
	p.advance()
	right, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{
		Pos:   left.Position(),
		Left:  left,
		Op:    "**",
		Right: right,
	}, nil
}

func (p *parser) postfix() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current().Kind {

		case lexer.TokenLParen:
			expr, err = p.call(expr)
			if err != nil {
				return nil, err
			}

		case lexer.TokenDot:
			p.advance()
			if !p.at(lexer.TokenIdentifier, lexer.TokenMyself, lexer.TokenInitialize) {
				return nil, p.expected(lexer.TokenIdentifier)
			}
			expr = &ast.Attribute{
				Pos:   expr.Position(),
				Value: expr,
				Attr:  p.advance().Text,
			}

		case lexer.TokenLBracket:
			p.advance()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokenRBracket); err != nil {
				return nil, err
			}
			expr = &ast.Subscript{
				Pos:   expr.Position(),
				Value: expr,
				Index: index,
			}

		default:
			return expr, nil
		}
	}
}

// call parses an argument list. An argument is a keyword argument only when
// an identifier is immediately followed by '='.
func (p *parser) call(fn ast.Expr) (ast.Expr, error) {
	p.advance()
	call := &ast.Call{
		Pos:  fn.Position(),
		Func: fn,
	}
	for !p.at(lexer.TokenRParen) {
		if p.at(lexer.TokenIdentifier) && p.peek(1).Kind == lexer.TokenAssign {
			name := p.advance().Text
			p.advance()
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, &ast.Keyword{
				Name:  name,
				Value: value,
			})
		} else {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		if !p.at(lexer.TokenRParen) {
			if _, err := p.expect(lexer.TokenComma); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	return call, nil
}

var builtinNames = map[lexer.TokenKind]string{
	lexer.TokenAnnounce: "print",
	lexer.TokenListen:   "input",
}

func (p *parser) primary() (ast.Expr, error) {
	token := p.current()
	pos := posOf(token)

	switch token.Kind {

	case lexer.TokenInteger:
		p.advance()
		value, ok := parseInt(token.Text)
		if !ok {
			return nil, p.errorf(token, "invalid integer literal %q", token.Text)
		}
		return &ast.Literal{Pos: pos, Kind: ast.LiteralInt, Value: value}, nil

	case lexer.TokenFloat:
		p.advance()
		value, err := strconv.ParseFloat(token.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, p.errorf(token, "invalid float literal %q", token.Text)
		}
		return &ast.Literal{Pos: pos, Kind: ast.LiteralFloat, Value: value}, nil

	case lexer.TokenString:
		p.advance()
		return &ast.Literal{Pos: pos, Kind: ast.LiteralString, Value: token.Text}, nil

	case lexer.TokenFString:
		p.advance()
		return parseFString(token)

	case lexer.TokenTruth, lexer.TokenFalsehood:
		p.advance()
		return &ast.Literal{Pos: pos, Kind: ast.LiteralBool, Value: token.Kind == lexer.TokenTruth}, nil

	case lexer.TokenNothing:
		p.advance()
		return &ast.Literal{Pos: pos, Kind: ast.LiteralNone}, nil

	case lexer.TokenIdentifier, lexer.TokenMyself, lexer.TokenInitialize:
		p.advance()
		return &ast.Name{Pos: pos, ID: token.Text}, nil

	case lexer.TokenLParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.TokenLBracket:
		return p.list()

	case lexer.TokenLBrace:
		return p.dict()

	case lexer.TokenDesire:
		return p.lambda()

	case lexer.TokenAnnounce, lexer.TokenListen:
		// parsed as a plain call against the builtin name by postfix
		p.advance()
		if !p.at(lexer.TokenLParen) {
			return nil, p.expected(lexer.TokenLParen)
		}
		return &ast.Name{Pos: pos, ID: builtinNames[token.Kind]}, nil

	}

	return nil, p.errorf(token, "unexpected token %s", token.Kind)
}

func parseInt(text string) (*big.Int, bool) {
	base := 10
	digits := text
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			digits = text[2:]
		}
	}
	return new(big.Int).SetString(digits, base)
}

func (p *parser) list() (ast.Expr, error) {
	token := p.advance()
	list := &ast.List{
		Pos: posOf(token),
	}
	for !p.at(lexer.TokenRBracket) {
		elt, err := p.expression()
		if err != nil {
			return nil, err
		}
		list.Elts = append(list.Elts, elt)
		if !p.at(lexer.TokenRBracket) {
			if _, err := p.expect(lexer.TokenComma); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	return list, nil
}

func (p *parser) dict() (ast.Expr, error) {
	token := p.advance()
	dict := &ast.Dict{
		Pos: posOf(token),
	}
	for !p.at(lexer.TokenRBrace) {
		key, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenColon); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, value)
		if !p.at(lexer.TokenRBrace) {
			if _, err := p.expect(lexer.TokenComma); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	return dict, nil
}

func (p *parser) lambda() (ast.Expr, error) {
	token := p.advance()
	lambda := &ast.Lambda{
		Pos: posOf(token),
	}
	for !p.at(lexer.TokenColon) {
		if !p.at(lexer.TokenIdentifier, lexer.TokenMyself) {
			return nil, p.expected(lexer.TokenIdentifier)
		}
		lambda.Params = append(lambda.Params, p.advance().Text)
		if !p.at(lexer.TokenColon) {
			if _, err := p.expect(lexer.TokenComma); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	lambda.Body = body
	return lambda, nil
}
