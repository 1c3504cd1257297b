package parser

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/lexer"
)

// parseFString splits the text of an f-string token into literal parts and
// replacement fields of the form {expr[=][!conv][:spec]}. Field expressions
// are tokenized and parsed like any other expression, so keywords and
// remapped names inside them are translated.
func parseFString(token lexer.Token) (ast.Expr, error) {
	s := &fstringScanner{
		token: token,
		text:  token.Text,
	}
	parts, err := s.parts(false)
	if err != nil {
		return nil, err
	}
	return &ast.FString{
		Pos:   posOf(token),
		Parts: parts,
	}, nil
}

type fstringScanner struct {
	token lexer.Token
	text  string
	i     int
}

func (s *fstringScanner) peek(offset int) byte {
	if i := s.i + offset; i < len(s.text) {
		return s.text[i]
	}
	return 0
}

// position maps a byte offset of the token text to a source position. The
// opening f and quote are assumed to take two columns.
func (s *fstringScanner) position(offset int) (line, column int) {
	before := s.text[:offset]
	if n := strings.LastIndexByte(before, '\n'); n >= 0 {
		return s.token.Line + strings.Count(before, "\n"),
			utf8.RuneCountInString(before[n+1:]) + 1
	}
	return s.token.Line, s.token.Column + 2 + utf8.RuneCountInString(before)
}

func (s *fstringScanner) errorf(offset int, msg string) error {
	line, column := s.position(offset)
	return &Error{
		Line:   line,
		Column: column,
		Found:  lexer.TokenFString,
		Msg:    msg,
	}
}

// parts scans literal text and fields. Inside a format spec it stops before
// the closing brace of the enclosing field and braces always open fields.
func (s *fstringScanner) parts(inSpec bool) ([]ast.FStringPart, error) {
	var parts []ast.FStringPart
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, ast.FStringPart{Text: literal.String()})
			literal.Reset()
		}
	}

	for s.i < len(s.text) {
		c := s.text[s.i]
		switch {

		case !inSpec && (c == '{' || c == '}') && s.peek(1) == c:
			literal.WriteByte(c)
			s.i += 2

		case c == '{':
			flush()
			field, err := s.field()
			if err != nil {
				return nil, err
			}
			parts = append(parts, field...)

		case c == '}':
			if inSpec {
				flush()
				return parts, nil
			}
			return nil, s.errorf(s.i, "single '}' is not allowed in f-string")

		default:
			literal.WriteByte(c)
			s.i++
		}
	}

	if inSpec {
		return nil, s.errorf(s.i, "expecting '}' in f-string")
	}
	flush()
	return parts, nil
}

// field parses one replacement field starting at its opening brace. A
// self-documenting field {expr=} yields its source text followed by the
// field, which defaults to the repr conversion.
func (s *fstringScanner) field() ([]ast.FStringPart, error) {
	s.i++
	start := s.i
	end, err := s.expressionEnd()
	if err != nil {
		return nil, err
	}
	source := s.text[start:end]

	exprText := source
	debug := false
	trimmed := strings.TrimRightFunc(source, unicode.IsSpace)
	if strings.HasSuffix(trimmed, "=") &&
		!strings.HasSuffix(trimmed, "==") &&
		!strings.HasSuffix(trimmed, "!=") &&
		!strings.HasSuffix(trimmed, "<=") &&
		!strings.HasSuffix(trimmed, ">=") {
		debug = true
		exprText = strings.TrimSuffix(trimmed, "=")
	}

	value, err := s.expression(exprText, start)
	if err != nil {
		return nil, err
	}
	field := ast.FStringPart{
		Value: value,
	}

	if s.peek(0) == '!' {
		switch conversion := s.peek(1); conversion {
		case 'r', 's', 'a':
			field.Conversion = string(conversion)
			s.i += 2
		default:
			return nil, s.errorf(s.i+1, "invalid conversion character in f-string: expected 's', 'r', or 'a'")
		}
	}

	if s.peek(0) == ':' {
		s.i++
		field.Spec, err = s.parts(true)
		if err != nil {
			return nil, err
		}
	}

	if s.peek(0) != '}' {
		return nil, s.errorf(s.i, "expecting '}' in f-string")
	}
	s.i++

	if !debug {
		return []ast.FStringPart{field}, nil
	}
	if field.Conversion == "" && len(field.Spec) == 0 {
		field.Conversion = "r"
	}
	return []ast.FStringPart{
		{Text: source},
		field,
	}, nil
}

// expressionEnd finds where the expression of a field stops: at a '!',
// ':' or '}' outside brackets and string literals.
func (s *fstringScanner) expressionEnd() (int, error) {
	depth := 0
	for s.i < len(s.text) {
		switch c := s.text[s.i]; c {

		case '\'', '"':
			s.i++
			for s.i < len(s.text) && s.text[s.i] != c {
				s.i++
			}

		case '(', '[', '{':
			depth++

		case ')', ']':
			if depth > 0 {
				depth--
			}

		case '}':
			if depth == 0 {
				return s.i, nil
			}
			depth--

		case '!':
			if depth == 0 && s.peek(1) != '=' {
				return s.i, nil
			}
			if s.peek(1) == '=' {
				s.i++
			}

		case ':':
			if depth == 0 {
				return s.i, nil
			}

		}
		s.i++
	}
	return 0, s.errorf(s.i, "expecting '}' in f-string")
}

func (s *fstringScanner) expression(text string, offset int) (ast.Expr, error) {
	offset += len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, s.errorf(offset, "empty expression not allowed in f-string")
	}

	line, column := s.position(offset)
	shift := func(l, c int) (int, int) {
		if l == 1 {
			return line, column + c - 1
		}
		return line + l - 1, c
	}

	tokens, err := lexer.Tokenize(text)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			l, c := shift(lexErr.Line, lexErr.Column)
			return nil, &Error{
				Line:   l,
				Column: c,
				Found:  lexer.TokenFString,
				Msg:    lexErr.Msg + " in f-string",
			}
		}
		return nil, err
	}
	for i := range tokens {
		tokens[i].Line, tokens[i].Column = shift(tokens[i].Line, tokens[i].Column)
	}

	p := newParser(tokens)
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if !p.at(lexer.TokenEOF) {
		return nil, p.errorf(p.current(), "unexpected %s in f-string", p.current().Kind)
	}
	return value, nil
}
