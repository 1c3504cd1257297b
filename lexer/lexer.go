package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

const eof = -1

type Option func(*lexer)

// Lenient accepts a dedent that lands between two open indentation levels
// instead of reporting it.
func Lenient() Option {
	return func(l *lexer) {
		l.lenient = true
	}
}

type lexer struct {
	src     []rune
	pos     int
	line    int
	column  int
	tokens  []Token
	indents []int
	depth   int
	lenient bool
}

// Tokenize converts source into tokens, synthesizing NEWLINE, INDENT and
// DEDENT from line structure. The result always ends with exactly one EOF.
func Tokenize(source string, options ...Option) ([]Token, error) {
	l := &lexer{
		src:     []rune(source),
		line:    1,
		column:  1,
		indents: []int{0},
	}
	for _, option := range options {
		option(l)
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) peek(offset int) rune {
	if i := l.pos + offset; i < len(l.src) {
		return l.src[i]
	}
	return eof
}

func (l *lexer) advance() rune {
	if l.pos >= len(l.src) {
		return eof
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *lexer) emit(kind TokenKind, text string, line, column int) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Column: column,
	})
}

func (l *lexer) errorf(line, column int, format string, args ...any) error {
	return &Error{
		Line:   line,
		Column: column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (l *lexer) run() error {
	atLineStart := true

	for l.pos < len(l.src) {
		if atLineStart && l.depth == 0 {
			width := 0
		indentation:
			for {
				switch l.peek(0) {
				case ' ':
					width++
				case '\t':
					width += 4
				case '\r':
				default:
					break indentation
				}
				l.advance()
			}

			switch l.peek(0) {
			case '\n':
				// blank line
				l.advance()
				continue
			case '#':
				for r := l.peek(0); r != '\n' && r != eof; r = l.peek(0) {
					l.advance()
				}
				continue
			case eof:
				continue
			}

			if err := l.indent(width); err != nil {
				return err
			}
			atLineStart = false
			continue
		}

		r := l.peek(0)
		switch {

		case r == ' ' || r == '\t' || r == '\r':
			l.advance()

		case r == '\n':
			if l.depth == 0 {
				l.emit(TokenNewline, "\n", l.line, l.column)
				atLineStart = true
			}
			l.advance()

		case r == '#':
			line, column := l.line, l.column
			var sb strings.Builder
			for r := l.peek(0); r != '\n' && r != eof; r = l.peek(0) {
				sb.WriteRune(l.advance())
			}
			l.emit(TokenComment, sb.String(), line, column)

		case r == '"' || r == '\'':
			if err := l.scanString(TokenString, l.line, l.column); err != nil {
				return err
			}

		case isDigit(r):
			if err := l.scanNumber(); err != nil {
				return err
			}

		case isLetter(r):
			if err := l.scanIdentifier(); err != nil {
				return err
			}

		default:
			if err := l.scanOperator(); err != nil {
				return err
			}

		}
	}

	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(TokenDedent, "", l.line, l.column)
	}
	l.emit(TokenEOF, "", l.line, l.column)

	return nil
}

func (l *lexer) indent(width int) error {
	if width > l.indents[len(l.indents)-1] {
		l.indents = append(l.indents, width)
		l.emit(TokenIndent, "", l.line, 1)
		return nil
	}
	for width < l.indents[len(l.indents)-1] {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(TokenDedent, "", l.line, 1)
	}
	if !l.lenient && width != l.indents[len(l.indents)-1] {
		return l.errorf(l.line, l.column, "unindent does not match any outer indentation level")
	}
	return nil
}

func (l *lexer) scanString(kind TokenKind, line, column int) error {
	quote := l.advance()
	triple := l.peek(0) == quote && l.peek(1) == quote
	if triple {
		l.advance()
		l.advance()
	}

	var sb strings.Builder
	for {
		r := l.peek(0)
		if r == eof {
			return l.errorf(line, column, "unterminated string literal")
		}

		if triple {
			if r == quote && l.peek(1) == quote && l.peek(2) == quote {
				l.advance()
				l.advance()
				l.advance()
				break
			}
		} else {
			if r == quote {
				l.advance()
				break
			}
			if r == '\n' {
				return l.errorf(line, column, "unterminated string literal")
			}
		}

		if r != '\\' {
			sb.WriteRune(l.advance())
			continue
		}

		l.advance()
		escape := l.advance()
		switch escape {
		case eof:
			return l.errorf(line, column, "unterminated string literal")
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		case '\\':
			sb.WriteRune('\\')
		case quote:
			sb.WriteRune(quote)
		default:
			sb.WriteRune('\\')
			sb.WriteRune(escape)
		}
	}

	l.emit(kind, sb.String(), line, column)
	return nil
}

func (l *lexer) scanNumber() error {
	line, column := l.line, l.column
	var sb strings.Builder

	if l.peek(0) == '0' {
		var valid func(rune) bool
		switch unicode.ToLower(l.peek(1)) {
		case 'x':
			valid = isHexDigit
		case 'o':
			valid = func(r rune) bool { return r >= '0' && r <= '7' }
		case 'b':
			valid = func(r rune) bool { return r == '0' || r == '1' }
		}
		if valid != nil {
			sb.WriteRune(l.advance())
			prefix := l.advance()
			sb.WriteRune(prefix)
			digits := 0
			for r := l.peek(0); valid(r) || r == '_'; r = l.peek(0) {
				l.advance()
				if r != '_' {
					sb.WriteRune(r)
					digits++
				}
			}
			if digits == 0 {
				return l.errorf(line, column, "invalid integer literal %q", sb.String())
			}
			l.emit(TokenInteger, sb.String(), line, column)
			return nil
		}
	}

	kind := TokenInteger
	l.scanDecimals(&sb)

	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		kind = TokenFloat
		sb.WriteRune(l.advance())
		l.scanDecimals(&sb)
	}

	if r := l.peek(0); r == 'e' || r == 'E' {
		next := l.peek(1)
		if isDigit(next) || (next == '+' || next == '-') && isDigit(l.peek(2)) {
			kind = TokenFloat
			sb.WriteRune(l.advance())
			if next == '+' || next == '-' {
				sb.WriteRune(l.advance())
			}
			for isDigit(l.peek(0)) {
				sb.WriteRune(l.advance())
			}
		}
	}

	l.emit(kind, sb.String(), line, column)
	return nil
}

func (l *lexer) scanDecimals(sb *strings.Builder) {
	for r := l.peek(0); isDigit(r) || r == '_'; r = l.peek(0) {
		l.advance()
		if r != '_' {
			sb.WriteRune(r)
		}
	}
}

func (l *lexer) scanIdentifier() error {
	line, column := l.line, l.column
	var sb strings.Builder
	for r := l.peek(0); isLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r); r = l.peek(0) {
		sb.WriteRune(l.advance())
	}
	word := sb.String()

	// f"..." is a single f-string token
	if word == "f" {
		if r := l.peek(0); r == '"' || r == '\'' {
			return l.scanString(TokenFString, line, column)
		}
	}

	l.emit(LookupKeyword(word), word, line, column)
	return nil
}

type operator struct {
	text string
	kind TokenKind
}

// operators lists candidates per leading rune, longest first.
var operators = map[rune][]operator{
	'+': {{"+=", TokenPlusAssign}, {"+", TokenPlus}},
	'-': {{"-=", TokenMinusAssign}, {"->", TokenArrow}, {"-", TokenMinus}},
	'*': {{"**", TokenDoubleStar}, {"*=", TokenStarAssign}, {"*", TokenStar}},
	'/': {{"//", TokenDoubleSlash}, {"/=", TokenSlashAssign}, {"/", TokenSlash}},
	'%': {{"%=", TokenPercentAssign}, {"%", TokenPercent}},
	'=': {{"==", TokenEq}, {"=", TokenAssign}},
	'!': {{"!=", TokenNe}},
	'<': {{"<=", TokenLe}, {"<", TokenLt}},
	'>': {{">=", TokenGe}, {">", TokenGt}},
	'(': {{"(", TokenLParen}},
	')': {{")", TokenRParen}},
	'[': {{"[", TokenLBracket}},
	']': {{"]", TokenRBracket}},
	'{': {{"{", TokenLBrace}},
	'}': {{"}", TokenRBrace}},
	',': {{",", TokenComma}},
	':': {{":", TokenColon}},
	'.': {{".", TokenDot}},
	'@': {{"@", TokenAt}},
}

func (l *lexer) scanOperator() error {
	line, column := l.line, l.column
	r := l.peek(0)
	for _, op := range operators[r] {
		if len(op.text) == 2 && l.peek(1) != rune(op.text[1]) {
			continue
		}
		for range op.text {
			l.advance()
		}
		switch r {
		case '(', '[', '{':
			l.depth++
		case ')', ']', '}':
			if l.depth > 0 {
				l.depth--
			}
		}
		l.emit(op.kind, op.text, line, column)
		return nil
	}
	return l.errorf(line, column, "unexpected character %q", r)
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}
