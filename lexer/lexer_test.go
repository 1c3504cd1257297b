package lexer

import (
	"errors"
	"slices"
	"testing"
)

func kinds(tokens []Token) []TokenKind {
	ret := make([]TokenKind, 0, len(tokens))
	for _, token := range tokens {
		ret = append(ret, token.Kind)
	}
	return ret
}

func mustTokenize(t *testing.T, src string, options ...Option) []Token {
	t.Helper()
	tokens, err := Tokenize(src, options...)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return tokens
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []TokenKind
	}{
		{
			name:  "empty",
			input: "",
			kinds: []TokenKind{TokenEOF},
		},
		{
			name: "function",
			input: `scheme greet(name):
    announce("Hello, " + name)
    abandon truth
`,
			kinds: []TokenKind{
				TokenScheme, TokenIdentifier, TokenLParen, TokenIdentifier, TokenRParen, TokenColon, TokenNewline,
				TokenIndent,
				TokenAnnounce, TokenLParen, TokenString, TokenPlus, TokenIdentifier, TokenRParen, TokenNewline,
				TokenAbandon, TokenTruth, TokenNewline,
				TokenDedent,
				TokenEOF,
			},
		},
		{
			name:  "bracket suppresses newline",
			input: "f(a,\n      b,\n  c)\n",
			kinds: []TokenKind{
				TokenIdentifier, TokenLParen, TokenIdentifier, TokenComma, TokenIdentifier, TokenComma,
				TokenIdentifier, TokenRParen, TokenNewline, TokenEOF,
			},
		},
		{
			name:  "blank and comment lines",
			input: "a\n\n   \n# note\n    # indented note\nb # trailing\n",
			kinds: []TokenKind{
				TokenIdentifier, TokenNewline,
				TokenIdentifier, TokenComment, TokenNewline,
				TokenEOF,
			},
		},
		{
			name:  "eof closes open blocks",
			input: "aahaan a:\n    aahaan b:\n        c",
			kinds: []TokenKind{
				TokenAahaan, TokenIdentifier, TokenColon, TokenNewline,
				TokenIndent, TokenAahaan, TokenIdentifier, TokenColon, TokenNewline,
				TokenIndent, TokenIdentifier,
				TokenDedent, TokenDedent, TokenEOF,
			},
		},
		{
			name:  "tab is four columns",
			input: "repeat x:\n\ta\n    b\n",
			kinds: []TokenKind{
				TokenRepeat, TokenIdentifier, TokenColon, TokenNewline,
				TokenIndent, TokenIdentifier, TokenNewline,
				TokenIdentifier, TokenNewline,
				TokenDedent, TokenEOF,
			},
		},
		{
			name:  "operators",
			input: "** // -> += -= *= /= %= == != <= >= < > = @ .",
			kinds: []TokenKind{
				TokenDoubleStar, TokenDoubleSlash, TokenArrow, TokenPlusAssign, TokenMinusAssign,
				TokenStarAssign, TokenSlashAssign, TokenPercentAssign, TokenEq, TokenNe, TokenLe, TokenGe,
				TokenLt, TokenGt, TokenAssign, TokenAt, TokenDot, TokenEOF,
			},
		},
		{
			name:  "crlf",
			input: "a = 1\r\n\r\nb = 2\r\n",
			kinds: []TokenKind{
				TokenIdentifier, TokenAssign, TokenInteger, TokenNewline,
				TokenIdentifier, TokenAssign, TokenInteger, TokenNewline,
				TokenEOF,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := kinds(mustTokenize(t, test.input))
			if !slices.Equal(got, test.kinds) {
				t.Fatalf("got %v\nwant %v", got, test.kinds)
			}
		})
	}
}

func TestTokenizeText(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		text  string
	}{
		{`"plain"`, TokenString, "plain"},
		{`'single'`, TokenString, "single"},
		{`"a\nb\tc\\d\"e"`, TokenString, "a\nb\tc\\d\"e"},
		{`'it\'s'`, TokenString, "it's"},
		{`"keep \q"`, TokenString, `keep \q`},
		{`""`, TokenString, ""},
		{"\"\"\"multi\nline\"\"\"", TokenString, "multi\nline"},
		{"'''a \"quoted\" word'''", TokenString, `a "quoted" word`},
		{`f"Hi {name}"`, TokenFString, "Hi {name}"},
		{`f'x'`, TokenFString, "x"},
		{"42", TokenInteger, "42"},
		{"1_000_000", TokenInteger, "1000000"},
		{"0x1F_ff", TokenInteger, "0x1Fff"},
		{"0B1010", TokenInteger, "0B1010"},
		{"0o17", TokenInteger, "0o17"},
		{"3.14", TokenFloat, "3.14"},
		{"1_0.2_5", TokenFloat, "10.25"},
		{"1e10", TokenFloat, "1e10"},
		{"2.5E-3", TokenFloat, "2.5E-3"},
		{"kinship", TokenKinship, "kinship"},
		{"thats_it", TokenThatsIt, "thats_it"},
		{"_private9", TokenIdentifier, "_private9"},
		{"வணக்கம்", TokenIdentifier, "வணக்கம்"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := mustTokenize(t, test.input)
			if len(tokens) != 2 {
				t.Fatalf("got %v", tokens)
			}
			if tokens[0].Kind != test.kind {
				t.Fatalf("got kind %v, want %v", tokens[0].Kind, test.kind)
			}
			if tokens[0].Text != test.text {
				t.Fatalf("got text %q, want %q", tokens[0].Text, test.text)
			}
		})
	}
}

func TestFPrefixRequiresAdjacency(t *testing.T) {
	tokens := mustTokenize(t, `f "x"`)
	got := kinds(tokens)
	want := []TokenKind{TokenIdentifier, TokenString, TokenEOF}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestNumberBeforeAttribute(t *testing.T) {
	got := kinds(mustTokenize(t, "1.real"))
	want := []TokenKind{TokenInteger, TokenDot, TokenIdentifier, TokenEOF}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v", got)
	}
	got = kinds(mustTokenize(t, "2else"))
	want = []TokenKind{TokenInteger, TokenIdentifier, TokenEOF}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestPositions(t *testing.T) {
	tokens := mustTokenize(t, "x = 1\naahaan x:\n    y")
	type pos struct{ line, column int }
	want := map[int]pos{
		0: {1, 1},
		1: {1, 3},
		2: {1, 5},
		4: {2, 1},
		5: {2, 8},
		9: {3, 5},
	}
	for i, p := range want {
		if tokens[i].Line != p.line || tokens[i].Column != p.column {
			t.Fatalf("token %d %v: want %d:%d", i, tokens[i], p.line, p.column)
		}
	}
}

func TestIndentationBalance(t *testing.T) {
	inputs := []string{
		"a\n",
		"aahaan a:\n    b\n",
		"fortify A:\n    scheme f(myself):\n        aahaan x:\n            y\n    scheme g():\n        z\nw\n",
		"aahaan a:\n    aahaan b:\n        aahaan c:\n            d",
		"attempt:\n\tx\ngrieve:\n\ty\n",
	}
	for _, input := range inputs {
		tokens := mustTokenize(t, input)
		indents, dedents := 0, 0
		for _, token := range tokens {
			switch token.Kind {
			case TokenIndent:
				indents++
			case TokenDedent:
				dedents++
			}
		}
		if indents != dedents {
			t.Fatalf("%q: %d indents, %d dedents", input, indents, dedents)
		}
		if tokens[len(tokens)-1].Kind != TokenEOF {
			t.Fatalf("%q: missing EOF", input)
		}
		if slices.ContainsFunc(tokens[:len(tokens)-1], func(t Token) bool {
			return t.Kind == TokenEOF
		}) {
			t.Fatalf("%q: more than one EOF", input)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"unterminated", `announce("hi`, 1, 10},
		{"unterminated at newline", "x = 1\ny = 'abc\nz = 2\n", 2, 5},
		{"unterminated triple", "s = \"\"\"abc\n\ndef", 1, 5},
		{"illegal character", "a = $", 1, 5},
		{"lone bang", "a ! b", 1, 3},
		{"empty hex", "0x", 1, 1},
		{"dedent mismatch", "aahaan x:\n    a\n  b\n", 3, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Tokenize(test.input)
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("got %v", err)
			}
			if lexErr.Line != test.line || lexErr.Column != test.column {
				t.Fatalf("got %d:%d, want %d:%d (%v)", lexErr.Line, lexErr.Column, test.line, test.column, err)
			}
		})
	}
}

func TestLenientDedent(t *testing.T) {
	tokens := mustTokenize(t, "aahaan x:\n    a\n  b\n", Lenient())
	got := kinds(tokens)
	want := []TokenKind{
		TokenAahaan, TokenIdentifier, TokenColon, TokenNewline,
		TokenIndent, TokenIdentifier, TokenNewline,
		TokenDedent, TokenIdentifier, TokenNewline,
		TokenEOF,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestDeterministic(t *testing.T) {
	src := "scheme f(a, b=2):\n    abandon a ** -b\n"
	a := mustTokenize(t, src)
	b := mustTokenize(t, src)
	if !slices.Equal(a, b) {
		t.Fatal()
	}
}

func TestKeywordTable(t *testing.T) {
	n := 0
	for word, kind := range Keywords() {
		n++
		tokens := mustTokenize(t, word)
		if tokens[0].Kind != kind || tokens[0].Text != word {
			t.Fatalf("got %v for %s", tokens[0], word)
		}
	}
	if n != 38 {
		t.Fatalf("got %d keywords", n)
	}
	if LookupKeyword("def") != TokenIdentifier {
		t.Fatal()
	}
}
