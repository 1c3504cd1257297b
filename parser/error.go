package parser

import (
	"fmt"

	"github.com/Pilan-AI/hermes-lang/lexer"
)

// Error is a syntax error. Expected is TokenInvalid unless a specific token
// kind was required.
type Error struct {
	Line     int
	Column   int
	Expected lexer.TokenKind
	Found    lexer.TokenKind
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *Error) Position() (line, column int) {
	return e.Line, e.Column
}
