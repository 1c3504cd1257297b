package lexer

import "fmt"

// Error is a lexical error: an unterminated string, an illegal character,
// a malformed number or an inconsistent dedent.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *Error) Position() (line, column int) {
	return e.Line, e.Column
}
