package hermes

import (
	"errors"
	"fmt"

	"github.com/Pilan-AI/hermes-lang/lexer"
	"github.com/Pilan-AI/hermes-lang/parser"
	"github.com/Pilan-AI/hermes-lang/sources"
	"github.com/Pilan-AI/hermes-lang/transpiler"
)

const (
	KindLexical  = "LexicalError"
	KindSyntax   = "SyntaxError"
	KindEmission = "EmissionFault"
)

// KindOf classifies a translation error, or returns "" for any other error.
func KindOf(err error) string {
	var lexErr *lexer.Error
	var parseErr *parser.Error
	var fault *transpiler.Fault
	switch {
	case errors.As(err, &lexErr):
		return KindLexical
	case errors.As(err, &parseErr):
		return KindSyntax
	case errors.As(err, &fault):
		return KindEmission
	}
	return ""
}

// Position returns where a translation error occurred.
func Position(err error) (line, column int, ok bool) {
	var positioned interface {
		Position() (line, column int)
	}
	if !errors.As(err, &positioned) {
		return 0, 0, false
	}
	line, column = positioned.Position()
	return line, column, true
}

func message(err error) string {
	var lexErr *lexer.Error
	var parseErr *parser.Error
	var fault *transpiler.Fault
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Msg
	case errors.As(err, &parseErr):
		return parseErr.Msg
	case errors.As(err, &fault):
		return fault.Msg
	}
	return err.Error()
}

// Describe renders err for a terminal: kind and message, then the location
// with the offending source line and a caret.
func Describe(err error, src *sources.Source) string {
	kind := KindOf(err)
	line, column, ok := Position(err)
	if kind == "" || !ok {
		return fmt.Sprintf("Error: %v\n", err)
	}
	return fmt.Sprintf("%s: %s\n%s", kind, message(err), src.Snippet(line, column))
}
