// Package hermes runs the whole pipeline: Tokenize, Parse, Emit.
package hermes

import (
	"io"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/lexer"
	"github.com/Pilan-AI/hermes-lang/parser"
	"github.com/Pilan-AI/hermes-lang/transpiler"
)

// Version of the language and its tooling.
const Version = "0.1.0"

// Result holds every intermediate product of one translation.
type Result struct {
	Tokens  []lexer.Token
	Program *ast.Program
	Output  string
}

// Process translates source, failing on the first error of any stage.
func Process(source string, options ...lexer.Option) (*Result, error) {
	tokens, err := lexer.Tokenize(source, options...)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	output, err := transpiler.Emit(program)
	if err != nil {
		return nil, err
	}
	return &Result{
		Tokens:  tokens,
		Program: program,
		Output:  output,
	}, nil
}

func TranslateString(source string, options ...lexer.Option) (string, error) {
	result, err := Process(source, options...)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

func Translate(r io.Reader, options ...lexer.Option) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return TranslateString(string(content), options...)
}
