package targets

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// SyntaxError reports generated Python that does not parse.
type SyntaxError struct {
	Name string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: generated python does not parse: %v", e.Name, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Validate parses code with a Python grammar. The grammar predates
// f-strings, so code containing them is rejected.
func Validate(name, code string) error {
	if _, err := parser.Parse(strings.NewReader(code+"\n"), name, py.ExecMode); err != nil {
		return &SyntaxError{
			Name: name,
			Err:  err,
		}
	}
	return nil
}
