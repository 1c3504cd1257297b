package transpiler

import "fmt"

// Fault reports a node the emitter has no rule for. A tree built by the
// parser never produces one.
type Fault struct {
	Line   int
	Column int
	Node   string
	Msg    string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", f.Msg, f.Line, f.Column)
}

func (f *Fault) Position() (line, column int) {
	return f.Line, f.Column
}
