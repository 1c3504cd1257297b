package targets

import (
	"context"
	"io"
)

// Runner executes generated Python source. name is used in tracebacks.
type Runner interface {
	Run(ctx context.Context, name, code string, stdout, stderr io.Writer) error
}

type RunnerFunc func(ctx context.Context, name, code string, stdout, stderr io.Writer) error

var _ Runner = RunnerFunc(nil)

func (r RunnerFunc) Run(ctx context.Context, name, code string, stdout, stderr io.Writer) error {
	return r(ctx, name, code, stdout, stderr)
}
