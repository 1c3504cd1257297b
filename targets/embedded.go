package targets

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-python/gpython/py"
	_ "github.com/go-python/gpython/stdlib"
)

// Embedded runs code in process with gpython. The interpreter implements
// Python 3.4, so newer syntax fails at compile time.
type Embedded struct{}

var _ Runner = Embedded{}

func (Embedded) Run(ctx context.Context, name, code string, stdout, stderr io.Writer) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	pyCtx := py.NewContext(py.DefaultContextOpts())
	defer func() {
		if e := pyCtx.Close(); e != nil && err == nil {
			err = e
		}
	}()

	sys, err := pyCtx.GetModule("sys")
	if err != nil {
		return err
	}

	// sys.stdout and sys.stderr must be files, so output goes through pipes
	var wg sync.WaitGroup
	var pipes []*os.File
	defer func() {
		for _, w := range pipes {
			w.Close()
		}
		wg.Wait()
	}()
	for key, dst := range map[string]io.Writer{
		"stdout": stdout,
		"stderr": stderr,
	} {
		r, w, err := os.Pipe()
		if err != nil {
			return err
		}
		pipes = append(pipes, w)
		sys.Globals[key] = &py.File{
			File:     w,
			FileMode: py.FileWrite,
		}
		wg.Go(func() {
			defer r.Close()
			_, _ = io.Copy(dst, r)
		})
	}

	// RunSrc compiles in single mode, which stops after one statement
	compiled, err := py.Compile(code+"\n", name, py.ExecMode, 0, true)
	if err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	if _, err := py.RunCode(pyCtx, compiled, name, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
