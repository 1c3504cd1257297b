package targets

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// External runs code with an interpreter found in PATH.
type External struct {
	Interpreter string
}

var _ Runner = External{}

func (e External) Run(ctx context.Context, name, code string, stdout, stderr io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "hermes-run-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "main"
	}
	path := filepath.Join(dir, base+".py")
	if err := os.WriteFile(path, []byte(code+"\n"), 0o644); err != nil {
		return err
	}

	interpreter := e.Interpreter
	if interpreter == "" {
		interpreter = "python3"
	}
	cmd := exec.CommandContext(ctx, interpreter, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s with %s: %w", name, interpreter, err)
	}
	return nil
}
