// Package onboards shows the first-run tutorial and creates the sample
// project under ~/.hermes.
package onboards

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/targets"
)

func configPath(home string) string {
	return filepath.Join(home, ".hermes", "config.json")
}

// IsFirstRun reports whether onboarding never completed for home.
func IsFirstRun(home string) bool {
	_, err := os.Stat(configPath(home))
	return errors.Is(err, os.ErrNotExist)
}

type tutorial struct {
	in  *bufio.Reader
	out io.Writer
	err error
}

func (t *tutorial) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.out, format, args...)
}

func (t *tutorial) title(title string) {
	rule := strings.Repeat("=", 60)
	t.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

// wait blocks until a line is read. Input ending early is not an error.
func (t *tutorial) wait(prompt string) {
	t.printf("%s", prompt)
	if t.err != nil {
		return
	}
	if _, err := t.in.ReadString('\n'); err != nil && err != io.EOF {
		t.err = err
	}
}

// Run presents the tutorial on out, pausing for a line of in between
// steps, then creates the sample project under home. The first program is
// translated for real and run with runner when it is not nil.
func Run(ctx context.Context, in io.Reader, out io.Writer, home string, runner targets.Runner) error {
	t := &tutorial{
		in:  bufio.NewReader(in),
		out: out,
	}

	t.printf("%s", banner)
	t.printf("\n%s\n", strings.Repeat("=", 60))
	t.printf("Hermes thinks through you!\n")
	t.printf("Your cultural syntax → Python\n")
	t.printf("%s\n\n", strings.Repeat("=", 60))
	t.wait("Press Enter to begin your journey...")

	t.title("Step 1: The Sangam Skin")
	t.printf("%s", skinExample)
	t.printf("This is the default skin inspired by Tamil cinema.\n")
	t.wait("\nPress Enter to continue...")

	t.title("The Philosophy")
	t.printf("%s", philosophy)
	t.wait("\nPress Enter to continue...")

	t.title("The Translation")
	t.printf("\n%-16s→    %s\n", "Hermes", "Python")
	t.printf("%s\n", strings.Repeat("━", 27))
	for _, row := range translations {
		t.printf("%-16s→    %s\n", row[0], row[1])
	}
	t.wait("\nPress Enter to continue...")

	t.title("Your First Hermes Program")
	t.printf("\n%s", firstProgram)
	python, err := hermes.TranslateString(firstProgram)
	if err != nil {
		return err
	}
	t.printf("\nTranspiling... Done!\n\n%s\n", python)
	if runner != nil && t.err == nil {
		t.printf("\nOutput:\n")
		if err := runner.Run(ctx, "hello.herm", python, out, out); err != nil {
			return err
		}
	}
	t.printf("\n")
	t.wait("Press Enter to finish setup...")

	t.title("✓ You're all set!")
	t.printf("%s", quickStart)
	if t.err != nil {
		return t.err
	}

	examples, sample, err := CreateSampleProject(home)
	if err != nil {
		return err
	}
	t.printf("✓ Created sample project at %s\n", examples)
	t.printf("\nTry it: hermes run %s\n", sample)
	return t.err
}

// CreateSampleProject marks onboarding as completed and writes the sample
// program. An existing config is kept.
func CreateSampleProject(home string) (examplesDir, samplePath string, err error) {
	hermesDir := filepath.Join(home, ".hermes")
	examplesDir = filepath.Join(hermesDir, "examples")
	if err := os.MkdirAll(examplesDir, 0o755); err != nil {
		return "", "", err
	}

	config := configPath(home)
	if _, err := os.Stat(config); errors.Is(err, os.ErrNotExist) {
		content := fmt.Sprintf(`{"onboarding_completed": true, "version": %q}`, hermes.Version)
		if err := os.WriteFile(config, []byte(content), 0o644); err != nil {
			return "", "", err
		}
	} else if err != nil {
		return "", "", err
	}

	samplePath = filepath.Join(examplesDir, "hello.herm")
	if err := os.WriteFile(samplePath, []byte(SampleProgram), 0o644); err != nil {
		return "", "", err
	}
	return examplesDir, samplePath, nil
}
