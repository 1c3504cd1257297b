package onboards

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/targets"
)

func TestRun(t *testing.T) {
	home := t.TempDir()
	if !IsFirstRun(home) {
		t.Fatal("should be first run")
	}

	var out strings.Builder
	var ran string
	runner := targets.RunnerFunc(func(_ context.Context, name, code string, stdout, _ io.Writer) error {
		ran = code
		_, err := io.WriteString(stdout, "Hello, World\n")
		return err
	})
	if err := Run(context.Background(), strings.NewReader("\n\n\n\n\n"), &out, home, runner); err != nil {
		t.Fatal(err)
	}
	if IsFirstRun(home) {
		t.Fatal("should not be first run")
	}

	text := out.String()
	for _, want := range []string{
		"Hermes thinks through you!",
		"Step 1: The Sangam Skin",
		"The Philosophy",
		"thats_it        →    else",
		"def greet(name):\n    print((\"Hello, \" + name))\n    return True\ngreet(\"World\")",
		"Output:\nHello, World\n",
		"Quick Start:",
		"✓ Created sample project at " + filepath.Join(home, ".hermes", "examples"),
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in\n%s", want, text)
		}
	}
	if !strings.HasPrefix(ran, "def greet(name):") {
		t.Fatalf("got %s", ran)
	}

	content, err := os.ReadFile(filepath.Join(home, ".hermes", "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	var config struct {
		OnboardingCompleted bool   `json:"onboarding_completed"`
		Version             string `json:"version"`
	}
	if err := json.Unmarshal(content, &config); err != nil {
		t.Fatal(err)
	}
	if !config.OnboardingCompleted || config.Version != hermes.Version {
		t.Fatalf("got %s", content)
	}

	sample, err := os.ReadFile(filepath.Join(home, ".hermes", "examples", "hello.herm"))
	if err != nil {
		t.Fatal(err)
	}
	if string(sample) != SampleProgram {
		t.Fatalf("got %s", sample)
	}
	if _, err := hermes.TranslateString(SampleProgram); err != nil {
		t.Fatal(err)
	}
}

func TestRunWithoutInput(t *testing.T) {
	home := t.TempDir()
	var out strings.Builder
	if err := Run(context.Background(), strings.NewReader(""), &out, home, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Output:") {
		t.Fatal("no runner, no output")
	}
	if IsFirstRun(home) {
		t.Fatal()
	}
}

func TestKeepExistingConfig(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".hermes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if IsFirstRun(home) {
		t.Fatal()
	}
	if _, _, err := CreateSampleProject(home); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "{}" {
		t.Fatalf("got %s", content)
	}
}
