package debugs

import (
	"io"
	"strings"
	"testing"

	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/modes"
	"github.com/Pilan-AI/hermes-lang/sources"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return io.Discard
		},
	).Call(func(
		tap Tap,
	) {
		if err := tap(t.Context(), "test", map[string]any{
			"foo": 42,
		}); err != nil {
			t.Fatal(err)
		}
		if err := tap(t.Context(), "test", map[string]any{
			"bad": make(chan int),
		}); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestGlobals(t *testing.T) {
	src := sources.NewSource("a.herm", "x = myself\n")
	result, err := hermes.Process(src.Content)
	if err != nil {
		t.Fatal(err)
	}
	globals := Globals(src, result)
	for _, name := range []string{"source", "tokens", "program", "output", "remap", "translate"} {
		value, err := ToValue(globals[name])
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if value == starlark.None {
			t.Fatalf("%s is None", name)
		}
	}
	if globals["output"] != "x = self" {
		t.Fatalf("got %v", globals["output"])
	}

	translate := globals["translate"].(func(string) string)
	if got := translate("y = truth\n"); got != "y = True" {
		t.Fatalf("got %s", got)
	}
	if got := translate("y = \"\n"); !strings.HasPrefix(got, "LexicalError: ") {
		t.Fatalf("got %s", got)
	}
}
