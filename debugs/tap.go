package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/sources"
	"github.com/Pilan-AI/hermes-lang/transpiler"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) error {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict, len(globals))
		for _, name := range names {
			value, err := ToValue(globals[name])
			if err != nil {
				return err
			}
			mappings[name] = value
		}

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
		return nil
	}
}

// Globals exposes a translation to the inspector. translate(text) returns
// the Python for text, or the rendered error.
func Globals(src *sources.Source, result *hermes.Result) map[string]any {
	return map[string]any{
		"source":  src.Content,
		"tokens":  result.Tokens,
		"program": result.Program,
		"output":  result.Output,
		"remap":   transpiler.Remap(),
		"translate": func(text string) string {
			output, err := hermes.TranslateString(text)
			if err != nil {
				return hermes.Describe(err, sources.NewSource("<translate>", text))
			}
			return output
		},
	}
}
