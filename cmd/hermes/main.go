package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/modes"
	"github.com/Pilan-AI/hermes-lang/onboards"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func main() {
	args := os.Args[1:]
	cmds.Execute(args)
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// settings panic on a broken config file, so report it first
	if err := loadConfigs(scope); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scope.Call(func(
		app *App,
		home Home,
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		ctx, _ := newSpan(ctx, "")

		if len(args) == 0 {
			if onboards.IsFirstRun(string(home)) {
				*onboarding = true
			} else {
				cmds.PrintUsage()
				return
			}
		}

		if err := app.Main(ctx); err != nil {
			if !errors.Is(err, errReported) {
				logger.DebugContext(ctx, "failed", "error", wrap(err))
				fmt.Fprintf(app.Stderr, "Error: %v\n", logs.WrapSpan(ctx, err))
			}
			os.Exit(1)
		}
	})
}

// loadConfigs reads and validates every config file.
func loadConfigs(scope dscope.Scope) (err error) {
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Err()
	})
	return
}
