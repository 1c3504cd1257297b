package hermes

import (
	"context"
	"sync"

	"github.com/Pilan-AI/hermes-lang/ast"
	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/Pilan-AI/hermes-lang/lexer"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/Pilan-AI/hermes-lang/sources"
	"github.com/Pilan-AI/hermes-lang/syncs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs hermconfigs.Module
}

// LexerOptions are derived from settings.
type LexerOptions []lexer.Option

func (Module) LexerOptions(
	lenient hermconfigs.LenientIndent,
) (ret LexerOptions) {
	if lenient {
		ret = append(ret, lexer.Lenient())
	}
	return
}

type TranslateSource func(ctx context.Context, src *sources.Source) (*Result, error)

func (Module) TranslateSource(
	logger logs.Logger,
	options LexerOptions,
) TranslateSource {
	return func(ctx context.Context, src *sources.Source) (*Result, error) {
		result, err := Process(src.Content, options...)
		if err != nil {
			logger.DebugContext(ctx, "translate failed",
				"source", src.Name,
				"kind", KindOf(err),
				"error", err,
			)
			return nil, err
		}
		logger.DebugContext(ctx, "translated",
			"source", src.Name,
			"tokens", len(result.Tokens),
			"statements", len(result.Program.Body),
			"nodes", ast.Count(result.Program),
			"bytes", len(result.Output),
		)
		return result, nil
	}
}

type FileResult struct {
	Path   string
	Source *sources.Source
	Result *Result
	Err    error
}

// TranslateFiles reads and translates every path, at most Jobs at a time.
// Results are in the order of paths. Files not started before ctx is done
// report ctx.Err().
type TranslateFiles func(ctx context.Context, paths []string) []*FileResult

func (Module) TranslateFiles(
	translate TranslateSource,
	jobs hermconfigs.Jobs,
	newSpan logs.NewSpan,
) TranslateFiles {
	return func(ctx context.Context, paths []string) []*FileResult {
		results := make([]*FileResult, len(paths))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup

		for i, path := range paths {
			results[i] = &FileResult{
				Path: path,
			}
			if err := sem.Acquire(ctx); err != nil {
				results[i].Err = err
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				ctx, _ := newSpan(ctx, "")
				result := results[i]
				result.Source, result.Err = sources.ReadFile(path)
				if result.Err != nil {
					return
				}
				result.Result, result.Err = translate(ctx, result.Source)
			})
		}

		wg.Wait()
		return results
	}
}
