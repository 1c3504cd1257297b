package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/debugs"
	"github.com/Pilan-AI/hermes-lang/helps"
	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/lexer"
	"github.com/Pilan-AI/hermes-lang/onboards"
	"github.com/Pilan-AI/hermes-lang/sources"
	"github.com/Pilan-AI/hermes-lang/targets"
	"github.com/Pilan-AI/hermes-lang/vars"
)

var (
	runFile      = cmds.Var[string]("run", "translate FILE and execute it")
	compileFiles = cmds.Collect[string]("compile", "translate FILE to python, repeatable")
	checkFiles   = cmds.Collect[string]("check", "check that FILE translates, repeatable")
	tokensFile   = cmds.Var[string]("tokens", "print the tokens of FILE")
	inspectFile  = cmds.Var[string]("inspect", "explore the translation of FILE in a starlark repl")
	serveHelp    = cmds.Switch("serve-help", "answer help requests on stdin and stdout")
	onboarding   = cmds.Switch("onboarding", "show the tutorial again")
	showConfig   = cmds.Switch("config", "print settings and loaded config files")
	debugFlag    = cmds.Switch("-debug", "print the generated python before running it")
	outputPath   = cmds.Var[string]("-o", "output path of a single compile")

	serveHelpTCP *string
)

func init() {
	cmds.Define("serve-help-tcp", cmds.Func(func(addr *string) {
		serveHelpTCP = addr
	}).Desc("answer help requests on TCP, at the configured address unless given"))
}

// errReported means the failure has already been written to Stderr.
var errReported = errors.New("reported")

type App struct {
	Stdin  Stdin
	Stdout Stdout
	Stderr Stderr
	Home   Home

	translateSource hermes.TranslateSource
	translateFiles  hermes.TranslateFiles
	lexerOptions    hermes.LexerOptions
	runner          targets.Runner
	runnerName      hermconfigs.RunnerName
	validate        hermconfigs.ValidateOutput
	tap             debugs.Tap
	serveTCP        helps.ServeTCP
	configPaths     hermconfigs.ConfigPaths
	settings        []configs.Configurable
}

func (Module) App(
	stdin Stdin,
	stdout Stdout,
	stderr Stderr,
	home Home,
	translateSource hermes.TranslateSource,
	translateFiles hermes.TranslateFiles,
	lexerOptions hermes.LexerOptions,
	runner targets.Runner,
	validate hermconfigs.ValidateOutput,
	tap debugs.Tap,
	serveTCP helps.ServeTCP,
	configPaths hermconfigs.ConfigPaths,
	jobs hermconfigs.Jobs,
	lenient hermconfigs.LenientIndent,
	runnerName hermconfigs.RunnerName,
	interpreter hermconfigs.Interpreter,
	helpAddr hermconfigs.HelpAddr,
	helpMaxConns hermconfigs.HelpMaxConns,
) *App {
	return &App{
		Stdin:           stdin,
		Stdout:          stdout,
		Stderr:          stderr,
		Home:            home,
		translateSource: translateSource,
		translateFiles:  translateFiles,
		lexerOptions:    lexerOptions,
		runner:          runner,
		runnerName:      runnerName,
		validate:        validate,
		tap:             tap,
		serveTCP:        serveTCP,
		configPaths:     configPaths,
		settings: []configs.Configurable{
			jobs,
			lenient,
			validate,
			runnerName,
			interpreter,
			helpAddr,
			helpMaxConns,
		},
	}
}

// Main performs the actions selected on the command line, in a fixed
// order.
func (a *App) Main(ctx context.Context) error {
	if err := a.runnerName.Validate(); err != nil {
		return err
	}
	if *onboarding {
		if err := onboards.Run(ctx, a.Stdin, a.Stdout, string(a.Home), a.runner); err != nil {
			return err
		}
	}
	if *showConfig {
		a.Config()
	}
	if *tokensFile != "" {
		if err := a.Tokens(ctx, *tokensFile); err != nil {
			return err
		}
	}
	if len(*checkFiles) > 0 {
		if err := a.Check(ctx, *checkFiles); err != nil {
			return err
		}
	}
	if len(*compileFiles) > 0 {
		if err := a.Compile(ctx, *compileFiles, *outputPath); err != nil {
			return err
		}
	}
	if *runFile != "" {
		if err := a.Run(ctx, *runFile, *debugFlag); err != nil {
			return err
		}
	}
	if *inspectFile != "" {
		if err := a.Inspect(ctx, *inspectFile); err != nil {
			return err
		}
	}
	if *serveHelp {
		if err := helps.Serve(ctx, a.Stdin, a.Stdout); err != nil {
			return err
		}
	}
	if serveHelpTCP != nil {
		if err := a.serveTCP(ctx, vars.DerefOrZero(serveHelpTCP)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) read(path string) (*sources.Source, error) {
	src, err := sources.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(a.Stderr, "Error: File not found: %s\n", path)
		return nil, errReported
	}
	return src, err
}

// load reads and translates path, describing any failure on Stderr.
func (a *App) load(ctx context.Context, path string) (*sources.Source, *hermes.Result, error) {
	src, err := a.read(path)
	if err != nil {
		return nil, nil, err
	}
	result, err := a.translateSource(ctx, src)
	if err != nil {
		return src, nil, a.report(src, err)
	}
	return src, result, nil
}

func (a *App) report(src *sources.Source, err error) error {
	if hermes.KindOf(err) == "" {
		return err
	}
	fmt.Fprint(a.Stderr, hermes.Describe(err, src))
	return errReported
}

func (a *App) Run(ctx context.Context, path string, debug bool) error {
	_, result, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(a.Stdout, "=== Transpiled Python ===\n%s\n=== Output ===\n", result.Output)
	}
	return a.runner.Run(ctx, path, result.Output, a.Stdout, a.Stderr)
}

func (a *App) Compile(ctx context.Context, paths []string, output string) error {
	if len(paths) == 1 {
		_, result, err := a.load(ctx, paths[0])
		if err != nil {
			return err
		}
		if output == "" {
			fmt.Fprintln(a.Stdout, result.Output)
			return nil
		}
		if err := os.WriteFile(output, []byte(result.Output+"\n"), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(a.Stdout, "Compiled to: %s\n", output)
		return nil
	}

	if output != "" {
		return fmt.Errorf("-o needs exactly one compile file, got %d", len(paths))
	}
	failed := false
	for _, file := range a.translateFiles(ctx, paths) {
		if err := a.fileError(file); err != nil {
			if !errors.Is(err, errReported) {
				return err
			}
			failed = true
			continue
		}
		target := strings.TrimSuffix(file.Path, filepath.Ext(file.Path)) + ".py"
		if err := os.WriteFile(target, []byte(file.Result.Output+"\n"), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(a.Stdout, "Compiled to: %s\n", target)
	}
	if failed {
		return errReported
	}
	return nil
}

func (a *App) fileError(file *hermes.FileResult) error {
	switch {
	case file.Err == nil:
		return nil
	case errors.Is(file.Err, os.ErrNotExist):
		fmt.Fprintf(a.Stderr, "Error: File not found: %s\n", file.Path)
		return errReported
	case file.Source != nil:
		return a.report(file.Source, file.Err)
	}
	return file.Err
}

func (a *App) Check(ctx context.Context, paths []string) error {
	failed := false
	for _, file := range a.translateFiles(ctx, paths) {
		err := a.fileError(file)
		if err == nil && a.validate {
			err = targets.Validate(file.Path, file.Result.Output)
			if err != nil {
				fmt.Fprintf(a.Stderr, "Error: %v\n", err)
				err = errReported
			}
		}
		if err != nil {
			if !errors.Is(err, errReported) {
				return err
			}
			failed = true
			continue
		}
		fmt.Fprintf(a.Stdout, "OK: %s\n", file.Path)
	}
	if failed {
		return errReported
	}
	return nil
}

// Tokens only lexes, so files with syntax errors can still be dumped.
func (a *App) Tokens(ctx context.Context, path string) error {
	src, err := a.read(path)
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(src.Content, a.lexerOptions...)
	if err != nil {
		return a.report(src, err)
	}
	for _, token := range tokens {
		fmt.Fprintf(a.Stdout, "%d:%d %s %q\n", token.Line, token.Column, token.Kind, token.Text)
	}
	return nil
}

func (a *App) Inspect(ctx context.Context, path string) error {
	src, result, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return a.tap(ctx, path, debugs.Globals(src, result))
}

func (a *App) Config() {
	fmt.Fprintln(a.Stdout, "config files:")
	if len(a.configPaths) == 0 {
		fmt.Fprintln(a.Stdout, "  (none)")
	}
	for _, path := range a.configPaths {
		fmt.Fprintf(a.Stdout, "  %s\n", path)
	}
	fmt.Fprintln(a.Stdout, "settings:")
	for _, setting := range a.settings {
		fmt.Fprintf(a.Stdout, "  %-16s %v\n", setting.ConfigKey(), setting)
	}
}
