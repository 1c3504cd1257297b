package main

import (
	"io"
	"os"

	"github.com/Pilan-AI/hermes-lang/debugs"
	"github.com/Pilan-AI/hermes-lang/helps"
	"github.com/Pilan-AI/hermes-lang/hermes"
	"github.com/Pilan-AI/hermes-lang/targets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Hermes  hermes.Module
	Targets targets.Module
	Helps   helps.Module
	Debugs  debugs.Module
}

type (
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
)

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stderr() Stderr {
	return os.Stderr
}

// Home is where onboarding state lives.
type Home string

func (Module) Home() Home {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return Home(home)
}
