package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds the commands and flags defined by package init
// functions and package level Var, Switch and Collect calls.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor, exiting with status 2 on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "run with -h for usage\n")
		os.Exit(2)
	}
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
