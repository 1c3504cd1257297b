package hermconfigs

import (
	"fmt"

	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/vars"
)

// RunnerName selects how generated Python is executed: "external" runs
// Interpreter, "embedded" runs it in process.
type RunnerName string

var _ configs.Configurable = RunnerName("")

func (RunnerName) ConfigKey() string {
	return "runner"
}

const (
	RunnerExternal RunnerName = "external"
	RunnerEmbedded RunnerName = "embedded"
)

// Validate rejects names other than RunnerExternal and RunnerEmbedded.
func (r RunnerName) Validate() error {
	switch r {
	case RunnerExternal, RunnerEmbedded:
		return nil
	}
	return fmt.Errorf("unknown runner %q, want %s or %s", string(r), RunnerExternal, RunnerEmbedded)
}

var runnerFlag = cmds.Var[RunnerName]("-runner", "external or embedded")

func (Module) RunnerName(
	loader configs.Loader,
) RunnerName {
	return vars.FirstNonZero(
		*runnerFlag,
		RunnerName(configs.First[string](loader, "runner")),
		RunnerExternal,
	)
}

// Interpreter is the command used by the external runner.
type Interpreter string

var _ configs.Configurable = Interpreter("")

func (Interpreter) ConfigKey() string {
	return "interpreter"
}

var interpreterFlag = cmds.Var[string]("-interpreter", "python interpreter used by the external runner")

func (Module) Interpreter(
	loader configs.Loader,
) Interpreter {
	return Interpreter(vars.FirstNonZero(
		*interpreterFlag,
		configs.First[string](loader, "interpreter"),
		"python3",
	))
}
