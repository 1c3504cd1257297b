package hermconfigs

import (
	"runtime"

	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/vars"
)

// Jobs bounds how many files are translated at the same time.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigKey() string {
	return "jobs"
}

var jobsFlag = cmds.Var[int]("-jobs", "number of files translated concurrently")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(max(1, vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.GOMAXPROCS(0),
	)))
}
