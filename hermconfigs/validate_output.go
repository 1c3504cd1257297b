package hermconfigs

import (
	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
)

type ValidateOutput bool

var _ configs.Configurable = ValidateOutput(false)

func (ValidateOutput) ConfigKey() string {
	return "validate_output"
}

var validateFlag = cmds.Switch("-validate", "parse generated Python before reporting success")

func (Module) ValidateOutput(
	loader configs.Loader,
) ValidateOutput {
	return ValidateOutput(*validateFlag || anyEnabled(loader, "validate_output"))
}
