package targets

import (
	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs hermconfigs.Module
}

func (Module) Runner(
	name hermconfigs.RunnerName,
	interpreter hermconfigs.Interpreter,
) Runner {
	if name == hermconfigs.RunnerEmbedded {
		return Embedded{}
	}
	return External{
		Interpreter: string(interpreter),
	}
}
