package nets

import (
	"github.com/Pilan-AI/hermes-lang/hermconfigs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs hermconfigs.Module
	Logs    logs.Module
}
