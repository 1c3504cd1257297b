package debugs

import (
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
