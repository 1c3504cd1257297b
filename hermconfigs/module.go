package hermconfigs

import (
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// anyEnabled reports whether any loaded config file sets key to true.
func anyEnabled(loader configs.Loader, key string) bool {
	for enabled := range configs.All[bool](loader, key) {
		if enabled {
			return true
		}
	}
	return false
}
