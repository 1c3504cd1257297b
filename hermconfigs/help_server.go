package hermconfigs

import (
	"github.com/Pilan-AI/hermes-lang/configs"
	"github.com/Pilan-AI/hermes-lang/vars"
)

// HelpAddr is the default listen address of the TCP help server.
type HelpAddr string

var _ configs.Configurable = HelpAddr("")

func (HelpAddr) ConfigKey() string {
	return "help_addr"
}

func (Module) HelpAddr(
	loader configs.Loader,
) HelpAddr {
	return HelpAddr(vars.FirstNonZero(
		configs.First[string](loader, "help_addr"),
		"127.0.0.1:7432",
	))
}

// HelpMaxConns limits concurrent TCP help connections.
type HelpMaxConns int

var _ configs.Configurable = HelpMaxConns(0)

func (HelpMaxConns) ConfigKey() string {
	return "help_max_conns"
}

func (Module) HelpMaxConns(
	loader configs.Loader,
) HelpMaxConns {
	return HelpMaxConns(vars.FirstNonZero(
		configs.First[int](loader, "help_max_conns"),
		16,
	))
}
