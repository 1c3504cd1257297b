package hermconfigs

import (
	"github.com/Pilan-AI/hermes-lang/cmds"
	"github.com/Pilan-AI/hermes-lang/configs"
)

type LenientIndent bool

var _ configs.Configurable = LenientIndent(false)

func (LenientIndent) ConfigKey() string {
	return "lenient_indent"
}

var lenientIndentFlag = cmds.Switch("-lenient-indent", "accept dedents that do not match an outer indentation level")

func (Module) LenientIndent(
	loader configs.Loader,
) LenientIndent {
	return LenientIndent(*lenientIndentFlag || anyEnabled(loader, "lenient_indent"))
}
