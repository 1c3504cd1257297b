package transpiler

import "maps"

// remap spells culturally named identifiers the way Python expects them.
// It is consulted for function names, parameters, attributes, bare names and
// lambda parameters only.
var remap = map[string]string{
	"myself":     "self",
	"initialize": "__init__",
	"truth":      "True",
	"falsehood":  "False",
	"nothing":    "None",
}

// Remap returns a copy of the identifier remap table.
func Remap() map[string]string {
	return maps.Clone(remap)
}

func mapName(name string) string {
	if mapped, ok := remap[name]; ok {
		return mapped
	}
	return name
}
